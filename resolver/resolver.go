/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package resolver

import (
	"github.com/botobag/pokedex/catalog"
)

// TypeMembers is the result of CreaturesByType. Only Creatures is populated. Attacks and Types are
// exposed so the value fits the "data" object shape served to clients, and are always nil.
type TypeMembers struct {
	Creatures []*catalog.Creature `graphql:"Pokemon"`
	Attacks   *catalog.MoveSet    `graphql:"attacks"`
	Types     []string            `graphql:"types"`
}

// AttackDetail joins the attributes of an attack with every creature that can use it. It's
// computed on demand and never stored.
type AttackDetail struct {
	Name      string              `graphql:"name"`
	Type      string              `graphql:"type"`
	Damage    int                 `graphql:"damage"`
	Creatures []*catalog.Creature `graphql:"Pokemon"`
}

// Resolver resolves queries and mutations against a Store.
type Resolver struct {
	store *catalog.Store
}

// New creates a Resolver serving data in store.
func New(store *catalog.Store) *Resolver {
	return &Resolver{
		store: store,
	}
}

// Store returns the store that r reads from and writes to.
func (r *Resolver) Store() *catalog.Store {
	return r.store
}

// AllCreatures returns every creature in the catalog.
func (r *Resolver) AllCreatures() []*catalog.Creature {
	return r.store.Creatures()
}

// AllTypes returns the type registry.
func (r *Resolver) AllTypes() []string {
	return r.store.Types()
}

// AllAttacks returns the global move-set.
func (r *Resolver) AllAttacks() *catalog.MoveSet {
	attacks := r.store.Attacks()
	return &attacks
}

// CreatureByKey returns the first creature selected by key or nil if there's none. A nil key
// selects nothing.
func (r *Resolver) CreatureByKey(key Key) *catalog.Creature {
	if key == nil {
		return nil
	}

	for _, creature := range r.store.Creatures() {
		if key.matches(creature) {
			return creature
		}
	}

	return nil
}

// AttacksByCategory returns the attacks of the given category ("fast" or "special") from the
// global move-set. It returns nil for any other category.
func (r *Resolver) AttacksByCategory(category string) []catalog.Attack {
	c, ok := catalog.ParseCategory(category)
	if !ok {
		return nil
	}

	attacks := r.store.Attacks()
	list, _ := attacks.List(c)
	return list
}

// CreaturesByType returns creatures having typeName among their types, in catalog order.
func (r *Resolver) CreaturesByType(typeName string) *TypeMembers {
	creatures := []*catalog.Creature{}
	for _, creature := range r.store.Creatures() {
		if creature.HasType(typeName) {
			creatures = append(creatures, creature)
		}
	}

	return &TypeMembers{
		Creatures: creatures,
	}
}

// AttackDetail synthesizes the detail of the attack named name. The attributes are copied from the
// first matching definition in the global move-set (fast attacks are searched first). Creatures
// are those whose own move-set contains an attack with the same name. It returns a
// *PreconditionError if the global move-set doesn't define the attack.
func (r *Resolver) AttackDetail(name string) (*AttackDetail, error) {
	attacks := r.store.Attacks()
	attack := attacks.Find(name)
	if attack == nil {
		return nil, &PreconditionError{
			Attack: name,
		}
	}

	creatures := []*catalog.Creature{}
	for _, creature := range r.store.Creatures() {
		if creature.UsesAttack(name) {
			creatures = append(creatures, creature)
		}
	}

	return &AttackDetail{
		Name:      attack.Name,
		Type:      attack.Type,
		Damage:    attack.Damage,
		Creatures: creatures,
	}, nil
}

// AddType appends newType to the type registry and returns the updated registry. Duplicates and
// empty names are accepted.
func (r *Resolver) AddType(newType string) []string {
	return r.store.AppendType(newType)
}

// AddAttack appends attack to the global list of the given category and returns the updated list.
// Names are not checked for uniqueness. It returns nil and appends nothing if category is neither
// "fast" nor "special".
func (r *Resolver) AddAttack(category string, attack catalog.Attack) []catalog.Attack {
	c, ok := catalog.ParseCategory(category)
	if !ok {
		return nil
	}

	attacks, _ := r.store.AppendAttack(c, attack)
	return attacks
}
