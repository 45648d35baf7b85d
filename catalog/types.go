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

package catalog

// Range is a pair of textual measurements such as "6.04kg".."7.76kg".
type Range struct {
	Minimum string `json:"minimum" graphql:"minimum"`
	Maximum string `json:"maximum" graphql:"maximum"`
}

// EvolutionRequirements describes what a creature needs to evolve.
type EvolutionRequirements struct {
	Amount int    `json:"amount" graphql:"amount"`
	Name   string `json:"name" graphql:"name"`
}

// Evolution is a forward reference to another creature. Note that ID lives in a different namespace
// than Creature.ID (an integer Pokédex number instead of the zero-padded string) and is never used
// to look up creatures.
type Evolution struct {
	ID   int    `json:"id" graphql:"id"`
	Name string `json:"name" graphql:"name"`
}

// Attack describes one move with its element type and damage.
type Attack struct {
	Name   string `json:"name" graphql:"name"`
	Type   string `json:"type" graphql:"type"`
	Damage int    `json:"damage" graphql:"damage"`
}

// Category names one of the two lists in a MoveSet.
type Category string

// Enumeration of Category
const (
	Fast    Category = "fast"
	Special Category = "special"
)

// ParseCategory returns the Category named by s. ok is false if s names neither list.
func ParseCategory(s string) (c Category, ok bool) {
	switch Category(s) {
	case Fast:
		return Fast, true
	case Special:
		return Special, true
	}
	return "", false
}

// MoveSet is a pair of attack lists. Every creature owns one. The Store owns a global one that
// enumerates every attack defined in the catalog.
type MoveSet struct {
	Fast    []Attack `json:"fast" graphql:"fast"`
	Special []Attack `json:"special" graphql:"special"`
}

// List returns the attack list for the given category.
func (m *MoveSet) List(c Category) (attacks []Attack, ok bool) {
	switch c {
	case Fast:
		return m.Fast, true
	case Special:
		return m.Special, true
	}
	return nil, false
}

// Contains returns true if an attack with the given name appears in either list.
func (m *MoveSet) Contains(name string) bool {
	return m.Find(name) != nil
}

// Find returns the first attack named name, scanning fast attacks before special ones. It returns
// nil if there's no such attack.
func (m *MoveSet) Find(name string) *Attack {
	for _, lists := range [][]Attack{m.Fast, m.Special} {
		for i := range lists {
			if lists[i].Name == name {
				return &lists[i]
			}
		}
	}
	return nil
}

// Creature is one entry in the catalog.
type Creature struct {
	ID                    string                 `json:"id" graphql:"id"`
	Name                  string                 `json:"name" graphql:"name"`
	Classification        string                 `json:"classification" graphql:"classification"`
	Types                 []string               `json:"types" graphql:"types"`
	Resistant             []string               `json:"resistant" graphql:"resistant"`
	Weaknesses            []string               `json:"weaknesses" graphql:"weaknesses"`
	Weight                *Range                 `json:"weight" graphql:"weight"`
	Height                *Range                 `json:"height" graphql:"height"`
	FleeRate              float64                `json:"fleeRate" graphql:"fleeRate"`
	EvolutionRequirements *EvolutionRequirements `json:"evolutionRequirements" graphql:"evolutionRequirements"`
	Evolutions            []Evolution            `json:"evolutions" graphql:"evolutions"`
	MaxCP                 int                    `json:"maxCP" graphql:"maxCP"`
	MaxHP                 int                    `json:"maxHP" graphql:"maxHP"`
	Attacks               *MoveSet               `json:"attacks" graphql:"attacks"`
}

// HasType returns true if t is one of the creature's types.
func (c *Creature) HasType(t string) bool {
	for _, typ := range c.Types {
		if typ == t {
			return true
		}
	}
	return false
}

// UsesAttack returns true if the creature's own move-set contains an attack named name.
func (c *Creature) UsesAttack(name string) bool {
	if c.Attacks == nil {
		return false
	}
	return c.Attacks.Contains(name)
}

// Dataset is the decoded form of a catalog source. It is consumed by New to build a Store.
type Dataset struct {
	Creatures []*Creature `json:"pokemon"`
	Attacks   MoveSet     `json:"attacks"`
	Types     []string    `json:"types"`
}
