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

package dispatch

import (
	"context"

	"github.com/botobag/pokedex/catalog"
	"github.com/botobag/pokedex/resolver"

	"github.com/rs/zerolog"
)

// Names of the operations registered by New
const (
	OpPokemons        = "Pokemons"
	OpTypes           = "Types"
	OpAttacks         = "Attacks"
	OpPokemon         = "Pokemon"
	OpAttack          = "Attack"
	OpType            = "Type"
	OpGetAttack       = "GetAttack"
	OpCreateType      = "createType"
	OpCreateNewAttack = "createNewAttack"
)

type options struct {
	legacyKeyProbe bool
}

// Option configures the Table created by New.
type Option func(*options)

// LegacyKeyProbe makes the "Pokemon" operation select creatures with resolver.Probe: the id
// argument is used only if it looks like an integer, otherwise the creature is matched by the name
// argument. When disabled (the default), a given id selects by id (resolver.ByID) and otherwise a
// given name selects by name (resolver.ByName).
func LegacyKeyProbe(enabled bool) Option {
	return func(o *options) {
		o.legacyKeyProbe = enabled
	}
}

// New creates a Table serving the catalog operations with r.
func New(r *resolver.Resolver, opts ...Option) *Table {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b := builder{
		resolver: r,
		options:  o,
	}

	table, err := NewTable(
		b.bind(OpPokemons, nil, b.pokemons),
		b.bind(OpTypes, nil, b.types),
		b.bind(OpAttacks, nil, b.attacks),
		b.bind(OpPokemon, []string{"id", "name"}, b.pokemon),
		b.bind(OpAttack, []string{"type"}, b.attack),
		b.bind(OpType, []string{"type"}, b.typ),
		b.bind(OpGetAttack, []string{"name"}, b.getAttack),
		b.bind(OpCreateType, []string{"newType"}, b.createType),
		b.bind(OpCreateNewAttack, []string{"type", "name", "attackType", "damage"}, b.createNewAttack),
	)
	if err != nil {
		// Operations above are fixed.
		panic(err)
	}

	return table
}

// builder adapts resolver methods to Func.
type builder struct {
	resolver *resolver.Resolver
	options  options
}

func (b *builder) bind(name string, params []string, f func(c *call) (interface{}, error)) Operation {
	op := &Operation{
		Name:   name,
		Params: params,
	}
	op.Func = func(ctx context.Context, args []interface{}) (interface{}, error) {
		return f(&call{
			ctx:  ctx,
			op:   op,
			args: args,
		})
	}
	return *op
}

func (b *builder) pokemons(c *call) (interface{}, error) {
	return b.resolver.AllCreatures(), nil
}

func (b *builder) types(c *call) (interface{}, error) {
	return b.resolver.AllTypes(), nil
}

func (b *builder) attacks(c *call) (interface{}, error) {
	return b.resolver.AllAttacks(), nil
}

func (b *builder) pokemon(c *call) (interface{}, error) {
	id, err := c.stringAt(0)
	if err != nil {
		return nil, err
	}
	name, err := c.stringAt(1)
	if err != nil {
		return nil, err
	}

	var key resolver.Key
	switch {
	case b.options.legacyKeyProbe:
		key = resolver.Probe{ID: id, Name: name}
	case c.has(0):
		key = resolver.ByID(id)
	case c.has(1):
		key = resolver.ByName(name)
	}

	// Return an untyped nil for absence.
	if creature := b.resolver.CreatureByKey(key); creature != nil {
		return creature, nil
	}
	return nil, nil
}

func (b *builder) attack(c *call) (interface{}, error) {
	category, err := c.stringAt(0)
	if err != nil {
		return nil, err
	}
	if attacks := b.resolver.AttacksByCategory(category); attacks != nil {
		return attacks, nil
	}
	return nil, nil
}

func (b *builder) typ(c *call) (interface{}, error) {
	typeName, err := c.stringAt(0)
	if err != nil {
		return nil, err
	}
	return b.resolver.CreaturesByType(typeName), nil
}

func (b *builder) getAttack(c *call) (interface{}, error) {
	name, err := c.stringAt(0)
	if err != nil {
		return nil, err
	}
	detail, err := b.resolver.AttackDetail(name)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (b *builder) createType(c *call) (interface{}, error) {
	newType, err := c.stringAt(0)
	if err != nil {
		return nil, err
	}

	types := b.resolver.AddType(newType)

	zerolog.Ctx(c.ctx).Info().
		Str("type", newType).
		Int("count", len(types)).
		Msg("type added")

	return types, nil
}

func (b *builder) createNewAttack(c *call) (interface{}, error) {
	var (
		category string
		attack   catalog.Attack
		err      error
	)

	if category, err = c.stringAt(0); err != nil {
		return nil, err
	}
	if attack.Name, err = c.stringAt(1); err != nil {
		return nil, err
	}
	if attack.Type, err = c.stringAt(2); err != nil {
		return nil, err
	}
	if attack.Damage, err = c.intAt(3); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(c.ctx)

	attacks := b.resolver.AddAttack(category, attack)
	if attacks == nil {
		logger.Warn().
			Str("category", category).
			Str("attack", attack.Name).
			Msg("attack not added to unknown category")
		return nil, nil
	}

	logger.Info().
		Str("category", category).
		Str("attack", attack.Name).
		Int("count", len(attacks)).
		Msg("attack added")

	return attacks, nil
}
