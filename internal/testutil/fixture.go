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

package testutil

import (
	"github.com/botobag/pokedex/catalog"
)

// Attacks used by Dataset
var (
	Tackle     = catalog.Attack{Name: "Tackle", Type: "Normal", Damage: 12}
	VineWhip   = catalog.Attack{Name: "Vine Whip", Type: "Grass", Damage: 7}
	Ember      = catalog.Attack{Name: "Ember", Type: "Fire", Damage: 10}
	SeedBomb   = catalog.Attack{Name: "Seed Bomb", Type: "Grass", Damage: 40}
	SludgeBomb = catalog.Attack{Name: "Sludge Bomb", Type: "Poison", Damage: 55}
	FireBlast  = catalog.Attack{Name: "Fire Blast", Type: "Fire", Damage: 100}
	HyperBeam  = catalog.Attack{Name: "Hyper Beam", Type: "Normal", Damage: 120}
)

// Dataset returns a small catalog for tests. Every call returns a fresh copy which can be mutated
// freely.
//
//   - Bulbasaur ("001"): Grass, Poison; Tackle, Vine Whip / Seed Bomb, Sludge Bomb
//   - Ivysaur ("002"): Grass, Poison; Vine Whip / Sludge Bomb
//   - Charmander ("004"): Fire; Ember, Scratch / Fire Blast
//   - MissingNo. ("MN"): Bird, Normal; no attacks
//
// Hyper Beam is defined globally but used by nobody. Scratch is used by Charmander but not defined
// globally. The type registry holds "Grass" and "Poison" only.
func Dataset() *catalog.Dataset {
	return &catalog.Dataset{
		Creatures: []*catalog.Creature{
			{
				ID:             "001",
				Name:           "Bulbasaur",
				Classification: "Seed Pokémon",
				Types:          []string{"Grass", "Poison"},
				Resistant:      []string{"Water", "Electric", "Grass", "Fighting", "Fairy"},
				Weaknesses:     []string{"Fire", "Ice", "Flying", "Psychic"},
				Weight:         &catalog.Range{Minimum: "6.04kg", Maximum: "7.76kg"},
				Height:         &catalog.Range{Minimum: "0.61m", Maximum: "0.79m"},
				FleeRate:       0.1,
				EvolutionRequirements: &catalog.EvolutionRequirements{
					Amount: 25,
					Name:   "Bulbasaur candies",
				},
				Evolutions: []catalog.Evolution{
					{ID: 2, Name: "Ivysaur"},
				},
				MaxCP: 951,
				MaxHP: 1071,
				Attacks: &catalog.MoveSet{
					Fast:    []catalog.Attack{Tackle, VineWhip},
					Special: []catalog.Attack{SeedBomb, SludgeBomb},
				},
			},
			{
				ID:             "002",
				Name:           "Ivysaur",
				Classification: "Seed Pokémon",
				Types:          []string{"Grass", "Poison"},
				FleeRate:       0.07,
				MaxCP:          1483,
				MaxHP:          1632,
				Attacks: &catalog.MoveSet{
					Fast:    []catalog.Attack{VineWhip},
					Special: []catalog.Attack{SludgeBomb},
				},
			},
			{
				ID:             "004",
				Name:           "Charmander",
				Classification: "Lizard Pokémon",
				Types:          []string{"Fire"},
				FleeRate:       0.1,
				MaxCP:          841,
				MaxHP:          955,
				Attacks: &catalog.MoveSet{
					Fast:    []catalog.Attack{Ember, {Name: "Scratch", Type: "Normal", Damage: 6}},
					Special: []catalog.Attack{FireBlast},
				},
			},
			{
				ID:             "MN",
				Name:           "MissingNo.",
				Classification: "??? Pokémon",
				Types:          []string{"Bird", "Normal"},
			},
		},
		Attacks: catalog.MoveSet{
			Fast:    []catalog.Attack{Tackle, VineWhip, Ember},
			Special: []catalog.Attack{SeedBomb, SludgeBomb, FireBlast, HyperBeam},
		},
		Types: []string{"Grass", "Poison"},
	}
}

// Store builds a catalog.Store from Dataset.
func Store() *catalog.Store {
	return catalog.MustNew(Dataset())
}
