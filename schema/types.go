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

package schema

import (
	"github.com/botobag/artemis/graphql"
)

// Object types below are resolved by the default field resolver from the records in package
// catalog and resolver. Field names match the graphql struct tags on those records.

var attributesOfAttackType = &graphql.ObjectConfig{
	Name:        "attributesOfAttack",
	Description: "A move with its element type and damage.",
	Fields: graphql.Fields{
		"name": {
			Type: graphql.T(graphql.String()),
		},
		"type": {
			Type: graphql.T(graphql.String()),
		},
		"damage": {
			Type: graphql.T(graphql.Int()),
		},
	},
}

// moveSetFields is shared by "Attacks" and "pokeAttacks" which only differ in name.
func moveSetFields() graphql.Fields {
	return graphql.Fields{
		"fast": {
			Type: graphql.ListOf(attributesOfAttackType),
		},
		"special": {
			Type: graphql.ListOf(attributesOfAttackType),
		},
	}
}

var attacksType = &graphql.ObjectConfig{
	Name:        "Attacks",
	Description: "Every attack defined in the catalog, by category.",
	Fields:      moveSetFields(),
}

var pokeAttacksType = &graphql.ObjectConfig{
	Name:        "pokeAttacks",
	Description: "Attacks that a Pokémon can use, by category.",
	Fields:      moveSetFields(),
}

// rangeFields is shared by "pokeWeight" and "pokeHeight".
func rangeFields() graphql.Fields {
	return graphql.Fields{
		"minimum": {
			Type: graphql.T(graphql.String()),
		},
		"maximum": {
			Type: graphql.T(graphql.String()),
		},
	}
}

var pokeWeightType = &graphql.ObjectConfig{
	Name:   "pokeWeight",
	Fields: rangeFields(),
}

var pokeHeightType = &graphql.ObjectConfig{
	Name:   "pokeHeight",
	Fields: rangeFields(),
}

var pokeEvolutionRequirementsType = &graphql.ObjectConfig{
	Name: "pokeEvolutionRequirements",
	Fields: graphql.Fields{
		"amount": {
			Type: graphql.T(graphql.Int()),
		},
		"name": {
			Type: graphql.T(graphql.String()),
		},
	},
}

var pokeEvolutionsType = &graphql.ObjectConfig{
	Name: "pokeEvolutions",
	Fields: graphql.Fields{
		"id": {
			Description: "Pokédex number of the evolved form. It is not the id of a Pokemon.",
			Type:        graphql.T(graphql.Int()),
		},
		"name": {
			Type: graphql.T(graphql.String()),
		},
	},
}

var pokemonType = &graphql.ObjectConfig{
	Name:        "Pokemon",
	Description: "An entry in the catalog.",
	Fields: graphql.Fields{
		"id": {
			Type: graphql.T(graphql.String()),
		},
		"name": {
			Type: graphql.NonNullOfType(graphql.String()),
		},
		"classification": {
			Type: graphql.NonNullOfType(graphql.String()),
		},
		"types": {
			Type: graphql.ListOfType(graphql.String()),
		},
		"resistant": {
			Type: graphql.ListOfType(graphql.String()),
		},
		"weaknesses": {
			Type: graphql.ListOfType(graphql.String()),
		},
		"weight": {
			Type: pokeWeightType,
		},
		"height": {
			Type: pokeHeightType,
		},
		"fleeRate": {
			Type: graphql.T(graphql.Float()),
		},
		"evolutionRequirements": {
			Type: pokeEvolutionRequirementsType,
		},
		"evolutions": {
			Type: graphql.ListOf(pokeEvolutionsType),
		},
		"maxCP": {
			Type: graphql.T(graphql.Int()),
		},
		"maxHP": {
			Type: graphql.T(graphql.Int()),
		},
		"attacks": {
			Type: pokeAttacksType,
		},
	},
}

// dataType is the result of Type(type). Only "Pokemon" is ever populated.
var dataType = &graphql.ObjectConfig{
	Name: "data",
	Fields: graphql.Fields{
		"Pokemon": {
			Type: graphql.ListOf(pokemonType),
		},
		"attacks": {
			Type: attacksType,
		},
		"types": {
			Type: graphql.ListOfType(graphql.String()),
		},
	},
}

var getAttackType = &graphql.ObjectConfig{
	Name:        "GetAttack",
	Description: "An attack joined with every Pokémon that can use it.",
	Fields: graphql.Fields{
		"name": {
			Type: graphql.T(graphql.String()),
		},
		"type": {
			Type: graphql.T(graphql.String()),
		},
		"damage": {
			Type: graphql.T(graphql.Int()),
		},
		"Pokemon": {
			Type: graphql.ListOf(pokemonType),
		},
	},
}
