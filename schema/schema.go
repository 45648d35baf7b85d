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
	"context"
	"errors"

	"github.com/botobag/pokedex/dispatch"
	"github.com/botobag/pokedex/resolver"

	"github.com/botobag/artemis/graphql"
	"github.com/botobag/artemis/graphql/executor"
)

// DefaultFieldResolver resolves every non-root field from the graphql tags of the records returned
// by the dispatch table. It must be given to executor.Prepare (or the HTTP handler) when executing
// operations against a schema created by New.
var DefaultFieldResolver = executor.NewDefaultFieldResolver()

// Error codes attached to the "extensions" of errors raised by root fields
const (
	CodeAttackNotFound   = "ATTACK_NOT_FOUND"
	CodeBadArgument      = "BAD_ARGUMENT"
	CodeUnknownOperation = "UNKNOWN_OPERATION"
)

// New creates the schema whose root query and mutation fields are served by table. The field name
// is used as operation name and the field arguments are passed to the operation as is.
func New(table *dispatch.Table) (graphql.Schema, error) {
	resolve := rootFieldResolver(table)

	query, err := graphql.NewObject(&graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			dispatch.OpPokemons: {
				Type:     graphql.ListOf(pokemonType),
				Resolver: resolve,
			},
			dispatch.OpTypes: {
				Type:     graphql.ListOfType(graphql.String()),
				Resolver: resolve,
			},
			dispatch.OpAttacks: {
				Type:     attacksType,
				Resolver: resolve,
			},
			dispatch.OpPokemon: {
				Type: pokemonType,
				Args: graphql.ArgumentConfigMap{
					"name": {
						Type: graphql.T(graphql.String()),
					},
					"id": {
						Type: graphql.T(graphql.String()),
					},
				},
				Resolver: resolve,
			},
			dispatch.OpAttack: {
				Type: graphql.ListOf(attributesOfAttackType),
				Args: graphql.ArgumentConfigMap{
					"type": {
						Description: `Category of attacks: either "fast" or "special"`,
						Type:        graphql.T(graphql.String()),
					},
				},
				Resolver: resolve,
			},
			dispatch.OpType: {
				Type: dataType,
				Args: graphql.ArgumentConfigMap{
					"type": {
						Type: graphql.T(graphql.String()),
					},
				},
				Resolver: resolve,
			},
			dispatch.OpGetAttack: {
				Type: getAttackType,
				Args: graphql.ArgumentConfigMap{
					"name": {
						Type: graphql.T(graphql.String()),
					},
				},
				Resolver: resolve,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	mutation, err := graphql.NewObject(&graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			dispatch.OpCreateType: {
				Type: graphql.ListOfType(graphql.String()),
				Args: graphql.ArgumentConfigMap{
					"newType": {
						Type: graphql.NonNullOfType(graphql.String()),
					},
				},
				Resolver: resolve,
			},
			dispatch.OpCreateNewAttack: {
				Type: graphql.ListOf(attributesOfAttackType),
				Args: graphql.ArgumentConfigMap{
					"type": {
						Description: `Category of the attack: either "fast" or "special"`,
						Type:        graphql.NonNullOfType(graphql.String()),
					},
					"name": {
						Type: graphql.NonNullOfType(graphql.String()),
					},
					"attackType": {
						Description: "Element type of the attack",
						Type:        graphql.T(graphql.String()),
					},
					"damage": {
						Type: graphql.T(graphql.Int()),
					},
				},
				Resolver: resolve,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return graphql.NewSchema(&graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// MustNew is a convenience function equivalent to New but panics on failure instead of returning
// an error.
func MustNew(table *dispatch.Table) graphql.Schema {
	schema, err := New(table)
	if err != nil {
		panic(err)
	}
	return schema
}

func rootFieldResolver(table *dispatch.Table) graphql.FieldResolver {
	return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		result, err := table.Resolve(ctx, info.Field().Name(), info.Args())
		if err != nil {
			return nil, wrapError(err)
		}
		return result, nil
	})
}

// wrapError turns an error from the dispatch table into a graphql.Error that keeps err as the
// underlying error. The executor fills in locations and path.
func wrapError(err error) error {
	var (
		code        string
		argumentErr *dispatch.ArgumentError
	)
	switch {
	case errors.Is(err, resolver.ErrAttackNotFound):
		code = CodeAttackNotFound
	case errors.As(err, &argumentErr):
		code = CodeBadArgument
	case errors.Is(err, dispatch.ErrUnknownOperation):
		code = CodeUnknownOperation
	default:
		return graphql.NewError(err.Error(), err, graphql.ErrKindExecution)
	}

	return graphql.NewError(err.Error(), err, graphql.ErrKindExecution, graphql.ErrorExtensions{
		"code": code,
	})
}
