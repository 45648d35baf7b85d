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
	"math"

	"github.com/botobag/artemis/graphql"
	"github.com/botobag/artemis/graphql/executor"
	"github.com/botobag/artemis/graphql/parser"
	"github.com/botobag/artemis/graphql/token"
)

// Request contains a GraphQL document to be executed by Execute.
type Request struct {
	Query         string
	OperationName string
	Variables     map[string]interface{}
}

// Prepare parses and validates query against schema. The returned operation resolves non-root
// fields with DefaultFieldResolver.
func Prepare(schema graphql.Schema, query string, operationName string) (*executor.PreparedOperation, graphql.Errors) {
	document, err := parser.Parse(token.NewSource(query))
	if err != nil {
		return nil, graphql.ErrorsOf(err.Error(), graphql.ErrKindSyntax, err)
	}

	return executor.Prepare(
		schema,
		document,
		executor.OperationName(operationName),
		executor.DefaultFieldResolver(DefaultFieldResolver),
	)
}

// Execute runs req against schema. Failures in parsing and validation are reported in the Errors
// of the returned result in the same way as execution errors.
func Execute(ctx context.Context, schema graphql.Schema, req *Request) *executor.ExecutionResult {
	operation, errs := Prepare(schema, req.Query, req.OperationName)
	if errs.HaveOccurred() {
		return &executor.ExecutionResult{
			Errors: errs,
		}
	}

	return operation.Execute(ctx, executor.VariableValues(NormalizeVariables(req.Variables)))
}

// NormalizeVariables prepares variable values decoded from JSON for input coercion. JSON decoders
// produce float64 for every number, which the Int coercer rejects. Integral numbers within the
// range of Int are converted to int. The Float coercer accepts int so Float variables are not
// affected. Nested lists and objects are converted in place.
func NormalizeVariables(variables map[string]interface{}) map[string]interface{} {
	for name, value := range variables {
		variables[name] = normalizeValue(value)
	}
	return variables
}

func normalizeValue(value interface{}) interface{} {
	switch value := value.(type) {
	case float64:
		if value == math.Trunc(value) && value >= math.MinInt32 && value <= math.MaxInt32 {
			return int(value)
		}
	case []interface{}:
		for i := range value {
			value[i] = normalizeValue(value[i])
		}
	case map[string]interface{}:
		return NormalizeVariables(value)
	}
	return value
}
