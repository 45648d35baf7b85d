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
	"fmt"
	"math"
)

// Args is a flat bag of named argument values that comes with a request. graphql.ArgumentValues
// satisfies the interface so field arguments can be forwarded from the GraphQL executor as is.
type Args interface {
	// Lookup returns the value of the named argument. ok is false if the argument is not given.
	Lookup(name string) (value interface{}, ok bool)
}

// ArgMap implements Args with a map.
type ArgMap map[string]interface{}

// ArgMap implements Args.
var _ Args = ArgMap(nil)

// Lookup implements Args.
func (m ArgMap) Lookup(name string) (interface{}, bool) {
	value, ok := m[name]
	return value, ok
}

// noArgs is used when a nil Args is given to Resolve.
type noArgs struct{}

func (noArgs) Lookup(name string) (interface{}, bool) {
	return nil, false
}

// ArgumentError reports an argument value that cannot be used by the operation.
type ArgumentError struct {
	Operation string
	Argument  string
	Expected  string
	Value     interface{}
}

// Error implements Go's error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument %q expects %s but got %T", e.Operation, e.Argument, e.Expected, e.Value)
}

// call carries the positional arguments of one operation invocation and converts them to the types
// expected by resolvers.
type call struct {
	ctx  context.Context
	op   *Operation
	args []interface{}
}

// has returns true if the i-th argument is given with a non-null value.
func (c *call) has(i int) bool {
	return c.args[i] != nil
}

// stringAt returns the i-th argument as a string. Null is converted to "".
func (c *call) stringAt(i int) (string, error) {
	switch value := c.args[i].(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	}
	return "", c.invalid(i, "a string")
}

// intAt returns the i-th argument as an int. Null is converted to 0.
func (c *call) intAt(i int) (int, error) {
	switch value := c.args[i].(type) {
	case nil:
		return 0, nil
	case int:
		return value, nil
	case int32:
		return int(value), nil
	case int64:
		if value >= math.MinInt32 && value <= math.MaxInt32 {
			return int(value), nil
		}
	case float64:
		// Numbers decoded from JSON are float64.
		if value == math.Trunc(value) && value >= math.MinInt32 && value <= math.MaxInt32 {
			return int(value), nil
		}
	}
	return 0, c.invalid(i, "an integer")
}

func (c *call) invalid(i int, expected string) error {
	return &ArgumentError{
		Operation: c.op.Name,
		Argument:  c.op.Params[i],
		Expected:  expected,
		Value:     c.args[i],
	}
}
