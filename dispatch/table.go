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
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnknownOperation is returned by Table.Resolve when no operation is registered with the
// requested name.
var ErrUnknownOperation = errors.New("unknown operation")

// Func implements an operation. args holds argument values in the order of Operation.Params. A
// missing argument is given as nil.
type Func func(ctx context.Context, args []interface{}) (interface{}, error)

// Operation binds a name to a Func and declares the parameters it takes.
type Operation struct {
	Name   string
	Params []string
	Func   Func
}

// Table maps operation names to operations. It is immutable after creation and is safe for
// concurrent use.
type Table struct {
	operations map[string]*Operation
}

// NewTable creates a Table serving the given operations. Names must be unique and non-empty.
func NewTable(operations ...Operation) (*Table, error) {
	table := &Table{
		operations: make(map[string]*Operation, len(operations)),
	}

	for i := range operations {
		op := &operations[i]
		if len(op.Name) == 0 {
			return nil, fmt.Errorf("operation %d: must provide a name", i)
		}
		if op.Func == nil {
			return nil, fmt.Errorf("operation %q: must provide a func", op.Name)
		}
		if _, exists := table.operations[op.Name]; exists {
			return nil, fmt.Errorf("operation %q: registered more than once", op.Name)
		}
		table.operations[op.Name] = op
	}

	return table, nil
}

// Lookup returns the operation registered under name.
func (t *Table) Lookup(name string) (op *Operation, ok bool) {
	op, ok = t.operations[name]
	return
}

// Operations returns the names of all registered operations in lexical order.
func (t *Table) Operations() []string {
	names := make([]string, 0, len(t.operations))
	for name := range t.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve runs the operation registered under name. Values in args are mapped onto the declared
// parameters of the operation by name and passed positionally. The result and the error from the
// operation are returned unchanged. An error matching ErrUnknownOperation is returned if name is
// not registered.
func (t *Table) Resolve(ctx context.Context, name string, args Args) (interface{}, error) {
	logger := zerolog.Ctx(ctx)

	op, ok := t.operations[name]
	if !ok {
		// Unknown names are client-controlled and never become label values.
		operationsTotal.WithLabelValues("", statusUnknown).Inc()
		logger.Warn().Str("operation", name).Msg("unknown operation")
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}

	if args == nil {
		args = noArgs{}
	}

	values := make([]interface{}, len(op.Params))
	for i, param := range op.Params {
		values[i], _ = args.Lookup(param)
	}

	start := time.Now()
	result, err := op.Func(ctx, values)
	duration := time.Since(start)

	status := statusOK
	if err != nil {
		status = statusError
	} else if isAbsent(result) {
		status = statusAbsent
	}

	operationsTotal.WithLabelValues(name, status).Inc()
	operationDuration.WithLabelValues(name).Observe(duration.Seconds())

	if err != nil {
		logger.Warn().
			Err(err).
			Str("operation", name).
			Dur("duration", duration).
			Msg("operation failed")
	} else {
		logger.Debug().
			Str("operation", name).
			Str("status", status).
			Dur("duration", duration).
			Msg("operation resolved")
	}

	return result, err
}

// isAbsent returns true if v is nil or a nil pointer or slice.
func isAbsent(v interface{}) bool {
	if v == nil {
		return true
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return value.IsNil()
	}
	return false
}
