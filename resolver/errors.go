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
	"errors"
	"fmt"
)

// ErrAttackNotFound is the underlying cause of a PreconditionError.
var ErrAttackNotFound = errors.New("attack is not defined in the catalog")

// PreconditionError is returned by AttackDetail when the requested attack is not defined in the
// global move-set. It unwraps to ErrAttackNotFound.
type PreconditionError struct {
	// Name of the requested attack
	Attack string
}

// Error implements Go's error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("attack %q is not defined in the catalog", e.Attack)
}

// Unwrap returns ErrAttackNotFound.
func (e *PreconditionError) Unwrap() error {
	return ErrAttackNotFound
}
