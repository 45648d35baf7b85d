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

// Key selects a single creature for CreatureByKey. The concrete variants are ByID, ByName and
// Probe.
type Key interface {
	matches(creature *catalog.Creature) bool
}

// ByID selects the creature whose id equals the given string.
type ByID string

func (id ByID) matches(creature *catalog.Creature) bool {
	return creature.ID == string(id)
}

// ByName selects the creature whose name equals the given string.
type ByName string

func (name ByName) matches(creature *catalog.Creature) bool {
	return creature.Name == string(name)
}

// Probe decides between id and name by inspecting the shape of ID: if ID starts with an integer
// (after optional leading whitespace and sign, the way parseInt-style coercion works), the creature
// is matched by id. Otherwise it is matched by Name, even when Name is empty. That means a
// non-numeric ID without a Name never matches anything.
//
// Probe exists for clients relying on the legacy selection rule. New callers should use ByID or
// ByName to state their intent.
type Probe struct {
	ID   string
	Name string
}

func (p Probe) matches(creature *catalog.Creature) bool {
	if hasIntegerPrefix(p.ID) {
		return creature.ID == p.ID
	}
	return creature.Name == p.Name
}

// hasIntegerPrefix returns true if s, with leading white spaces skipped, starts with an optional
// sign followed by at least one decimal digit.
func hasIntegerPrefix(s string) bool {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	return i < len(s) && '0' <= s[i] && s[i] <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
