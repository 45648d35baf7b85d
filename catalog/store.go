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

import (
	"sync"
)

// Store holds the catalog in memory for the lifetime of the process. Readers never block each
// other. Writers (AppendType and AppendAttack) only ever append.
//
// Every slice handed out by Store is clipped to its length (i.e., its capacity equals its length)
// so a later append always writes past the end of a view that has been returned, or into a new
// backing array. Together with the fact that entries are never edited in place, this makes every
// returned slice an immutable snapshot without copying.
type Store struct {
	mu        sync.RWMutex
	creatures []*Creature
	types     []string
	attacks   MoveSet
}

// New creates a Store from the dataset after validating it. The Store takes ownership of the
// slices in dataset; callers should not modify them afterward.
func New(dataset *Dataset) (*Store, error) {
	if err := Validate(dataset); err != nil {
		return nil, err
	}

	// Lists missing from the source are empty, not null.
	store := &Store{
		creatures: dataset.Creatures,
		types:     dataset.Types,
		attacks:   dataset.Attacks,
	}
	if store.creatures == nil {
		store.creatures = []*Creature{}
	}
	if store.types == nil {
		store.types = []string{}
	}
	if store.attacks.Fast == nil {
		store.attacks.Fast = []Attack{}
	}
	if store.attacks.Special == nil {
		store.attacks.Special = []Attack{}
	}

	return store, nil
}

// MustNew is a convenience function equivalent to New but panics on failure instead of returning
// an error.
func MustNew(dataset *Dataset) *Store {
	store, err := New(dataset)
	if err != nil {
		panic(err)
	}
	return store
}

func clip(s []string) []string {
	return s[:len(s):len(s)]
}

func clipAttacks(s []Attack) []Attack {
	return s[:len(s):len(s)]
}

// Creatures returns all creatures in insertion order.
func (s *Store) Creatures() []*Creature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creatures[:len(s.creatures):len(s.creatures)]
}

// Types returns the type registry.
func (s *Store) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clip(s.types)
}

// Attacks returns the global move-set.
func (s *Store) Attacks() MoveSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return MoveSet{
		Fast:    clipAttacks(s.attacks.Fast),
		Special: clipAttacks(s.attacks.Special),
	}
}

// AppendType adds t to the end of the type registry and returns the updated registry. Duplicates
// and empty names are kept as given.
func (s *Store) AppendType(t string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = append(s.types, t)
	return clip(s.types)
}

// AppendAttack adds attack to the end of the global list for category c and returns the updated
// list. ok is false (and nothing is appended) if c is not a known category.
func (s *Store) AppendAttack(c Category, attack Attack) (attacks []Attack, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c {
	case Fast:
		s.attacks.Fast = append(s.attacks.Fast, attack)
		return clipAttacks(s.attacks.Fast), true
	case Special:
		s.attacks.Special = append(s.attacks.Special, attack)
		return clipAttacks(s.attacks.Special), true
	}

	return nil, false
}
