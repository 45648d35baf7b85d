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
	"bytes"
	_ "embed" // for go:embed
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pixil98/go-errors"
)

//go:embed data/pokemon.json
var defaultDataset []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode reads a dataset in JSON from r. The document has the shape
//
//	{
//		"pokemon": [ { "id": "001", "name": "Bulbasaur", ... } ],
//		"attacks": { "fast": [ ... ], "special": [ ... ] },
//		"types": [ "Grass", ... ]
//	}
//
// Decode doesn't validate the content. See Validate.
func Decode(r io.Reader) (*Dataset, error) {
	var dataset Dataset
	if err := json.NewDecoder(r).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return &dataset, nil
}

// LoadFile decodes the dataset stored at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Default decodes the dataset embedded into the binary. Every call returns a fresh copy.
func Default() (*Dataset, error) {
	return Decode(bytes.NewReader(defaultDataset))
}

// Load decodes the dataset at path, or the embedded one if path is empty.
func Load(path string) (*Dataset, error) {
	if len(path) == 0 {
		return Default()
	}
	return LoadFile(path)
}

// Validate checks the invariants a dataset must hold before it can back a Store:
//
//   - every creature has a non-empty name and classification;
//   - creature ids are unique;
//   - creature names are unique.
//
// All violations are reported in the returned error.
func Validate(dataset *Dataset) error {
	el := errors.NewErrorList()

	var (
		ids   = make(map[string]int, len(dataset.Creatures))
		names = make(map[string]int, len(dataset.Creatures))
	)

	for i, creature := range dataset.Creatures {
		if creature == nil {
			el.Add(fmt.Errorf("pokemon %d: missing entry", i))
			continue
		}

		if len(creature.Name) == 0 {
			el.Add(fmt.Errorf("pokemon %d: name is required", i))
		} else if prev, exists := names[creature.Name]; exists {
			el.Add(fmt.Errorf("pokemon %d: name %q already used by pokemon %d", i, creature.Name, prev))
		} else {
			names[creature.Name] = i
		}

		if len(creature.Classification) == 0 {
			el.Add(fmt.Errorf("pokemon %d: classification is required", i))
		}

		if prev, exists := ids[creature.ID]; exists {
			el.Add(fmt.Errorf("pokemon %d: id %q already used by pokemon %d", i, creature.ID, prev))
		} else {
			ids[creature.ID] = i
		}
	}

	return el.Err()
}
