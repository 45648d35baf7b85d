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

package catalog_test

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/botobag/pokedex/catalog"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Load", func() {
	It("decodes the embedded dataset", func() {
		dataset, err := catalog.Default()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(catalog.Validate(dataset)).Should(Succeed())

		Expect(dataset.Creatures).ShouldNot(BeEmpty())
		bulbasaur := dataset.Creatures[0]
		Expect(bulbasaur.ID).Should(Equal("001"))
		Expect(bulbasaur.Name).Should(Equal("Bulbasaur"))
		Expect(bulbasaur.Types).Should(Equal([]string{"Grass", "Poison"}))
		Expect(bulbasaur.Weight).Should(Equal(&catalog.Range{Minimum: "6.04kg", Maximum: "7.76kg"}))
		Expect(bulbasaur.EvolutionRequirements).Should(Equal(&catalog.EvolutionRequirements{
			Amount: 25,
			Name:   "Bulbasaur candies",
		}))
		Expect(bulbasaur.Evolutions).Should(ContainElement(catalog.Evolution{ID: 2, Name: "Ivysaur"}))
		Expect(bulbasaur.FleeRate).Should(BeNumerically("~", 0.1))

		Expect(dataset.Attacks.Fast).ShouldNot(BeEmpty())
		Expect(dataset.Attacks.Special).ShouldNot(BeEmpty())
		Expect(dataset.Types).Should(ContainElement("Fire"))
	})

	It("returns an independent copy on every call", func() {
		first, err := catalog.Default()
		Expect(err).ShouldNot(HaveOccurred())
		first.Types = append(first.Types[:0], "Mutated")

		second, err := catalog.Default()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(second.Types[0]).ShouldNot(Equal("Mutated"))
	})

	It("decodes a dataset from a reader", func() {
		dataset, err := catalog.Decode(strings.NewReader(`{
			"pokemon": [{
				"id": "133",
				"name": "Eevee",
				"classification": "Evolution Pokémon",
				"types": ["Normal"],
				"fleeRate": 0.1,
				"maxCP": 1077,
				"maxHP": 1204,
				"attacks": {
					"fast": [{"name": "Tackle", "type": "Normal", "damage": 12}],
					"special": []
				}
			}],
			"attacks": {"fast": [{"name": "Tackle", "type": "Normal", "damage": 12}], "special": []},
			"types": ["Normal"]
		}`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(dataset.Creatures).Should(HaveLen(1))

		eevee := dataset.Creatures[0]
		Expect(eevee.EvolutionRequirements).Should(BeNil())
		Expect(eevee.Evolutions).Should(BeEmpty())
		Expect(eevee.MaxCP).Should(Equal(1077))
		Expect(eevee.Attacks.Fast[0].Damage).Should(Equal(12))
	})

	It("reports malformed documents", func() {
		_, err := catalog.Decode(strings.NewReader(`{"pokemon": [`))
		Expect(err).Should(MatchError(HavePrefix("decoding dataset:")))
	})

	It("loads a dataset from a file", func() {
		dir, err := os.MkdirTemp("", "catalog")
		Expect(err).ShouldNot(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "data.json")
		Expect(os.WriteFile(path, []byte(`{"pokemon": [], "attacks": {"fast": [], "special": []}, "types": ["Ice"]}`), 0600)).Should(Succeed())

		dataset, err := catalog.Load(path)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(dataset.Types).Should(Equal([]string{"Ice"}))

		_, err = catalog.Load(filepath.Join(dir, "missing.json"))
		Expect(err).Should(MatchError(HavePrefix("opening dataset:")))
	})

	It("falls back to the embedded dataset when no path is given", func() {
		dataset, err := catalog.Load("")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(dataset.Creatures).ShouldNot(BeEmpty())
	})
})

var _ = Describe("Validate", func() {
	It("accepts a well-formed dataset", func() {
		Expect(catalog.Validate(newTestDataset())).Should(Succeed())
	})

	It("reports every violation", func() {
		dataset := newTestDataset()
		dataset.Creatures = append(dataset.Creatures,
			&catalog.Creature{ID: "001", Name: "Bulbasaur", Classification: "Seed Pokémon"},
			&catalog.Creature{ID: "150"},
			nil,
		)

		err := catalog.Validate(dataset)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("5 errors"))
		Expect(err.Error()).Should(ContainSubstring(`pokemon 2: name "Bulbasaur" already used by pokemon 0`))
		Expect(err.Error()).Should(ContainSubstring(`pokemon 2: id "001" already used by pokemon 0`))
		Expect(err.Error()).Should(ContainSubstring("pokemon 3: name is required"))
		Expect(err.Error()).Should(ContainSubstring("pokemon 3: classification is required"))
		Expect(err.Error()).Should(ContainSubstring("pokemon 4: missing entry"))
	})
})
