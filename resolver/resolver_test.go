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

package resolver_test

import (
	"errors"

	"github.com/botobag/pokedex/catalog"
	"github.com/botobag/pokedex/internal/testutil"
	"github.com/botobag/pokedex/resolver"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func names(creatures []*catalog.Creature) []string {
	result := make([]string, len(creatures))
	for i, creature := range creatures {
		result[i] = creature.Name
	}
	return result
}

var _ = Describe("Resolver", func() {
	var (
		store *catalog.Store
		r     *resolver.Resolver
	)

	BeforeEach(func() {
		store = testutil.Store()
		r = resolver.New(store)
	})

	It("exposes the store it serves", func() {
		Expect(r.Store()).Should(BeIdenticalTo(store))
	})

	Describe("lookups", func() {
		It("returns all creatures in catalog order", func() {
			Expect(names(r.AllCreatures())).Should(Equal([]string{
				"Bulbasaur", "Ivysaur", "Charmander", "MissingNo.",
			}))
		})

		It("returns all types", func() {
			Expect(r.AllTypes()).Should(Equal([]string{"Grass", "Poison"}))
		})

		It("returns the global move-set", func() {
			attacks := r.AllAttacks()
			Expect(attacks.Fast).Should(Equal([]catalog.Attack{
				testutil.Tackle, testutil.VineWhip, testutil.Ember,
			}))
			Expect(attacks.Special).Should(HaveLen(4))
		})
	})

	Describe("CreatureByKey", func() {
		It("finds a creature by id", func() {
			creature := r.CreatureByKey(resolver.ByID("001"))
			Expect(creature).ShouldNot(BeNil())
			Expect(creature.Name).Should(Equal("Bulbasaur"))
		})

		It("finds a creature by a non-numeric id", func() {
			Expect(r.CreatureByKey(resolver.ByID("MN")).Name).Should(Equal("MissingNo."))
		})

		It("finds a creature by name", func() {
			creature := r.CreatureByKey(resolver.ByName("Bulbasaur"))
			Expect(creature).Should(BeIdenticalTo(r.CreatureByKey(resolver.ByID("001"))))
		})

		It("returns nil when nothing matches", func() {
			Expect(r.CreatureByKey(resolver.ByID("151"))).Should(BeNil())
			Expect(r.CreatureByKey(resolver.ByName("Mew"))).Should(BeNil())
			Expect(r.CreatureByKey(nil)).Should(BeNil())
		})

		It("finds every creature by its own name and numeric id", func() {
			for _, creature := range r.AllCreatures() {
				Expect(r.CreatureByKey(resolver.ByName(creature.Name))).Should(BeIdenticalTo(creature))
				Expect(r.CreatureByKey(resolver.Probe{Name: creature.Name})).Should(BeIdenticalTo(creature))
				if creature.ID != "MN" {
					Expect(r.CreatureByKey(resolver.Probe{ID: creature.ID})).Should(BeIdenticalTo(creature))
				}
			}
		})

		Context("with a legacy probe", func() {
			It("matches by id when the id looks numeric", func() {
				Expect(r.CreatureByKey(resolver.Probe{ID: "004", Name: "Bulbasaur"}).Name).
					Should(Equal("Charmander"))
				Expect(r.CreatureByKey(resolver.Probe{ID: " 004"})).Should(BeNil())
				Expect(r.CreatureByKey(resolver.Probe{ID: "4"})).Should(BeNil())
			})

			It("falls back to the name when the id doesn't look numeric", func() {
				Expect(r.CreatureByKey(resolver.Probe{ID: "MN"})).Should(BeNil())
				Expect(r.CreatureByKey(resolver.Probe{ID: "MN", Name: "Ivysaur"}).Name).
					Should(Equal("Ivysaur"))
			})
		})
	})

	Describe("AttacksByCategory", func() {
		It("returns the requested list", func() {
			Expect(r.AttacksByCategory("fast")).Should(Equal(r.AllAttacks().Fast))
			Expect(r.AttacksByCategory("special")).Should(Equal(r.AllAttacks().Special))
		})

		It("returns nil for unknown categories", func() {
			Expect(r.AttacksByCategory("unknown")).Should(BeNil())
			Expect(r.AttacksByCategory("")).Should(BeNil())
		})
	})

	Describe("CreaturesByType", func() {
		It("returns creatures of the type in catalog order", func() {
			members := r.CreaturesByType("Poison")
			Expect(names(members.Creatures)).Should(Equal([]string{"Bulbasaur", "Ivysaur"}))
			Expect(members.Attacks).Should(BeNil())
			Expect(members.Types).Should(BeNil())
		})

		It("matches exactly the creatures carrying the type", func() {
			for _, typeName := range []string{"Grass", "Fire", "Normal", "Bird"} {
				var expected []string
				for _, creature := range r.AllCreatures() {
					if creature.HasType(typeName) {
						expected = append(expected, creature.Name)
					}
				}
				Expect(names(r.CreaturesByType(typeName).Creatures)).Should(Equal(expected))
			}
		})

		It("returns an empty list for unknown types", func() {
			members := r.CreaturesByType("nonexistent-type")
			Expect(members.Creatures).ShouldNot(BeNil())
			Expect(members.Creatures).Should(BeEmpty())
		})
	})

	Describe("AttackDetail", func() {
		It("joins the attack with the creatures using it", func() {
			detail, err := r.AttackDetail("Sludge Bomb")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(detail.Name).Should(Equal("Sludge Bomb"))
			Expect(detail.Type).Should(Equal("Poison"))
			Expect(detail.Damage).Should(Equal(55))
			Expect(names(detail.Creatures)).Should(Equal([]string{"Bulbasaur", "Ivysaur"}))
		})

		It("looks through both fast and special attacks of creatures", func() {
			detail, err := r.AttackDetail("Vine Whip")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(names(detail.Creatures)).Should(Equal([]string{"Bulbasaur", "Ivysaur"}))

			detail, err = r.AttackDetail("Fire Blast")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(names(detail.Creatures)).Should(Equal([]string{"Charmander"}))
		})

		It("copies attributes from the global definition", func() {
			detail, err := r.AttackDetail("Hyper Beam")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(detail.Type).Should(Equal("Normal"))
			Expect(detail.Damage).Should(Equal(120))
			Expect(detail.Creatures).ShouldNot(BeNil())
			Expect(detail.Creatures).Should(BeEmpty())
		})

		It("fails for attacks that are not defined globally", func() {
			detail, err := r.AttackDetail("Scratch")
			Expect(detail).Should(BeNil())
			Expect(err).Should(MatchError(`attack "Scratch" is not defined in the catalog`))
			Expect(errors.Is(err, resolver.ErrAttackNotFound)).Should(BeTrue())

			var precondition *resolver.PreconditionError
			Expect(errors.As(err, &precondition)).Should(BeTrue())
			Expect(precondition.Attack).Should(Equal("Scratch"))
		})

		It("sees attacks added at runtime", func() {
			r.AddAttack("special", catalog.Attack{Name: "Scratch", Type: "Normal", Damage: 6})
			detail, err := r.AttackDetail("Scratch")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(names(detail.Creatures)).Should(Equal([]string{"Charmander"}))
		})
	})

	Describe("mutations", func() {
		It("appends types and returns the registry", func() {
			Expect(r.AddType("Fire")).Should(Equal([]string{"Grass", "Poison", "Fire"}))
			Expect(r.AllTypes()).Should(Equal([]string{"Grass", "Poison", "Fire"}))
		})

		It("keeps duplicated types", func() {
			previous := r.AllTypes()
			Expect(r.AddType("Grass")).Should(Equal(append(previous, "Grass")))
		})

		It("appends attacks to the given category", func() {
			splash := catalog.Attack{Name: "Splash", Type: "Water", Damage: 0}
			fast := r.AddAttack("fast", splash)
			Expect(fast).Should(HaveLen(4))
			Expect(fast[3]).Should(Equal(splash))
			Expect(r.AttacksByCategory("fast")).Should(Equal(fast))
			Expect(r.AttacksByCategory("special")).Should(HaveLen(4))
		})

		It("doesn't check attack names for uniqueness", func() {
			Expect(r.AddAttack("fast", testutil.Tackle)).Should(HaveLen(4))
			detail, err := r.AttackDetail("Tackle")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(detail.Damage).Should(Equal(12))
		})

		It("ignores attacks of unknown categories", func() {
			Expect(r.AddAttack("charged", testutil.HyperBeam)).Should(BeNil())
			Expect(r.AllAttacks().Fast).Should(HaveLen(3))
			Expect(r.AllAttacks().Special).Should(HaveLen(4))
		})
	})
})
