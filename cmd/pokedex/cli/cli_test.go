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

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/botobag/pokedex/internal/version"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// run executes the root command with args and returns what it printed to stdout.
func run(stdin string, args ...string) (string, error) {
	queryText, queryOperation, queryVariables, queryVars = "", "", "", nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

var _ = Describe("CLI", func() {
	Describe("query", func() {
		It("executes the query given by flag", func() {
			out, err := run("", "query", "-q", `{ Pokemon(name: "Pikachu") { id types } }`)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(MatchJSON(`{
				"data": { "Pokemon": { "id": "025", "types": ["Electric"] } }
			}`))
		})

		It("reads the query from a file", func() {
			dir, err := os.MkdirTemp("", "pokedex-cli")
			Expect(err).ShouldNot(HaveOccurred())
			defer os.RemoveAll(dir)

			path := filepath.Join(dir, "query.graphql")
			Expect(os.WriteFile(path, []byte(`{ Pokemon(id: "004") { name } }`), 0600)).Should(Succeed())

			out, err := run("", "query", path)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(MatchJSON(`{ "data": { "Pokemon": { "name": "Charmander" } } }`))
		})

		It("reads the query from standard input", func() {
			out, err := run(`{ GetAttack(name: "Ember") { damage Pokemon { name } } }`, "query", "-")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(MatchJSON(`{
				"data": {
					"GetAttack": {
						"damage": 10,
						"Pokemon": [{ "name": "Charmander" }, { "name": "Charmeleon" }, { "name": "Charizard" }]
					}
				}
			}`))
		})

		It("passes variables", func() {
			out, err := run("",
				"query",
				"--variables", `{ "type": "Water" }`,
				"--var", "name=Bubble",
				"-q", `query ($name: String, $type: String) {
					GetAttack(name: $name) { damage }
					Type(type: $type) { Pokemon { id } }
				}`,
			)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(MatchJSON(`{
				"data": {
					"GetAttack": { "damage": 25 },
					"Type": { "Pokemon": [{ "id": "007" }, { "id": "008" }, { "id": "009" }] }
				}
			}`))
		})

		It("prints errors and fails", func() {
			out, err := run("", "query", "-q", `{ GetAttack(name: "Splash") { name } }`)
			Expect(err).Should(MatchError("query returned 1 error(s)"))
			Expect(out).Should(ContainSubstring(`attack \"Splash\" is not defined in the catalog`))
		})

		It("requires a query", func() {
			_, err := run("", "query")
			Expect(err).Should(MatchError("no query: use --query or give a file"))
		})
	})

	It("prints the version", func() {
		out, err := run("", "version")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).Should(Equal("pokedex " + version.String() + "\n"))
	})

	Describe("parseVariables", func() {
		It("decodes values in JSON and falls back to strings", func() {
			variables, err := parseVariables(`{ "a": 1, "b": "x" }`, []string{"b=2", "c=hello", "d=[1,2]", "e="})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(variables).Should(Equal(map[string]interface{}{
				"a": float64(1),
				"b": float64(2),
				"c": "hello",
				"d": []interface{}{float64(1), float64(2)},
				"e": "",
			}))
		})

		It("rejects malformed assignments", func() {
			_, err := parseVariables("", []string{"novalue"})
			Expect(err).Should(MatchError(`--var "novalue": expect name=value`))

			_, err = parseVariables("[]", nil)
			Expect(err).Should(HaveOccurred())
		})
	})
})
