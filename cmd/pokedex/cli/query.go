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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/botobag/pokedex/schema"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	queryText      string
	queryOperation string
	queryVariables string
	queryVars      []string
)

// queryCmd executes one GraphQL document in-process.
var queryCmd = &cobra.Command{
	Use:   "query [file]",
	Short: "Execute a GraphQL query against the catalog",
	Long: `Execute a GraphQL document against the catalog without starting a server and
print the result in JSON. The document is given with --query, or read from the
file argument ("-" reads standard input).

Variables are given as a JSON object with --variables, or one at a time with
--var name=value where value is parsed as JSON when possible and taken as a
string otherwise.`,
	Example: `  pokedex query -q '{ Pokemon(name: "Pikachu") { id types } }'
  pokedex query --var name=Ember -q 'query ($name: String) { GetAttack(name: $name) { damage } }'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVarP(&queryText, "query", "q", "", "GraphQL document to execute")
	queryCmd.Flags().StringVar(&queryOperation, "operation", "", "name of the operation to execute")
	queryCmd.Flags().StringVar(&queryVariables, "variables", "", "variables as a JSON object")
	queryCmd.Flags().StringArrayVar(&queryVars, "var", nil, "variable as name=value (repeatable)")
}

// runQuery executes the query command.
func runQuery(cmd *cobra.Command, args []string) error {
	document, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	variables, err := parseVariables(queryVariables, queryVars)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := buildSchema(cfg)
	if err != nil {
		return err
	}

	result := schema.Execute(cmd.Context(), s, &schema.Request{
		Query:         document,
		OperationName: queryOperation,
		Variables:     variables,
	})

	out := cmd.OutOrStdout()
	if err := result.MarshalJSONTo(out); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	fmt.Fprintln(out)

	if n := len(result.Errors.Errors); n > 0 {
		return fmt.Errorf("query returned %d error(s)", n)
	}
	return nil
}

// readDocument returns the GraphQL document given by --query or the file argument.
func readDocument(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(queryText) > 0 && len(args) > 0:
		return "", fmt.Errorf("query is given with both --query and a file")
	case len(queryText) > 0:
		return queryText, nil
	case len(args) == 0:
		return "", fmt.Errorf("no query: use --query or give a file")
	}

	var r io.Reader
	if args[0] == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("opening query: %w", err)
		}
		defer f.Close()
		r = f
	}

	document, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading query: %w", err)
	}
	return string(document), nil
}

// parseVariables merges the object in variablesJSON with assignments in vars. Assignments win.
func parseVariables(variablesJSON string, vars []string) (map[string]interface{}, error) {
	variables := map[string]interface{}{}

	if len(variablesJSON) > 0 {
		if err := json.Unmarshal([]byte(variablesJSON), &variables); err != nil {
			return nil, fmt.Errorf("decoding --variables: %w", err)
		}
	}

	for _, assignment := range vars {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok || len(name) == 0 {
			return nil, fmt.Errorf("--var %q: expect name=value", assignment)
		}

		var decoded interface{}
		if err := json.Unmarshal([]byte(value), &decoded); err != nil {
			decoded = value
		}
		variables[name] = decoded
	}

	return variables, nil
}
