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

package testutil

import (
	"bytes"

	"github.com/botobag/artemis/graphql/executor"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// MatchResultInJSON serializes an *executor.ExecutionResult with its MarshalJSONTo and matches the
// output against resultJSON with gomega.MatchJSON.
func MatchResultInJSON(resultJSON string) types.GomegaMatcher {
	stringify := func(result *executor.ExecutionResult) []byte {
		var buf bytes.Buffer
		gomega.Expect(result.MarshalJSONTo(&buf)).Should(gomega.Succeed())
		return buf.Bytes()
	}
	return gomega.WithTransform(stringify, gomega.MatchJSON(resultJSON))
}
