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

package server

import (
	"net/http"

	"github.com/botobag/pokedex/schema"

	"github.com/botobag/artemis/graphql"
	"github.com/botobag/artemis/graphql/executor"
	"github.com/botobag/artemis/graphql/handler"
	"github.com/botobag/artemis/graphql/parser"
	"github.com/botobag/artemis/graphql/token"
	"github.com/rs/zerolog"
)

// newGraphQLHandler serves GraphQL requests for s at "/graphql".
func newGraphQLHandler(s graphql.Schema, maxBodySize uint, cacheSize uint) (http.Handler, error) {
	cache, err := handler.NewLRUOperationCache(cacheSize)
	if err != nil {
		return nil, err
	}

	return handler.New(
		s,
		handler.OverrideOperationCache(cache),
		handler.OverrideRequestBuilder(&requestBuilder{
			options: handler.ParseHTTPRequestOptions{
				MaxBodySize: maxBodySize,
			},
		}),
		handler.OverrideErrorPresenter(errorPresenter{}),
	)
}

// requestBuilder works like handler.DefaultRequestBuilder and additionally normalizes variables
// decoded from JSON so Int arguments can be supplied through variables.
type requestBuilder struct {
	options handler.ParseHTTPRequestOptions
}

var _ handler.RequestBuilder = (*requestBuilder)(nil)

// Build implements handler.RequestBuilder.
func (builder *requestBuilder) Build(r *http.Request, h handler.HTTPHandler) (*handler.Request, error) {
	parsedReq, err := handler.ParseHTTPRequest(r, &builder.options)
	if err != nil {
		return nil, err
	}

	if len(parsedReq.Query) == 0 {
		return nil, handler.ErrEmptyQuery{
			Request: r,
		}
	}

	// A document can hold several operations, so the selected one is part of the key.
	cacheKey := operationCacheKey(parsedReq.OperationName, parsedReq.Query)

	cache := h.OperationCache()
	operation, ok := cache.Get(cacheKey)
	if !ok {
		document, err := parser.Parse(token.NewSource(parsedReq.Query))
		if err != nil {
			return nil, &handler.ErrParseQuery{
				Request:       r,
				ParsedRequest: parsedReq,
				Err:           err,
			}
		}

		var errs graphql.Errors
		operation, errs = executor.Prepare(
			h.Schema(),
			document,
			executor.OperationName(parsedReq.OperationName),
			executor.DefaultFieldResolver(schema.DefaultFieldResolver),
		)
		if errs.HaveOccurred() {
			return nil, &handler.ErrPrepare{
				Request:       r,
				ParsedRequest: parsedReq,
				Document:      document,
				Errs:          errs,
			}
		}

		cache.Add(cacheKey, operation)
	}

	return &handler.Request{
		Ctx:       r.Context(),
		Operation: operation,
		ExecuteOpts: []executor.ExecuteOption{
			executor.VariableValues(schema.NormalizeVariables(parsedReq.Variables)),
		},
	}, nil
}

func operationCacheKey(operationName string, query string) string {
	return operationName + "\x00" + query
}

// errBodyTooLargeMessage is the message of the error returned by handler.ParseHTTPRequest for
// bodies over the limit. The handler doesn't export the error itself.
const errBodyTooLargeMessage = "request body is too large"

// errorPresenter reports requests that cannot be executed with status 400 (or 413 when the body
// exceeds the limit) and a GraphQL response carrying the errors.
type errorPresenter struct{}

var _ handler.ErrorPresenter = errorPresenter{}

// Write implements handler.ErrorPresenter.
func (errorPresenter) Write(w http.ResponseWriter, err error) {
	var (
		r      *http.Request
		status = http.StatusBadRequest
		errs   graphql.Errors
	)

	switch err := err.(type) {
	case *handler.HTTPRequestParseError:
		r = err.Request
		if err.Err.Error() == errBodyTooLargeMessage {
			status = http.StatusRequestEntityTooLarge
		}
		errs = graphql.ErrorsOf(err.Error())

	case handler.ErrEmptyQuery:
		r = err.Request
		errs = graphql.ErrorsOf("Must provide query string.")

	case *handler.ErrParseQuery:
		r = err.Request
		errs = graphql.ErrorsOf(err.Err.Error(), graphql.ErrKindSyntax, err.Err)

	case *handler.ErrPrepare:
		r = err.Request
		errs = err.Errs

	default:
		errs = graphql.ErrorsOf(err.Error())
	}

	if r != nil {
		zerolog.Ctx(r.Context()).Info().
			Err(err).
			Int("status", status).
			Msg("rejected GraphQL request")
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	result := &executor.ExecutionResult{
		Errors: errs,
	}
	result.MarshalJSONTo(w)
}
