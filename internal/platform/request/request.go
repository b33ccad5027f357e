// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantrong/melodia/internal/platform/ctxutil"
	"github.com/vantrong/melodia/internal/platform/sec"
	"github.com/vantrong/melodia/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns validate.ErrInvalidJSON if decoding fails, otherwise nil.
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Actor extracts the acting principal from the request context.

Returns nil for anonymous requests. Handlers pass the result straight through
to the catalog services — the actor is always an explicit argument below the
transport boundary.
*/
func Actor(request *http.Request) *sec.Actor {
	return ctxutil.GetActor(request.Context())
}
