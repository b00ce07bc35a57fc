package openapi

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// DocsHandler returns an http.Handler that serves the OpenAPI document s as
// JSON. The document is validated and encoded once, up front.
//
//	http.Handle("/docs.json", openapi.DocsHandlerMust(doc))
func DocsHandler(s *openapi3.T) (http.Handler, error) {
	if err := s.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(specJSON)
	}), nil
}

// DocsHandlerMust is like DocsHandler but panics on error.
func DocsHandlerMust(s *openapi3.T) http.Handler {
	h, err := DocsHandler(s)
	if err != nil {
		panic(err)
	}
	return h
}
