// Command chi demonstrates rulevalidation with a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then fetch http://localhost:8080/docs.json.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	v "github.com/Gobd/rulevalidation"
	"github.com/Gobd/rulevalidation/openapi"
	"github.com/Gobd/rulevalidation/transform"
	"github.com/go-chi/chi/v5"
)

var orderRules = v.RuleSet{
	"customer_name": "required|string|max:200",
	"item_count":    "required|numeric",
	"tags":          "array|distinct",
}

func main() {
	validator := v.New(v.WithConcurrency(8))

	doc := openapi.DocBase("Example API (chi)", "Demonstrates rulevalidation with chi", "0.1.0")
	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:   "Create an order",
		Validator: validator,
		Request:   orderRules,
	})

	r := chi.NewRouter()
	r.Handle("/docs.json", openapi.DocsHandlerMust(doc))

	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		record, err := validator.DecodeAndValidateCtx(r.Context(), r.Body, orderRules, transform.TrimSpace)
		var failure *v.ValidationFailure
		switch {
		case errors.As(err, &failure):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(failure.StatusCode())
			_ = json.NewEncoder(w).Encode(failure)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(record)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
