// Command gorilla demonstrates rulevalidation with a gorilla/mux router.
//
// Run:
//
//	cd _example/gorilla && go run .
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
	"github.com/gorilla/mux"
)

var signupRules = v.RuleSet{
	"username": "required|string|min:3|max:32|hasalpha",
	"email":    "required|email",
	"pin":      "required|digits:4",
	"birthday": "date",
}

func main() {
	validator := v.New()

	doc := openapi.DocBase("Example API (gorilla)", "Demonstrates rulevalidation with gorilla/mux", "0.1.0")
	openapi.Post(doc, "/signup", "signup", openapi.Endpoint{
		Summary:   "Create an account",
		Validator: validator,
		Request:   signupRules,
	})

	r := mux.NewRouter()
	r.Handle("/docs.json", openapi.DocsHandlerMust(doc)).Methods(http.MethodGet)

	r.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		record, err := validator.DecodeAndValidateCtx(r.Context(), r.Body, signupRules)
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
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(record)
	}).Methods(http.MethodPost)

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
