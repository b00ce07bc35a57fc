// Command example demonstrates rulevalidation with an HTTP server serving
// the OpenAPI document and a validated JSON endpoint.
//
// Run:
//
//	go run ./_example
//
// Then fetch http://localhost:8080/docs.json. Settings are read from the
// environment and an optional .env file (see rulevalidation.Config).
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	v "github.com/Gobd/rulevalidation"
	"github.com/Gobd/rulevalidation/openapi"
	"github.com/Gobd/rulevalidation/transform"
)

// orderRules validates the create order payload.
var orderRules = v.RuleSet{
	"customer_name": "required|string|max:200|hasalpha",
	"email":         "required|email",
	"item_count":    "required|numeric",
	"status":        "nullable|in:pending,paid",
	"delivery_date": "date",
}

// Order is the response type.
type Order struct {
	CustomerName string  `json:"customer_name"`
	Email        string  `json:"email"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

func main() {
	var files []string
	if _, err := os.Stat(".env"); err == nil {
		files = append(files, ".env")
	}
	cfg, err := v.LoadConfig(files...)
	if err != nil {
		log.Fatal(err)
	}
	validator := v.NewFromConfig(cfg)

	doc := openapi.DocBase("Example API", "Demonstrates rulevalidation", "0.1.0")
	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:   "Create an order",
		Validator: validator,
		Request:   orderRules,
		Response:  Order{},
	})

	http.Handle("/docs.json", openapi.DocsHandlerMust(doc))

	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

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
	fmt.Println("OpenAPI document: http://localhost:8080/docs.json")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
