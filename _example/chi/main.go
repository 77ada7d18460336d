// Command chi demonstrates formvalidation with a chi router and rules
// loaded from YAML.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then open http://localhost:8080/openapi.json or POST to /orders.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/openapi"
	"github.com/go-chi/chi/v5"
)

const orderRulesYAML = `
customer_name: required|string|max:200
item_count: required|int
total: required|numeric
delivery_date: nullable|date:2006-01-02
`

type Order struct {
	CustomerName string  `json:"customer_name"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

func main() {
	orderRules, err := v.LoadRuleSpec(strings.NewReader(orderRulesYAML))
	if err != nil {
		log.Fatal(err)
	}

	doc := openapi.DocBase("Example API (chi)", "Demonstrates formvalidation with chi", "0.1.0")

	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:         "Create an order",
		Request:         orderRules,
		Response:        Order{},
		ValidationError: true,
	})

	r := chi.NewRouter()

	r.Get("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		b, err := doc.MarshalJSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
	})

	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		val, err := v.DecodeAndValidate(r.Body, orderRules, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if val.Failed() {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(val.Errors())
			return
		}
		_ = json.NewEncoder(w).Encode(val.Data())
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
