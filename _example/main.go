// Command example demonstrates formvalidation with an HTTP server serving
// its OpenAPI document and a validated JSON endpoint.
//
// Run:
//
//	go run ./_example
//
// Then open http://localhost:8080/openapi.json or POST to /orders.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/openapi"
	"github.com/Gobd/formvalidation/transform"
	"go.uber.org/zap"
)

// orderRules validates a create-order request body.
var orderRules = v.RuleSpec{
	v.Field("customer_name", "required|string|max:200"),
	v.Field("email", "required|email"),
	v.Field("phone", "nullable|mobile"),
	v.Field("item_count", "required|int|max:4"),
	v.Field("total", "required|numeric"),
	v.Field("coupon", "nullable|regex:/^[a-z0-9]{6}$/i"),
}

var orderMessages = v.Messages{
	"email.email":       "please enter a valid email address",
	"item_count":        "item count must be a whole number",
	"customer_name.max": "customer name is too long",
}

// Order is a sample response type.
type Order struct {
	CustomerName string  `json:"customer_name"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	doc := openapi.DocBase("Example API", "Demonstrates formvalidation", "0.1.0")

	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:         "Create an order",
		Request:         orderRules,
		Response:        Order{},
		ValidationError: true,
	})

	http.HandleFunc("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		b, err := doc.MarshalJSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
	})

	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		val, err := v.DecodeAndValidate(r.Body, orderRules, orderMessages,
			v.WithLogger(logger),
			v.WithTransform(transform.TrimSpace, transform.Fields(transform.ToLower, "email")))
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
	fmt.Println("OpenAPI: http://localhost:8080/openapi.json")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
