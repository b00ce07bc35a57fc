package openapi_test

import (
	"fmt"

	rv "github.com/Gobd/rulevalidation"
	"github.com/Gobd/rulevalidation/openapi"
)

type Item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var itemRules = rv.RuleSet{
	"name":  "required|string|max:200",
	"price": "required|numeric",
}

func ExamplePost() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")

	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Summary:  "Create an item",
		Request:  itemRules,
		Response: Item{},
	})

	fmt.Println(doc.Paths.Value("/items").Post.OperationID)
	// Output: createItem
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}

func ExampleGet() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")

	openapi.Get(doc, "/items", "listItems", openapi.Endpoint{
		Summary:  "List all items",
		Response: []Item{},
	})

	fmt.Println(doc.Paths.Value("/items").Get.OperationID)
	// Output: listItems
}

func ExampleNewRequest() {
	v := rv.New(rv.WithExtension("sku", func(any, []string) bool { return true }, ":attribute must be a SKU"))
	body := openapi.NewRequestMust(v, rv.RuleSet{
		"sku":    "required|sku",
		"status": "in:draft,published",
	})

	schema := body.Value.Content["application/json"].Schema.Value
	fmt.Println(schema.Required)
	fmt.Println(schema.Properties["sku"].Value.Description)
	fmt.Println(schema.Properties["status"].Value.Enum)
	// Output:
	// [sku]
	// sku
	// [draft published]
}
