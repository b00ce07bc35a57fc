// Package openapi generates OpenAPI 3 documents for endpoints whose request
// bodies are checked with [rulevalidation.RuleSet] values. It also provides
// helpers for registering endpoints and serving the document as JSON.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve it with [DocsHandlerMust]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:  rulevalidation.RuleSet{"customer": "required|min:2"},
//	    Response: Order{},
//	})
//	http.Handle("/docs.json", openapi.DocsHandlerMust(doc))
package openapi
