package openapi

import (
	"errors"
	"maps"
	"net/http"
	"slices"

	rv "github.com/Gobd/rulevalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

const jsonMediaType = "application/json"

// Response describes an HTTP response with a description and body types for schema generation.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Validator   *rv.Validator       // resolves rule names; built-in rules only when nil
	Request     rv.RuleSet          // single request body rule set (convenience)
	Requests    []rv.RuleSet        // multiple request body rule sets (oneOf)
	Response    any                 // single 200 response type (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// jsonContent wraps refs in a JSON media type, as a oneOf when there is
// more than one.
func jsonContent(refs openapi3.SchemaRefs) openapi3.Content {
	if len(refs) == 1 {
		return openapi3.NewContentWithJSONSchemaRef(refs[0])
	}
	return openapi3.Content{
		jsonMediaType: openapi3.NewMediaType().WithSchema(&openapi3.Schema{OneOf: refs}),
	}
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(v *rv.Validator, rules ...rv.RuleSet) *openapi3.RequestBodyRef {
	o, err := NewRequest(v, rules...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest generates an OpenAPI request body schema from the given rule
// sets, resolving rule names with v.
func NewRequest(v *rv.Validator, rules ...rv.RuleSet) (*openapi3.RequestBodyRef, error) {
	if len(rules) == 0 {
		return nil, errors.New("no rule sets given")
	}
	if v == nil {
		v = rv.New()
	}

	refs := make(openapi3.SchemaRefs, 0, len(rules))
	for i := range rules {
		ref, err := v.SchemaRef(rules[i])
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	body := openapi3.NewRequestBody().WithRequired(true).WithContent(jsonContent(refs))
	return &openapi3.RequestBodyRef{Value: body}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for _, statusCode := range slices.Sorted(maps.Keys(vs)) {
		resp := vs[statusCode]

		refs := make(openapi3.SchemaRefs, 0, len(resp.Bodies))
		for _, body := range resp.Bodies {
			ref, err := NewSchemaRefForValue(body)
			if err != nil {
				return nil, err
			}
			refs = append(refs, ref)
		}

		r := openapi3.NewResponse().WithDescription(resp.Desc)
		if len(refs) > 0 {
			r.Content = jsonContent(refs)
		}
		opts = append(opts, openapi3.WithName(statusCode, r))
	}

	return openapi3.NewResponses(opts...), nil
}

// validationFailureResponse documents the body written for a
// [rv.ValidationFailure].
func validationFailureResponse() (*openapi3.ResponseRef, error) {
	schema, err := failureSchema()
	if err != nil {
		return nil, err
	}
	r := openapi3.NewResponse().
		WithDescription("Validation failed").
		WithContent(openapi3.NewContentWithJSONSchemaRef(schema))
	return &openapi3.ResponseRef{Value: r}, nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// AddPath adds an operation to the OpenAPI document at the given path and
// method, keeping operations already registered for other methods.
// Methods other than GET, POST, PUT, PATCH and DELETE are ignored.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return
	}

	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := openapi3.NewOperation()
	op.OperationID = operationID
	op.Summary = ep.Summary
	op.Description = ep.Description

	switch {
	case len(ep.Requests) > 0:
		op.RequestBody = NewRequestMust(ep.Validator, ep.Requests...)
	case ep.Request != nil:
		op.RequestBody = NewRequestMust(ep.Validator, ep.Request)
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	if op.RequestBody != nil && op.Responses.Value("422") == nil {
		failure, err := validationFailureResponse()
		if err != nil {
			panic(err)
		}
		op.Responses.Set("422", failure)
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
