package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	rv "github.com/Gobd/rulevalidation"
	"github.com/Gobd/rulevalidation/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest_DescribesRules(t *testing.T) {
	body, err := openapi.NewRequest(nil, rv.RuleSet{
		"email": "required|email",
		"tags":  "array|distinct",
	})
	require.NoError(t, err)

	schema := body.Value.Content["application/json"].Schema.Value
	assert.Equal(t, []string{"email"}, schema.Required)
	assert.Equal(t, "email", schema.Properties["email"].Value.Format)
	assert.True(t, schema.Properties["tags"].Value.UniqueItems)
}

func TestNewRequest_OneOf(t *testing.T) {
	body, err := openapi.NewRequest(nil, rv.RuleSet{"a": "required"}, rv.RuleSet{"b": "required"})
	require.NoError(t, err)
	assert.Len(t, body.Value.Content["application/json"].Schema.Value.OneOf, 2)
}

func TestNewRequest_Errors(t *testing.T) {
	_, err := openapi.NewRequest(nil)
	require.Error(t, err)

	_, err = openapi.NewRequest(nil, rv.RuleSet{"a": "nope"})
	require.ErrorIs(t, err, rv.ErrUnknownRule)
}

func TestNewRequest_CustomRule(t *testing.T) {
	v := rv.New(rv.WithExtension("even", func(any, []string) bool { return true }, ":attribute must be even"))

	body, err := openapi.NewRequest(v, rv.RuleSet{"n": "even"})
	require.NoError(t, err)
	assert.Equal(t, "even", body.Value.Content["application/json"].Schema.Value.Properties["n"].Value.Description)
}

func TestPost_AddsValidationFailureResponse(t *testing.T) {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")
	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Request:  itemRules,
		Response: Item{},
	})

	op := doc.Paths.Value("/items").Post
	require.NotNil(t, op.Responses.Value("200"))
	failure := op.Responses.Value("422")
	require.NotNil(t, failure)
	assert.True(t, failure.Value.Content["application/json"].Schema.Value.Type.Is(openapi3.TypeArray))
}

func TestGet_NoRequestNoFailureResponse(t *testing.T) {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")
	openapi.Get(doc, "/items", "listItems", openapi.Endpoint{Response: []Item{}})

	assert.Nil(t, doc.Paths.Value("/items").Get.Responses.Value("422"))
}

func TestDocsHandler(t *testing.T) {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")
	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Request:  itemRules,
		Response: Item{},
	})

	h, err := openapi.DocsHandler(doc)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "3.0.3", got["openapi"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/docs.json", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAddPath_KeepsOtherMethods(t *testing.T) {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")
	openapi.Get(doc, "/items", "listItems", openapi.Endpoint{Response: []Item{}})
	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{Request: itemRules})
	openapi.AddPath("/items", "TRACE", doc, openapi3.NewOperation())

	p := doc.Paths.Value("/items")
	require.NotNil(t, p)
	assert.Equal(t, "listItems", p.Get.OperationID)
	assert.Equal(t, "createItem", p.Post.OperationID)
	assert.Nil(t, p.Trace)
	assert.True(t, p.Post.RequestBody.Value.Required)
}

func TestNewResponse(t *testing.T) {
	responses, err := openapi.NewResponse(map[string]openapi.Response{
		"200": {Desc: "One", Bodies: []any{Item{}}},
		"201": {Desc: "Either", Bodies: []any{Item{}, []Item{}}},
		"204": {Desc: "Empty"},
	})
	require.NoError(t, err)

	assert.Equal(t, "One", *responses.Value("200").Value.Description)
	assert.NotNil(t, responses.Value("200").Value.Content["application/json"].Schema.Value.Properties["price"])
	assert.Len(t, responses.Value("201").Value.Content["application/json"].Schema.Value.OneOf, 2)
	assert.Empty(t, responses.Value("204").Value.Content)

	_, err = openapi.NewResponse(nil)
	require.Error(t, err)
}
