package rulevalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// appendDescription adds desc to the schema description, space separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

// setType sets the schema type unless an earlier rule already did.
func setType(ref *openapi3.SchemaRef, typ string) {
	if ref.Value.Type != nil && len(*ref.Value.Type) > 0 {
		return
	}
	ref.Value.Type = &openapi3.Types{typ}
	if typ == openapi3.TypeArray && ref.Value.Items == nil {
		ref.Value.Items = openapi3.NewSchemaRef("", openapi3.NewSchema())
	}
}
