// Package api embeds the OpenAPI document of the HTTP interface and exposes
// it to the request validator and the Swagger UI.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// SwaggerInstance is the swag registry name the UI reads the document from.
const SwaggerInstance = "tracking"

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger parses and validates the embedded document. Each call returns a
// fresh copy that the caller may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// RegisterSwagger publishes the document to the swag registry under
// SwaggerInstance. Repeated calls are no-ops.
func RegisterSwagger(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding openapi document: %w", err)
	}

	registerOnce.Do(func() {
		swag.Register(SwaggerInstance, swaggerDoc{json: string(data)})
	})
	return nil
}
