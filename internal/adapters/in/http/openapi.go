package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPISpec []byte

const swaggerInstanceName = "ordertaking"

var registerSwaggerOnce sync.Once

// APIDocument is the validated OpenAPI document of the service. Its schemas check
// request bodies before they are decoded.
type APIDocument struct {
	doc       *openapi3.T
	json      []byte
	orderForm *openapi3.Schema
}

// LoadAPIDocument loads the embedded OpenAPI document and registers it for the
// swagger UI.
func LoadAPIDocument(ctx context.Context) (*APIDocument, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	orderForm, ok := doc.Components.Schemas["OrderForm"]
	if !ok || orderForm.Value == nil {
		return nil, errors.New("OpenAPI document has no OrderForm schema")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swaggerInstanceName, swaggerDoc(data))
	})
	return &APIDocument{doc: doc, json: data, orderForm: orderForm.Value}, nil
}

// CheckOrderForm validates a decoded JSON body against the OrderForm schema and
// returns every problem found.
func (d *APIDocument) CheckOrderForm(body any) []string {
	if err := d.orderForm.VisitJSON(body, openapi3.MultiErrors()); err != nil {
		return schemaProblems(err)
	}
	return nil
}

func (d *APIDocument) JSON() []byte {
	return d.json
}

func schemaProblems(err error) []string {
	switch e := err.(type) { //nolint:errorlint // MultiError.As matches its first member
	case openapi3.MultiError:
		var problems []string
		for _, inner := range e {
			problems = append(problems, schemaProblems(inner)...)
		}
		return problems
	case *openapi3.SchemaError:
		path := strings.Join(e.JSONPointer(), ".")
		if path == "" {
			return []string{e.Reason}
		}
		return []string{path + ": " + e.Reason}
	default:
		return []string{err.Error()}
	}
}

type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string { return string(d) }
