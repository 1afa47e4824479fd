// Package openapi documents payload contracts: it reflects payload structs
// into OpenAPI 3 component schemas so the wire shape produced by the
// transformer can be published alongside an API.
package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotAStruct           = errors.New("payload type is not a struct")
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

// Config holds OpenAPI generation configuration.
type Config struct {
	Info Info `json:"info"`
}

// Info represents the OpenAPI info object.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Generator generates OpenAPI specifications from payload types.
type Generator struct {
	config Config
}

// NewGenerator creates a new OpenAPI generator.
func NewGenerator(config *Config) *Generator {
	return &Generator{
		config: *config,
	}
}

// Generate creates an OpenAPI specification whose component schemas describe
// the given payload values. Each schema is named after the payload's struct
// type.
func (g *Generator) Generate(payloads ...interface{}) (*openapi3.T, error) {
	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       g.config.Info.Title,
			Version:     g.config.Info.Version,
			Description: g.config.Info.Description,
		},
		Paths: &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: make(map[string]*openapi3.SchemaRef),
		},
	}

	for _, payload := range payloads {
		t := reflect.TypeOf(payload)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: %s", ErrNotAStruct, t)
		}

		schema, err := g.createSchemaFromType(t)
		if err != nil {
			return nil, fmt.Errorf("failed to build schema for %s: %w", t.Name(), err)
		}

		spec.Components.Schemas[t.Name()] = schema
	}

	return spec, nil
}

// Well-known types that encode as formatted strings.
var (
	timeType    = reflect.TypeOf(time.Time{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// createSchemaFromType creates an OpenAPI schema from a Go type.
func (g *Generator) createSchemaFromType(t reflect.Type) (*openapi3.SchemaRef, error) {
	schema := &openapi3.Schema{}

	switch t {
	case timeType:
		schema.Type = &openapi3.Types{"string"}
		schema.Format = "date-time"

		return &openapi3.SchemaRef{Value: schema}, nil
	case uuidType:
		schema.Type = &openapi3.Types{"string"}
		schema.Format = "uuid"

		return &openapi3.SchemaRef{Value: schema}, nil
	case decimalType:
		// Decimals travel as strings to keep exact precision on the wire.
		schema.Type = &openapi3.Types{"string"}
		schema.Format = "decimal"

		return &openapi3.SchemaRef{Value: schema}, nil
	}

	switch t.Kind() {
	case reflect.String:
		schema.Type = &openapi3.Types{"string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema.Type = &openapi3.Types{"integer"}
	case reflect.Float32, reflect.Float64:
		schema.Type = &openapi3.Types{"number"}
	case reflect.Bool:
		schema.Type = &openapi3.Types{"boolean"}
	case reflect.Struct:
		schema.Type = &openapi3.Types{"object"}
		schema.Properties = make(map[string]*openapi3.SchemaRef)

		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)

			if !field.IsExported() {
				continue
			}

			jsonName := field.Tag.Get("json")
			if jsonName == "" || jsonName == "-" {
				continue
			}

			parts := strings.Split(jsonName, ",")
			fieldName := parts[0]
			omitempty := len(parts) > 1 && parts[1] == "omitempty"

			fieldSchema, err := g.createSchemaFromType(field.Type)
			if err != nil {
				return nil, err
			}

			schema.Properties[fieldName] = fieldSchema

			if !omitempty {
				schema.Required = append(schema.Required, fieldName)
			}
		}
	case reflect.Slice, reflect.Array:
		schema.Type = &openapi3.Types{"array"}
		itemSchema, err := g.createSchemaFromType(t.Elem())
		if err != nil {
			return nil, err
		}
		schema.Items = itemSchema
	case reflect.Ptr:
		return g.createSchemaFromType(t.Elem())
	case reflect.Map, reflect.Interface:
		schema.Type = &openapi3.Types{"object"}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFieldType, t.Kind())
	}

	return &openapi3.SchemaRef{Value: schema}, nil
}

// GenerateJSON generates the JSON representation of an OpenAPI spec.
func (g *Generator) GenerateJSON(spec *openapi3.T) ([]byte, error) {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI spec to JSON: %w", err)
	}

	return data, nil
}

// GenerateYAML generates the YAML representation of an OpenAPI spec.
func (g *Generator) GenerateYAML(spec *openapi3.T) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI spec to YAML: %w", err)
	}

	return data, nil
}
