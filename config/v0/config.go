// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package v0 provides the schema for v0 of the system config file for docemit
//
// v0 allows for breaking changes without a major version increase
package v0

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cast"
	"github.com/xeipuuv/gojsonschema"

	"github.com/coopcredit/docemit/config"
)

// SchemaVersion is the current schema version for configs
const SchemaVersion = "v0"

// DocumentNamePattern matches the names of catalog documents
const DocumentNamePattern = "^[a-z0-9]+(-[a-z0-9]+)*$"

// Config is the system configuration file for docemit
type Config struct {
	SchemaVersion string            `json:"schema-version"`
	FileMode      config.FileMode   `json:"file-mode,omitempty"`
	Destinations  map[string]string `json:"destinations,omitempty"`
}

// JSONSchemaExtend extends the JSON schema for a config
func (Config) JSONSchemaExtend(schema *jsonschema.Schema) {
	if schemaVersion, ok := schema.Properties.Get("schema-version"); ok && schemaVersion != nil {
		schemaVersion.Description = "Config schema version"
		schemaVersion.Enum = []any{SchemaVersion}
		schemaVersion.AdditionalProperties = jsonschema.FalseSchema
	}

	if destinations, ok := schema.Properties.Get("destinations"); ok && destinations != nil {
		minLength := uint64(1)
		destinations.Description = "Map of document name to the path it is written to, relative paths resolve against the working directory"
		destinations.PatternProperties = map[string]*jsonschema.Schema{
			DocumentNamePattern: {
				Type:      "string",
				MinLength: &minLength,
			},
		}
		destinations.AdditionalProperties = jsonschema.FalseSchema
	}
}

// Destination returns the configured destination for a document, if any
func (c *Config) Destination(name string) (string, bool) {
	p, ok := c.Destinations[name]
	return p, ok && p != ""
}

func defaultConfig() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		FileMode:      config.DefaultFileMode,
		Destinations:  map[string]string{},
	}
}

// LoadDefaultConfig returns a valid but "empty" config
func LoadDefaultConfig() *Config {
	return defaultConfig()
}

// LoadConfig reads, validates and decodes a config
//
// The raw document is validated against the JSON schema before it is decoded,
// so schema errors point at what the user wrote.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("unsupported config schema version: expected %q, got %q", SchemaVersion, "")
	}

	switch version := cast.ToString(raw["schema-version"]); version {
	case SchemaVersion:
		if err := Validate(raw); err != nil {
			return nil, err
		}
		cfg := defaultConfig()
		if err := decode(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		return cfg, nil
	default:
		return nil, fmt.Errorf("unsupported config schema version: expected %q, got %q", SchemaVersion, version)
	}
}

func decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       fileModeHook,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

var fileModeType = reflect.TypeOf(config.FileMode(0))

func fileModeHook(_ reflect.Type, t reflect.Type, data any) (any, error) {
	if t != fileModeType {
		return data, nil
	}
	// the schema only admits strings, unquoted YAML octal is ambiguous
	s, ok := data.(string)
	if !ok {
		return nil, fmt.Errorf("file mode must be a string, got %T", data)
	}
	return config.ParseFileMode(s)
}

// Since every validation operation leverages the same schema, only calculate it once
var schemaOnce = sync.OnceValues(func() (string, error) {
	s := Schema()
	b, err := json.Marshal(s)
	return string(b), err
})

// Validate checks if a decoded config document adheres to the JSON schema
func Validate(doc any) error {
	schema, err := schemaOnce()
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	var resErr error
	for _, err := range result.Errors() {
		resErr = errors.Join(resErr, errors.New(err.String()))
	}

	return resErr
}

// Schema returns the JSON schema for the Config type
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Config{})
}
