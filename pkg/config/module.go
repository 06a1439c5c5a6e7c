// Package config loads simulation settings. Files are YAML or JSON, unified
// in order with an embedded CUE schema that supplies defaults and checks
// ranges.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	J "cuelang.org/go/encoding/json"
	"cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaFile string

//go:embed default.yaml
var DEFAULT []byte

func extract(ctx *cue.Context, name string, data []byte) (cue.Value, error) {
	var value cue.Value

	switch filepath.Ext(name) {
	case ".json":
		expr, err := J.Extract(name, data)
		if err != nil {
			return value, err
		}
		value = ctx.BuildExpr(expr)
	case ".yaml", ".yml":
		file, err := yaml.Extract(name, data)
		if err != nil {
			return value, err
		}
		value = ctx.BuildFile(file)
	default:
		return value, fmt.Errorf("not in a valid format")
	}

	return value, value.Err()
}

func readFile(ctx *cue.Context, path string) (cue.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, err
	}
	return extract(ctx, path, data)
}

func unify(schema cue.Value, value cue.Value, name string) (cue.Value, error) {
	schema = schema.Unify(value)
	if err := schema.Err(); err != nil {
		return schema, fmt.Errorf("could not merge config file %s: %v", name, err)
	}

	if err := schema.Validate(); err != nil {
		return schema, fmt.Errorf("config file %s is not valid: %v", name, err)
	}

	return schema, nil
}

// Process reads the provided configuration files in order, compiles them,
// and unifies them with the schema. If no configuration files are provided,
// the default configuration is used.
func Process(configPaths []string) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaFile, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, err
	}

	if len(configPaths) == 0 {
		value, err := extract(ctx, "default.yaml", DEFAULT)
		if err != nil {
			return nil, err
		}

		schema, err = unify(schema, value, "<default>")
		if err != nil {
			return nil, err
		}
	}

	for _, path := range configPaths {
		value, err := readFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf(
				"could not process config file %s: %v",
				path,
				err,
			)
		}

		schema, err = unify(schema, value, path)
		if err != nil {
			return nil, err
		}
	}

	data, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf(
			"could not aggregate config: %v",
			err,
		)
	}

	config := Config{}
	err = json.Unmarshal(data, &config)
	return &config, err
}
