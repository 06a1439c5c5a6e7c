package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cfoust/lockstep/pkg/physics/constants"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// The YAML form of a table, keyed by variant.
type tableYAML struct {
	Walking constants.Set `yaml:"walking"`
	Running constants.Set `yaml:"running"`
}

func decodeStrict(data []byte, out interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	return decoder.Decode(out)
}

// parseConstants builds a table from YAML. Both variants must be present
// and every key must name a field; fields a variant leaves out keep their
// stock values.
func parseConstants(data []byte) (constants.Table, error) {
	table := constants.DEFAULT_TABLE

	var present struct {
		Walking *constants.Set `yaml:"walking"`
		Running *constants.Set `yaml:"running"`
	}
	if err := decodeStrict(data, &present); err != nil {
		return table, err
	}
	if present.Walking == nil {
		return table, fmt.Errorf("missing walking constants")
	}
	if present.Running == nil {
		return table, fmt.Errorf("missing running constants")
	}

	sets := tableYAML{
		Walking: table[constants.WALKING],
		Running: table[constants.RUNNING],
	}
	if err := decodeStrict(data, &sets); err != nil {
		return table, err
	}
	table[constants.WALKING] = sets.Walking
	table[constants.RUNNING] = sets.Running

	return table, nil
}

func packConstants(output string, from string) error {
	table := constants.DEFAULT_TABLE

	if from != "" {
		data, err := os.ReadFile(from)
		if err != nil {
			return err
		}

		table, err = parseConstants(data)
		if err != nil {
			return fmt.Errorf("could not parse %s: %w", from, err)
		}
	}

	if err := os.WriteFile(output, constants.Pack(table[:]), 0644); err != nil {
		return err
	}

	log.Info().
		Str("path", output).
		Uint64("digest", table.Digest()).
		Msg("wrote constants")
	return nil
}

func unpackConstants(input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	table, err := constants.UnpackTable(data)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(tableYAML{
		Walking: table[constants.WALKING],
		Running: table[constants.RUNNING],
	})
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	return err
}
