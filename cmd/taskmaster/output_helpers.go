package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func encodeJSONToStdout(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func encodeYAMLToStdout(value any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return err
	}
	return enc.Close()
}

// encodeStructured writes value as JSON or YAML. It reports false when
// neither format was requested.
func encodeStructured(value any, asJSON, asYAML bool) (bool, error) {
	switch {
	case asJSON && asYAML:
		return true, fmt.Errorf("--json and --yaml are mutually exclusive")
	case asJSON:
		return true, encodeJSONToStdout(value)
	case asYAML:
		return true, encodeYAMLToStdout(value)
	default:
		return false, nil
	}
}
