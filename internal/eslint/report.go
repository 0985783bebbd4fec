package eslint

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadReport reads an ESLint JSON report file and returns its per-file
// results in document order.
func LoadReport(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse report %q: %w", path, err)
	}
	return results, nil
}

// LoadRulesMeta reads a rules-metadata file: a JSON object keyed by rule id.
// Null entries are kept as nil values so unknown ids stay distinguishable
// from absent ones.
func LoadRulesMeta(path string) (map[string]*RuleMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules metadata file: %w", err)
	}

	var meta map[string]*RuleMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse rules metadata %q: %w", path, err)
	}
	return meta, nil
}
