package snapshot

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wonny/altman/internal/contracts"
)

// Load reads a single-company snapshot from a YAML file.
// Unknown keys are rejected so a misspelled field can't silently become zero.
func Load(path string) (contracts.FinancialSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return contracts.FinancialSnapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	return Decode(data)
}

// Decode parses YAML bytes into a snapshot and validates it
func Decode(data []byte) (contracts.FinancialSnapshot, error) {
	var snap contracts.FinancialSnapshot

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		return contracts.FinancialSnapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	if err := Validate(snap); err != nil {
		return snap, err
	}

	return snap, nil
}
