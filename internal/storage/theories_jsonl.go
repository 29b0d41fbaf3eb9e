package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/citebridge/internal/cluster"
)

// ReadAllTheories reads all theory pool entries from a JSONL file.
// Returns an error if any theory fails structural validation (fail-fast).
func ReadAllTheories(path string) ([]cluster.Theory, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Empty file returns empty slice
		}
		return nil, fmt.Errorf("opening theories file: %w", err)
	}
	defer f.Close()

	var theories []cluster.Theory
	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var th cluster.Theory
		if err := json.Unmarshal(line, &th); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		if err := th.ValidateForCreate(); err != nil {
			return nil, fmt.Errorf("invalid theory at line %d: %w", lineNum, err)
		}
		theories = append(theories, th)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading theories file: %w", err)
	}

	return theories, nil
}

// WriteAllTheories writes all theories to a JSONL file, replacing existing content.
func WriteAllTheories(path string, theories []cluster.Theory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating theories file: %w", err)
	}
	defer f.Close()

	for _, th := range theories {
		if err := writeJSONLine(f, th); err != nil {
			return err
		}
	}

	return nil
}
