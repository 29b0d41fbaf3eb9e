package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/citebridge/internal/cluster"
)

// ReadAllSubtopics reads all subtopics from a JSONL file.
// Returns an error if any subtopic fails structural validation (fail-fast).
func ReadAllSubtopics(path string) ([]cluster.Subtopic, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Empty file returns empty slice
		}
		return nil, fmt.Errorf("opening subtopics file: %w", err)
	}
	defer f.Close()

	var subs []cluster.Subtopic
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

		var s cluster.Subtopic
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		if err := s.ValidateForCreate(); err != nil {
			return nil, fmt.Errorf("invalid subtopic at line %d: %w", lineNum, err)
		}
		subs = append(subs, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading subtopics file: %w", err)
	}

	return subs, nil
}

// WriteAllSubtopics writes all subtopics to a JSONL file, replacing existing content.
func WriteAllSubtopics(path string, subs []cluster.Subtopic) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating subtopics file: %w", err)
	}
	defer f.Close()

	for _, s := range subs {
		if err := writeJSONLine(f, s); err != nil {
			return err
		}
	}

	return nil
}
