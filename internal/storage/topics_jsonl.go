package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/citebridge/internal/cluster"
)

// ReadAllTopics reads all topic clusters from a JSONL file. The same format
// serves both the LLM and psychology topic relations.
// Returns an error if any topic fails structural validation (fail-fast).
func ReadAllTopics(path string) ([]cluster.Topic, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Empty file returns empty slice
		}
		return nil, fmt.Errorf("opening topics file: %w", err)
	}
	defer f.Close()

	var topics []cluster.Topic
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

		var t cluster.Topic
		if err := json.Unmarshal(line, &t); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		if err := t.ValidateForCreate(); err != nil {
			return nil, fmt.Errorf("invalid topic at line %d: %w", lineNum, err)
		}
		topics = append(topics, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading topics file: %w", err)
	}

	return topics, nil
}

// WriteAllTopics writes all topics to a JSONL file, replacing existing content.
func WriteAllTopics(path string, topics []cluster.Topic) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating topics file: %w", err)
	}
	defer f.Close()

	for _, t := range topics {
		if err := writeJSONLine(f, t); err != nil {
			return err
		}
	}

	return nil
}
