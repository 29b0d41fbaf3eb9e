package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/citebridge/internal/paper"
)

// ReadAllLLMPapers reads all LLM paper metadata records from a JSONL file.
// Returns an error if any record fails structural validation (fail-fast).
func ReadAllLLMPapers(path string) ([]paper.LLMPaper, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Empty file returns empty slice
		}
		return nil, fmt.Errorf("opening llm papers file: %w", err)
	}
	defer f.Close()

	var papers []paper.LLMPaper
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

		var p paper.LLMPaper
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		if err := p.ValidateForCreate(); err != nil {
			return nil, fmt.Errorf("invalid llm paper at line %d: %w", lineNum, err)
		}
		papers = append(papers, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading llm papers file: %w", err)
	}

	return papers, nil
}

// WriteAllLLMPapers writes all LLM papers to a JSONL file, replacing existing content.
func WriteAllLLMPapers(path string, papers []paper.LLMPaper) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating llm papers file: %w", err)
	}
	defer f.Close()

	for _, p := range papers {
		if err := writeJSONLine(f, p); err != nil {
			return err
		}
	}

	return nil
}

// ReadAllPsychPapers reads all psychology paper metadata records from a JSONL file.
// Returns an error if any record fails structural validation (fail-fast).
func ReadAllPsychPapers(path string) ([]paper.PsychPaper, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Empty file returns empty slice
		}
		return nil, fmt.Errorf("opening psych papers file: %w", err)
	}
	defer f.Close()

	var papers []paper.PsychPaper
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

		var p paper.PsychPaper
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		if err := p.ValidateForCreate(); err != nil {
			return nil, fmt.Errorf("invalid psych paper at line %d: %w", lineNum, err)
		}
		papers = append(papers, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading psych papers file: %w", err)
	}

	return papers, nil
}

// WriteAllPsychPapers writes all psychology papers to a JSONL file, replacing existing content.
func WriteAllPsychPapers(path string, papers []paper.PsychPaper) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating psych papers file: %w", err)
	}
	defer f.Close()

	for _, p := range papers {
		if err := writeJSONLine(f, p); err != nil {
			return err
		}
	}

	return nil
}

// AppendPsychPaper adds a psychology paper to the end of a JSONL file.
func AppendPsychPaper(path string, p paper.PsychPaper) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening psych papers file for append: %w", err)
	}
	defer f.Close()

	return writeJSONLine(f, p)
}
