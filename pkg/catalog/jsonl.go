// This file reads curated catalog files in JSONL form: one indicator per
// line. Curation happens outside this module; the file is its hand-off
// format.
package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/impact-mesh/lantern/pkg/types"
)

// indicatorLine decodes one JSONL line. Active is a pointer so an absent
// field defaults to true: curated files only mention the flag to retire.
type indicatorLine struct {
	types.Indicator
	Active *bool `json:"active"`
}

// ReadJSONL parses indicators from r, one JSON object per line. Blank lines
// are skipped; a malformed line is an error, not a skip, because a curated
// catalog file is authored, not accumulated.
func ReadJSONL(r io.Reader) ([]*types.Indicator, error) {
	var indicators []*types.Indicator

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec indicatorLine
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		ind := rec.Indicator
		ind.Active = true
		if rec.Active != nil {
			ind.Active = *rec.Active
		}
		indicators = append(indicators, &ind)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning catalog file: %w", err)
	}

	return indicators, nil
}

// ReadJSONLFile reads a curated catalog file from disk.
func ReadJSONLFile(path string) ([]*types.Indicator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadJSONL(f)
}
