package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// JSONData returns the "data" object of a successful JSON response
func JSONData(t *testing.T, output string) map[string]any {
	t.Helper()

	result := ParseJSON(t, output)
	if ok, _ := result["success"].(bool); !ok {
		t.Fatalf("Expected success response, got: %s", output)
	}
	data, ok := result["data"].(map[string]any)
	if !ok {
		t.Fatalf("Expected data object, got: %s", output)
	}
	return data
}

// Lines splits quiet mode output into non-empty lines
func Lines(output string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
