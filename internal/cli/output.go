package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// IDGetter is implemented by results that have a single identifier
type IDGetter interface {
	GetID() string
}

// IDsGetter is implemented by list results for quiet mode
type IDsGetter interface {
	GetIDs() []string
}

// HumanRenderer is implemented by results with a styled terminal view
type HumanRenderer interface {
	Human() string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case IDGetter:
			fmt.Println(v.GetID())
		case IDsGetter:
			for _, id := range v.GetIDs() {
				fmt.Println(id)
			}
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if r, ok := data.(HumanRenderer); ok {
		fmt.Println(r.Human())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}
