package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oskarw/pantrylist/internal/grocery"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (conflict, entry not found)
	ExitCommandError = 2 // Command error (bad flags, database unavailable)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// FormatEntries renders a grocery list as text, one entry per line in
// creation order:
//
//	[ ] Coca Cola 330ml Can  (auto)
//	[x] Dish Soap  (manual)
//
// Brand and name are joined with a space; the ownership tag shows who
// manages the entry.
func FormatEntries(entries []grocery.Entry) string {
	if len(entries) == 0 {
		return "(empty list)\n"
	}

	var b strings.Builder
	for _, e := range entries {
		mark := " "
		if e.Checked {
			mark = "x"
		}

		label := e.Name
		if e.Brand != "" {
			label = e.Brand + " " + e.Name
		}

		fmt.Fprintf(&b, "[%s] %s  (%s)\n", mark, label, e.Ownership)
	}
	return b.String()
}

// entryJSON is the JSON output shape for a single entry.
type entryJSON struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand,omitempty"`
	Name      string    `json:"name"`
	Checked   bool      `json:"checked"`
	Ownership string    `json:"ownership"`
	AddedAt   time.Time `json:"added_at"`
}

// FormatEntriesJSON renders a grocery list as indented JSON.
func FormatEntriesJSON(entries []grocery.Entry) (string, error) {
	out := make([]entryJSON, len(entries))
	for i, e := range entries {
		out[i] = entryJSON{
			ID:        e.ID,
			Brand:     e.Brand,
			Name:      e.Name,
			Checked:   e.Checked,
			Ownership: e.Ownership.String(),
			AddedAt:   e.AddedAt,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal entries: %w", err)
	}
	return string(data) + "\n", nil
}
