package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"teeny/internal/lexer"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is a pipeline failure prepared for display
type CompilerError struct {
	Level       ErrorLevel
	Code        string         // Error code like E0001
	Message     string         // Primary error message
	Position    lexer.Position // Location in source
	Length      int            // Length of the problematic region
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Error renders the diagnostic on one line: "3:7: error[E0100]: message".
func (e CompilerError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s: %s", e.Position, e.Level, e.Message)
	}
	return fmt.Sprintf("%s: %s[%s]: %s", e.Position, e.Level, e.Code, e.Message)
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string         // Description of the suggestion
	Replacement string         // Suggested replacement text (optional)
	Position    lexer.Position // Position to apply the fix (optional)
	Length      int            // Length of text to replace (optional)
}

// ErrorReporter renders diagnostics against the source they came from
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError formats a compiler error with Rust-like styling and suggestions
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0001]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	// Location line: --> filename:line:column
	lineNumberWidth := er.getLineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)
	gutter := dim("│")

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, gutter))

	if err.Position.Line > 1 && err.Position.Line-1 <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line-1)),
			gutter,
			er.lines[err.Position.Line-2]))
	}

	if err.Position.Line > 0 && err.Position.Line <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
			gutter,
			er.lines[err.Position.Line-1]))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, gutter, er.createMarker(err.Position.Column, err.Length, err.Level)))
	}

	if len(err.Suggestions) > 0 {
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s\n", indent, gutter))
		for i, suggestion := range err.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n",
					indent, suggestionColor("help"), suggestionColor("try"), suggestion.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("    "), suggestion.Message))
			}

			if suggestion.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("│"), suggestionColor(suggestion.Replacement)))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, gutter, noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, gutter, helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatErrors renders several diagnostics followed by a summary line.
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var result strings.Builder
	errorCount, warningCount := 0, 0
	for _, err := range errs {
		result.WriteString(er.FormatError(err))
		switch err.Level {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}
	}

	switch {
	case errorCount > 0:
		result.WriteString(er.getLevelColor(Error)(fmt.Sprintf("%s: could not compile due to %s", er.filename, plural(errorCount, "error"))))
		result.WriteString("\n")
	case warningCount > 0:
		result.WriteString(er.getLevelColor(Warning)(fmt.Sprintf("%s: %s emitted", er.filename, plural(warningCount, "warning"))))
		result.WriteString("\n")
	}
	return result.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 previous %s", word)
	}
	return fmt.Sprintf("%d previous %ss", n, word)
}

func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker underlines the offending region with carets
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", length))
}

func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
