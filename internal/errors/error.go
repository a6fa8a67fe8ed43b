package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category groups error codes by the subsystem that reports them.
type Category string

const (
	CategoryRender   Category = "render"
	CategoryContent  Category = "content"
	CategoryConfig   Category = "config"
	CategoryDocument Category = "document"
	CategoryPublish  Category = "publish"
	CategoryCLI      Category = "cli"
)

// Location is a position in a source file (a page document or kiln.json).
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as file:line[:column].
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// KilnError is a structured error with a registered code.
type KilnError struct {
	// Code is the registered identifier (e.g. "K101").
	Code string

	// Category is the reporting subsystem.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail carries the specifics of this occurrence.
	Detail string

	// Location points into the source file, if any.
	Location *Location

	// Context holds the source lines around Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL links to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *KilnError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *KilnError) Unwrap() error {
	return e.Wrapped
}

// Is matches another *KilnError with the same code, so callers can test
// errors.Is(err, errors.New("K110")).
func (e *KilnError) Is(target error) bool {
	t, ok := target.(*KilnError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithLocation attaches a source position and reads the surrounding lines.
func (e *KilnError) WithLocation(file string, line, column int) *KilnError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithDetail sets the occurrence-specific detail.
func (e *KilnError) WithDetail(d string) *KilnError {
	e.Detail = d
	return e
}

// WithDetailf sets a formatted detail.
func (e *KilnError) WithDetailf(format string, args ...any) *KilnError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix hint.
func (e *KilnError) WithSuggestion(s string) *KilnError {
	e.Suggestion = s
	return e
}

// Wrap sets the underlying error.
func (e *KilnError) Wrap(err error) *KilnError {
	e.Wrapped = err
	return e
}

func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a KilnError from a registered code. Unknown codes produce an
// error with the code set and a generic message.
func New(code string) *KilnError {
	template, ok := registry[code]
	if !ok {
		return &KilnError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &KilnError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Hint,
		DocURL:     template.DocURL,
	}
}

// Newf creates an uncoded error with a formatted message.
func Newf(category Category, format string, args ...any) *KilnError {
	return &KilnError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError returns err as a *KilnError, wrapping it under code when it is
// not one already.
func FromError(err error, code string) *KilnError {
	if err == nil {
		return nil
	}
	var ke *KilnError
	if stderrors.As(err, &ke) {
		return ke
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first *KilnError in err's chain, or "".
func CodeOf(err error) string {
	var ke *KilnError
	if stderrors.As(err, &ke) {
		return ke.Code
	}
	return ""
}
