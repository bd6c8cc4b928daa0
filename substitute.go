package view

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrUndefinedVariable is returned when a template placeholder refers
	// to a variable that wasn't supplied.
	ErrUndefinedVariable = errors.New("variable is not defined")

	// ErrInvalidPlaceholder is returned when the text between a pair of
	// delimiters isn't an identifier.
	ErrInvalidPlaceholder = errors.New("placeholder is not an identifier")

	// ErrEmptyDelimiter is returned when Delimiters has an empty Left or
	// Right value.
	ErrEmptyDelimiter = errors.New("delimiters must not be empty")
)

// Delimiters are the markers surrounding a placeholder in a template.
type Delimiters struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// DefaultDelimiters are the {{ and }} markers.
var DefaultDelimiters = Delimiters{Left: "{{", Right: "}}"}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// substituter replaces placeholders in template text. Each Renderer owns
// one, compiled from its own Delimiters.
type substituter struct {
	delims      Delimiters
	placeholder *regexp.Regexp
}

func newSubstituter(delims Delimiters) (*substituter, error) {
	if delims.Left == "" || delims.Right == "" {
		return nil, ErrEmptyDelimiter
	}
	pattern := `(?s)` + regexp.QuoteMeta(delims.Left) + `(.+?)` + regexp.QuoteMeta(delims.Right)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("error compiling placeholder pattern for %q %q: %w", delims.Left, delims.Right, err)
	}
	return &substituter{delims: delims, placeholder: re}, nil
}

// execute replaces every placeholder in text with its value from values.
//
// If any placeholder can't be resolved, the returned error wraps
// ErrUndefinedVariable or ErrInvalidPlaceholder for each one, and the
// returned string is a best-effort rendering with those placeholders left
// empty.
func (s *substituter) execute(text string, values map[string]string) (string, error) {
	var (
		out  strings.Builder
		errs []error
		last int
	)
	out.Grow(len(text))
	for _, loc := range s.placeholder.FindAllStringSubmatchIndex(text, -1) {
		out.WriteString(text[last:loc[0]])
		last = loc[1]

		name := strings.TrimSpace(text[loc[2]:loc[3]])
		if !identifierPattern.MatchString(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidPlaceholder, name))
			continue
		}
		value, ok := values[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUndefinedVariable, name))
			continue
		}
		out.WriteString(value)
	}
	out.WriteString(text[last:])
	return out.String(), errors.Join(errs...)
}
