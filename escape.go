package view

import (
	"fmt"
	"strings"
)

// htmlEscaper neutralizes the characters that are significant in HTML
// markup and attribute values.
var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#x27;",
	`/`, "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// EscapeHTML returns s with markup-significant characters replaced by their
// HTML entities. Alphanumeric text passes through unchanged.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// stringify converts a variable value to the text that gets substituted into
// a template. nil becomes the empty string.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// escapeVars stringifies and escapes every value in vars.
func escapeVars(vars Vars) map[string]string {
	res := make(map[string]string, len(vars))
	for k, v := range vars {
		res[k] = EscapeHTML(stringify(v))
	}
	return res
}
