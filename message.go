package govalid

import (
	"fmt"
	"strings"
)

// MessageProvider supplies localized or customized text for an issue code.
// It is consulted only when a rule has no caller-supplied custom message;
// returning "" makes the rule fall back to its built-in default template.
//
// The resolution order at issue-construction time is a strict priority
// chain with no merging: custom message > provider > built-in default.
type MessageProvider interface {
	Message(code, property string, params map[string]any) string
}

// RenderMessage substitutes {property} and {param} placeholders in a message
// template. Unknown placeholders are left untouched.
func RenderMessage(template, property string, params map[string]any) string {
	if template == "" {
		return ""
	}
	if !strings.ContainsRune(template, '{') {
		return template
	}
	pairs := make([]string, 0, 2*(len(params)+1))
	pairs = append(pairs, "{property}", property)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
