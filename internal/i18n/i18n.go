// File path: internal/i18n/i18n.go

// Package i18n resolves display strings for the documentation generator.
// Format strings carry placeholders of the form [name:inner] (or [name] with
// no inner text); each placeholder is bound to a markup node that wraps or
// replaces the inner text. Translation is a pure function: the same format and
// bindings always produce the same output, rendered as markdown for the docs
// UI.
package i18n

import (
	"fmt"
	"strings"
)

// Node renders inline markup around a placeholder's inner text.
type Node interface {
	Render(inner string) string
}

// Bindings maps placeholder names to their markup nodes.
type Bindings map[string]Node

// Text replaces the placeholder with literal text, discarding the inner text.
type Text string

func (t Text) Render(string) string { return string(t) }

// Code wraps the inner text in inline code markup.
type Code struct{}

func (Code) Render(inner string) string { return "`" + inner + "`" }

// Strong wraps the inner text in bold markup.
type Strong struct{}

func (Strong) Render(inner string) string { return "**" + inner + "**" }

// Link wraps the inner text in a markdown link pointing at Href.
type Link struct {
	Href string
}

func (l Link) Render(inner string) string {
	return fmt.Sprintf("[%s](%s)", inner, l.Href)
}

// Translate substitutes every bound placeholder in format. Placeholders with
// no binding, and brackets that do not form a placeholder, pass through
// unchanged. Nested placeholders are not supported.
func Translate(format string, bindings Bindings) string {
	var out strings.Builder
	remaining := format
	for {
		open := strings.IndexByte(remaining, '[')
		if open < 0 {
			out.WriteString(remaining)
			return out.String()
		}
		closing := strings.IndexByte(remaining[open:], ']')
		if closing < 0 {
			out.WriteString(remaining)
			return out.String()
		}
		closing += open
		name := remaining[open+1 : closing]
		inner := ""
		if sep := strings.IndexByte(name, ':'); sep >= 0 {
			inner = name[sep+1:]
			name = name[:sep]
		}
		node, ok := bindings[name]
		if !ok {
			out.WriteString(remaining[:closing+1])
			remaining = remaining[closing+1:]
			continue
		}
		out.WriteString(remaining[:open])
		out.WriteString(node.Render(inner))
		remaining = remaining[closing+1:]
	}
}
