// Package render turns stored free text into markup that is safe to embed.
package render

import (
	"html/template"
	"strings"
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NL2BR escapes raw and replaces each line break with <br>.
// The result is marked safe for direct embedding.
func NL2BR(raw string) template.HTML {
	escaped := template.HTMLEscapeString(lineBreaks.Replace(raw))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
