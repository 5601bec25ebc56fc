package markdown

import (
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`#{1,6}\s`)

// Strip removes the markdown emphasis, heading and code markers that chat
// models tend to emit, so text can be embedded in plain-text contexts.
func Strip(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = headingRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "`", "")
	return strings.TrimSpace(s)
}
