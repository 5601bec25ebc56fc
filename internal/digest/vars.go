package digest

import (
	"strings"
	"time"
)

// ExpandVars performs simple placeholder substitutions for config-provided
// text fields such as the message title.
//
// Supported variables:
// - {.CurrentDate} => YYYY-MM-DD in now's location
func ExpandVars(s string, now time.Time) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	return strings.ReplaceAll(s, "{.CurrentDate}", now.Format("2006-01-02"))
}
