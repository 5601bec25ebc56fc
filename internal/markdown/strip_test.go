package markdown

import "testing"

func TestStrip(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"**Bold** claim", "Bold claim"},
		{"## Heading\nbody", "Heading\nbody"},
		{"Run `go test` now", "Run go test now"},
		{"Issue #42 stays", "Issue #42 stays"},
		{"  ### Trailing  \n", "Trailing"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Strip(tc.in); got != tc.want {
			t.Errorf("Strip(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}
