//go:build go1.18

package domain

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"
)

// FuzzParseName checks that parsing never panics and that every accepted name
// satisfies all Name invariants while keeping the input unchanged.
func FuzzParseName(f *testing.F) {
	f.Add("")
	f.Add("Sergey Nekhoroshev")
	f.Add("   ")
	f.Add(strings.Repeat("a", 257))
	f.Add("a/b")
	f.Add("'; DROP TABLE subscriptions;--")
	f.Add(string([]byte{0xff, 0xfe, 0x00}))

	f.Fuzz(func(t *testing.T, input string) {
		n, err := ParseName(input)
		if err != nil {
			if n != (Name{}) {
				t.Error("failed parse returned a non-zero Name")
			}
			return
		}

		if n.String() != input {
			t.Errorf("accepted name changed: %q -> %q", input, n.String())
		}
		if strings.TrimSpace(input) == "" {
			t.Errorf("blank name accepted: %q", input)
		}
		if uniseg.GraphemeClusterCount(input) > MaxNameLength {
			t.Errorf("over-long name accepted (%d graphemes)", uniseg.GraphemeClusterCount(input))
		}
		if strings.ContainsAny(input, ForbiddenNameCharacters) {
			t.Errorf("name with forbidden character accepted: %q", input)
		}
	})
}
