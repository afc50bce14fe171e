package channel

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "strips leading hash", raw: "#somestreamer", want: "somestreamer"},
		{name: "lowercases", raw: "#SomeStreamer", want: "somestreamer"},
		{name: "no hash", raw: "plainchannel", want: "plainchannel"},
		{name: "trims whitespace", raw: "  #chan  ", want: "chan"},
		{name: "percent-encodes unsafe runes", raw: "weird channel", want: "weird%20channel"},
		{name: "escapes percent itself", raw: "already%20safe", want: "already%2520safe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.raw); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAliasMapResolve(t *testing.T) {
	m := NewAliasMap()
	m.Register("12345", "somestreamer")

	if got := m.Resolve("12345"); got != "somestreamer" {
		t.Errorf("Resolve(alias) = %q, want %q", got, "somestreamer")
	}
	if got := m.Resolve("#SomeStreamer"); got != "somestreamer" {
		t.Errorf("Resolve(raw) = %q, want canonical %q", got, "somestreamer")
	}

	// Unregistered IDs fall back to canonicalization.
	if got := m.Resolve("99999"); got != "99999" {
		t.Errorf("Resolve(unknown) = %q, want %q", got, "99999")
	}

	// Empty aliases are ignored.
	m.Register("", "ghost")
	if got := m.Resolve(""); got != "" {
		t.Errorf("Resolve(empty) = %q, want empty", got)
	}
}
