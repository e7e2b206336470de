package genre

import "testing"

func TestResolveByName(t *testing.T) {
	cases := []struct {
		artistName string
		want       string
	}{
		{"taylor swift", "Pop"},
		{"Taylor Swift", "Pop"},
		{"  TAYLOR SWIFT  ", "Pop"},
		{"metallica", "Metal"},
		{"nobody has heard of this band", Other},
		{"", Other},
	}
	for _, c := range cases {
		if got := Resolve("", c.artistName); got != c.want {
			t.Errorf("Resolve(%q) = %q, want %q", c.artistName, got, c.want)
		}
	}
}

func TestResolveByArtistID(t *testing.T) {
	// Keyed by opaque Spotify ID, not a name.
	if got := Resolve("06HL4z0CvFAxyc27GXpf02", "Completely Wrong Name"); got != "Pop" {
		t.Errorf("Resolve by id = %q, want Pop", got)
	}
	// Unknown ID falls through to the name.
	if got := Resolve("unknown-id", "metallica"); got != "Metal" {
		t.Errorf("Resolve with unknown id = %q, want Metal", got)
	}
}

func TestResolveExactCaseEntry(t *testing.T) {
	// Some legacy entries are keyed with their original casing.
	if got := Resolve("", "2Pac"); got != "Hip Hop" {
		t.Errorf("Resolve(2Pac) = %q, want Hip Hop", got)
	}
}

func TestResolveObjectShapedEntry(t *testing.T) {
	if got := Resolve("", "tool"); got != "Metal" {
		t.Errorf("Resolve(tool) = %q, want Metal", got)
	}
}

func TestAllIncludesOther(t *testing.T) {
	genres := All()
	found := false
	for _, g := range genres {
		if g == Other {
			found = true
		}
	}
	if !found {
		t.Error("All() does not include Other")
	}
	for i := 1; i < len(genres); i++ {
		if genres[i-1] >= genres[i] {
			t.Fatalf("All() not sorted: %q before %q", genres[i-1], genres[i])
		}
	}
}
