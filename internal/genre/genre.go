// Package genre maps artists to a closed set of canonical genres via a
// static lookup table embedded at build time.
package genre

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

const Other = "Other"

// Canonical is the closed genre set used throughout genre analytics.
var Canonical = []string{
	"Pop",
	"Hip Hop",
	"R&B",
	"Rock",
	"Metal",
	"EDM",
	"House/Techno",
	"Indie/Alternative",
	"K-Pop",
	"Jazz",
	"Classical",
	"Latin",
	"Country",
	"Soundtrack",
	"Podcast",
	Other,
}

//go:embed genres.json
var mappingData []byte

// entry handles both mapping-file shapes: a bare genre string and the
// richer {primaryGenre, rawGenres} object.
type entry struct {
	PrimaryGenre string
	RawGenres    []string
}

func (e *entry) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		e.PrimaryGenre = bare
		return nil
	}

	var obj struct {
		PrimaryGenre string   `json:"primaryGenre"`
		RawGenres    []string `json:"rawGenres"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.PrimaryGenre = obj.PrimaryGenre
	e.RawGenres = obj.RawGenres
	return nil
}

// mapping is keyed by opaque artist ID or lowercase artist name, resolved
// to the primary genre once at load time.
var mapping = mustLoad(mappingData)

func mustLoad(data []byte) map[string]string {
	var raw map[string]entry
	if err := json.Unmarshal(data, &raw); err != nil {
		panic(fmt.Sprintf("genre: invalid embedded mapping: %v", err))
	}
	m := make(map[string]string, len(raw))
	for key, e := range raw {
		m[key] = e.PrimaryGenre
	}
	return m
}

// Resolve maps an artist to a canonical genre: by opaque ID first, then
// by normalized name, then by exact name for legacy entries keyed with
// their original casing. Falls back to Other.
func Resolve(artistID, artistName string) string {
	if artistID != "" {
		if g, ok := mapping[artistID]; ok {
			return g
		}
	}
	if artistName != "" {
		if g, ok := mapping[strings.ToLower(strings.TrimSpace(artistName))]; ok {
			return g
		}
		if g, ok := mapping[artistName]; ok {
			return g
		}
	}
	return Other
}

// All returns every genre present in the mapping plus Other, sorted.
func All() []string {
	seen := map[string]bool{Other: true}
	for _, g := range mapping {
		seen[g] = true
	}
	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}
