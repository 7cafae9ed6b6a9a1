package scenereleasex

import "errors"

// ReleaseType selects which naming conventions the parser expects and which
// fields of the result are semantically applicable.
type ReleaseType string

const (
	// ReleaseTypeMovie parses movie files and directories; season and
	// episode grammars are not applied.
	ReleaseTypeMovie ReleaseType = "movie"

	// ReleaseTypeTV parses episode files with the full season/episode,
	// multi-episode and air-date grammars.
	ReleaseTypeTV ReleaseType = "tv"

	// ReleaseTypeSeries parses series directory names (typically title +
	// year, optionally a season marker, no episode grammar).
	ReleaseTypeSeries ReleaseType = "series"

	// ReleaseTypeSeason parses season directory names.
	ReleaseTypeSeason ReleaseType = "season"
)

// ErrUnparseablePath is reported by ParsePath when the path cannot be
// decomposed into a non-empty leaf segment. A degraded-but-successful parse
// never produces this error.
var ErrUnparseablePath = errors.New("path has no parseable leaf segment")

// ParsedRelease is the structured classification of one release name.
// It is a pure function of the input string: a fresh record is allocated per
// parse call and never mutated afterward. Optional integers are nil when the
// name carries no such information; optional strings are empty.
type ParsedRelease struct {
	// Release is the normalized input: surrounding whitespace and any
	// recognized media extension removed, separators kept as-is.
	Release string

	// Title is the best-effort extracted title. Empty when the name starts
	// with tag or grammar tokens.
	Title string

	// EpisodeTitle is the sub-title text found between an episode marker
	// and the next recognized tag, when any exists.
	EpisodeTitle string

	// Group is the trailing release-group name. Unset when no tag tokens
	// separate it from the title.
	Group string

	Year    *int
	Date    string
	Season  *int
	Episode *int

	// Episodes is the ascending, duplicate-free multi-episode span. When
	// non-empty, Episode equals its minimum.
	Episodes []int

	Disc *int

	// Flags are normalized uppercase marker tokens (PROPER, REPACK, ...)
	// in order of first appearance, without duplicates.
	Flags []string

	Source     string
	Format     string
	Resolution string
	Audio      string
	Device     string
	OS         string
	Version    string

	// Language maps lowercase ISO 639-1 codes to display names.
	Language map[string]string

	TMDBID string
	TVDBID string
	IMDBID string

	Edition           string
	HDR               string
	StreamingProvider string

	// Type echoes the ReleaseType the parse ran under.
	Type ReleaseType
}

// AddFlag appends a normalized flag unless it is already present.
func (r *ParsedRelease) AddFlag(flag string) {
	for _, f := range r.Flags {
		if f == flag {
			return
		}
	}
	r.Flags = append(r.Flags, flag)
}

// AddLanguage records a language code with its display name.
func (r *ParsedRelease) AddLanguage(code, display string) {
	if r.Language == nil {
		r.Language = make(map[string]string, 2)
	}
	r.Language[code] = display
}

// PathInfo is the composed result of parsing a multi-segment path.
type PathInfo struct {
	// Directory is the parse of the immediate parent segment, when the
	// path has one.
	Directory *ParsedRelease

	// Season is the season resolved for the path as a whole: the leaf's
	// own season when present, otherwise the season recognized from the
	// parent directory name.
	Season *int

	// File is the parse of the leaf segment.
	File *ParsedRelease

	// FullPath is the original input, unmodified.
	FullPath string
}
