// Package scenereleasex converts scene-release-style names — the compact,
// delimiter-separated filenames and directory names used by media
// distribution groups — into structured metadata: title, year,
// season/episode numbers, source, codec, resolution, audio, release group,
// flags, languages, external identifiers, edition, HDR tier and streaming
// provider.
//
// The engine is a pure string-to-structure transform. It performs no I/O,
// keeps no state between calls, and its tag lexicon is immutable after
// process start, so every entry point is safe for concurrent use without
// locks. Parsing is deliberately tolerant: fields that cannot be determined
// are simply left unset, and only ParsePath can fail at all (structurally,
// when a path has no parseable leaf segment).
package scenereleasex

// Parse classifies a single release name under the given release type.
// It always returns a record; unrecognizable input yields a best-effort
// title-only result.
func Parse(releaseType ReleaseType, name string) *ParsedRelease {
	return NewParser(releaseType).Parse(name)
}

// ParsePath parses a directory + file path, reconciling season information
// across segments. See Parser.ParsePath.
func ParsePath(releaseType ReleaseType, path string) (*PathInfo, error) {
	return NewParser(releaseType).ParsePath(path)
}

// ParseSeriesDirectory parses a series directory name.
func ParseSeriesDirectory(name string) *ParsedRelease {
	return NewParser(ReleaseTypeSeries).Parse(name)
}

// ParseMovieDirectory parses a movie directory name.
func ParseMovieDirectory(name string) *ParsedRelease {
	return NewParser(ReleaseTypeMovie).Parse(name)
}

// ParseSeasonDirectory extracts a season number from a season directory
// name. The second return value is false when no season grammar matches.
func ParseSeasonDirectory(name string) (int, bool) {
	return NewParser(ReleaseTypeTV).ParseSeasonDirectory(name)
}
