// Package ids recognizes external catalog identifiers embedded in release
// names, following the TRaSH Guides naming conventions: {tmdb-345691},
// [tvdb-123], {imdb-tt1234567} and {edition-Extended Cut}.
// See: https://trash-guides.info/
package ids

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hiddenpdx/scene-releasex/internal/token"
)

// Patterns are matched against the inner text of bracketed tokens; the
// tokenizer has already removed the surrounding braces or brackets.
var (
	tmdbRe    = regexp.MustCompile(`(?i)^tmdb(?:id)?[-=](\d+)$`)
	tvdbRe    = regexp.MustCompile(`(?i)^tvdb(?:id)?[-=](\d+)$`)
	imdbRe    = regexp.MustCompile(`(?i)^imdb(?:id)?[-=]?(tt\d+)$`)
	editionRe = regexp.MustCompile(`(?i)^edition-(.+)$`)

	digitsRe = regexp.MustCompile(`^\d+$`)
	imdbIDRe = regexp.MustCompile(`(?i)^tt\d+$`)
)

var editionCaser = cases.Title(language.English)

// Set holds the identifiers pulled out of a single name.
type Set struct {
	TMDB    string
	TVDB    string
	IMDB    string
	Edition string
}

// Extract scans the token stream for identifier patterns, removes the
// matching tokens, and returns the remaining stream untouched otherwise.
// Unmatched bracketed content is left in place for generic classification.
func Extract(tokens []token.Token) (Set, []token.Token) {
	var set Set
	kept := make([]token.Token, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Bracketed && set.matchInner(tok.Text) {
			continue
		}

		// Unbracketed suffix forms arrive split in two because the
		// tokenizer treats the hyphen as a delimiter: "tmdb" + "345691".
		if i+1 < len(tokens) && tokens[i+1].Hyphenated && !tokens[i+1].Bracketed {
			if set.matchPair(tok.Text, tokens[i+1].Text) {
				i++
				continue
			}
		}

		kept = append(kept, tok)
	}

	return set, kept
}

// matchInner classifies a whole bracketed segment.
func (s *Set) matchInner(text string) bool {
	if m := tmdbRe.FindStringSubmatch(text); m != nil {
		s.TMDB = m[1]
		return true
	}
	if m := tvdbRe.FindStringSubmatch(text); m != nil {
		s.TVDB = m[1]
		return true
	}
	if m := imdbRe.FindStringSubmatch(text); m != nil {
		s.IMDB = strings.ToLower(m[1])
		return true
	}
	if m := editionRe.FindStringSubmatch(text); m != nil {
		s.Edition = normalizeEditionLabel(m[1])
		return true
	}
	return false
}

// matchPair classifies a split suffix form: a bare key token followed by a
// hyphenated value token.
func (s *Set) matchPair(key, value string) bool {
	switch strings.ToLower(key) {
	case "tmdb", "tmdbid":
		if digitsRe.MatchString(value) {
			s.TMDB = value
			return true
		}
	case "tvdb", "tvdbid":
		if digitsRe.MatchString(value) {
			s.TVDB = value
			return true
		}
	case "imdb", "imdbid":
		if imdbIDRe.MatchString(value) {
			s.IMDB = strings.ToLower(value)
			return true
		}
	}
	return false
}

// normalizeEditionLabel cleans a free-text edition label from an
// {edition-...} segment: underscores become spaces and the label is
// title-cased for display.
func normalizeEditionLabel(raw string) string {
	s := strings.ReplaceAll(raw, "_", " ")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return editionCaser.String(strings.ToLower(s))
}
