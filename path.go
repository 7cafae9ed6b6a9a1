package scenereleasex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hiddenpdx/scene-releasex/internal/token"
)

// ParsePath parses a multi-segment path: the leaf segment with the full
// pipeline and, when present, the immediate parent segment as a
// directory-level release. The composed season prefers the leaf's own season
// and falls back to the one recognized from the parent directory name.
//
// It fails only structurally: when the path has no leaf segment with any
// token content, ErrUnparseablePath is returned. A degraded leaf parse is
// still a success.
func (p *Parser) ParsePath(path string) (*PathInfo, error) {
	segments := splitPathSegments(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("parse path %q: %w", path, ErrUnparseablePath)
	}

	leaf := segments[len(segments)-1]
	if len(token.Split(stripExtension(strings.TrimSpace(leaf)))) == 0 {
		return nil, fmt.Errorf("parse path %q: %w", path, ErrUnparseablePath)
	}

	info := &PathInfo{
		File:     p.Parse(leaf),
		FullPath: path,
	}
	info.Season = info.File.Season

	if len(segments) >= 2 {
		parent := segments[len(segments)-2]
		info.Directory = p.parseDirectory(parent)
		if info.Season == nil {
			if n, ok := p.ParseSeasonDirectory(parent); ok {
				info.Season = &n
			} else if info.Directory != nil && info.Directory.Season != nil {
				info.Season = info.Directory.Season
			}
		}
	}

	return info, nil
}

// ParseSeasonDirectory runs the reduced season-folder grammar: "Season N",
// "Series N", "S03" and, matching common library layouts, a folder name that
// is nothing but a small number. Absence is reported with ok=false, never as
// an error.
func (p *Parser) ParseSeasonDirectory(name string) (int, bool) {
	tokens := token.Split(strings.TrimSpace(name))
	for i, tok := range tokens {
		fold := strings.ToLower(tok.Text)
		if fold == "season" || fold == "series" {
			if i+1 < len(tokens) && isSmallNumber(tokens[i+1].Text) {
				n, _ := strconv.Atoi(tokens[i+1].Text)
				return n, true
			}
			continue
		}
		if n, ok := matchSeasonOnly(tok.Text); ok {
			return n, true
		}
	}
	if len(tokens) == 1 && isSmallNumber(tokens[0].Text) {
		n, _ := strconv.Atoi(tokens[0].Text)
		return n, true
	}
	return 0, false
}

// parseDirectory parses a parent path segment with directory conventions:
// season folders as season releases, everything else according to the
// parser's own release type.
func (p *Parser) parseDirectory(name string) *ParsedRelease {
	if _, ok := p.ParseSeasonDirectory(name); ok {
		return NewParser(ReleaseTypeSeason).Parse(name)
	}
	if p.releaseType == ReleaseTypeMovie {
		return NewParser(ReleaseTypeMovie).Parse(name)
	}
	return NewParser(ReleaseTypeSeries).Parse(name)
}

// splitPathSegments splits on both separator styles and drops blank
// segments, so absolute paths and trailing separators compose cleanly.
func splitPathSegments(path string) []string {
	raw := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	segments := raw[:0]
	for _, seg := range raw {
		if strings.TrimSpace(seg) != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// isSmallNumber reports whether text is a bare one- or two-digit number.
func isSmallNumber(text string) bool {
	return len(text) > 0 && len(text) <= 2 && numericRe.MatchString(text)
}
