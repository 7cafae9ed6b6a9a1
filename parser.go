package scenereleasex

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hiddenpdx/scene-releasex/internal/ids"
	"github.com/hiddenpdx/scene-releasex/internal/lexicon"
	"github.com/hiddenpdx/scene-releasex/internal/token"
)

// Parser classifies release names under a fixed ReleaseType. It carries no
// mutable state: every Parse call depends only on its input and the immutable
// lexicon, so a single Parser is safe for concurrent use.
type Parser struct {
	releaseType ReleaseType
}

// NewParser creates a parser for the given release type. Unknown values fall
// back to movie conventions.
func NewParser(releaseType ReleaseType) *Parser {
	switch releaseType {
	case ReleaseTypeMovie, ReleaseTypeTV, ReleaseTypeSeries, ReleaseTypeSeason:
	default:
		releaseType = ReleaseTypeMovie
	}
	return &Parser{releaseType: releaseType}
}

// Parse classifies a single release name. It never fails: unrecognizable
// input degrades to a best-effort title-only record.
func (p *Parser) Parse(name string) *ParsedRelease {
	base := stripExtension(strings.TrimSpace(name))
	rel := &ParsedRelease{Release: base, Type: p.releaseType}

	set, tokens := ids.Extract(token.Split(base))
	rel.TMDBID = set.TMDB
	rel.TVDBID = set.TVDB
	rel.IMDBID = set.IMDB
	rel.Edition = set.Edition

	s := &scan{
		rel:          rel,
		tokens:       tokens,
		boundary:     -1,
		epMarker:     -1,
		firstTag:     -1,
		wantEpisodes: p.releaseType == ReleaseTypeTV,
		wantSeason:   p.releaseType != ReleaseTypeMovie,
	}
	s.run()

	return rel
}

// scanState tracks where the left-to-right token scan currently is.
type scanState int

const (
	// seekingTitleEnd accumulates title candidates until the first
	// classified token establishes the title boundary.
	seekingTitleEnd scanState = iota

	// consumingTags classifies everything after the title boundary.
	consumingTags

	// consumingEpisodeRange follows an episode marker and absorbs
	// hyphenated range continuations ("-E03", "-03").
	consumingEpisodeRange
)

// scan is the per-call segmentation pass. No state survives between calls.
type scan struct {
	rel    *ParsedRelease
	tokens []token.Token
	state  scanState

	boundary int // index of the first classified token, -1 while seeking
	epMarker int // index of the last episode-marker token, -1 when none
	firstTag int // first classified token index after epMarker, -1 when none

	episodes  []int
	unmatched []int // unclassified token indexes seen after the boundary

	wantEpisodes bool
	wantSeason   bool
}

func (s *scan) run() {
	for i := 0; i < len(s.tokens); {
		i += s.classify(i)
	}
	s.extractGroup()
	s.buildTitle()
	s.buildEpisodeTitle()
	s.finalizeEpisodes()
}

// classify inspects the token at i and returns how many tokens it consumed
// (always at least one). Rule order follows the ambiguity policy: grammar
// first, then year, then lexicon, with unknown tokens falling back to title
// candidates or group/episode-title material depending on the state.
func (s *scan) classify(i int) int {
	tok := s.tokens[i]
	text := tok.Text
	fold := strings.ToLower(text)

	if s.state == consumingEpisodeRange {
		if n, ok := rangeContinuation(tok); ok {
			s.extendEpisodes(n)
			s.epMarker = i
			return 1
		}
		s.state = consumingTags
	}

	if s.wantEpisodes {
		if n := s.classifyEpisodeGrammar(i, text, fold); n > 0 {
			return n
		}
	}
	if s.wantSeason {
		if n := s.classifySeasonGrammar(i, text, fold); n > 0 {
			return n
		}
	}

	// A leading year is almost always part of the title
	// ("2001 A Space Odyssey"); anywhere else it is a tag.
	if y, ok := matchYear(text); ok && i > 0 {
		s.markTag(i)
		if s.rel.Year == nil {
			s.rel.Year = &y
		}
		return 1
	}

	if d, ok := matchDisc(text); ok {
		s.markTag(i)
		if s.rel.Disc == nil {
			s.rel.Disc = &d
		}
		return 1
	}
	if (fold == "disc" || fold == "disk" || fold == "cd") && s.numericAt(i+1, 2) {
		n, _ := strconv.Atoi(s.tokens[i+1].Text)
		s.markTag(i)
		if s.rel.Disc == nil {
			s.rel.Disc = &n
		}
		return 2
	}

	if versionRe.MatchString(text) {
		s.markTag(i)
		if s.rel.Version == "" {
			s.rel.Version = text
		}
		return 1
	}

	// Lexicon: split compounds first (WEB + DL), then exact, then the
	// loose audio form that tolerates glued channel counts (DDP5).
	if i+1 < len(s.tokens) && !tok.Bracketed && !s.tokens[i+1].Bracketed {
		if m, ok := lexicon.LookupCompound(text, s.tokens[i+1].Text); ok && s.allowed(m) {
			s.markTag(i)
			s.assign(m, text)
			// DTS-HD MA arrives as three tokens.
			if m.Canonical == "DTS-HD" && i+2 < len(s.tokens) && strings.EqualFold(s.tokens[i+2].Text, "ma") {
				s.rel.Audio = "DTS-HD MA"
				return 3
			}
			return 2
		}
	}
	if m, ok := lexicon.Lookup(text); ok && s.allowed(m) {
		s.markTag(i)
		s.assign(m, text)
		return 1
	}
	if m, ok := lexicon.LookupLoose(text); ok && s.allowed(m) {
		s.markTag(i)
		s.assign(m, text)
		return 1
	}
	if s.state == consumingTags {
		if code, display, ok := lexicon.LanguageCode(text); ok {
			s.markTag(i)
			s.rel.AddLanguage(code, display)
			return 1
		}
	}

	if n := s.classifyGluedResolution(i, fold); n > 0 {
		return n
	}

	if s.state == seekingTitleEnd {
		return 1 // stays a title candidate
	}
	s.unmatched = append(s.unmatched, i)
	return 1
}

func (s *scan) classifyEpisodeGrammar(i int, text, fold string) int {
	if season, eps, ok := matchSeasonEpisode(text); ok {
		s.markTag(i)
		s.setSeason(season)
		s.episodes = append(s.episodes, eps...)
		s.epMarker = i
		s.state = consumingEpisodeRange
		return 1
	}
	if season, ep, ok := matchCrossEpisode(text); ok {
		s.markTag(i)
		s.setSeason(season)
		s.episodes = append(s.episodes, ep)
		s.epMarker = i
		s.state = consumingEpisodeRange
		return 1
	}
	// Air dates are a year/month/day token triplet; checked before the
	// generic year rule so "2023.11.24" never classifies as a bare year.
	if i+2 < len(s.tokens) {
		if date, ok := matchDate(text, s.tokens[i+1].Text, s.tokens[i+2].Text); ok {
			s.markTag(i)
			if s.rel.Date == "" {
				s.rel.Date = date
			}
			return 3
		}
	}
	if ep, ok := matchEpisodeOnly(text); ok {
		s.markTag(i)
		s.episodes = append(s.episodes, ep)
		s.epMarker = i
		s.state = consumingEpisodeRange
		return 1
	}
	if (fold == "episode" || fold == "ep") && s.numericAt(i+1, 3) {
		n, _ := strconv.Atoi(s.tokens[i+1].Text)
		s.markTag(i)
		s.episodes = append(s.episodes, n)
		s.epMarker = i + 1
		s.state = consumingEpisodeRange
		return 2
	}
	return 0
}

func (s *scan) classifySeasonGrammar(i int, text, fold string) int {
	if (fold == "season" || fold == "series") && s.numericAt(i+1, 2) {
		n, _ := strconv.Atoi(s.tokens[i+1].Text)
		s.markTag(i)
		s.setSeason(n)
		return 2
	}
	if n, ok := matchSeasonOnly(text); ok {
		s.markTag(i)
		s.setSeason(n)
		return 1
	}
	return 0
}

// classifyGluedResolution recovers tokens glued without a delimiter, like
// "1080pBluRay". The remainder after the resolution gets one more lexicon
// attempt.
func (s *scan) classifyGluedResolution(i int, fold string) int {
	for _, pref := range []string{"2160p", "1080p", "720p", "576p", "480p"} {
		if strings.HasPrefix(fold, pref) && len(fold) > len(pref) {
			s.markTag(i)
			if s.rel.Resolution == "" {
				s.rel.Resolution = pref
			}
			if m, ok := lexicon.Lookup(fold[len(pref):]); ok && s.allowed(m) {
				s.assign(m, fold[len(pref):])
			}
			return 1
		}
	}
	return 0
}

// markTag records that token i was classified: it establishes the title
// boundary on first use and tracks the first tag after the episode marker,
// which ends the episode-title run.
func (s *scan) markTag(i int) {
	if s.boundary == -1 {
		s.boundary = i
	}
	if s.state == seekingTitleEnd {
		s.state = consumingTags
	}
	if s.epMarker != -1 && s.firstTag == -1 && i > s.epMarker {
		s.firstTag = i
	}
}

// allowed rejects contextual categories (provider, device, OS codes) while
// the scan is still inside the title.
func (s *scan) allowed(m lexicon.Match) bool {
	return !lexicon.Contextual(m.Category) || s.state != seekingTitleEnd
}

func (s *scan) assign(m lexicon.Match, text string) {
	switch m.Category {
	case lexicon.CategoryResolution:
		if s.rel.Resolution == "" {
			s.rel.Resolution = m.Canonical
		}
	case lexicon.CategorySource:
		if s.rel.Source == "" {
			s.rel.Source = m.Canonical
		}
	case lexicon.CategoryFormat:
		if s.rel.Format == "" {
			s.rel.Format = m.Canonical
		}
	case lexicon.CategoryAudio:
		if s.rel.Audio == "" {
			s.rel.Audio = m.Canonical
		}
	case lexicon.CategoryFlag:
		s.rel.AddFlag(m.Canonical)
	case lexicon.CategoryDevice:
		if s.rel.Device == "" {
			s.rel.Device = m.Canonical
		}
	case lexicon.CategoryOS:
		if s.rel.OS == "" {
			s.rel.OS = m.Canonical
		}
	case lexicon.CategoryEdition:
		if s.rel.Edition == "" {
			s.rel.Edition = m.Canonical
		}
	case lexicon.CategoryHDR:
		if s.rel.HDR == "" {
			s.rel.HDR = m.Canonical
		}
	case lexicon.CategoryProvider:
		if s.rel.StreamingProvider == "" {
			s.rel.StreamingProvider = m.Canonical
		}
	case lexicon.CategoryLanguage:
		if code, display, ok := lexicon.LanguageWord(text); ok {
			s.rel.AddLanguage(code, display)
		}
	}
}

func (s *scan) setSeason(n int) {
	if s.rel.Season == nil {
		s.rel.Season = &n
	}
}

func (s *scan) extendEpisodes(n int) {
	if len(s.episodes) > 0 && n > s.episodes[len(s.episodes)-1] {
		s.episodes = fillEpisodeSpan(s.episodes, n)
		return
	}
	s.episodes = append(s.episodes, n)
}

// numericAt reports whether the token at i is a bare number of at most
// maxDigits digits.
func (s *scan) numericAt(i, maxDigits int) bool {
	if i >= len(s.tokens) {
		return false
	}
	text := s.tokens[i].Text
	return len(text) <= maxDigits && numericRe.MatchString(text)
}

// rangeContinuation recognizes hyphenated multi-episode continuations after
// an episode marker: "-E03" or a bare "-03".
func rangeContinuation(tok token.Token) (int, bool) {
	if !tok.Hyphenated || tok.Bracketed {
		return 0, false
	}
	if n, ok := matchEpisodeOnly(tok.Text); ok {
		return n, true
	}
	if len(tok.Text) <= 3 && numericRe.MatchString(tok.Text) {
		n, _ := strconv.Atoi(tok.Text)
		return n, true
	}
	return 0, false
}

func (s *scan) buildTitle() {
	end := s.boundary
	if end == -1 {
		end = len(s.tokens)
	}
	parts := make([]string, 0, end)
	for _, t := range s.tokens[:end] {
		parts = append(parts, t.Text)
	}
	s.rel.Title = strings.TrimSpace(strings.Join(parts, " "))
}

// buildEpisodeTitle joins the unbroken run of unclassified tokens that
// directly follows the episode marker, stopping at the first recognized tag
// or the release group.
func (s *scan) buildEpisodeTitle() {
	if s.epMarker == -1 || len(s.unmatched) == 0 {
		return
	}
	stop := s.firstTag
	if stop == -1 {
		stop = len(s.tokens)
	}
	var parts []string
	expected := s.epMarker + 1
	for _, idx := range s.unmatched {
		if idx < expected {
			continue
		}
		if idx != expected || idx >= stop {
			break
		}
		parts = append(parts, s.tokens[idx].Text)
		expected++
	}
	s.rel.EpisodeTitle = strings.Join(parts, " ")
}

// finalizeEpisodes enforces the multi-episode invariants: ascending order,
// no duplicates, episode equal to the span minimum. A single episode leaves
// the span empty.
func (s *scan) finalizeEpisodes() {
	if len(s.episodes) == 0 {
		return
	}
	sort.Ints(s.episodes)
	eps := s.episodes[:1]
	for _, e := range s.episodes[1:] {
		if e != eps[len(eps)-1] {
			eps = append(eps, e)
		}
	}
	first := eps[0]
	s.rel.Episode = &first
	if len(eps) > 1 {
		s.rel.Episodes = append([]int(nil), eps...)
	}
}
