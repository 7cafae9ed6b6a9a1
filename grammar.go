package scenereleasex

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Season/episode/date grammar recognition.
//
// The tokenizer has already removed delimiters, so every pattern here is
// anchored against a single token. Range continuations like "-E03" arrive as
// a separate hyphenated token and are handled by the scan state machine.
var (
	// seasonEpisodeRe matches combined forms: S01E02, s1e2, S01E02E03.
	seasonEpisodeRe = regexp.MustCompile(`(?i)^s(\d{1,2})e(\d{1,3})(?:e(\d{1,3}))?$`)

	// crossEpisodeRe matches the NxMM convention: 1x02, 10x3.
	crossEpisodeRe = regexp.MustCompile(`^(\d{1,2})[xX](\d{1,3})$`)

	// episodeOnlyRe matches episode-only tokens: E05, Ep05, Episode05.
	episodeOnlyRe = regexp.MustCompile(`(?i)^e(?:p|pisode)?(\d{1,3})$`)

	// seasonOnlyRe matches season-only tokens: S01, Season01, Series2.
	seasonOnlyRe = regexp.MustCompile(`(?i)^s(?:eason|eries)?(\d{1,2})$`)

	// discRe matches disc-set tokens: CD1, Disc2, Disk03.
	discRe = regexp.MustCompile(`(?i)^(?:cd|dis[ck])(\d{1,2})$`)

	// versionRe matches release version tokens: v2, V3.
	versionRe = regexp.MustCompile(`(?i)^v(\d{1,3})$`)

	numericRe = regexp.MustCompile(`^\d+$`)
)

// Plausible year range for release names.
const (
	yearMin = 1900
	yearMax = 2099
)

func matchSeasonEpisode(text string) (season int, episodes []int, ok bool) {
	m := seasonEpisodeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, nil, false
	}
	season, _ = strconv.Atoi(m[1])
	first, _ := strconv.Atoi(m[2])
	episodes = []int{first}
	if m[3] != "" {
		last, _ := strconv.Atoi(m[3])
		episodes = fillEpisodeSpan(episodes, last)
	}
	return season, episodes, true
}

func matchCrossEpisode(text string) (season, episode int, ok bool) {
	m := crossEpisodeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	season, _ = strconv.Atoi(m[1])
	episode, _ = strconv.Atoi(m[2])
	return season, episode, true
}

func matchEpisodeOnly(text string) (int, bool) {
	m := episodeOnlyRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	return n, true
}

func matchSeasonOnly(text string) (int, bool) {
	m := seasonOnlyRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	return n, true
}

func matchYear(text string) (int, bool) {
	if len(text) != 4 || !numericRe.MatchString(text) {
		return 0, false
	}
	n, _ := strconv.Atoi(text)
	if n < yearMin || n > yearMax {
		return 0, false
	}
	return n, true
}

func matchDisc(text string) (int, bool) {
	m := discRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	return n, true
}

// matchDate validates a year/month/day token triplet and returns the date in
// ISO form. time.Parse rejects impossible dates like 2023-02-31.
func matchDate(year, month, day string) (string, bool) {
	if _, ok := matchYear(year); !ok {
		return "", false
	}
	if len(month) > 2 || len(day) > 2 || !numericRe.MatchString(month) || !numericRe.MatchString(day) {
		return "", false
	}
	t, err := time.Parse("2006-1-2", fmt.Sprintf("%s-%s-%s", year, month, day))
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// fillEpisodeSpan extends episodes with the inclusive span up to last,
// keeping the sequence ascending and duplicate-free.
func fillEpisodeSpan(episodes []int, last int) []int {
	if len(episodes) == 0 {
		return []int{last}
	}
	high := episodes[len(episodes)-1]
	for e := high + 1; e <= last; e++ {
		episodes = append(episodes, e)
	}
	return episodes
}
