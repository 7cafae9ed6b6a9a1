package scenereleasex

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(n int) *int { return &n }

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		releaseType ReleaseType
		input       string
		want        *ParsedRelease
	}{
		{
			name:        "StandardEpisode",
			releaseType: ReleaseTypeTV,
			input:       "The.Show.Name.S01E02.1080p.WEB-DL.x264-GROUP",
			want: &ParsedRelease{
				Release:    "The.Show.Name.S01E02.1080p.WEB-DL.x264-GROUP",
				Title:      "The Show Name",
				Group:      "GROUP",
				Season:     intPtr(1),
				Episode:    intPtr(2),
				Source:     "WEB-DL",
				Format:     "x264",
				Resolution: "1080p",
				Type:       ReleaseTypeTV,
			},
		},
		{
			name:        "MultiEpisodeRange",
			releaseType: ReleaseTypeTV,
			input:       "Show.S01E01-E03.720p-GRP",
			want: &ParsedRelease{
				Release:    "Show.S01E01-E03.720p-GRP",
				Title:      "Show",
				Group:      "GRP",
				Season:     intPtr(1),
				Episode:    intPtr(1),
				Episodes:   []int{1, 2, 3},
				Resolution: "720p",
				Type:       ReleaseTypeTV,
			},
		},
		{
			name:        "GluedMultiEpisode",
			releaseType: ReleaseTypeTV,
			input:       "Show.S01E01E02.720p-GRP",
			want: &ParsedRelease{
				Release:    "Show.S01E01E02.720p-GRP",
				Title:      "Show",
				Group:      "GRP",
				Season:     intPtr(1),
				Episode:    intPtr(1),
				Episodes:   []int{1, 2},
				Resolution: "720p",
				Type:       ReleaseTypeTV,
			},
		},
		{
			name:        "CrossNotation",
			releaseType: ReleaseTypeTV,
			input:       "Show.1x02.HDTV.XviD-GRP",
			want: &ParsedRelease{
				Release: "Show.1x02.HDTV.XviD-GRP",
				Title:   "Show",
				Group:   "GRP",
				Season:  intPtr(1),
				Episode: intPtr(2),
				Source:  "HDTV",
				Format:  "XviD",
				Type:    ReleaseTypeTV,
			},
		},
		{
			name:        "AirDate",
			releaseType: ReleaseTypeTV,
			input:       "The.Daily.Show.2023.11.24.720p.WEB.x264-GRP",
			want: &ParsedRelease{
				Release:    "The.Daily.Show.2023.11.24.720p.WEB.x264-GRP",
				Title:      "The Daily Show",
				Group:      "GRP",
				Date:       "2023-11-24",
				Source:     "WEB",
				Format:     "x264",
				Resolution: "720p",
				Type:       ReleaseTypeTV,
			},
		},
		{
			name:        "EpisodeTitleProviderAndAudio",
			releaseType: ReleaseTypeTV,
			input:       "Show.S01E02.Title.Here.AMZN.WEB-DL.DDP5.1.H.264-NTb",
			want: &ParsedRelease{
				Release:           "Show.S01E02.Title.Here.AMZN.WEB-DL.DDP5.1.H.264-NTb",
				Title:             "Show",
				EpisodeTitle:      "Title Here",
				Group:             "NTb",
				Season:            intPtr(1),
				Episode:           intPtr(2),
				Source:            "WEB-DL",
				Format:            "H.264",
				Audio:             "DDP",
				StreamingProvider: "AMZN",
				Type:              ReleaseTypeTV,
			},
		},
		{
			name:        "EpisodeWordPair",
			releaseType: ReleaseTypeTV,
			input:       "Show.Name.Episode.05.720p-GRP",
			want: &ParsedRelease{
				Release:    "Show.Name.Episode.05.720p-GRP",
				Title:      "Show Name",
				Group:      "GRP",
				Episode:    intPtr(5),
				Resolution: "720p",
				Type:       ReleaseTypeTV,
			},
		},
		{
			name:        "ExtensionStripped",
			releaseType: ReleaseTypeTV,
			input:       "Show.Name.S02E05.720p.HDTV.x264-GRP.mkv",
			want: &ParsedRelease{
				Release:    "Show.Name.S02E05.720p.HDTV.x264-GRP",
				Title:      "Show Name",
				Group:      "GRP",
				Season:     intPtr(2),
				Episode:    intPtr(5),
				Source:     "HDTV",
				Format:     "x264",
				Resolution: "720p",
				Type:       ReleaseTypeTV,
			},
		},
		{
			name:        "ProperFlag",
			releaseType: ReleaseTypeTV,
			input:       "Show.S01E02.PROPER.720p.HDTV.x264-GRP",
			want: &ParsedRelease{
				Release:    "Show.S01E02.PROPER.720p.HDTV.x264-GRP",
				Title:      "Show",
				Group:      "GRP",
				Season:     intPtr(1),
				Episode:    intPtr(2),
				Flags:      []string{"PROPER"},
				Source:     "HDTV",
				Format:     "x264",
				Resolution: "720p",
				Type:       ReleaseTypeTV,
			},
		},
		{
			name:        "StandardMovie",
			releaseType: ReleaseTypeMovie,
			input:       "Movie.Title.2020.1080p.BluRay.x264-GROUP",
			want: &ParsedRelease{
				Release:    "Movie.Title.2020.1080p.BluRay.x264-GROUP",
				Title:      "Movie Title",
				Group:      "GROUP",
				Year:       intPtr(2020),
				Source:     "BluRay",
				Format:     "x264",
				Resolution: "1080p",
				Type:       ReleaseTypeMovie,
			},
		},
		{
			name:        "LeadingYearStaysInTitle",
			releaseType: ReleaseTypeMovie,
			input:       "2001.A.Space.Odyssey.1968.1080p.BluRay.x264-GRP",
			want: &ParsedRelease{
				Release:    "2001.A.Space.Odyssey.1968.1080p.BluRay.x264-GRP",
				Title:      "2001 A Space Odyssey",
				Group:      "GRP",
				Year:       intPtr(1968),
				Source:     "BluRay",
				Format:     "x264",
				Resolution: "1080p",
				Type:       ReleaseTypeMovie,
			},
		},
		{
			name:        "LanguageAndFlag",
			releaseType: ReleaseTypeMovie,
			input:       "Movie.Title.2020.German.DL.1080p.BluRay.x264-GRP",
			want: &ParsedRelease{
				Release:    "Movie.Title.2020.German.DL.1080p.BluRay.x264-GRP",
				Title:      "Movie Title",
				Group:      "GRP",
				Year:       intPtr(2020),
				Flags:      []string{"DL"},
				Source:     "BluRay",
				Format:     "x264",
				Resolution: "1080p",
				Language:   map[string]string{"de": "German"},
				Type:       ReleaseTypeMovie,
			},
		},
		{
			name:        "HDRTier",
			releaseType: ReleaseTypeMovie,
			input:       "Movie.2021.2160p.UHD.BluRay.DV.HDR10.x265-GRP",
			want: &ParsedRelease{
				Release:    "Movie.2021.2160p.UHD.BluRay.DV.HDR10.x265-GRP",
				Title:      "Movie",
				Group:      "GRP",
				Year:       intPtr(2021),
				Source:     "BluRay",
				Format:     "x265",
				Resolution: "2160p",
				HDR:        "DV",
				Type:       ReleaseTypeMovie,
			},
		},
		{
			name:        "DiscAndVersion",
			releaseType: ReleaseTypeMovie,
			input:       "Movie.Title.2020.CD1.v2.DVDRip.x264-GRP",
			want: &ParsedRelease{
				Release: "Movie.Title.2020.CD1.v2.DVDRip.x264-GRP",
				Title:   "Movie Title",
				Group:   "GRP",
				Year:    intPtr(2020),
				Disc:    intPtr(1),
				Version: "v2",
				Source:  "DVDRip",
				Format:  "x264",
				Type:    ReleaseTypeMovie,
			},
		},
		{
			name:        "IdentifiersAndEdition",
			releaseType: ReleaseTypeMovie,
			input:       "Movie Title (2020) {imdb-tt0133093} {edition-Ultimate Extended Edition}",
			want: &ParsedRelease{
				Release: "Movie Title (2020) {imdb-tt0133093} {edition-Ultimate Extended Edition}",
				Title:   "Movie Title",
				Year:    intPtr(2020),
				IMDBID:  "tt0133093",
				Edition: "Ultimate Extended Edition",
				Type:    ReleaseTypeMovie,
			},
		},
		{
			name:        "NoGroupWithoutTags",
			releaseType: ReleaseTypeMovie,
			input:       "Some-Title",
			want: &ParsedRelease{
				Release: "Some-Title",
				Title:   "Some Title",
				Type:    ReleaseTypeMovie,
			},
		},
		{
			name:        "Empty",
			releaseType: ReleaseTypeMovie,
			input:       "",
			want: &ParsedRelease{
				Release: "",
				Type:    ReleaseTypeMovie,
			},
		},
		{
			name:        "SeasonPack",
			releaseType: ReleaseTypeSeries,
			input:       "Breaking.Bad.S01.2160p.BluRay.x265-GRP",
			want: &ParsedRelease{
				Release:    "Breaking.Bad.S01.2160p.BluRay.x265-GRP",
				Title:      "Breaking Bad",
				Group:      "GRP",
				Season:     intPtr(1),
				Source:     "BluRay",
				Format:     "x265",
				Resolution: "2160p",
				Type:       ReleaseTypeSeries,
			},
		},
		{
			name:        "UnknownTypeFallsBackToMovie",
			releaseType: ReleaseType("bogus"),
			input:       "Movie.Title.2020.mkv",
			want: &ParsedRelease{
				Release: "Movie.Title.2020",
				Title:   "Movie Title",
				Year:    intPtr(2020),
				Type:    ReleaseTypeMovie,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tc.releaseType, tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse(%q, %q) mismatch (-want +got):\n%s", tc.releaseType, tc.input, diff)
			}
		})
	}
}

func TestParseSeriesDirectory(t *testing.T) {
	t.Parallel()
	got := ParseSeriesDirectory("Breaking Bad (2008) {tvdb-81189}")
	want := &ParsedRelease{
		Release: "Breaking Bad (2008) {tvdb-81189}",
		Title:   "Breaking Bad",
		Year:    intPtr(2008),
		TVDBID:  "81189",
		Type:    ReleaseTypeSeries,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSeriesDirectory mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMovieDirectory(t *testing.T) {
	t.Parallel()
	got := ParseMovieDirectory("The Matrix (1999) {tmdb-603}")
	want := &ParsedRelease{
		Release: "The Matrix (1999) {tmdb-603}",
		Title:   "The Matrix",
		Year:    intPtr(1999),
		TMDBID:  "603",
		Type:    ReleaseTypeMovie,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseMovieDirectory mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSeasonDirectoryNames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  int
		found bool
	}{
		{"Season 03", 3, true},
		{"Season 3", 3, true},
		{"season 10", 10, true},
		{"Series 1", 1, true},
		{"S02", 2, true},
		{"Season02", 2, true},
		{"03", 3, true},
		{"Extras", 0, false},
		{"Specials", 0, false},
		{"Season", 0, false},
		{"Season 2020", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, found := ParseSeasonDirectory(tc.input)
		if got != tc.want || found != tc.found {
			t.Errorf("ParseSeasonDirectory(%q) = (%d, %v), want (%d, %v)",
				tc.input, got, found, tc.want, tc.found)
		}
	}
}

// Parsing is total over arbitrary input: no input may panic or produce a
// record that violates the multi-episode ordering invariants.
func TestParseNeverFails(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"   ",
		"...",
		"----",
		"[[[",
		"{unclosed",
		"🎬🎬🎬.mkv",
		"-.-.-.-",
		strings.Repeat("a.", 500) + "S01E01",
	}
	for _, input := range inputs {
		for _, rt := range []ReleaseType{ReleaseTypeMovie, ReleaseTypeTV, ReleaseTypeSeries, ReleaseTypeSeason} {
			rel := Parse(rt, input)
			if rel == nil {
				t.Fatalf("Parse(%q, %q) = nil", rt, input)
			}
			if !sort.IntsAreSorted(rel.Episodes) {
				t.Errorf("Parse(%q, %q) episodes not ascending: %v", rt, input, rel.Episodes)
			}
			for i := 1; i < len(rel.Episodes); i++ {
				if rel.Episodes[i] == rel.Episodes[i-1] {
					t.Errorf("Parse(%q, %q) duplicate episode: %v", rt, input, rel.Episodes)
				}
			}
			if len(rel.Episodes) > 0 && (rel.Episode == nil || *rel.Episode != rel.Episodes[0]) {
				t.Errorf("Parse(%q, %q) episode is not span minimum: %v vs %v", rt, input, rel.Episode, rel.Episodes)
			}
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	t.Parallel()
	input := "The.Show.Name.S01E02.1080p.WEB-DL.DDP5.1.x264-GROUP"
	first := Parse(ReleaseTypeTV, input)
	second := Parse(ReleaseTypeTV, input)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated parse diverged (-first +second):\n%s", diff)
	}
}
