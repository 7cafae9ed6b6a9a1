package ids

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hiddenpdx/scene-releasex/internal/token"
)

func keptTexts(tokens []token.Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Text)
	}
	return out
}

func TestExtract(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		want     Set
		wantKept []string
	}{
		{
			name:     "BracedTMDB",
			input:    "Movie Title (2020) {tmdb-345691}",
			want:     Set{TMDB: "345691"},
			wantKept: []string{"Movie", "Title", "2020"},
		},
		{
			name:     "BracketedTVDB",
			input:    "[tvdb-81189] Show Name",
			want:     Set{TVDB: "81189"},
			wantKept: []string{"Show", "Name"},
		},
		{
			name:     "BracedIMDB",
			input:    "Movie Title {imdb-tt0133093}",
			want:     Set{IMDB: "tt0133093"},
			wantKept: []string{"Movie", "Title"},
		},
		{
			name:     "IMDBCaseAndEqualsForm",
			input:    "Movie {IMDB=TT0133093}",
			want:     Set{IMDB: "tt0133093"},
			wantKept: []string{"Movie"},
		},
		{
			name:     "EditionLabelNormalized",
			input:    "Movie (2020) {edition-Ultimate_Extended_Edition}",
			want:     Set{Edition: "Ultimate Extended Edition"},
			wantKept: []string{"Movie", "2020"},
		},
		{
			name:     "SplitSuffixTMDB",
			input:    "Movie.Title.tmdb-345691",
			want:     Set{TMDB: "345691"},
			wantKept: []string{"Movie", "Title"},
		},
		{
			name:     "SplitSuffixIMDB",
			input:    "Show.Name.imdb-tt1234567",
			want:     Set{IMDB: "tt1234567"},
			wantKept: []string{"Show", "Name"},
		},
		{
			name:     "MultipleIdentifiers",
			input:    "Show Name (2008) {tvdb-81189} {imdb-tt0903747}",
			want:     Set{TVDB: "81189", IMDB: "tt0903747"},
			wantKept: []string{"Show", "Name", "2008"},
		},
		{
			name:     "UnrelatedBracketsKept",
			input:    "Show [1080p] Name",
			want:     Set{},
			wantKept: []string{"Show", "1080p", "Name"},
		},
		{
			name:     "HyphenPairNotAnID",
			input:    "Show.WEB-DL",
			want:     Set{},
			wantKept: []string{"Show", "WEB", "DL"},
		},
		{
			name:     "MalformedIMDBKept",
			input:    "Movie {imdb-0133093}",
			want:     Set{},
			wantKept: []string{"Movie", "imdb-0133093"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			set, kept := Extract(token.Split(tc.input))
			if diff := cmp.Diff(tc.want, set); diff != "" {
				t.Errorf("Extract(%q) set mismatch (-want +got):\n%s", tc.input, diff)
			}
			if diff := cmp.Diff(tc.wantKept, keptTexts(kept)); diff != "" {
				t.Errorf("Extract(%q) kept tokens mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestNormalizeEditionLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Underscores", "Ultimate_Extended_Edition", "Ultimate Extended Edition"},
		{"Lowercase", "directors cut", "Directors Cut"},
		{"CollapsedSpaces", "  Final   Cut ", "Final Cut"},
		{"Empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeEditionLabel(tc.input); got != tc.want {
				t.Errorf("normalizeEditionLabel(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
