package scenereleasex

import (
	"regexp"
	"strings"
)

// Media extension handling. Leaf names arrive with their file extension
// attached; the parser strips recognized video and subtitle extensions before
// tokenizing so the extension never pollutes classification.
var (
	videoExtRe = regexp.MustCompile(`(?i)\.(mp4|mkv|avi|mov|wmv|flv|webm|mpeg|mpg|m4v|3gp|vob|ts|mts|m2ts|rmvb|divx)$`)

	subtitleExtRe = regexp.MustCompile(`(?i)\.(srt|sub|idx|ass|ssa|smi|vtt|sbv|sami|usf|stl|sup|ttml)$`)

	// subtitleLangRe captures trailing language codes before a subtitle
	// extension: .en, .eng, .en-US.
	subtitleLangRe = regexp.MustCompile(`(\.[a-zA-Z]{2,3}(?:[-_][a-zA-Z]{2,4})?)$`)
)

// IsVideo reports whether name has a recognized video extension.
func IsVideo(name string) bool {
	return videoExtRe.MatchString(name)
}

// IsSubtitle reports whether name has a recognized subtitle extension.
func IsSubtitle(name string) bool {
	return subtitleExtRe.MatchString(name)
}

// ExtractExtension returns the recognized media extension including the dot,
// or "" when the name carries none. Subtitle files keep a preceding language
// code as part of the suffix ("episode.en.srt" -> ".en.srt").
func ExtractExtension(name string) string {
	if loc := subtitleExtRe.FindStringIndex(name); loc != nil {
		lang := subtitleLangRe.FindString(name[:loc[0]])
		return lang + name[loc[0]:]
	}
	if loc := videoExtRe.FindStringIndex(name); loc != nil {
		return name[loc[0]:]
	}
	return ""
}

// stripExtension removes a recognized media extension from name.
func stripExtension(name string) string {
	if ext := ExtractExtension(name); ext != "" {
		return strings.TrimSuffix(name, ext)
	}
	return name
}
