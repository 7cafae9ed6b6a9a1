// Package token splits scene-release names into position-tagged tokens.
//
// Splitting happens along the canonical delimiter set (period, hyphen,
// underscore, whitespace) while bracketed segments ([...], {...}, (...)) are
// kept intact so embedded identifiers and edition labels survive tokenization.
// The splitter never fails: unsupported byte sequences pass through as opaque
// token text.
package token

import "strings"

// Token is one delimiter-separated unit of a release name.
type Token struct {
	// Pos is the ordinal position of the token in the stream.
	Pos int

	// Text is the token content. For bracketed tokens the surrounding
	// brackets are already stripped.
	Text string

	// Bracketed marks tokens that were enclosed in [], {} or ().
	Bracketed bool

	// Hyphenated marks tokens separated from the preceding token by a
	// hyphen. Group extraction and episode-range continuation depend on it.
	Hyphenated bool
}

// closers maps an opening bracket to its closing counterpart.
var closers = map[rune]rune{
	'[': ']',
	'{': '}',
	'(': ')',
}

// Split tokenizes a raw release name. The result preserves input order and
// is empty only when the name contains no token content at all.
func Split(name string) []Token {
	var out []Token
	var b strings.Builder
	hyphen := false

	flush := func(bracketed bool) {
		text := b.String()
		b.Reset()
		if text == "" {
			return
		}
		out = append(out, Token{
			Pos:        len(out),
			Text:       text,
			Bracketed:  bracketed,
			Hyphenated: hyphen,
		})
		hyphen = false
	}

	runes := []rune(name)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case closers[r] != 0:
			flush(false)
			closer := closers[r]
			j := i + 1
			for j < len(runes) && runes[j] != closer {
				j++
			}
			inner := strings.TrimSpace(string(runes[i+1 : min(j, len(runes))]))
			if inner != "" {
				b.WriteString(inner)
				flush(true)
			}
			if j < len(runes) {
				i = j + 1
			} else {
				i = len(runes)
			}
		case r == '.' || r == '_' || r == ' ' || r == '\t':
			flush(false)
			i++
		case r == '-':
			flush(false)
			hyphen = true
			i++
		default:
			b.WriteRune(r)
			i++
		}
	}
	flush(false)

	return out
}
