package lexicon

import "strings"

// langEntry carries one language row: ISO 639-1 code, ISO 639-2 code with an
// optional bibliographic alternate, the display name, and the full word forms
// that show up in release names.
type langEntry struct {
	code2   string
	code3   string
	alt3    string
	display string
	words   []string
}

var langTable = []langEntry{
	{"en", "eng", "", "English", []string{"english"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"fr", "fra", "fre", "French", []string{"french", "truefrench"}},
	{"es", "spa", "", "Spanish", []string{"spanish", "castellano"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch", "flemish"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese", "mandarin", "cantonese"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
	{"cs", "ces", "cze", "Czech", []string{"czech"}},
	{"hu", "hun", "", "Hungarian", []string{"hungarian"}},
	{"tr", "tur", "", "Turkish", []string{"turkish"}},
}

// Index maps built at init time.
var (
	langByWord  map[string]*langEntry
	langByCode3 map[string]*langEntry
)

func init() {
	langByWord = make(map[string]*langEntry, len(langTable))
	langByCode3 = make(map[string]*langEntry, len(langTable)*2)
	for i := range langTable {
		e := &langTable[i]
		langByCode3[e.code3] = e
		if e.alt3 != "" {
			langByCode3[e.alt3] = e
		}
		for _, w := range e.words {
			langByWord[w] = e
		}
	}
}

// LanguageWord resolves a full language word form (e.g. "german") to its
// ISO 639-1 code and display name. Word forms are distinctive enough to
// establish the title boundary on their own.
func LanguageWord(text string) (code, display string, ok bool) {
	e, ok := langByWord[strings.ToLower(text)]
	if !ok {
		return "", "", false
	}
	return e.code2, e.display, true
}

// LanguageCode resolves a three-letter ISO 639-2 code (e.g. "ger", "fra").
// Codes collide with ordinary title words, so callers apply them only after
// the title boundary is known.
func LanguageCode(text string) (code, display string, ok bool) {
	fold := strings.ToLower(text)
	if len(fold) != 3 {
		return "", "", false
	}
	e, ok := langByCode3[fold]
	if !ok {
		return "", "", false
	}
	return e.code2, e.display, true
}
