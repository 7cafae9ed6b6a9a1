// Package lexicon holds the static tag tables used to classify release-name
// tokens. All tables are built once in init and never mutated afterward, so
// lookups are safe for unsynchronized concurrent use.
package lexicon

import "strings"

// Category identifies the semantic class of a recognized token.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryResolution
	CategorySource
	CategoryFormat
	CategoryAudio
	CategoryFlag
	CategoryDevice
	CategoryOS
	CategoryEdition
	CategoryHDR
	CategoryProvider
	CategoryLanguage
)

// Match is the classification result for a token.
type Match struct {
	Category  Category
	Canonical string
}

// Per-category tables map the case-folded token text to its canonical form.
// Canonical spellings follow the conventions the wider scene-tooling ecosystem
// reports back to users (BluRay, WEB-DL, x264, ...).
var resolutions = map[string]string{
	"480p":  "480p",
	"480i":  "480i",
	"576p":  "576p",
	"576i":  "576i",
	"720p":  "720p",
	"1080p": "1080p",
	"1080i": "1080i",
	"2160p": "2160p",
	"4320p": "4320p",
	"4k":    "2160p",
	"uhd":   "2160p",
	"8k":    "4320p",
}

var sources = map[string]string{
	"bluray":    "BluRay",
	"bdrip":     "BDRip",
	"brrip":     "BRRip",
	"bdremux":   "REMUX",
	"remux":     "REMUX",
	"webdl":     "WEB-DL",
	"webrip":    "WEBRip",
	"web":       "WEB",
	"hdtv":      "HDTV",
	"pdtv":      "PDTV",
	"sdtv":      "SDTV",
	"dsr":       "DSR",
	"dvdrip":    "DVDRip",
	"dvdr":      "DVDR",
	"dvd":       "DVD",
	"dvdscr":    "DVDSCR",
	"hdrip":     "HDRip",
	"uhdrip":    "UHDRip",
	"microhd":   "HDRip",
	"cam":       "CAM",
	"hdcam":     "CAM",
	"ts":        "TS",
	"telesync":  "TS",
	"tc":        "TC",
	"telecine":  "TC",
	"vhsrip":    "VHSRip",
	"tvrip":     "TVRip",
	"satrip":    "SATRip",
	"laserdisc": "LaserDisc",
}

var formats = map[string]string{
	"x264":  "x264",
	"x265":  "x265",
	"h264":  "H.264",
	"h265":  "H.265",
	"hevc":  "HEVC",
	"avc":   "AVC",
	"av1":   "AV1",
	"xvid":  "XviD",
	"divx":  "DivX",
	"vp9":   "VP9",
	"mpeg2": "MPEG-2",
}

var audio = map[string]string{
	"aac":    "AAC",
	"ac3":    "AC3",
	"eac3":   "EAC3",
	"dd":     "DD",
	"ddp":    "DDP",
	"dts":    "DTS",
	"truehd": "TrueHD",
	"atmos":  "Atmos",
	"flac":   "FLAC",
	"mp3":    "MP3",
	"mp2":    "MP2",
	"opus":   "Opus",
	"pcm":    "PCM",
	"lpcm":   "LPCM",
}

// Flags are boolean release markers; canonical form is uppercase.
var flags = map[string]string{
	"proper":     "PROPER",
	"repack":     "REPACK",
	"rerip":      "RERIP",
	"real":       "REAL",
	"limited":    "LIMITED",
	"internal":   "INTERNAL",
	"festival":   "FESTIVAL",
	"stv":        "STV",
	"retail":     "RETAIL",
	"complete":   "COMPLETE",
	"multi":      "MULTI",
	"dual":       "DUAL",
	"dl":         "DL",
	"dubbed":     "DUBBED",
	"subbed":     "SUBBED",
	"readnfo":    "READNFO",
	"nfofix":     "NFOFIX",
	"uncut":      "UNCUT",
	"uncensored": "UNCENSORED",
	"ws":         "WS",
	"fs":         "FS",
	"3d":         "3D",
	"10bit":      "10BIT",
	"8bit":       "8BIT",
}

var devices = map[string]string{
	"ps4":  "PS4",
	"ps5":  "PS5",
	"nsw":  "NSW",
	"xbox": "XBOX",
	"x360": "X360",
	"wii":  "WII",
	"wiiu": "WIIU",
	"3ds":  "3DS",
	"psp":  "PSP",
	"psv":  "PSV",
}

var oses = map[string]string{
	"win":     "Windows",
	"win32":   "Windows",
	"win64":   "Windows",
	"windows": "Windows",
	"linux":   "Linux",
	"macos":   "macOS",
	"osx":     "macOS",
}

var editions = map[string]string{
	"extended":   "Extended",
	"theatrical": "Theatrical",
	"remastered": "Remastered",
	"unrated":    "Unrated",
	"directors":  "Director's Cut",
	"imax":       "IMAX",
	"redux":      "Redux",
	"criterion":  "Criterion",
}

var hdrTiers = map[string]string{
	"hdr":       "HDR",
	"hdr10":     "HDR10",
	"hdr10+":    "HDR10+",
	"hdr10plus": "HDR10+",
	"dv":        "DV",
	"dovi":      "DV",
	"hlg":       "HLG",
	"sdr":       "SDR",
}

// Streaming provider codes as they appear in WEB release names. These are
// short and collide easily with title words, so the classifier only applies
// them once the title boundary is known.
var providers = map[string]string{
	"amzn":   "AMZN",
	"nf":     "NF",
	"dsnp":   "DSNP",
	"hulu":   "HULU",
	"hmax":   "HMAX",
	"max":    "MAX",
	"atvp":   "ATVP",
	"pcok":   "PCOK",
	"pmtp":   "PMTP",
	"stan":   "STAN",
	"crav":   "CRAV",
	"cr":     "CR",
	"funi":   "FUNI",
	"itunes": "iT",
	"hbo":    "HBO",
	"bbc":    "BBC",
	"cbs":    "CBS",
	"nbc":    "NBC",
	"amc":    "AMC",
	"pbs":    "PBS",
	"nick":   "NICK",
	"roku":   "ROKU",
	"red":    "RED",
}

// compounds classifies token pairs that the tokenizer split apart. Keys are
// the two case-folded halves joined with a hyphen regardless of the original
// separator.
var compounds = map[string]Match{
	"blu-ray":            {CategorySource, "BluRay"},
	"web-dl":             {CategorySource, "WEB-DL"},
	"web-rip":            {CategorySource, "WEBRip"},
	"h-264":              {CategoryFormat, "H.264"},
	"h-265":              {CategoryFormat, "H.265"},
	"mpeg-2":             {CategoryFormat, "MPEG-2"},
	"e-ac3":              {CategoryAudio, "EAC3"},
	"true-hd":            {CategoryAudio, "TrueHD"},
	"dts-hd":             {CategoryAudio, "DTS-HD"},
	"dts-x":              {CategoryAudio, "DTS:X"},
	"dolby-vision":       {CategoryHDR, "DV"},
	"directors-cut":      {CategoryEdition, "Director's Cut"},
	"director-cut":       {CategoryEdition, "Director's Cut"},
	"extended-cut":       {CategoryEdition, "Extended Cut"},
	"extended-edition":   {CategoryEdition, "Extended"},
	"final-cut":          {CategoryEdition, "Final Cut"},
	"special-edition":    {CategoryEdition, "Special Edition"},
	"ultimate-edition":   {CategoryEdition, "Ultimate Edition"},
	"definitive-edition": {CategoryEdition, "Definitive Edition"},
}

// entries is the merged single-token index, built once at init.
var entries map[string]Match

func init() {
	sized := len(resolutions) + len(sources) + len(formats) + len(audio) +
		len(flags) + len(devices) + len(oses) + len(editions) +
		len(hdrTiers) + len(providers)
	entries = make(map[string]Match, sized)

	add := func(cat Category, table map[string]string) {
		for key, canonical := range table {
			entries[key] = Match{Category: cat, Canonical: canonical}
		}
	}
	add(CategoryResolution, resolutions)
	add(CategorySource, sources)
	add(CategoryFormat, formats)
	add(CategoryAudio, audio)
	add(CategoryFlag, flags)
	add(CategoryDevice, devices)
	add(CategoryOS, oses)
	add(CategoryEdition, editions)
	add(CategoryHDR, hdrTiers)
	add(CategoryProvider, providers)

	for i := range langTable {
		for _, w := range langTable[i].words {
			entries[w] = Match{Category: CategoryLanguage, Canonical: langTable[i].display}
		}
	}
}

// Lookup classifies a single token. Text is case-folded before matching.
func Lookup(text string) (Match, bool) {
	m, ok := entries[strings.ToLower(text)]
	return m, ok
}

// LookupCompound classifies a pair of adjacent tokens that belong to one tag
// (WEB + DL, DTS + HD, H + 264, ...).
func LookupCompound(first, second string) (Match, bool) {
	key := strings.ToLower(first) + "-" + strings.ToLower(second)
	m, ok := compounds[key]
	return m, ok
}

// LookupLoose retries a failed lookup after stripping trailing digits,
// which recovers glued channel counts like DDP5 or AAC2. Only audio tags are
// accepted this way; anything broader produces too many false positives.
func LookupLoose(text string) (Match, bool) {
	fold := strings.ToLower(text)
	trimmed := strings.TrimRight(fold, "0123456789")
	if trimmed == fold || len(trimmed) < 2 {
		return Match{}, false
	}
	m, ok := entries[trimmed]
	if !ok || m.Category != CategoryAudio {
		return Match{}, false
	}
	return m, true
}

// Contextual reports whether a category may only be assigned once the title
// boundary is known. Provider, device and OS codes are short enough to appear
// as legitimate title words, so they never establish the boundary themselves.
func Contextual(cat Category) bool {
	switch cat {
	case CategoryProvider, CategoryDevice, CategoryOS:
		return true
	}
	return false
}
