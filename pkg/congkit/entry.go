/*
Package congkit implements an in-memory lookup engine for Cangjie-style
input method code tables.

A table maps traditional characters to their input codes in two scheme
versions (v3 and v5). The engine parses the flat text table format (or a
precomputed binary artifact), filters entries by character category, binds
the active code for one scheme version, and answers character-to-code,
code-to-character and wildcard pattern queries with deterministic ordering.
*/
package congkit

// Entry holds the full record for a single character: both code scheme
// variants, the nine category flags, and the display order key.
// Field order is the binary artifact contract and must not change.
type Entry struct {
	Traditional rune   `msgpack:"t"`
	Simplified  rune   `msgpack:"s"`
	Chinese     bool   `msgpack:"zh"`
	Big5        bool   `msgpack:"b5"`
	HKSCS       bool   `msgpack:"hk"`
	Taiwanese   bool   `msgpack:"tw"`
	Kanji       bool   `msgpack:"kj"`
	Hiragana    bool   `msgpack:"hg"`
	Katakana    bool   `msgpack:"kt"`
	Punctuation bool   `msgpack:"pt"`
	Misc        bool   `msgpack:"ms"`
	V3          string `msgpack:"v3"`
	V5          string `msgpack:"v5"`
	Code        string `msgpack:"c"`
	Shortcut    string `msgpack:"sc"`
	Order       int32  `msgpack:"o"`
}

// Filter selects which character categories survive table construction.
// An entry passes when any of its set flags has the matching filter bit
// set (OR across the nine pairs, not AND).
type Filter struct {
	Chinese     bool `toml:"chinese"`
	Big5        bool `toml:"big5"`
	HKSCS       bool `toml:"hkscs"`
	Taiwanese   bool `toml:"taiwanese"`
	Kanji       bool `toml:"kanji"`
	Hiragana    bool `toml:"hiragana"`
	Katakana    bool `toml:"katakana"`
	Punctuation bool `toml:"punctuation"`
	Misc        bool `toml:"misc"`
}

// FilterAll retains every entry.
func FilterAll() Filter {
	return Filter{
		Chinese:     true,
		Big5:        true,
		HKSCS:       true,
		Taiwanese:   true,
		Kanji:       true,
		Hiragana:    true,
		Katakana:    true,
		Punctuation: true,
		Misc:        true,
	}
}

// FilterChinese retains the Chinese character sets (Big5, HKSCS and
// Taiwanese included). This is the default filter.
func FilterChinese() Filter {
	return Filter{
		Chinese:   true,
		Big5:      true,
		HKSCS:     true,
		Taiwanese: true,
	}
}

// FilterJapanese retains kanji and the two kana sets.
func FilterJapanese() Filter {
	return Filter{
		Kanji:    true,
		Hiragana: true,
		Katakana: true,
	}
}

// Passes reports whether the entry survives the filter. It is the sole
// admission rule for both the text and binary ingestion paths; flags on
// the entry itself are never altered.
func (f Filter) Passes(e *Entry) bool {
	return (e.Chinese && f.Chinese) ||
		(e.Big5 && f.Big5) ||
		(e.HKSCS && f.HKSCS) ||
		(e.Taiwanese && f.Taiwanese) ||
		(e.Kanji && f.Kanji) ||
		(e.Hiragana && f.Hiragana) ||
		(e.Katakana && f.Katakana) ||
		(e.Punctuation && f.Punctuation) ||
		(e.Misc && f.Misc)
}

// Version selects which code scheme variant is bound as the active code
// when a table is built. Switching versions means rebuilding the table.
type Version int

const (
	V3 Version = iota
	V5
)

func (v Version) String() string {
	switch v {
	case V3:
		return "v3"
	case V5:
		return "v5"
	}
	return "unknown"
}
