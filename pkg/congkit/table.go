package congkit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// fieldCount is the fixed number of space-delimited fields per table line:
// traditional, simplified, nine category flags, v3, v5, shortcut, order.
const fieldCount = 15

// ParseEntries parses the flat text table format into the entries that
// survive the filter. Lines that are empty or start with "# " are skipped.
// The active Code field is left empty; it is bound later when a DB is
// built for a specific version.
func ParseEntries(text string, filter Filter) ([]Entry, error) {
	var entries []Entry
	for i, line := range strings.Split(text, "\n") {
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}
		entry, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		if filter.Passes(&entry) {
			entries = append(entries, entry)
		}
	}
	log.Debugf("Parsed table: %d entries retained", len(entries))
	return entries, nil
}

func parseLine(line string, lineNo int) (Entry, error) {
	fields := strings.Split(line, " ")
	if len(fields) != fieldCount {
		return Entry{}, &ParseError{
			Line:   lineNo,
			Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields)),
		}
	}
	trad, err := singleRune(fields[0])
	if err != nil {
		return Entry{}, &ParseError{Line: lineNo, Reason: fmt.Sprintf("traditional: %v", err)}
	}
	simp, err := singleRune(fields[1])
	if err != nil {
		return Entry{}, &ParseError{Line: lineNo, Reason: fmt.Sprintf("simplified: %v", err)}
	}
	order, err := strconv.ParseInt(fields[14], 10, 32)
	if err != nil {
		return Entry{}, &ParseError{Line: lineNo, Reason: fmt.Sprintf("order: %v", err)}
	}
	return Entry{
		Traditional: trad,
		Simplified:  simp,
		Chinese:     fields[2] == "1",
		Big5:        fields[3] == "1",
		HKSCS:       fields[4] == "1",
		Taiwanese:   fields[5] == "1",
		Kanji:       fields[6] == "1",
		Hiragana:    fields[7] == "1",
		Katakana:    fields[8] == "1",
		Punctuation: fields[9] == "1",
		Misc:        fields[10] == "1",
		V3:          fields[11],
		V5:          fields[12],
		Shortcut:    fields[13],
		Order:       int32(order),
	}, nil
}

func singleRune(field string) (rune, error) {
	r, size := utf8.DecodeRuneInString(field)
	if size == 0 || r == utf8.RuneError {
		return 0, fmt.Errorf("empty or invalid character field %q", field)
	}
	return r, nil
}

// FromText builds a queryable table from the text format, keeping only
// entries that pass the filter and binding the active code per version.
func FromText(text string, version Version, filter Filter) (*DB, error) {
	entries, err := ParseEntries(text, filter)
	if err != nil {
		return nil, err
	}
	return fromEntries(entries, version), nil
}

// FromBytes builds a queryable table from a binary artifact previously
// produced by EncodeEntries. The same filter predicate as the text path
// is applied to the decoded entries.
func FromBytes(data []byte, version Version, filter Filter) (*DB, error) {
	decoded, err := DecodeEntries(data)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(decoded))
	for _, e := range decoded {
		if filter.Passes(&e) {
			entries = append(entries, e)
		}
	}
	return fromEntries(entries, version), nil
}

// fromEntries binds the active code once per entry and indexes by
// traditional character. Duplicate keys keep the last occurrence.
func fromEntries(entries []Entry, version Version) *DB {
	index := make(map[rune]Entry, len(entries))
	trie := patricia.NewTrie()
	for _, e := range entries {
		switch version {
		case V5:
			e.Code = e.V5
		default:
			e.Code = e.V3
		}
		if prev, dup := index[e.Traditional]; dup {
			log.Debugf("Duplicate entry for %q (order %d replaces %d)", e.Traditional, e.Order, prev.Order)
		}
		index[e.Traditional] = e
	}
	for _, e := range index {
		if e.Code == "" {
			continue
		}
		chars, _ := trie.Get(patricia.Prefix(e.Code)).([]rune)
		trie.Set(patricia.Prefix(e.Code), append(chars, e.Traditional))
	}
	log.Debugf("Built %s table with %d entries", version, len(index))
	return &DB{entries: index, version: version, codes: trie}
}
