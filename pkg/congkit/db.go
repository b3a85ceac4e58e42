package congkit

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// DB is an immutable, queryable code table. It holds the filtered entries
// indexed by traditional character, the version the active codes were
// bound for, and a prefix trie over active codes for completion. A built
// DB is never mutated and is safe to share across goroutines.
type DB struct {
	entries map[rune]Entry
	version Version
	codes   *patricia.Trie
}

// Version returns the code scheme the table was built for.
func (db *DB) Version() Version { return db.version }

// Len returns the number of indexed entries.
func (db *DB) Len() int { return len(db.entries) }

// Radical returns the radical glyph for a keyboard letter, or false for
// any rune outside the 25 known keys.
func (db *DB) Radical(key rune) (rune, bool) {
	r, ok := radicalByKey[key]
	return r, ok
}

// Key returns the keyboard letter for a radical glyph, or false for any
// rune outside the 25 known radicals.
func (db *DB) Key(radical rune) (rune, bool) {
	k, ok := keyByRadical[radical]
	return k, ok
}

// Radicals renders a code string in its mnemonic radical form. Runes
// without a radical mapping pass through unchanged, so the output always
// has the same rune length as the input.
func (db *DB) Radicals(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, c := range code {
		if r, ok := radicalByKey[c]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Code returns the active code for a traditional character.
func (db *DB) Code(c rune) (string, bool) {
	entry, ok := db.entries[c]
	if !ok {
		return "", false
	}
	return entry.Code, true
}

// CodeResult is one element of a batched Code lookup.
type CodeResult struct {
	Char  rune
	Code  string
	Found bool
}

// Codes looks up the active code for each character, preserving input
// order and cardinality. Unknown characters yield Found == false.
func (db *DB) Codes(chars []rune) []CodeResult {
	results := make([]CodeResult, len(chars))
	for i, c := range chars {
		code, ok := db.Code(c)
		results[i] = CodeResult{Char: c, Code: code, Found: ok}
	}
	return results
}

// compilePattern turns a wildcard pattern into an anchored matcher.
// Every '*' matches one or more arbitrary characters; every other rune
// matches itself literally. '*' is the only wildcard and cannot be
// escaped.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, &PatternError{Pattern: pattern, Reason: "empty pattern"}
	}
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		if r == '*' {
			b.WriteString(".+")
		} else {
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Reason: err.Error()}
	}
	return re, nil
}

// Characters returns the traditional glyphs whose active code matches the
// wildcard pattern, sorted ascending by display order (ties break on code
// point so output is deterministic). A pattern with no matches returns an
// empty slice and no error.
func (db *DB) Characters(pattern string) ([]rune, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	var matches []Entry
	for _, e := range db.entries {
		if re.MatchString(e.Code) {
			matches = append(matches, e)
		}
	}
	return sortedChars(matches), nil
}

// CharactersMulti is the batched form of Characters. All patterns are
// compiled up front (the first invalid one aborts the batch), then a
// single pass over the table checks every entry against every pattern.
// The result for each pattern equals a standalone Characters call.
func (db *DB) CharactersMulti(patterns []string) (map[string][]rune, error) {
	regexes := make(map[string]*regexp.Regexp, len(patterns))
	buckets := make(map[string][]Entry, len(patterns))
	for _, p := range patterns {
		re, err := compilePattern(p)
		if err != nil {
			return nil, err
		}
		regexes[p] = re
		buckets[p] = nil
	}
	for _, e := range db.entries {
		for p, re := range regexes {
			if re.MatchString(e.Code) {
				buckets[p] = append(buckets[p], e)
			}
		}
	}
	results := make(map[string][]rune, len(patterns))
	for p, matches := range buckets {
		results[p] = sortedChars(matches)
	}
	return results, nil
}

func sortedChars(matches []Entry) []rune {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Order != matches[j].Order {
			return matches[i].Order < matches[j].Order
		}
		return matches[i].Traditional < matches[j].Traditional
	})
	chars := make([]rune, len(matches))
	for i, e := range matches {
		chars[i] = e.Traditional
	}
	return chars
}

// Match is one code completion candidate.
type Match struct {
	Char  rune
	Code  string
	Order int32
}

// Complete returns the characters whose active code starts with the given
// prefix, ordered like Characters results. limit <= 0 means no limit.
// An empty prefix walks the entire code trie.
func (db *DB) Complete(prefix string, limit int) []Match {
	var matches []Match
	_ = db.codes.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		chars, ok := item.([]rune)
		if !ok {
			return nil
		}
		code := string(p)
		for _, c := range chars {
			matches = append(matches, Match{Char: c, Code: code, Order: db.entries[c].Order})
		}
		return nil
	})
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Order != matches[j].Order {
			return matches[i].Order < matches[j].Order
		}
		return matches[i].Char < matches[j].Char
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
