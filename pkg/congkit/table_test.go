package congkit

import (
	"errors"
	"strings"
	"testing"
)

// testTable is a small but representative table: Chinese entries, a
// shared-code pair (日/曰), kana with diverging v3/v5 codes, and
// punctuation. Field order: trad simp zh b5 hk tw kj hg kt pt ms v3 v5
// shortcut order.
const testTable = `# Congkit test table
# format: traditional simplified flags... v3 v5 shortcut order

日 日 1 1 0 0 1 0 0 0 0 a a a 1
你 你 1 1 0 0 0 0 0 0 0 onf onf onf 2
明 明 1 1 0 0 0 0 0 0 0 ab ab ab 3
曰 曰 1 0 0 0 0 0 0 0 0 a a a 4
我 我 1 1 1 1 0 0 0 0 0 hqi hqi hqi 5
戒 戒 1 1 0 0 0 0 0 0 0 hqia hqia hq 6
あ あ 0 0 0 0 0 1 0 0 0 vi vi vi 10
ア ア 0 0 0 0 0 0 1 0 0 vi vn vn 11
％ ％ 0 0 0 0 0 0 0 1 0 zx zx zx 99
`

func TestParseEntries(t *testing.T) {
	entries, err := ParseEntries(testTable, FilterAll())
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 9 {
		t.Fatalf("Expected 9 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Traditional != '日' || first.Simplified != '日' {
		t.Errorf("Wrong characters: %c/%c", first.Traditional, first.Simplified)
	}
	if !first.Chinese || !first.Big5 || !first.Kanji {
		t.Errorf("Wrong flags: %+v", first)
	}
	if first.HKSCS || first.Taiwanese || first.Hiragana || first.Katakana || first.Punctuation || first.Misc {
		t.Errorf("Unexpected flags set: %+v", first)
	}
	if first.V3 != "a" || first.V5 != "a" || first.Shortcut != "a" || first.Order != 1 {
		t.Errorf("Wrong fields: %+v", first)
	}
	if first.Code != "" {
		t.Errorf("Active code must stay empty at parse time, got %q", first.Code)
	}
}

func TestParseEntriesFilters(t *testing.T) {
	testCases := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", FilterAll(), 9},
		{"chinese", FilterChinese(), 6},
		{"japanese", FilterJapanese(), 3},
		{"kana only", Filter{Hiragana: true, Katakana: true}, 2},
		{"punctuation", Filter{Punctuation: true}, 1},
		{"none", Filter{}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := ParseEntries(testTable, tc.filter)
			if err != nil {
				t.Fatalf("ParseEntries failed: %v", err)
			}
			if len(entries) != tc.want {
				t.Errorf("Expected %d entries, got %d", tc.want, len(entries))
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{"too few fields", "我 我 1 1 1 1 0 0 0 hqi hqi hqi 5"},
		{"too many fields", "我 我 1 1 1 1 0 0 0 0 0 hqi hqi hqi 5 extra"},
		{"bad order", "我 我 1 1 1 1 0 0 0 0 0 hqi hqi hqi five"},
		{"order overflow", "我 我 1 1 1 1 0 0 0 0 0 hqi hqi hqi 99999999999"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseEntries(tc.line, FilterAll())
			if err == nil {
				t.Fatal("Expected parse error, got nil")
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected *ParseError, got %T: %v", err, err)
			}
			if parseErr.Line != 1 {
				t.Errorf("Expected line 1, got %d", parseErr.Line)
			}
		})
	}
}

func TestPasses(t *testing.T) {
	entry := Entry{Chinese: true, Kanji: true}
	testCases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"matching single bit", Filter{Chinese: true}, true},
		{"other matching bit", Filter{Kanji: true}, true},
		{"any pair suffices", Filter{Kanji: true, Punctuation: true}, true},
		{"no matching bit", Filter{Big5: true, Hiragana: true}, false},
		{"empty filter", Filter{}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Passes(&entry); got != tc.want {
				t.Errorf("Passes = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterMonotonicity(t *testing.T) {
	all, err := FromText(testTable, V3, FilterAll())
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	for _, filter := range []Filter{FilterChinese(), FilterJapanese(), {Misc: true}} {
		sub, err := FromText(testTable, V3, filter)
		if err != nil {
			t.Fatalf("FromText failed: %v", err)
		}
		for c := range sub.entries {
			if _, ok := all.entries[c]; !ok {
				t.Errorf("Entry %c in filtered table but not in full table", c)
			}
		}
	}
}

func TestVersionBinding(t *testing.T) {
	v3, err := FromText(testTable, V3, FilterAll())
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	v5, err := FromText(testTable, V5, FilterAll())
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}

	// ア is the one entry whose v3 and v5 codes diverge.
	if code, _ := v3.Code('ア'); code != "vi" {
		t.Errorf("V3 code for ア = %q, want vi", code)
	}
	if code, _ := v5.Code('ア'); code != "vn" {
		t.Errorf("V5 code for ア = %q, want vn", code)
	}
	for c, e := range v3.entries {
		if e.Code != e.V3 {
			t.Errorf("V3 table: active code for %c is %q, want %q", c, e.Code, e.V3)
		}
	}
	for c, e := range v5.entries {
		if e.Code != e.V5 {
			t.Errorf("V5 table: active code for %c is %q, want %q", c, e.Code, e.V5)
		}
	}
}

func TestDuplicateKeyLastWins(t *testing.T) {
	table := strings.Join([]string{
		"我 我 1 1 1 1 0 0 0 0 0 old old o 1",
		"我 我 1 1 1 1 0 0 0 0 0 new new n 2",
	}, "\n")
	db, err := FromText(table, V3, FilterChinese())
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	if db.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", db.Len())
	}
	if code, _ := db.Code('我'); code != "new" {
		t.Errorf("Expected last occurrence to win, got code %q", code)
	}
}

func TestSingleLineEndToEnd(t *testing.T) {
	db, err := FromText("我 我 1 1 1 1 0 0 0 0 0 onf onf onf 5", V3, FilterChinese())
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	code, ok := db.Code('我')
	if !ok || code != "onf" {
		t.Fatalf("Code = %q, %v; want onf, true", code, ok)
	}
	chars, err := db.Characters("onf")
	if err != nil {
		t.Fatalf("Characters failed: %v", err)
	}
	if len(chars) != 1 || chars[0] != '我' {
		t.Errorf("Characters(onf) = %q, want [我]", string(chars))
	}
}
