package congkit

// The 25 Cangjie radicals and their keyboard letters ('z' is reserved for
// punctuation escapes and has no radical). The mapping is a fixed bijection
// independent of any loaded table.
var radicalByKey = map[rune]rune{
	'a': '日',
	'b': '月',
	'c': '金',
	'd': '木',
	'e': '水',
	'f': '火',
	'g': '土',
	'h': '竹',
	'i': '戈',
	'j': '十',
	'k': '大',
	'l': '中',
	'm': '一',
	'n': '弓',
	'o': '人',
	'p': '心',
	'q': '手',
	'r': '口',
	's': '尸',
	't': '廿',
	'u': '山',
	'v': '女',
	'w': '田',
	'x': '難',
	'y': '卜',
}

var keyByRadical = invertRadicals(radicalByKey)

func invertRadicals(m map[rune]rune) map[rune]rune {
	inv := make(map[rune]rune, len(m))
	for k, r := range m {
		inv[r] = k
	}
	return inv
}
