/*
Package server implements msgpack IPC for code table lookups.

The server provides a minimal interface for querying a built code table
using msgpack serialization over stdin/stdout.

The protocol is request/response: clients send structured messages via
stdin and receive responses through stdout. Each message carries an ID
field, an op selector and the op's arguments.

Look up the codes for one or more characters:

	{"id": "req_001", "op": "codes", "q": "我你"}

Search characters by wildcard pattern ('*' = one or more characters):

	{"id": "req_002", "op": "match", "q": "hqi*"}

Batched pattern search, all patterns resolved in one table scan:

	{"id": "req_003", "op": "match_multi", "ps": ["onf*", "jh*f"]}

Render a code string in mnemonic radical form:

	{"id": "req_004", "op": "radicals", "q": "hqi"}

Complete a partial code:

	{"id": "req_005", "op": "complete", "q": "hq", "l": 10}

Lookups that find nothing return empty results, not errors. Error
responses are reserved for malformed requests and invalid patterns.
*/
package server

// Request is the envelope for every IPC operation.
type Request struct {
	ID       string   `msgpack:"id"`
	Op       string   `msgpack:"op"`
	Query    string   `msgpack:"q,omitempty"`
	Patterns []string `msgpack:"ps,omitempty"`
	Limit    int      `msgpack:"l,omitempty"`
}

// CodeReply is one element of a codes response.
type CodeReply struct {
	Char     string `msgpack:"ch"`
	Code     string `msgpack:"c"`
	Found    bool   `msgpack:"f"`
	Radicals string `msgpack:"r,omitempty"`
}

// CodesResponse answers a "codes" request, one reply per input character
// in input order.
type CodesResponse struct {
	ID        string      `msgpack:"id"`
	Results   []CodeReply `msgpack:"rs"`
	Count     int         `msgpack:"c"`
	TimeTaken int64       `msgpack:"t"`
}

// MatchResponse answers a "match" request. Chars holds the matching
// glyphs in display order as a single string.
type MatchResponse struct {
	ID        string `msgpack:"id"`
	Chars     string `msgpack:"chs"`
	Count     int    `msgpack:"c"`
	TimeTaken int64  `msgpack:"t"`
}

// MultiMatchResponse answers a "match_multi" request, keyed by pattern.
type MultiMatchResponse struct {
	ID        string            `msgpack:"id"`
	Results   map[string]string `msgpack:"rs"`
	TimeTaken int64             `msgpack:"t"`
}

// RadicalsResponse answers a "radicals" request.
type RadicalsResponse struct {
	ID       string `msgpack:"id"`
	Radicals string `msgpack:"r"`
}

// CompletionMatch is one candidate of a "complete" response.
type CompletionMatch struct {
	Char string `msgpack:"ch"`
	Code string `msgpack:"c"`
}

// CompleteResponse answers a "complete" request.
type CompleteResponse struct {
	ID        string            `msgpack:"id"`
	Matches   []CompletionMatch `msgpack:"ms"`
	Count     int               `msgpack:"c"`
	TimeTaken int64             `msgpack:"t"`
}

// InfoResponse answers an "info" request.
type InfoResponse struct {
	ID      string `msgpack:"id"`
	Entries int    `msgpack:"n"`
	Scheme  string `msgpack:"v"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
