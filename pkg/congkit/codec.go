package congkit

import (
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// EncodeEntries serializes an ordered entry sequence into the binary
// artifact format (msgpack, field-for-field). Decoding the result yields
// the same entries in the same order.
func EncodeEntries(entries []Entry) ([]byte, error) {
	data, err := msgpack.Marshal(entries)
	if err != nil {
		return nil, err
	}
	log.Debugf("Encoded %d entries into %d bytes", len(entries), len(data))
	return data, nil
}

// DecodeEntries is the inverse of EncodeEntries. A structurally invalid
// blob yields a *DecodeError.
func DecodeEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, &DecodeError{Err: err}
	}
	log.Debugf("Decoded %d entries from %d bytes", len(entries), len(data))
	return entries, nil
}
