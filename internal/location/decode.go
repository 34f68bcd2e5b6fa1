package location

import (
	"encoding/json"
	"errors"
	"io"
)

var errNullDocument = errors.New("document is null")

// DecodeRecords reads a JSON array of {"name": ..., "code": ...} objects.
// Unknown fields are ignored. Field presence is checked later by LoadStates
// and LoadCities so the caller gets an index for the offending record.
func DecodeRecords(kind Kind, r io.Reader) ([]Record, error) {
	var records []Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, &DataFormatError{Kind: kind, Index: -1, Err: err}
	}
	if records == nil {
		return nil, &DataFormatError{Kind: kind, Index: -1, Err: errNullDocument}
	}
	return records, nil
}
