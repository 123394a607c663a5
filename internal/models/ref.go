package models

import (
	"bytes"
	"encoding/json"
)

// Ref is how a request body points at a related entity. The wire
// contract distinguishes three cases:
//
//   - field absent or JSON null: the relation is cleared, no error
//   - object present with a resolvable id: the relation is set
//   - object present with a missing, null or unknown id: the request
//     fails with id_not_found
//
// Present separates the first case from the others.
type Ref struct {
	Present bool
	ID      *int64
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var obj struct {
		ID *int64 `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	r.Present = true
	r.ID = obj.ID
	return nil
}
