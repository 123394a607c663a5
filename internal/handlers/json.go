package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// The request decoder is lenient about scalars the way the wire
// contract demands: a blank string sent where a number or timestamp
// belongs reads as null and is then caught by the not_null check, not
// by the JSON parser.

type jsonInt struct {
	value int64
	valid bool
}

func (n *jsonInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		n.value, n.valid = v, true
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	n.value, n.valid = v, true
	return nil
}

func (n jsonInt) ptr() *int64 {
	if !n.valid {
		return nil
	}
	return &n.value
}

type jsonTime struct {
	value time.Time
	valid bool
}

func (t *jsonTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.value, t.valid = v, true
	return nil
}

func (t jsonTime) ptr() *time.Time {
	if !t.valid {
		return nil
	}
	v := t.value
	return &v
}
