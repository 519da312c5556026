package airtable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

/* -------- Response -------- */

type ListRecordsResponse struct {
	Records []Record  `json:"records"`
	Offset  string    `json:"offset"`
	Error   *APIError `json:"error"`
}

// Err returns the upstream error carried in the body, if any. An error
// member that is present but falsy ("", false, 0) is not an error.
func (r *ListRecordsResponse) Err() *APIError {
	if r.Error == nil || !r.Error.present {
		return nil
	}
	return r.Error
}

type Record struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime"`
	Fields      Fields `json:"fields"`
}

func (r Record) RecordID() string { return r.ID }

func (r Record) Text(field string) string { return r.Fields.Text(field) }

func (r Record) Number(field string) float64 { return r.Fields.Number(field) }

// APIError is the error member of a response body. Airtable sends it as:
// - "NOT_FOUND" (string)
// - { type, message } (obj)
// Any other truthy JSON value is kept verbatim in Type.
type APIError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`

	present bool
}

func (e *APIError) Error() string {
	msg := e.Type
	if e.Message != "" {
		if msg != "" {
			msg += ": "
		}
		msg += e.Message
	}
	if msg == "" {
		msg = "unspecified error"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("airtable api error (status=%d): %s", e.StatusCode, msg)
	}
	return "airtable api error: " + msg
}

func (e *APIError) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case 'n': // null
		return nil

	case '"': // "NOT_FOUND"
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		e.Type = s
		e.present = s != ""

	case '{': // { type, message }, even {} is an error
		var obj struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		e.Type, e.Message = obj.Type, obj.Message
		e.present = true

	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		if v {
			e.Type = "true"
		}
		e.present = v

	case '[':
		e.Type = string(b)
		e.present = true

	default:
		n, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("airtable: unexpected error member %s", b)
		}
		if n != 0 {
			e.Type = string(b)
		}
		e.present = n != 0
	}
	return nil
}

// Fields holds cell values keyed by field name. Values keep their JSON
// shape (string, float64, bool, []any, map[string]any).
type Fields map[string]any

// Text renders a cell as a string. Numbers use the shortest decimal form,
// multi-select arrays are joined with ", ", and objects are treated as
// absent.
func (f Fields) Text(name string) string {
	return textOf(f[name])
}

func textOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, 0, len(x))
		for _, el := range x {
			if _, nested := el.([]any); nested {
				continue
			}
			if s := textOf(el); strings.TrimSpace(s) != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// Number reads a numeric cell. Numeric strings are parsed; anything else,
// including NaN and infinities, is 0.
func (f Fields) Number(name string) float64 {
	var n float64
	switch x := f[name].(type) {
	case float64:
		n = x
	case string:
		v, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		n = v
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
