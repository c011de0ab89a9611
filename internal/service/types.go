package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Task represents a single task item as owned by the remote service.
type Task struct {
	ID          TaskID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Toggled returns a copy of t with Completed inverted.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}

// NewTask is the body of a create request.
type NewTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskID is an opaque task identifier assigned by the server.
// It decodes from a JSON number or string and encodes back to the same kind.
type TaskID struct {
	raw     string
	numeric bool
}

// NumericID returns a TaskID for a server that uses integer identifiers.
func NumericID(n int64) TaskID {
	return TaskID{raw: strconv.FormatInt(n, 10), numeric: true}
}

// StringID returns a TaskID for a server that uses string identifiers.
func StringID(s string) TaskID {
	return TaskID{raw: s}
}

// ParseID parses user input into a TaskID.
// Input in canonical integer form ("12", "-3") is treated as numeric;
// anything else, including "007" or "+5", stays a string.
func ParseID(s string) TaskID {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return TaskID{raw: s, numeric: true}
	}
	return TaskID{raw: s}
}

// String returns the identifier as it appears in a resource path.
func (id TaskID) String() string { return id.raw }

// Equal reports whether id and other name the same task.
// The JSON kind only affects encoding, so "42" and 42 are equal.
func (id TaskID) Equal(other TaskID) bool { return id.raw == other.raw }

// IsZero reports whether the identifier was never set.
func (id TaskID) IsZero() bool { return id.raw == "" }

// MarshalJSON implements json.Marshaler.
func (id TaskID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.raw), nil
	}
	return json.Marshal(id.raw)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = TaskID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TaskID{raw: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid task id: %s", data)
	}
	*id = TaskID{raw: n.String(), numeric: true}
	return nil
}
