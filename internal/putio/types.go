package putio

import (
	"fmt"
	"strings"
	"time"
)

// timeLayout is put.io's timestamp format; no zone, UTC implied.
const timeLayout = "2006-01-02T15:04:05"

// Time unwraps put.io's zoneless timestamp strings into time.Time.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return fmt.Errorf("parse putio time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(timeLayout) + `"`), nil
}

// File is one file or folder record as the API reports it.
type File struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	FileType  string `json:"file_type"`
	Size      int64  `json:"size"`
	CreatedAt Time   `json:"created_at"`
	UpdatedAt Time   `json:"updated_at"`
	ParentID  int64  `json:"parent_id"`
}

// ListResponse is the payload of /files/list: the folder's own metadata
// plus its children.
type ListResponse struct {
	Parent File   `json:"parent"`
	Files  []File `json:"files"`
}

// SearchResponse is the payload of /files/search.
type SearchResponse struct {
	Files []File `json:"files"`
}

type urlResponse struct {
	URL string `json:"url"`
}

type errorResponse struct {
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
	Status       string `json:"status"`
}

// APIError is a non-2xx response from the store.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("put.io returned HTTP %d", e.StatusCode)
}
