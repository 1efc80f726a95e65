package browse

import "time"

// Kind mirrors the file_type strings used by the put.io API.
type Kind string

const (
	KindFolder  Kind = "FOLDER"
	KindVideo   Kind = "VIDEO"
	KindAudio   Kind = "AUDIO"
	KindImage   Kind = "IMAGE"
	KindArchive Kind = "ARCHIVE"
	KindPdf     Kind = "PDF"
	KindText    Kind = "TEXT"
	KindOther   Kind = "OTHER"
)

// Entry is one file or folder row from a listing or search response.
// The session holds one snapshot of these per view, replaced wholesale
// on every reload.
type Entry struct {
	ID        int64
	Name      string
	Kind      Kind
	Size      int64
	CreatedAt time.Time
	UpdatedAt time.Time
	ParentID  int64
}

func (e Entry) IsFolder() bool {
	return e.Kind == KindFolder
}
