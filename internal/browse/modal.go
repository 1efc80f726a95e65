package browse

// Modal is the exclusive overlay state. Exactly one variant is active at a
// time and it fully determines which keys are legal, so each variant is its
// own type instead of a bag of optional fields.
type Modal interface {
	isModal()
}

// ModalNone means normal browsing; the full keymap applies.
type ModalNone struct{}

// ModalLoading blocks all input while a remote call is in flight.
// Label is what the spinner line shows ("Loading...", "Deleting...", etc).
type ModalLoading struct {
	Label string
}

// ModalConfirmDelete asks y/n before deleting a file.
type ModalConfirmDelete struct {
	FileID int64
	Name   string
}

// ModalFileActions is the per-file action picker.
type ModalFileActions struct {
	FileID   int64
	Name     string
	Kind     Kind
	Selected int
}

// ModalFind is the in-list '/' find bar.
type ModalFind struct {
	Query string
}

// ModalSearchInput is the remote search dialog (Ctrl-F).
type ModalSearchInput struct {
	Query string
}

// ModalError shows a dismissible error message; any key clears it.
type ModalError struct {
	Message string
}

// ModalSuccess shows a dismissible confirmation; any key clears it.
type ModalSuccess struct {
	Message string
}

func (ModalNone) isModal()          {}
func (ModalLoading) isModal()       {}
func (ModalConfirmDelete) isModal() {}
func (ModalFileActions) isModal()   {}
func (ModalFind) isModal()          {}
func (ModalSearchInput) isModal()   {}
func (ModalError) isModal()         {}
func (ModalSuccess) isModal()       {}

// Action is a deferred operation chosen by input handling and executed later
// by the drive loop, so the loading frame is on screen before the blocking
// call starts. The session holds at most one; setting a new one replaces any
// prior value. A nil Action means none.
type Action interface {
	isAction()
}

// DownloadAction downloads a file (or a folder as zip) to local disk.
type DownloadAction struct {
	FileID int64
}

// SearchAction runs a remote search and shows the results view.
type SearchAction struct {
	Query string
}

// GoToFolderAction jumps from a search result to its containing folder,
// selecting the file once the folder has loaded.
type GoToFolderAction struct {
	ParentID int64
	FileID   int64
}

// DeleteAction deletes a file after the user confirmed.
type DeleteAction struct {
	FileID int64
}

// CopyPathAction resolves a file's full remote path and copies it to the
// clipboard. Needs a multi-step parent walk, hence deferred.
type CopyPathAction struct {
	Name     string
	ParentID int64
}

func (DownloadAction) isAction()   {}
func (SearchAction) isAction()     {}
func (GoToFolderAction) isAction() {}
func (DeleteAction) isAction()     {}
func (CopyPathAction) isAction()   {}
