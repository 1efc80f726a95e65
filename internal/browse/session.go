package browse

// Reserved folder ids.
const (
	RootFolderID    int64 = 0
	SearchResultsID int64 = -1 // virtual "search results" breadcrumb
)

// RootName is the display name of the root breadcrumb.
const RootName = "My Files"

const pageJump = 10

// Breadcrumb is one level of the navigation stack. SavedIndex and
// SavedOffset remember where the cursor and scroll were when the user
// descended from this level, so going back restores them.
type Breadcrumb struct {
	ID          int64
	Name        string
	SavedIndex  int
	SavedOffset int
}

// Session is the whole browsing state. It is owned by the UI loop and
// mutated only from there; remote workers hand results back as values and
// never touch it directly.
type Session struct {
	CurrentFolderID int64
	Breadcrumbs     []Breadcrumb // never empty; index 0 is always the root
	Entries         []Entry
	Cursor          int
	ScrollOffset    int
	Modal           Modal
	Quitting        bool
	SortField       SortField
	SortDirection   SortDirection
	LastSearch      string // last successful find query, for 'n'
	InSearchResults bool

	pending Action

	// Cursor/scroll to restore once the next load completes.
	restoreIndex  int
	restoreOffset int
	hasRestore    bool

	// Entry id to select once the next load completes (go-to-folder).
	selectID  int64
	hasSelect bool
}

// NewSession starts at the root with an empty snapshot and a Loading modal;
// the caller kicks off the first listing fetch.
func NewSession() *Session {
	return &Session{
		CurrentFolderID: RootFolderID,
		Breadcrumbs: []Breadcrumb{
			{ID: RootFolderID, Name: RootName},
		},
		Modal:         ModalLoading{Label: "Loading..."},
		SortField:     SortByName,
		SortDirection: SortAsc,
	}
}

// EnterFolder descends into a folder, remembering the current position on
// the breadcrumb being left.
func (s *Session) EnterFolder(id int64, name string) {
	top := &s.Breadcrumbs[len(s.Breadcrumbs)-1]
	top.SavedIndex = s.Cursor
	top.SavedOffset = s.ScrollOffset
	s.Breadcrumbs = append(s.Breadcrumbs, Breadcrumb{ID: id, Name: name})
	s.CurrentFolderID = id
	s.Entries = nil
	s.Cursor = 0
	s.ScrollOffset = 0
	s.Modal = ModalLoading{Label: "Loading..."}
}

// GoBack pops one breadcrumb and marks the saved cursor/scroll of the level
// we return to for restoration after the reload. No-op at the root.
func (s *Session) GoBack() {
	if len(s.Breadcrumbs) <= 1 {
		return
	}
	s.Breadcrumbs = s.Breadcrumbs[:len(s.Breadcrumbs)-1]
	s.InSearchResults = false
	top := s.Breadcrumbs[len(s.Breadcrumbs)-1]
	s.CurrentFolderID = top.ID
	s.restoreIndex = top.SavedIndex
	s.restoreOffset = top.SavedOffset
	s.hasRestore = true
	s.Entries = nil
	s.Cursor = 0
	s.ScrollOffset = 0
	s.Modal = ModalLoading{Label: "Loading..."}
}

// SetEntries replaces the snapshot with a fresh listing, re-sorts it, and
// places the cursor: on the awaited entry after go-to-folder, on the saved
// position after go-back or a post-delete reload, else at the top.
func (s *Session) SetEntries(entries []Entry) {
	s.Entries = entries
	s.sortEntries()
	switch {
	case s.hasSelect:
		s.hasSelect = false
		s.hasRestore = false
		s.Cursor = 0
		for i, e := range s.Entries {
			if e.ID == s.selectID {
				s.Cursor = i
				break
			}
		}
		s.ScrollOffset = 0
	case s.hasRestore:
		s.hasRestore = false
		last := len(s.Entries) - 1
		if last < 0 {
			last = 0
		}
		s.Cursor = min(s.restoreIndex, last)
		s.ScrollOffset = min(s.restoreOffset, last)
	default:
		s.Cursor = 0
		s.ScrollOffset = 0
	}
	s.Modal = ModalNone{}
}

// EnterSearchResults shows a search response. The first search from a folder
// pushes a virtual breadcrumb; searching again while already on results
// renames that breadcrumb in place instead of stacking another one.
func (s *Session) EnterSearchResults(query string, entries []Entry) {
	if s.InSearchResults {
		s.Breadcrumbs[len(s.Breadcrumbs)-1].Name = "Search: " + query
	} else {
		top := &s.Breadcrumbs[len(s.Breadcrumbs)-1]
		top.SavedIndex = s.Cursor
		top.SavedOffset = s.ScrollOffset
		s.Breadcrumbs = append(s.Breadcrumbs, Breadcrumb{
			ID:   SearchResultsID,
			Name: "Search: " + query,
		})
		s.InSearchResults = true
	}
	s.Entries = entries
	s.sortEntries()
	s.Cursor = 0
	s.ScrollOffset = 0
	s.Modal = ModalNone{}
}

// ResetToRoot truncates the stack back to the root breadcrumb and clears any
// search context.
func (s *Session) ResetToRoot() {
	s.Breadcrumbs = s.Breadcrumbs[:1]
	s.Breadcrumbs[0].SavedIndex = 0
	s.Breadcrumbs[0].SavedOffset = 0
	s.InSearchResults = false
	s.CurrentFolderID = RootFolderID
}

// NavigateToFolder jumps straight to a folder and pre-selects a file in it.
// The breadcrumb gets a placeholder name until the listing response reports
// the folder's real name.
func (s *Session) NavigateToFolder(parentID, fileID int64) {
	s.ResetToRoot()
	if parentID != RootFolderID {
		s.Breadcrumbs = append(s.Breadcrumbs, Breadcrumb{ID: parentID, Name: "..."})
		s.CurrentFolderID = parentID
	}
	s.selectID = fileID
	s.hasSelect = true
	s.Entries = nil
	s.Cursor = 0
	s.ScrollOffset = 0
	s.Modal = ModalLoading{Label: "Loading..."}
}

// RenameCurrentCrumb overwrites the top breadcrumb's display name, used when
// a listing response reveals the real folder name behind a placeholder.
func (s *Session) RenameCurrentCrumb(name string) {
	s.Breadcrumbs[len(s.Breadcrumbs)-1].Name = name
}

// SavePositionForReload keeps the current cursor and scroll across the next
// SetEntries, e.g. when the current folder is reloaded after a delete.
func (s *Session) SavePositionForReload() {
	s.restoreIndex = s.Cursor
	s.restoreOffset = s.ScrollOffset
	s.hasRestore = true
}

// SetPending replaces whatever deferred action was outstanding. Last write
// wins; actions are never queued.
func (s *Session) SetPending(a Action) {
	s.pending = a
}

// TakePending returns the outstanding action and clears the slot, or nil.
func (s *Session) TakePending() Action {
	a := s.pending
	s.pending = nil
	return a
}

// Pending reports the outstanding action without consuming it.
func (s *Session) Pending() Action {
	return s.pending
}

// SelectedEntry returns the entry under the cursor.
func (s *Session) SelectedEntry() (Entry, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Entries) {
		return Entry{}, false
	}
	return s.Entries[s.Cursor], true
}

func (s *Session) MoveUp() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

func (s *Session) MoveDown() {
	if len(s.Entries) > 0 && s.Cursor < len(s.Entries)-1 {
		s.Cursor++
	}
}

func (s *Session) MovePageUp() {
	s.Cursor -= pageJump
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

func (s *Session) MovePageDown() {
	if len(s.Entries) == 0 {
		return
	}
	s.Cursor += pageJump
	if last := len(s.Entries) - 1; s.Cursor > last {
		s.Cursor = last
	}
}

// EnsureVisible adjusts the scroll offset so the cursor stays inside a
// viewport of the given height.
func (s *Session) EnsureVisible(height int) {
	if height < 1 {
		height = 1
	}
	if s.Cursor < s.ScrollOffset {
		s.ScrollOffset = s.Cursor
	} else if s.Cursor >= s.ScrollOffset+height {
		s.ScrollOffset = s.Cursor - height + 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}
