package browse

import (
	"sort"
	"strings"
)

// SortField selects which entry attribute orders the list.
type SortField int

const (
	SortByName SortField = iota
	SortBySize
	SortByCreated
	SortByModified
)

// Label is the short name shown in the help bar.
func (f SortField) Label() string {
	switch f {
	case SortBySize:
		return "Size"
	case SortByCreated:
		return "Date"
	case SortByModified:
		return "Modified"
	default:
		return "Name"
	}
}

type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// sortEntries orders the snapshot by the current field and direction.
// The sort is stable so ties keep their original relative order.
func (s *Session) sortEntries() {
	field, dir := s.SortField, s.SortDirection
	sort.SliceStable(s.Entries, func(i, j int) bool {
		a, b := s.Entries[i], s.Entries[j]
		if dir == SortDesc {
			a, b = b, a
		}
		switch field {
		case SortBySize:
			return a.Size < b.Size
		case SortByCreated:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortByModified:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	})
}

// CycleSortField advances Name -> Size -> Date -> Modified -> Name and
// re-sorts. Manual sort changes reset the cursor to the top.
func (s *Session) CycleSortField() {
	s.SortField = (s.SortField + 1) % 4
	s.sortEntries()
	s.Cursor = 0
	s.ScrollOffset = 0
}

// ToggleSortDirection flips ascending/descending and re-sorts.
func (s *Session) ToggleSortDirection() {
	if s.SortDirection == SortAsc {
		s.SortDirection = SortDesc
	} else {
		s.SortDirection = SortAsc
	}
	s.sortEntries()
	s.Cursor = 0
	s.ScrollOffset = 0
}
