package browse

import "strings"

// FindNextWith jumps to the next entry whose name contains query
// (case-insensitive), scanning forward from the entry after the cursor and
// wrapping around at most once. Reports whether a match was found; the
// cursor is left untouched on a miss.
func (s *Session) FindNextWith(query string) bool {
	if query == "" || len(s.Entries) == 0 {
		return false
	}
	q := strings.ToLower(query)
	n := len(s.Entries)
	for offset := 1; offset <= n; offset++ {
		i := (s.Cursor + offset) % n
		if strings.Contains(strings.ToLower(s.Entries[i].Name), q) {
			s.Cursor = i
			return true
		}
	}
	return false
}

// FindNext repeats the last find query.
func (s *Session) FindNext() bool {
	if s.LastSearch == "" {
		return false
	}
	return s.FindNextWith(s.LastSearch)
}
