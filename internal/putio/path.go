package putio

import (
	"errors"
	"fmt"
)

// Path-walk validation failures. These say the store's folder graph is
// malformed, as opposed to a transport error on one of the hops.
var (
	ErrInvalidParent = errors.New("invalid parent id")
	ErrMissingName   = errors.New("missing folder name")
	ErrParentLoop    = errors.New("parent loop detected")
	ErrPathTooDeep   = errors.New("path too deep")
)

// FolderPath walks parent ids upward until the root, collecting folder names
// outermost first. maxHops bounds the walk so a corrupt parent chain cannot
// spin forever.
func (c *Client) FolderPath(parentID int64, maxHops int) ([]string, error) {
	if parentID < 0 {
		return nil, fmt.Errorf("path lookup failed: %w", ErrInvalidParent)
	}

	var parts []string
	for depth := 0; parentID != 0; depth++ {
		if depth >= maxHops {
			return nil, fmt.Errorf("path lookup failed: %w", ErrPathTooDeep)
		}

		resp, err := c.List(parentID)
		if err != nil {
			return nil, fmt.Errorf("path lookup failed: %w", err)
		}
		folder := resp.Parent

		if folder.Name == "" {
			return nil, fmt.Errorf("path lookup failed: %w", ErrMissingName)
		}
		if folder.ParentID == parentID {
			return nil, fmt.Errorf("path lookup failed: %w", ErrParentLoop)
		}

		parts = append(parts, folder.Name)
		parentID = folder.ParentID
	}

	// Collected bottom-up; flip to root-first.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts, nil
}
