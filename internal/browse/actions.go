package browse

// FileAction is one row of the per-file action picker.
type FileAction struct {
	Label string
	Key   rune
}

// Action labels, shared by the router and the renderer so they never
// disagree about what a picker row does.
const (
	ActionCopyURL       = "Copy URL"
	ActionCopyStreamURL = "Copy Stream URL"
	ActionDownload      = "Download"
	ActionDownloadZip   = "Download as zip"
	ActionOpenBrowser   = "Open in browser"
	ActionCopyPath      = "Copy path"
	ActionCopyFileID    = "Copy file ID"
	ActionCopyFolderID  = "Copy folder ID"
	ActionGoToFolder    = "Go to folder"
)

// ActionsFor returns the ordered action list for a file of the given kind.
// Search results additionally offer a jump to the containing folder.
func ActionsFor(kind Kind, inSearchResults bool) []FileAction {
	var actions []FileAction
	switch kind {
	case KindFolder:
		actions = []FileAction{
			{ActionDownloadZip, 'z'},
			{ActionOpenBrowser, 'b'},
			{ActionCopyPath, 'p'},
			{ActionCopyFolderID, 'i'},
		}
	case KindVideo:
		actions = []FileAction{
			{ActionCopyURL, 'c'},
			{ActionCopyStreamURL, 's'},
			{ActionDownload, 'd'},
			{ActionOpenBrowser, 'b'},
			{ActionCopyPath, 'p'},
			{ActionCopyFileID, 'i'},
		}
	default:
		actions = []FileAction{
			{ActionCopyURL, 'c'},
			{ActionDownload, 'd'},
			{ActionOpenBrowser, 'b'},
			{ActionCopyPath, 'p'},
			{ActionCopyFileID, 'i'},
		}
	}
	if inSearchResults {
		actions = append(actions, FileAction{ActionGoToFolder, 'g'})
	}
	return actions
}
