package browse

import "testing"

func labels(actions []FileAction) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Label
	}
	return out
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		inSearch bool
		want     []string
	}{
		{
			"folder", KindFolder, false,
			[]string{ActionDownloadZip, ActionOpenBrowser, ActionCopyPath, ActionCopyFolderID},
		},
		{
			"video", KindVideo, false,
			[]string{ActionCopyURL, ActionCopyStreamURL, ActionDownload, ActionOpenBrowser, ActionCopyPath, ActionCopyFileID},
		},
		{
			"other kinds", KindPdf, false,
			[]string{ActionCopyURL, ActionDownload, ActionOpenBrowser, ActionCopyPath, ActionCopyFileID},
		},
		{
			"search results append go-to-folder", KindText, true,
			[]string{ActionCopyURL, ActionDownload, ActionOpenBrowser, ActionCopyPath, ActionCopyFileID, ActionGoToFolder},
		},
		{
			"folder in search results", KindFolder, true,
			[]string{ActionDownloadZip, ActionOpenBrowser, ActionCopyPath, ActionCopyFolderID, ActionGoToFolder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labels(ActionsFor(tt.kind, tt.inSearch))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("action[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestActionShortcutKeysAreUnique(t *testing.T) {
	for _, kind := range []Kind{KindFolder, KindVideo, KindAudio, KindOther} {
		for _, inSearch := range []bool{false, true} {
			seen := map[rune]string{}
			for _, a := range ActionsFor(kind, inSearch) {
				if prev, dup := seen[a.Key]; dup {
					t.Errorf("kind %s: key %q used by %q and %q", kind, a.Key, prev, a.Label)
				}
				seen[a.Key] = a.Label
			}
		}
	}
}
