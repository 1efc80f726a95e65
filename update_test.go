package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"putscope/internal/browse"
	"putscope/internal/config"
	"putscope/internal/logger"
	"putscope/internal/putio"
)

func TestMain(m *testing.M) {
	logger.Disable()
	m.Run()
}

func newTestModel() model {
	cfg := &config.Config{OAuthToken: "test-token", PathDepthLimit: 256}
	m := initialModel(cfg, putio.NewClient(cfg.OAuthToken, ""))
	m.width = 80
	m.height = 24
	return m
}

func press(t *testing.T, m model, msg tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	res, cmd := m.Update(msg)
	next, ok := res.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", res)
	}
	return next, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testEntries() []browse.Entry {
	return []browse.Entry{
		{ID: 1, Name: "Media", Kind: browse.KindFolder},
		{ID: 2, Name: "clip.mp4", Kind: browse.KindVideo, Size: 1024},
		{ID: 3, Name: "notes.txt", Kind: browse.KindText, Size: 12},
	}
}

func TestLoadingIgnoresKeys(t *testing.T) {
	m := newTestModel()
	m.session.Modal = browse.ModalLoading{Label: "Loading..."}

	m, cmd := press(t, m, keyRune('x'))

	if _, ok := m.session.Modal.(browse.ModalLoading); !ok {
		t.Fatalf("modal changed during load: %T", m.session.Modal)
	}
	if cmd != nil {
		t.Error("key during load produced a command")
	}
}

func TestCtrlCQuitsEvenWhileLoading(t *testing.T) {
	m := newTestModel()
	m.session.Modal = browse.ModalLoading{Label: "Loading..."}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Fatal("ctrl+c produced no command")
	}
	if !m.session.Quitting {
		t.Error("Quitting not set")
	}
}

func TestErrorModalClearsOnAnyKey(t *testing.T) {
	m := newTestModel()
	m.session.Modal = browse.ModalError{Message: "boom"}

	m, _ = press(t, m, keyRune('z'))

	if _, ok := m.session.Modal.(browse.ModalNone); !ok {
		t.Fatalf("modal = %T, want ModalNone", m.session.Modal)
	}
}

func TestEnterFolderStartsLoad(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())
	m.session.Cursor = 1 // Media

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("entering a folder produced no load command")
	}
	modal, ok := m.session.Modal.(browse.ModalLoading)
	if !ok {
		t.Fatalf("modal = %T, want ModalLoading", m.session.Modal)
	}
	if modal.Label != "Loading..." {
		t.Errorf("label = %q", modal.Label)
	}
	if m.session.CurrentFolderID != 1 {
		t.Errorf("CurrentFolderID = %d, want 1", m.session.CurrentFolderID)
	}
}

func TestEnterOnFileOpensActionPicker(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())
	// sorted by name: clip.mp4 first

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	modal, ok := m.session.Modal.(browse.ModalFileActions)
	if !ok {
		t.Fatalf("modal = %T, want ModalFileActions", m.session.Modal)
	}
	if modal.FileID != 2 || modal.Kind != browse.KindVideo {
		t.Errorf("picker for id=%d kind=%s", modal.FileID, modal.Kind)
	}
}

func TestDeleteKeyOpensConfirm(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())
	m.session.Cursor = 1 // Media

	m, _ = press(t, m, keyRune('x'))

	modal, ok := m.session.Modal.(browse.ModalConfirmDelete)
	if !ok {
		t.Fatalf("modal = %T, want ModalConfirmDelete", m.session.Modal)
	}
	if modal.FileID != 1 || modal.Name != "Media" {
		t.Errorf("confirm for id=%d name=%q", modal.FileID, modal.Name)
	}
}

func TestConfirmDeleteQueuesAndDrains(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())
	m.session.Cursor = 2
	m, _ = press(t, m, keyRune('x'))
	if _, ok := m.session.Modal.(browse.ModalConfirmDelete); !ok {
		t.Fatalf("modal = %T, want ModalConfirmDelete", m.session.Modal)
	}

	m, cmd := press(t, m, keyRune('y'))

	modal, ok := m.session.Modal.(browse.ModalLoading)
	if !ok {
		t.Fatalf("modal = %T, want ModalLoading", m.session.Modal)
	}
	if modal.Label != "Deleting..." {
		t.Errorf("label = %q", modal.Label)
	}
	if cmd == nil {
		t.Error("confirm produced no command")
	}
	if m.session.Pending() != nil {
		t.Error("pending action not drained")
	}
}

func TestConfirmDeleteDeclined(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())
	m.session.Modal = browse.ModalConfirmDelete{FileID: 3, Name: "notes.txt"}

	m, cmd := press(t, m, keyRune('n'))

	if _, ok := m.session.Modal.(browse.ModalNone); !ok {
		t.Fatalf("modal = %T, want ModalNone", m.session.Modal)
	}
	if cmd != nil {
		t.Error("decline produced a command")
	}
}

func TestFindCommitSetsLastSearchAndJumps(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())

	m, _ = press(t, m, keyRune('/'))
	if _, ok := m.session.Modal.(browse.ModalFind); !ok {
		t.Fatalf("modal = %T, want ModalFind", m.session.Modal)
	}
	for _, r := range "clip" {
		m, _ = press(t, m, keyRune(r))
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.session.LastSearch != "clip" {
		t.Errorf("LastSearch = %q, want %q", m.session.LastSearch, "clip")
	}
	if got, _ := m.session.SelectedEntry(); got.Name != "clip.mp4" {
		t.Errorf("cursor on %q, want clip.mp4", got.Name)
	}
	if _, ok := m.session.Modal.(browse.ModalNone); !ok {
		t.Fatalf("modal = %T, want ModalNone", m.session.Modal)
	}
}

func TestSearchDialogEnterStartsRemoteSearch(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	for _, r := range "linux" {
		m, _ = press(t, m, keyRune(r))
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	modal, ok := m.session.Modal.(browse.ModalLoading)
	if !ok {
		t.Fatalf("modal = %T, want ModalLoading", m.session.Modal)
	}
	if modal.Label != "Searching..." {
		t.Errorf("label = %q", modal.Label)
	}
	if cmd == nil {
		t.Error("search produced no command")
	}
}

func TestSearchDialogEmptyQueryJustCloses(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if _, ok := m.session.Modal.(browse.ModalNone); !ok {
		t.Fatalf("modal = %T, want ModalNone", m.session.Modal)
	}
	if cmd != nil {
		t.Error("empty search produced a command")
	}
}

func TestFolderLoadRenamesPlaceholderCrumb(t *testing.T) {
	m := newTestModel()
	m.session.NavigateToFolder(5, 2)

	m, _ = apply(t, m, folderLoadedMsg{
		folderID:   5,
		parentName: "Shows",
		entries:    testEntries(),
	})

	crumb := m.session.Breadcrumbs[len(m.session.Breadcrumbs)-1]
	if crumb.Name != "Shows" {
		t.Errorf("crumb name = %q, want Shows", crumb.Name)
	}
	if got, _ := m.session.SelectedEntry(); got.ID != 2 {
		t.Errorf("selected id = %d, want 2", got.ID)
	}
}

func TestReloadInSearchResultsKeepsSearchCrumb(t *testing.T) {
	m := newTestModel()
	m.session.EnterFolder(7, "Docs")
	m, _ = apply(t, m, folderLoadedMsg{folderID: 7, parentName: "Docs", entries: testEntries()})
	m.session.EnterSearchResults("foo", testEntries())

	// Deleting a result reloads the underlying folder; the listing response
	// must not rename the search crumb.
	m.session.SavePositionForReload()
	m, cmd := apply(t, m, deleteDoneMsg{})
	if cmd == nil {
		t.Fatal("delete completion produced no reload command")
	}
	m, _ = apply(t, m, folderLoadedMsg{folderID: 7, parentName: "Docs", entries: testEntries()[1:]})

	crumb := m.session.Breadcrumbs[len(m.session.Breadcrumbs)-1]
	if crumb.ID != browse.SearchResultsID {
		t.Fatalf("top crumb id = %d, want %d", crumb.ID, browse.SearchResultsID)
	}
	if crumb.Name != "Search: foo" {
		t.Errorf("top crumb name = %q, want %q", crumb.Name, "Search: foo")
	}
	if !m.session.InSearchResults {
		t.Error("InSearchResults cleared by reload")
	}
}

func TestActionPickerShortcutDispatches(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())
	m.session.Modal = browse.ModalFileActions{FileID: 2, Name: "clip.mp4", Kind: browse.KindVideo}

	// 'd' is the download shortcut; it should clear the picker and hand the
	// terminal to the downloader.
	m, cmd := press(t, m, keyRune('d'))

	if _, ok := m.session.Modal.(browse.ModalNone); !ok {
		t.Fatalf("modal = %T, want ModalNone", m.session.Modal)
	}
	if cmd == nil {
		t.Error("download shortcut produced no command")
	}
}

func TestActionPickerSelectionWraps(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())
	m.session.Modal = browse.ModalFileActions{FileID: 2, Name: "clip.mp4", Kind: browse.KindVideo}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})

	modal := m.session.Modal.(browse.ModalFileActions)
	want := len(browse.ActionsFor(browse.KindVideo, false)) - 1
	if modal.Selected != want {
		t.Errorf("Selected = %d, want %d", modal.Selected, want)
	}
}

func TestRemoteErrorShowsModal(t *testing.T) {
	m := newTestModel()
	m.session.Modal = browse.ModalLoading{Label: "Loading..."}

	m, _ = apply(t, m, remoteErrMsg{err: errSentinel("no network")})

	modal, ok := m.session.Modal.(browse.ModalError)
	if !ok {
		t.Fatalf("modal = %T, want ModalError", m.session.Modal)
	}
	if modal.Message != "no network" {
		t.Errorf("message = %q", modal.Message)
	}
}

func TestDeleteDoneTriggersReload(t *testing.T) {
	m := newTestModel()
	m.session.SetEntries(testEntries())
	m.session.SavePositionForReload()

	m, cmd := apply(t, m, deleteDoneMsg{})

	if _, ok := m.session.Modal.(browse.ModalLoading); !ok {
		t.Fatalf("modal = %T, want ModalLoading", m.session.Modal)
	}
	if cmd == nil {
		t.Error("delete completion produced no reload command")
	}
}

func apply(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	res, cmd := m.Update(msg)
	next, ok := res.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", res)
	}
	return next, cmd
}

type errSentinel string

func (e errSentinel) Error() string { return string(e) }
