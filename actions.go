package main

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"putscope/internal/browse"
)

// dispatchFileAction runs one row of the action picker. Quick local actions
// (clipboard writes of already-known values, opening the browser) complete
// here and set a Success or Error modal directly; anything needing a remote
// call is queued and drained as a command behind a Loading modal.
func (m model) dispatchFileAction(action string, fileID int64) (tea.Model, tea.Cmd) {
	switch action {
	case browse.ActionCopyURL:
		m.session.Modal = browse.ModalLoading{Label: "Loading..."}
		return m, m.copyURL(fileID)

	case browse.ActionCopyStreamURL:
		m.copyToClipboard(m.client.StreamURL(fileID), "Stream URL copied!")
		return m, nil

	case browse.ActionDownload, browse.ActionDownloadZip:
		m.session.Modal = browse.ModalNone{}
		m.session.SetPending(browse.DownloadAction{FileID: fileID})
		return m, m.drainPending()

	case browse.ActionOpenBrowser:
		if err := open.Start(m.client.AppURL(fileID)); err != nil {
			m.session.Modal = browse.ModalError{Message: "Failed to open browser: " + err.Error()}
		} else {
			m.session.Modal = browse.ModalSuccess{Message: "Opening in browser..."}
		}
		return m, nil

	case browse.ActionCopyFileID, browse.ActionCopyFolderID:
		m.copyToClipboard(strconv.FormatInt(fileID, 10), "ID copied!")
		return m, nil

	case browse.ActionCopyPath:
		entry, ok := m.entryByID(fileID)
		if !ok {
			m.session.Modal = browse.ModalError{Message: "File no longer in listing"}
			return m, nil
		}
		m.session.Modal = browse.ModalLoading{Label: "Copying path..."}
		m.session.SetPending(browse.CopyPathAction{Name: entry.Name, ParentID: entry.ParentID})
		return m, m.drainPending()

	case browse.ActionGoToFolder:
		entry, ok := m.entryByID(fileID)
		if !ok {
			m.session.Modal = browse.ModalError{Message: "File no longer in listing"}
			return m, nil
		}
		m.session.SetPending(browse.GoToFolderAction{ParentID: entry.ParentID, FileID: entry.ID})
		return m, m.drainPending()
	}

	m.session.Modal = browse.ModalError{Message: fmt.Sprintf("Unknown action: %s", action)}
	return m, nil
}

func (m model) entryByID(fileID int64) (browse.Entry, bool) {
	for _, e := range m.session.Entries {
		if e.ID == fileID {
			return e, true
		}
	}
	return browse.Entry{}, false
}

// copyToClipboard writes text to the system clipboard and reports the result
// through the modal.
func (m model) copyToClipboard(text, successMsg string) {
	if err := clipboard.WriteAll(text); err != nil {
		m.session.Modal = browse.ModalError{Message: "Clipboard write failed: " + err.Error()}
		return
	}
	m.session.Modal = browse.ModalSuccess{Message: successMsg}
}
