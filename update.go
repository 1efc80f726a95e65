package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"putscope/internal/browse"
	"putscope/internal/logger"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case folderLoadedMsg:
		// Only rename the top crumb when it is the folder that loaded; a
		// reload while viewing search results must not touch the virtual
		// "Search: ..." crumb.
		if msg.folderID != browse.RootFolderID && msg.parentName != "" {
			top := m.session.Breadcrumbs[len(m.session.Breadcrumbs)-1]
			if top.ID == msg.folderID {
				m.session.RenameCurrentCrumb(msg.parentName)
			}
		}
		m.session.SetEntries(msg.entries)
		return m, nil

	case searchDoneMsg:
		m.session.EnterSearchResults(msg.query, msg.entries)
		return m, nil

	case deleteDoneMsg:
		// Position was saved before the delete; reload the folder so the
		// cursor lands back where it was.
		m.session.Modal = browse.ModalLoading{Label: "Loading..."}
		return m, m.loadFolder()

	case actionResultMsg:
		if msg.err != nil {
			logger.Error("action failed: %v", msg.err)
			m.session.Modal = browse.ModalError{Message: msg.err.Error()}
		} else {
			m.session.Modal = browse.ModalSuccess{Message: msg.success}
		}
		return m, nil

	case downloadDoneMsg:
		if msg.err != nil {
			logger.Error("download failed: %v", msg.err)
			m.session.Modal = browse.ModalError{Message: "Download failed: " + msg.err.Error()}
		} else {
			m.session.Modal = browse.ModalNone{}
		}
		return m, nil

	case remoteErrMsg:
		logger.Error("remote call failed: %v", msg.err)
		m.session.Modal = browse.ModalError{Message: msg.err.Error()}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a keypress according to the active modal. Ctrl-C quits
// from any state, including mid-load.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.session.Quitting = true
		return m, tea.Quit
	}

	switch modal := m.session.Modal.(type) {
	case browse.ModalLoading:
		// All input is ignored while a remote call is in flight.
		return m, nil

	case browse.ModalError, browse.ModalSuccess:
		m.session.Modal = browse.ModalNone{}
		return m, nil

	case browse.ModalConfirmDelete:
		return m.handleConfirmDeleteKey(msg, modal)

	case browse.ModalFileActions:
		return m.handleFileActionsKey(msg, modal)

	case browse.ModalFind:
		return m.handleFindKey(msg)

	case browse.ModalSearchInput:
		return m.handleSearchInputKey(msg)

	default: // ModalNone
		return m.handleBrowseKey(msg)
	}
}

func (m model) handleConfirmDeleteKey(msg tea.KeyMsg, modal browse.ModalConfirmDelete) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.session.SavePositionForReload()
		m.session.Modal = browse.ModalLoading{Label: "Deleting..."}
		m.session.SetPending(browse.DeleteAction{FileID: modal.FileID})
		return m, m.drainPending()
	case "n", "N", "esc":
		m.session.Modal = browse.ModalNone{}
	}
	return m, nil
}

func (m model) handleFileActionsKey(msg tea.KeyMsg, modal browse.ModalFileActions) (tea.Model, tea.Cmd) {
	actions := browse.ActionsFor(modal.Kind, m.session.InSearchResults)

	switch msg.String() {
	case "esc":
		m.session.Modal = browse.ModalNone{}
		return m, nil
	case "up", "k":
		modal.Selected--
		if modal.Selected < 0 {
			modal.Selected = len(actions) - 1
		}
		m.session.Modal = modal
		return m, nil
	case "down", "j":
		modal.Selected = (modal.Selected + 1) % len(actions)
		m.session.Modal = modal
		return m, nil
	case "enter":
		return m.dispatchFileAction(actions[modal.Selected].Label, modal.FileID)
	}

	// Single-rune shortcuts jump straight to an action.
	if len(msg.Runes) == 1 {
		for _, a := range actions {
			if msg.Runes[0] == a.Key {
				return m.dispatchFileAction(a.Label, modal.FileID)
			}
		}
	}
	return m, nil
}

func (m model) handleFindKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.Modal = browse.ModalNone{}
		m.input.Blur()
		return m, nil
	case "enter":
		query := m.input.Value()
		m.session.Modal = browse.ModalNone{}
		m.input.Blur()
		if query != "" {
			m.session.LastSearch = query
			m.session.FindNextWith(query)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.Modal = browse.ModalFind{Query: m.input.Value()}
	return m, cmd
}

func (m model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.Modal = browse.ModalNone{}
		m.input.Blur()
		return m, nil
	case "enter":
		query := m.input.Value()
		m.input.Blur()
		if query == "" {
			m.session.Modal = browse.ModalNone{}
			return m, nil
		}
		m.session.Modal = browse.ModalLoading{Label: "Searching..."}
		m.session.SetPending(browse.SearchAction{Query: query})
		return m, m.drainPending()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.Modal = browse.ModalSearchInput{Query: m.input.Value()}
	return m, cmd
}

// handleBrowseKey is the normal-mode keymap.
func (m model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.session.Quitting = true
		return m, tea.Quit

	case "up", "k":
		m.session.MoveUp()
	case "down", "j":
		m.session.MoveDown()
	case "ctrl+u", "pgup":
		m.session.MovePageUp()
	case "ctrl+d", "pgdown":
		m.session.MovePageDown()

	case "enter":
		entry, ok := m.session.SelectedEntry()
		if !ok {
			return m, nil
		}
		if entry.IsFolder() {
			m.session.EnterFolder(entry.ID, entry.Name)
			return m, m.loadFolder()
		}
		m.session.Modal = browse.ModalFileActions{
			FileID: entry.ID,
			Name:   entry.Name,
			Kind:   entry.Kind,
		}

	case "ctrl+o":
		// Action picker for the selection regardless of kind, so folder
		// actions are reachable inside search results too.
		if entry, ok := m.session.SelectedEntry(); ok {
			m.session.Modal = browse.ModalFileActions{
				FileID: entry.ID,
				Name:   entry.Name,
				Kind:   entry.Kind,
			}
		}

	case "left", "backspace":
		return m.goBack()

	case "esc":
		if len(m.session.Breadcrumbs) > 1 {
			return m.goBack()
		}
		m.session.Quitting = true
		return m, tea.Quit

	case "x":
		if entry, ok := m.session.SelectedEntry(); ok {
			m.session.Modal = browse.ModalConfirmDelete{FileID: entry.ID, Name: entry.Name}
		}

	case "/":
		m.input.SetValue("")
		m.input.Placeholder = "find in listing"
		m.input.Focus()
		m.session.Modal = browse.ModalFind{}
		return m, textinput.Blink

	case "ctrl+f":
		m.input.SetValue("")
		m.input.Placeholder = "search put.io"
		m.input.Focus()
		m.session.Modal = browse.ModalSearchInput{}
		return m, textinput.Blink

	case "n":
		m.session.FindNext()

	case "s":
		m.session.CycleSortField()
	case "r":
		m.session.ToggleSortDirection()
	}

	return m, nil
}

func (m model) goBack() (tea.Model, tea.Cmd) {
	before := len(m.session.Breadcrumbs)
	m.session.GoBack()
	if len(m.session.Breadcrumbs) < before {
		return m, m.loadFolder()
	}
	return m, nil
}
