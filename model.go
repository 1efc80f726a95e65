package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"putscope/internal/browse"
	"putscope/internal/config"
	"putscope/internal/putio"
)

// Result messages delivered by worker commands. Each remote call produces
// exactly one of these; the session is only ever mutated from Update.

type folderLoadedMsg struct {
	folderID   int64
	parentName string
	entries    []browse.Entry
}

type searchDoneMsg struct {
	query   string
	entries []browse.Entry
}

type deleteDoneMsg struct{}

type remoteErrMsg struct {
	err error
}

// actionResultMsg reports a finished file action (clipboard copies, path
// resolution). Exactly one of success/err is set.
type actionResultMsg struct {
	success string
	err     error
}

type downloadDoneMsg struct {
	err error
}

type model struct {
	session *browse.Session
	client  *putio.Client
	cfg     *config.Config

	spinner spinner.Model
	// input backs both the '/' find bar and the Ctrl-F search dialog; its
	// value is mirrored into the active modal's Query.
	input textinput.Model

	width  int
	height int
}

func initialModel(cfg *config.Config, client *putio.Client) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return model{
		session: browse.NewSession(),
		client:  client,
		cfg:     cfg,
		spinner: sp,
		input:   ti,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("putscope"),
		m.spinner.Tick,
		m.loadFolder(),
	)
}

// toEntries converts API file records into the session's entry type.
func toEntries(files []putio.File) []browse.Entry {
	entries := make([]browse.Entry, len(files))
	for i, f := range files {
		entries[i] = toEntry(f)
	}
	return entries
}

func toEntry(f putio.File) browse.Entry {
	kind := browse.Kind(f.FileType)
	if kind == "" {
		kind = browse.KindOther
	}
	return browse.Entry{
		ID:        f.ID,
		Name:      f.Name,
		Kind:      kind,
		Size:      f.Size,
		CreatedAt: f.CreatedAt.Time,
		UpdatedAt: f.UpdatedAt.Time,
		ParentID:  f.ParentID,
	}
}
