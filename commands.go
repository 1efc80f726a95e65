package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"putscope/internal/browse"
	"putscope/internal/putio"
)

// drainPending consumes the queued action, if any, and turns it into the
// command that performs it. Navigation side effects (the go-to-folder jump)
// happen here so the listing request sees the updated breadcrumb stack.
func (m *model) drainPending() tea.Cmd {
	switch a := m.session.TakePending().(type) {
	case browse.SearchAction:
		return m.search(a.Query)
	case browse.DeleteAction:
		return m.deleteFile(a.FileID)
	case browse.CopyPathAction:
		return m.copyPath(a.Name, a.ParentID)
	case browse.GoToFolderAction:
		m.session.NavigateToFolder(a.ParentID, a.FileID)
		return m.loadFolder()
	case browse.DownloadAction:
		return m.download(a.FileID)
	}
	return nil
}

func (m model) loadFolder() tea.Cmd {
	client := m.client
	folderID := m.session.CurrentFolderID
	return func() tea.Msg {
		resp, err := client.List(folderID)
		if err != nil {
			return remoteErrMsg{err: fmt.Errorf("failed to load folder: %w", err)}
		}
		return folderLoadedMsg{
			folderID:   folderID,
			parentName: resp.Parent.Name,
			entries:    toEntries(resp.Files),
		}
	}
}

func (m model) search(query string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Search(query)
		if err != nil {
			return remoteErrMsg{err: fmt.Errorf("search failed: %w", err)}
		}
		return searchDoneMsg{query: query, entries: toEntries(resp.Files)}
	}
}

func (m model) deleteFile(fileID int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.Delete(fileID); err != nil {
			return remoteErrMsg{err: fmt.Errorf("delete failed: %w", err)}
		}
		return deleteDoneMsg{}
	}
}

func (m model) copyURL(fileID int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		url, err := client.URL(fileID)
		if err != nil {
			return actionResultMsg{err: fmt.Errorf("failed to get URL: %w", err)}
		}
		if err := clipboard.WriteAll(url); err != nil {
			return actionResultMsg{err: fmt.Errorf("clipboard write failed: %w", err)}
		}
		return actionResultMsg{success: "URL copied!"}
	}
}

func (m model) copyPath(name string, parentID int64) tea.Cmd {
	client := m.client
	limit := m.cfg.PathDepthLimit
	return func() tea.Msg {
		parts, err := client.FolderPath(parentID, limit)
		if err != nil {
			return actionResultMsg{err: fmt.Errorf("failed to resolve path: %w", err)}
		}
		path := "/" + strings.Join(append(parts, name), "/")
		if err := clipboard.WriteAll(path); err != nil {
			return actionResultMsg{err: fmt.Errorf("clipboard write failed: %w", err)}
		}
		return actionResultMsg{success: "Path copied!"}
	}
}

// download suspends the TUI and streams the file with plain terminal
// progress output, then waits for Enter before restoring the screen.
func (m model) download(fileID int64) tea.Cmd {
	dest := m.cfg.DownloadDir
	if dest == "" {
		dest = "."
	}
	exec := &downloadExec{client: m.client, fileID: fileID, destDir: dest}
	return tea.Exec(exec, func(err error) tea.Msg {
		return downloadDoneMsg{err: err}
	})
}

type downloadExec struct {
	client  *putio.Client
	fileID  int64
	destDir string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (d *downloadExec) Run() error {
	err := d.client.Download(d.fileID, d.destDir, d.stdout)
	if err != nil {
		fmt.Fprintf(d.stderr, "Download error: %v\n", err)
	}
	fmt.Fprint(d.stdout, "\nPress Enter to return to the file browser...")
	if d.stdin != nil {
		bufio.NewReader(d.stdin).ReadString('\n')
	}
	return err
}

func (d *downloadExec) SetStdin(r io.Reader)  { d.stdin = r }
func (d *downloadExec) SetStdout(w io.Writer) { d.stdout = w }
func (d *downloadExec) SetStderr(w io.Writer) { d.stderr = w }
