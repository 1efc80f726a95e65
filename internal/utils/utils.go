package utils

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"putscope/internal/browse"
)

// KindIcon returns an emoji icon for a put.io file kind
func KindIcon(kind browse.Kind) string {
	switch kind {
	case browse.KindFolder:
		return "📁"
	case browse.KindVideo:
		return "🎬"
	case browse.KindAudio:
		return "🎵"
	case browse.KindImage:
		return "🖼️"
	case browse.KindArchive:
		return "📦"
	case browse.KindPdf:
		return "📕"
	case browse.KindText:
		return "📝"
	default:
		return "📄"
	}
}

// KindColor returns the list color for a kind. Folders get a bright warm
// yellow so they stand out from files.
func KindColor(kind browse.Kind) lipgloss.Color {
	switch kind {
	case browse.KindFolder:
		return lipgloss.Color("227")
	case browse.KindVideo:
		return lipgloss.Color("34")
	case browse.KindAudio:
		return lipgloss.Color("170")
	case browse.KindImage:
		return lipgloss.Color("45")
	case browse.KindArchive, browse.KindPdf:
		return lipgloss.Color("167")
	default:
		return lipgloss.Color("250")
	}
}

// FormatFileSize formats a file size in bytes to a human-readable string
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// FormatFileSizeColored returns a color-styled file size string based on size ranges
func FormatFileSizeColored(size int64) string {
	sizeStr := FormatFileSize(size)

	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)

	var style lipgloss.Style
	switch {
	case size < KB:
		// < 1 KB: dim gray for tiny files
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	case size < MB:
		// 1 KB - 1 MB: normal color for typical files
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	case size < GB:
		// 1 MB - 1 GB: yellow/orange for large files
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	default:
		// > 1 GB: red bold for very large files
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	}

	return style.Render(sizeStr)
}

// Truncate limits a string to max characters, ending with an ellipsis when
// it had to cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// HighlightSubstring styles the first case-insensitive occurrence of query
// inside text, returning text unchanged when there is no match. Lowercasing
// can change byte offsets (e.g. "İ"); when that happens the match position
// no longer maps onto the original string, so the text is returned unstyled
// rather than sliced mid-rune.
func HighlightSubstring(text, query string, base, highlight lipgloss.Style) string {
	if query == "" {
		return base.Render(text)
	}
	lowText := strings.ToLower(text)
	lowQuery := strings.ToLower(query)
	idx := strings.Index(lowText, lowQuery)
	if idx < 0 {
		return base.Render(text)
	}
	if len(lowText) != len(text) || len(lowQuery) != len(query) {
		return base.Render(text)
	}
	end := idx + len(query)
	return base.Render(text[:idx]) + highlight.Render(text[idx:end]) + base.Render(text[end:])
}
