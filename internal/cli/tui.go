package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pacetools/paceviz/pkg/errors"
	"github.com/pacetools/paceviz/pkg/formats"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// FileEntry is one selectable input file with its detected format.
type FileEntry struct {
	Path   string
	Format formats.Format
}

// FileListModel is the bubbletea model for interactive input-file selection,
// used when render is invoked without an argument.
type FileListModel struct {
	Files    []FileEntry
	Cursor   int
	Selected *FileEntry
	Height   int
	Offset   int
}

// NewFileListModel creates a new file list model.
func NewFileListModel(files []FileEntry) FileListModel {
	return FileListModel{
		Files:  files,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m FileListModel) Init() tea.Cmd {
	return nil
}

func (m FileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Files)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			file := m.Files[m.Cursor]
			m.Selected = &file
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Input File"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Files))
	for i := m.Offset; i < end; i++ {
		entry := m.Files[i]
		line := fmt.Sprintf("%s  %s", entry.Path, listDimStyle.Render(string(entry.Format)))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// scanInputs lists the recognizable benchmark files in dir, in directory
// order. Files whose format cannot be determined are skipped.
func scanInputs(dir string) ([]FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "scan %s", dir)
	}

	var files []FileEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		format, err := formats.Detect(path)
		if err != nil {
			continue
		}
		files = append(files, FileEntry{Path: path, Format: format})
	}
	return files, nil
}

// pickInputFile runs the interactive picker over the recognizable files in
// dir and returns the chosen path.
func pickInputFile(dir string) (string, error) {
	files, err := scanInputs(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", errors.New(errors.ErrCodeIO, "no benchmark files found in %s", dir)
	}

	p := tea.NewProgram(NewFileListModel(files))
	result, err := p.Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "file picker")
	}

	model, ok := result.(FileListModel)
	if !ok || model.Selected == nil {
		return "", errors.New(errors.ErrCodeIO, "no input file selected")
	}
	return model.Selected.Path, nil
}
