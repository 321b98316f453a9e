package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/bridgegen"
)

type previewModel struct {
	files    []bridgegen.File
	view     viewport.Model
	selected int
	ready    bool
}

func newPreviewModel(files *bridgegen.Files) *previewModel {
	return &previewModel{files: files.All()}
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab", "right", "l":
			m.selected = (m.selected + 1) % len(m.files)
			m.show()
			return m, nil

		case "shift+tab", "left", "h":
			m.selected = (m.selected + len(m.files) - 1) % len(m.files)
			m.show()
			return m, nil
		}

	case tea.WindowSizeMsg:
		height := msg.Height - 4
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.view = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = height
		}
		m.show()
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *previewModel) show() {
	if !m.ready {
		return
	}
	m.view.SetContent(string(m.files[m.selected].Content))
	m.view.GotoTop()
}

func (m *previewModel) View() string {
	if !m.ready {
		return "Generating..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("bridgegen preview"))
	b.WriteString(" ")
	for i, f := range m.files {
		if i == m.selected {
			b.WriteString(selectedStyle.Render(" " + f.Name + " "))
		} else {
			b.WriteString(fileStyle.Render(" " + f.Name + " "))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.view.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("tab/←/→ file • ↑/↓ scroll • q quit   %3.f%%", m.view.ScrollPercent()*100)))
	return b.String()
}

func runInteractive(files *bridgegen.Files) error {
	p := tea.NewProgram(newPreviewModel(files), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
