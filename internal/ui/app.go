package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"hpanel/internal/source"
)

// AppModel is the root model. It owns the strip and turns file-system
// changes into content reloads.
type AppModel struct {
	Strip *StripView
	Quit  key.Binding
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Strip.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.Quit) {
			return a, tea.Quit
		}
	case source.Change:
		return a, a.reloadCmd()
	}

	v, cmd := a.Strip.Update(msg)
	if s, ok := v.(*StripView); ok {
		a.Strip = s
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Strip.View()
}

// reloadCmd re-reads every document off the update loop.
func (a *AppModel) reloadCmd() tea.Cmd {
	docs := a.Strip.Docs()
	return func() tea.Msg {
		return ReloadMsg{Docs: source.Reload(docs)}
	}
}

// NewAppModel creates the root application model around strip.
func NewAppModel(strip *StripView) *AppModel {
	return &AppModel{
		Strip: strip,
		Quit:  strip.Keys.Quit,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
