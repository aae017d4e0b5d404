package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpanel/internal/source"
)

func TestAppModel_QuitKey(t *testing.T) {
	v := threeColumns(t)
	m := NewAppModel(v).AsTeaModel()

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_ForwardsToStrip(t *testing.T) {
	v := threeColumns(t)
	m := NewAppModel(v).AsTeaModel()

	m.Update(keyMsg("l"))
	assert.Equal(t, 1, v.Controller.Active())
	assert.Equal(t, v.View(), m.View())
}

func TestAppModel_ChangeReloads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("first"), 0o644))
	docs, err := source.Load(dir)
	require.NoError(t, err)

	v, err := NewStripView(docs, testConfig())
	require.NoError(t, err)
	m := NewAppModel(v).AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("second version"), 0o644))
	_, cmd := m.Update(source.Change{Path: filepath.Join(dir, "a.md")})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, ReloadMsg{}, msg)

	m.Update(msg)
	assert.Equal(t, "second version", v.Columns[0].Doc.Body)
	assert.Equal(t, []float64{18}, v.Controller.Geometry().Widths)
}
