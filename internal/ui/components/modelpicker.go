// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the chatbox TUI.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatbox-tui/internal/model"
	"github.com/jeranaias/chatbox-tui/internal/ui/styles"
)

// =============================================================================
// MODEL PICKER
// =============================================================================

// ModelSelectedMsg is emitted when the user picks a model from the overlay.
type ModelSelectedMsg struct {
	ModelID string
}

// ModelPicker is an overlay for choosing the active model from the allow-list.
type ModelPicker struct {
	models   []model.ModelInfo
	selected int
	current  string
	visible  bool
	width    int
	theme    *styles.Theme
}

// NewModelPicker creates a model picker populated from the model registry.
func NewModelPicker(theme *styles.Theme) *ModelPicker {
	ids := model.ModelIDs()
	infos := make([]model.ModelInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := model.Lookup(id); ok {
			infos = append(infos, info)
		}
	}

	return &ModelPicker{
		models: infos,
		width:  60,
		theme:  theme,
	}
}

// Show opens the picker with the cursor on the currently active model.
func (mp *ModelPicker) Show(currentModel string) {
	mp.visible = true
	mp.current = currentModel
	mp.selected = 0
	for i, info := range mp.models {
		if info.ID == currentModel {
			mp.selected = i
			break
		}
	}
}

// Hide closes the picker.
func (mp *ModelPicker) Hide() {
	mp.visible = false
}

// Visible reports whether the picker is open.
func (mp *ModelPicker) Visible() bool {
	return mp.visible
}

// SetWidth sets the overlay width.
func (mp *ModelPicker) SetWidth(width int) {
	mp.width = width
}

// Update handles key events while the picker is open.
func (mp *ModelPicker) Update(msg tea.Msg) (*ModelPicker, tea.Cmd) {
	if !mp.visible {
		return mp, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			mp.Hide()

		case "up", "k":
			mp.selected--
			if mp.selected < 0 {
				mp.selected = len(mp.models) - 1
			}

		case "down", "j", "tab":
			mp.selected++
			if mp.selected >= len(mp.models) {
				mp.selected = 0
			}

		case "enter":
			if mp.selected >= 0 && mp.selected < len(mp.models) {
				chosen := mp.models[mp.selected].ID
				mp.Hide()
				return mp, func() tea.Msg {
					return ModelSelectedMsg{ModelID: chosen}
				}
			}
		}
	}

	return mp, nil
}

// View renders the picker overlay.
func (mp *ModelPicker) View() string {
	if !mp.visible {
		return ""
	}

	title := mp.theme.PickerTitle.Render("Select a model")

	rows := []string{title, ""}
	for i, info := range mp.models {
		label := info.Name
		if info.ID == mp.current {
			label += " (current)"
		}

		desc := mp.theme.PickerDesc.Render(info.Provider)

		var line string
		if i == mp.selected {
			line = mp.theme.PickerItemSelected.Render("> "+label) + " " + desc
		} else {
			line = mp.theme.PickerItem.Render("  "+label) + " " + desc
		}
		rows = append(rows, line)
	}

	rows = append(rows, "", mp.theme.PickerDesc.Render("enter select · esc cancel"))

	return mp.theme.PickerBox.
		Width(minInt(mp.width-4, 56)).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Selected returns the model ID currently under the cursor.
func (mp *ModelPicker) Selected() string {
	if mp.selected < 0 || mp.selected >= len(mp.models) {
		return ""
	}
	return mp.models[mp.selected].ID
}
