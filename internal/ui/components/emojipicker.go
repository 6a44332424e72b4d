// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the chatbox TUI.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatbox-tui/internal/ui/styles"
)

// =============================================================================
// EMOJI PICKER
// =============================================================================

// EmojiTarget distinguishes where a picked emoji goes.
type EmojiTarget int

const (
	// EmojiTargetInput inserts the emoji into the composer draft.
	EmojiTargetInput EmojiTarget = iota

	// EmojiTargetReaction attaches the emoji as a reaction to a message.
	EmojiTargetReaction
)

// EmojiSelectedMsg is emitted when the user picks an emoji.
type EmojiSelectedMsg struct {
	Emoji     string
	Target    EmojiTarget
	MessageID string // Set for EmojiTargetReaction
}

// defaultEmoji is the quick-pick set shown in the overlay.
var defaultEmoji = []string{
	"😀", "😂", "😊", "😍", "🤔", "👍", "👎", "❤️",
	"🎉", "🔥", "💯", "👀", "🙏", "😅", "😭", "🚀",
}

// emojiColumns is the overlay grid width.
const emojiColumns = 8

// EmojiPicker is an overlay for choosing an emoji to insert or react with.
type EmojiPicker struct {
	emoji     []string
	selected  int
	visible   bool
	target    EmojiTarget
	messageID string
	theme     *styles.Theme
}

// NewEmojiPicker creates an emoji picker with the default set.
func NewEmojiPicker(theme *styles.Theme) *EmojiPicker {
	return &EmojiPicker{
		emoji: defaultEmoji,
		theme: theme,
	}
}

// ShowForInput opens the picker to insert into the composer.
func (ep *EmojiPicker) ShowForInput() {
	ep.visible = true
	ep.target = EmojiTargetInput
	ep.messageID = ""
	ep.selected = 0
}

// ShowForReaction opens the picker to react to a message.
func (ep *EmojiPicker) ShowForReaction(messageID string) {
	ep.visible = true
	ep.target = EmojiTargetReaction
	ep.messageID = messageID
	ep.selected = 0
}

// Hide closes the picker.
func (ep *EmojiPicker) Hide() {
	ep.visible = false
}

// Visible reports whether the picker is open.
func (ep *EmojiPicker) Visible() bool {
	return ep.visible
}

// Update handles key events while the picker is open.
func (ep *EmojiPicker) Update(msg tea.Msg) (*EmojiPicker, tea.Cmd) {
	if !ep.visible {
		return ep, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			ep.Hide()

		case "left", "h":
			ep.selected--
			if ep.selected < 0 {
				ep.selected = len(ep.emoji) - 1
			}

		case "right", "l", "tab":
			ep.selected++
			if ep.selected >= len(ep.emoji) {
				ep.selected = 0
			}

		case "up", "k":
			ep.selected -= emojiColumns
			if ep.selected < 0 {
				ep.selected += len(ep.emoji)
			}

		case "down", "j":
			ep.selected += emojiColumns
			if ep.selected >= len(ep.emoji) {
				ep.selected -= len(ep.emoji)
			}

		case "enter":
			if ep.selected >= 0 && ep.selected < len(ep.emoji) {
				chosen := ep.emoji[ep.selected]
				target := ep.target
				messageID := ep.messageID
				ep.Hide()
				return ep, func() tea.Msg {
					return EmojiSelectedMsg{
						Emoji:     chosen,
						Target:    target,
						MessageID: messageID,
					}
				}
			}
		}
	}

	return ep, nil
}

// View renders the picker overlay as a grid.
func (ep *EmojiPicker) View() string {
	if !ep.visible {
		return ""
	}

	title := "Pick an emoji"
	if ep.target == EmojiTargetReaction {
		title = "React with an emoji"
	}

	rows := []string{ep.theme.PickerTitle.Render(title), ""}

	var row strings.Builder
	for i, e := range ep.emoji {
		if i > 0 && i%emojiColumns == 0 {
			rows = append(rows, row.String())
			row.Reset()
		}
		if i == ep.selected {
			row.WriteString(ep.theme.PickerItemSelected.Render(e))
		} else {
			row.WriteString(ep.theme.PickerItem.Render(e))
		}
		row.WriteString(" ")
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}

	rows = append(rows, "", ep.theme.PickerDesc.Render("arrows move · enter pick · esc cancel"))

	return ep.theme.PickerBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
