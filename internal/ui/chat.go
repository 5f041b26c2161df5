package ui

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parley-sh/parley/internal/transcript"
)

// Chat is the conversation panel: the scrolling feed above a composer
// input, with a one-line attachment indicator between them when an image
// is staged.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	attachment string // staged attachment label, empty when none
	copied     bool   // copy confirmation currently showing
}

// NewChat creates the conversation panel.
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Chat{
		viewport: vp,
		input:    ti,
	}
}

// SetSize sets the panel dimensions.
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	feedHeight := height - InputTotalHeight - c.attachmentLines() - 2
	if feedHeight < 1 {
		feedHeight = 1
	}

	c.viewport.SetWidth(width - 2)
	c.viewport.SetHeight(feedHeight)
	c.input.SetWidth(width - 2 - InputPaddingWidth)
}

// SetFocused sets the focus state.
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state.
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetEntries renders the entries into the feed, scrolling to the bottom
// when asked.
func (c *Chat) SetEntries(entries []transcript.Entry, selectedID string, scrollToBottom bool) {
	c.viewport.SetContent(RenderFeed(entries, c.viewport.Width(), selectedID))
	if scrollToBottom {
		c.viewport.GotoBottom()
	}
}

// RawInput returns the input exactly as typed, untrimmed.
func (c *Chat) RawInput() string {
	return c.input.Value()
}

// ClearInput clears the input field.
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the input field value.
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// SetAttachment shows the staged attachment indicator.
func (c *Chat) SetAttachment(img *StagedImage) {
	if img == nil {
		c.attachment = ""
	} else {
		c.attachment = fmt.Sprintf("📎 %s (%dKB) attached, backspace to remove", img.MediaType, img.SizeKB)
	}
	c.SetSize(c.width, c.height)
}

// SetCopied toggles the copy confirmation in the footer area.
func (c *Chat) SetCopied(copied bool) {
	c.copied = copied
}

// Copied returns whether the copy confirmation is showing.
func (c *Chat) Copied() bool {
	return c.copied
}

func (c *Chat) attachmentLines() int {
	if c.attachment == "" {
		return 0
	}
	return AttachmentHeight
}

// Update handles messages.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	if c.focused {
		// Scroll keys go to the viewport even while typing
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end",
				"page up", "page down", "ctrl+u", "ctrl+d":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				cmds = append(cmds, cmd)
				return c, tea.Batch(cmds...)
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)

		// Keep key events out of the viewport while the input is focused
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the panel.
func (c *Chat) View() string {
	panelStyle := PanelStyle
	inputStyle := ChatInputStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
		inputStyle = ChatInputFocusedStyle
	}

	feedHeight := c.height - InputTotalHeight - c.attachmentLines() - 2
	if feedHeight < 1 {
		feedHeight = 1
	}
	feedPanel := panelStyle.Width(c.width - 2).Height(feedHeight).Render(c.viewport.View())

	parts := []string{feedPanel}
	if c.attachment != "" {
		parts = append(parts, AttachmentStyle.Render(c.attachment))
	}
	parts = append(parts, inputStyle.Width(c.width-2).Render(c.input.View()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
