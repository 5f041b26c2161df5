// Package app wires the conversation view, composer, and transport into
// the top-level bubbletea model.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parley-sh/parley/internal/clipboard"
	"github.com/parley-sh/parley/internal/config"
	"github.com/parley-sh/parley/internal/errors"
	"github.com/parley-sh/parley/internal/logger"
	"github.com/parley-sh/parley/internal/notification"
	"github.com/parley-sh/parley/internal/transcript"
	"github.com/parley-sh/parley/internal/transport"
	"github.com/parley-sh/parley/internal/ui"
)

// dialTimeout bounds the websocket handshake at startup.
const dialTimeout = 10 * time.Second

// entryMsg delivers a transcript entry from the transport goroutine.
type entryMsg struct {
	entry transcript.Entry
}

// permittedMsg reports whether the backend accepts input.
type permittedMsg struct {
	allowed bool
}

// transportClosedMsg fires when the connection ends.
type transportClosedMsg struct {
	err error
}

// Model is the application root.
type Model struct {
	config  *config.Config
	store   *transcript.Store
	sender  transport.Sender
	chat    *ui.Chat
	scroll  ui.ScrollSync
	staging ui.Staging

	events chan tea.Msg

	permitted   bool
	focusedOnce bool
	selected    string // selected breadcrumb id, "" for none
	closed      bool

	width  int
	height int
}

// New builds the model: a websocket sender when a server URL is
// configured, the offline loopback otherwise. A configured transcript
// file is loaded into the store before the first render.
func New(cfg *config.Config) (*Model, error) {
	m := &Model{
		config: cfg,
		store:  transcript.NewStore(),
		chat:   ui.NewChat(),
		events: make(chan tea.Msg, 64),
	}

	events := transport.Events{
		OnEntry:     func(e transcript.Entry) { m.events <- entryMsg{entry: e} },
		OnPermitted: func(ok bool) { m.events <- permittedMsg{allowed: ok} },
		OnClosed:    func(err error) { m.events <- transportClosedMsg{err: err} },
	}

	if url := cfg.GetServerURL(); url != "" {
		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		defer cancel()
		sender, err := transport.Dial(ctx, url, events)
		if err != nil {
			return nil, err
		}
		m.sender = sender
	} else {
		m.sender = transport.NewLoopback(events)
	}

	if path := cfg.GetTranscriptPath(); path != "" {
		if _, err := transcript.LoadInto(m.store, path); err != nil {
			m.sender.Close()
			return nil, err
		}
	}

	return m, nil
}

// Init starts the transport event pump.
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent returns a command that blocks for the next transport event.
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chat.SetSize(msg.Width, msg.Height-ui.HeaderHeight-ui.FooterHeight)
		m.refresh()
		return m, nil

	case entryMsg:
		m.store.Append(msg.entry)
		m.refresh()
		var cmds []tea.Cmd
		if !m.closed {
			cmds = append(cmds, m.waitForEvent())
		}
		if msg.entry.Kind == transcript.KindMessage &&
			msg.entry.Role == transcript.RoleAssistant &&
			m.config.GetNotificationsEnabled() {
			cmds = append(cmds, func() tea.Msg {
				notification.ReplyReceived()
				return nil
			})
		}
		return m, tea.Batch(cmds...)

	case permittedMsg:
		m.permitted = msg.allowed
		if msg.allowed && !m.focusedOnce {
			// Focus exactly once, on the first transition to permitted
			m.chat.SetFocused(true)
			m.focusedOnce = true
		}
		if m.closed {
			return m, nil
		}
		return m, m.waitForEvent()

	case transportClosedMsg:
		if msg.err != nil {
			logger.Error("App: transport closed: %v", msg.err)
		} else {
			logger.Info("App: transport closed")
		}
		m.permitted = false
		m.closed = true
		return m, nil

	case ui.StagedMsg:
		if m.staging.Complete(msg) {
			m.chat.SetAttachment(m.staging.Pending())
		}
		return m, nil

	case ui.CopyDoneMsg:
		// Failures stay in the log; the view never changes for them
		if msg.Err != nil {
			return m, nil
		}
		m.chat.SetCopied(true)
		return m, ui.CopyFlashExpire()

	case ui.CopyFlashExpiredMsg:
		m.chat.SetCopied(false)
		return m, nil

	case tea.PasteStartMsg:
		// Terminals intercept Ctrl+V and send paste events instead of
		// key presses. Check the clipboard for an image first; with none
		// present the text paste proceeds normally.
		if m.permitted {
			if cmd := m.handleImagePaste(); cmd != nil {
				return m, cmd
			}
		}

	case tea.PasteMsg:
		// A dropped file arrives as its pasted path
		if m.permitted {
			if cmd := m.handleDroppedPath(strings.TrimSpace(msg.Content)); cmd != nil {
				return m, cmd
			}
		}

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.sender.Close()
			return m, tea.Quit
		case "enter":
			return m.sendMessage()
		case "tab":
			m.cycleSelection(1)
			m.refresh()
			return m, nil
		case "shift+tab":
			m.cycleSelection(-1)
			m.refresh()
			return m, nil
		case "ctrl+e":
			if m.selected != "" {
				if !m.store.ToggleExpanded(m.selected) {
					logger.Warn("App: %v", errors.EntryNotFound(m.selected))
					m.selected = ""
				}
				m.refresh()
			}
			return m, nil
		case "ctrl+y":
			return m, ui.CopyTranscript(m.store.Entries())
		case "ctrl+s":
			if err := ui.SaveTranscript(m.store.Entries(), exportPath()); err != nil {
				logger.Warn("App: transcript save failed: %v", err)
			}
			return m, nil
		case "backspace":
			if m.staging.Pending() != nil && m.chat.RawInput() == "" {
				m.staging.Remove()
				m.chat.SetAttachment(nil)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// sendMessage runs the composer dispatch and hands the result to the
// transport.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	out, ok := ui.Dispatch(m.chat.RawInput(), m.staging.Pending(), m.permitted)
	if !ok {
		return m, nil
	}

	switch out.Kind {
	case ui.OutgoingImage:
		if err := m.sender.SendImage(out.DataURI, out.Caption); err != nil {
			logger.Warn("App: image send failed: %v", err)
			return m, nil
		}
		m.chat.ClearInput()
		m.staging.Remove()
		m.chat.SetAttachment(nil)

	case ui.OutgoingText:
		if err := m.sender.SendText(out.Text); err != nil {
			logger.Warn("App: send failed: %v", err)
			return m, nil
		}
		m.chat.ClearInput()
	}

	return m, nil
}

// handleImagePaste stages a clipboard image. Returns nil when the
// clipboard holds no usable image, letting the paste continue as text.
func (m *Model) handleImagePaste() tea.Cmd {
	img, err := clipboard.ReadImage()
	if err != nil {
		logger.Warn("App: clipboard image read failed: %v", err)
		return nil
	}
	if img == nil {
		return nil
	}
	if err := img.Validate(); err != nil {
		logger.Warn("App: rejected pasted image: %v", err)
		return nil
	}

	logger.Debug("App: staging pasted image: %dKB", img.SizeKB())
	return m.staging.Stage([]ui.Item{{MIME: img.MediaType, Data: img.Data}})
}

// imageExtensions maps dropped file extensions to MIME types.
var imageExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// handleDroppedPath stages an image file dropped onto the terminal.
// Returns nil when the pasted content is not a path to an image file.
func (m *Model) handleDroppedPath(content string) tea.Cmd {
	if strings.ContainsAny(content, "\n") {
		return nil
	}
	mime, ok := imageExtensions[strings.ToLower(filepath.Ext(content))]
	if !ok {
		return nil
	}

	data, err := os.ReadFile(content)
	if err != nil {
		logger.Debug("App: pasted text looks like an image path but is unreadable: %v", err)
		return nil
	}

	logger.Debug("App: staging dropped file %s (%d bytes)", content, len(data))
	return m.staging.Stage([]ui.Item{{MIME: mime, Data: data}})
}

// cycleSelection moves the breadcrumb selection forward or back through
// the visible breadcrumbs that carry payloads.
func (m *Model) cycleSelection(dir int) {
	ids := ui.SelectableBreadcrumbs(m.store.Entries())
	if len(ids) == 0 {
		m.selected = ""
		return
	}

	idx := -1
	for i, id := range ids {
		if id == m.selected {
			idx = i
			break
		}
	}
	if idx == -1 {
		if dir > 0 {
			m.selected = ids[0]
		} else {
			m.selected = ids[len(ids)-1]
		}
		return
	}

	idx = (idx + dir + len(ids)) % len(ids)
	m.selected = ids[idx]
}

// refresh re-renders the feed, scrolling to the bottom when the entry set
// grew or changed content at a shared position.
func (m *Model) refresh() {
	entries := m.store.Entries()
	scrollToBottom := m.scroll.ShouldScroll(ui.VisibleEntries(entries))
	m.chat.SetEntries(entries, m.selected, scrollToBottom)
}

// exportPath is the file target for ctrl+s transcript saves.
func exportPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("parley-transcript-%d.txt", time.Now().Unix()))
}

// View renders the full screen.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	header := ui.HeaderStyle.Render("Parley") + " " + m.statusLine()

	var footer string
	if m.chat.Copied() {
		footer = ui.CopyFlashStyle.Render("✓ Copied transcript")
	} else {
		footer = ui.FooterStyle.Render(
			ui.FooterKeyStyle.Render("enter") + ui.FooterDescStyle.Render(" send  ") +
				ui.FooterKeyStyle.Render("tab") + ui.FooterDescStyle.Render(" select  ") +
				ui.FooterKeyStyle.Render("ctrl+e") + ui.FooterDescStyle.Render(" expand  ") +
				ui.FooterKeyStyle.Render("ctrl+y") + ui.FooterDescStyle.Render(" copy  ") +
				ui.FooterKeyStyle.Render("ctrl+c") + ui.FooterDescStyle.Render(" quit"))
	}

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, m.chat.View(), footer))
	return v
}

// statusLine describes the connection state for the header.
func (m *Model) statusLine() string {
	switch {
	case m.closed:
		return ui.StatusErrorStyle.Render("disconnected")
	case !m.permitted:
		return ui.FooterDescStyle.Render("waiting")
	default:
		return ui.FooterDescStyle.Render("ready")
	}
}
