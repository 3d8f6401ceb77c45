// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-booth/internal/gallery"
	"github.com/MKhiriev/go-photo-booth/internal/service"
	"github.com/MKhiriev/go-photo-booth/internal/status"
	"github.com/MKhiriev/go-photo-booth/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// previewInterval is the refresh period of the live preview.
const previewInterval = 200 * time.Millisecond

// Action names carried by actionDoneMsg.
const (
	actionCapture  = "capture"
	actionSwitch   = "switch"
	actionSync     = "sync"
	actionDownload = "download"
	actionShare    = "share"
	actionDelete   = "delete"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type boothModel struct {
	ctx     context.Context
	photos  service.PhotoService
	appInfo service.AppInfoService
	profile models.Profile

	tiles         []gallery.Tile
	idx           int
	usage         models.Usage
	status        models.StatusMessage
	statusVisible bool

	preview    string
	previewErr error
	busy       bool
	spinner    spinner.Model

	confirming    bool
	confirm       confirmModel
	pendingDelete int64

	lastPath      string
	showBuildInfo bool
	pending       []status.Ticket
}

func newBoothModel(ctx context.Context, services *service.Services, pending ...status.Ticket) boothModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := boothModel{
		ctx:     ctx,
		photos:  services.PhotoService,
		appInfo: services.AppInfoService,
		profile: services.PhotoService.Profile(),
		spinner: sp,
		pending: pending,
	}
	m.refresh()
	return m
}

func (m boothModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.cmdPreview()}
	for _, t := range m.pending {
		cmds = append(cmds, expireAfter(t))
	}
	return tea.Batch(cmds...)
}

// refresh copies the presenter state out of the photo service.
func (m *boothModel) refresh() {
	m.tiles = m.photos.Tiles()
	m.usage = m.photos.Usage()
	m.status, m.statusVisible = m.photos.Status()

	if m.idx >= len(m.tiles) {
		m.idx = len(m.tiles) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m boothModel) current() (gallery.Tile, bool) {
	if m.idx < 0 || m.idx >= len(m.tiles) {
		return gallery.Tile{}, false
	}
	return m.tiles[m.idx], true
}

func (m boothModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		m.busy = false
		if msg.outcome.Path != "" {
			m.lastPath = msg.outcome.Path
		}
		if msg.action == actionCapture && msg.err == nil {
			m.idx = 0
		}
		m.refresh()
		return m, expireAfter(msg.outcome.Ticket)
	case statusExpiredMsg:
		m.photos.Expire(msg.ticket)
		m.status, m.statusVisible = m.photos.Status()
		return m, nil
	case previewTickMsg:
		return m, m.cmdPreview()
	case previewMsg:
		m.preview, m.previewErr = msg.view, msg.err
		return m, tea.Tick(previewInterval, func(time.Time) tea.Msg { return previewTickMsg{} })
	case copiedMsg:
		var out service.Outcome
		if msg.err != nil {
			out = m.photos.Notify(fmt.Sprintf("Copy failed: %v", msg.err), models.StatusError)
		} else {
			out = m.photos.Notify("Copied "+msg.path, models.StatusInfo)
		}
		m.status, m.statusVisible = m.photos.Status()
		return m, expireAfter(out.Ticket)
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.confirming {
		return m.updateConfirm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.tiles)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.copy):
		if m.lastPath == "" {
			return m, nil
		}
		return m, cmdCopy(m.lastPath)
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.capture):
		return m.startAction(actionCapture, m.photos.Capture)
	case key.Matches(keyMsg, keys.switchCm):
		return m.startAction(actionSwitch, m.photos.SwitchCamera)
	case key.Matches(keyMsg, keys.sync):
		if m.profile == models.ProfileMinimal {
			return m, nil
		}
		photos := m.photos
		return m.startAction(actionSync, func(ctx context.Context) (service.Outcome, error) {
			return photos.Sync(ctx), nil
		})
	case key.Matches(keyMsg, keys.download):
		return m.startTileAction(actionDownload, models.ActionDownload, m.photos.Download)
	case key.Matches(keyMsg, keys.share):
		return m.startTileAction(actionShare, models.ActionShare, m.photos.Share)
	case key.Matches(keyMsg, keys.delete):
		tile, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirming = true
		m.confirm = confirmModel{message: tile.Filename}
		m.pendingDelete = tile.ID
	}

	return m, nil
}

func (m boothModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirming = false
		id := m.pendingDelete
		return m.startAction(actionDelete, func(ctx context.Context) (service.Outcome, error) {
			return m.photos.Delete(ctx, id)
		})
	case key.Matches(keyMsg, keys.no):
		m.confirming = false
		m.pendingDelete = 0
	}
	return m, nil
}

func (m boothModel) startTileAction(
	name string,
	action models.Action,
	run func(context.Context, int64) (service.Outcome, error),
) (tea.Model, tea.Cmd) {
	if !m.profile.Allows(action) {
		return m, nil
	}
	tile, ok := m.current()
	if !ok {
		return m, nil
	}
	return m.startAction(name, func(ctx context.Context) (service.Outcome, error) {
		return run(ctx, tile.ID)
	})
}

func (m boothModel) startAction(name string, run func(context.Context) (service.Outcome, error)) (tea.Model, tea.Cmd) {
	m.busy = true
	ctx := m.ctx
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := run(ctx)
		return actionDoneMsg{action: name, outcome: out, err: err}
	})
}

func (m boothModel) cmdPreview() tea.Cmd {
	ctx := m.ctx
	photos := m.photos
	return func() tea.Msg {
		img, err := photos.Preview(ctx)
		if err != nil {
			return previewMsg{err: err}
		}
		return previewMsg{view: renderPreview(img, previewCols, previewRows)}
	}
}

func cmdCopy(path string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{path: path, err: copyToClipboard(path)}
	}
}

// expireAfter schedules the hide of an auto-hiding message.
func expireAfter(t status.Ticket) tea.Cmd {
	if t.Generation == 0 || !t.AutoHide {
		return nil
	}
	return tea.Tick(t.Delay, func(time.Time) tea.Msg { return statusExpiredMsg{ticket: t} })
}

func (m boothModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.appInfo.GetBuildInfo(m.ctx)))
	}

	var b strings.Builder
	b.WriteString(viewTitle(fmt.Sprintf("CAMERA APP  [%s camera, %s]", m.photos.Facing(), m.profile)))

	if m.preview != "" {
		b.WriteString(m.preview)
	} else {
		b.WriteString(blankPreview(previewCols, previewRows, previewErrorText(m.previewErr)))
	}
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(m.spinner.View())
		b.WriteString(" working...\n")
	} else if m.statusVisible {
		b.WriteString(statusStyle(m.status.Kind).Render(m.status.Text))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.usage.String()))
	b.WriteString("\n\n")

	b.WriteString(m.galleryView())
	b.WriteString("\n")

	if m.confirming {
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.helpLine()))
	return appStyle.Render(b.String())
}

func (m boothModel) galleryView() string {
	if len(m.tiles) == 0 {
		return helpStyle.Render("No photos yet") + "\n"
	}

	var b strings.Builder
	for i, tile := range m.tiles {
		line := fmt.Sprintf("%s  %s", fitText(tile.Filename, 32), tile.Timestamp)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m boothModel) helpLine() string {
	parts := []string{"space: capture", "c: switch camera"}
	if m.profile == models.ProfileMinimal {
		parts = append(parts, disabledStyle.Render("y: sync"))
	} else {
		parts = append(parts, "y: sync")
	}
	for _, a := range m.profile.Actions() {
		switch a {
		case models.ActionDownload:
			parts = append(parts, "d: download")
		case models.ActionShare:
			parts = append(parts, "s: share")
		case models.ActionDelete:
			parts = append(parts, "x: delete")
		}
	}
	if m.lastPath != "" {
		parts = append(parts, "p: copy path")
	}
	parts = append(parts, "v: about", "q: quit")
	return strings.Join(parts, "  ")
}
