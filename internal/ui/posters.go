package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/poster"
	"github.com/five82/marquee/internal/state"
)

type posterStatus int

const (
	posterUnknown posterStatus = iota
	posterPending
	posterOK
	posterMissing
)

const posterProbeTimeout = 3 * time.Second

var errCachedMiss = errors.New("poster previously failed to load")

// posterMsg reports one probe. modal marks probes issued for the modal
// poster slot rather than a card.
type posterMsg struct {
	src   string
	err   error
	modal bool
}

// probeVisible starts one fire-and-forget probe per card in the visible rows
// whose poster has not been checked yet.
func (m *Model) probeVisible() tea.Cmd {
	if m.prober == nil || m.st.Phase != state.Ready {
		return nil
	}
	cards := m.st.Cards()
	cols := m.gridColumns()
	first := m.offset * cols
	last := min(first+cols*m.visibleRows(), len(cards))

	var cmds []tea.Cmd
	for i := first; i < last; i++ {
		src := cards[i].Poster
		if m.posters[src] != posterUnknown {
			continue
		}
		m.posters[src] = posterPending
		cmds = append(cmds, probeCmd(m.ctx, m.prober, src, false))
	}
	return tea.Batch(cmds...)
}

// probeModalPoster checks the modal's poster. A cached failure is applied at
// once without touching the prober again.
func (m *Model) probeModalPoster(src string) tea.Cmd {
	if m.prober == nil || src == "" {
		return nil
	}
	if m.posters[src] == posterMissing {
		return func() tea.Msg { return posterMsg{src: src, err: errCachedMiss, modal: true} }
	}
	return probeCmd(m.ctx, m.prober, src, true)
}

func probeCmd(ctx context.Context, prober poster.Prober, src string, modal bool) tea.Cmd {
	return func() tea.Msg {
		probeCtx, cancel := context.WithTimeout(ctx, posterProbeTimeout)
		defer cancel()
		return posterMsg{src: src, err: prober.Probe(probeCtx, src), modal: modal}
	}
}

func (m Model) handlePoster(msg posterMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		m.posters[msg.src] = posterOK
	} else {
		m.posters[msg.src] = posterMissing
	}
	if !msg.modal {
		if msg.err != nil {
			m.logger.Warn("poster unavailable, using fallback", "poster", msg.src, "fallback", m.st.Fallback, "error", msg.err)
		}
		return m, nil
	}

	if msg.err == nil {
		return m, nil
	}
	before := m.st.Modal.Poster
	m.st = state.Apply(m.st, state.PosterFailed{Src: msg.src})
	if before.Armed() && m.st.Modal.Poster.UsingFallback() {
		m.logger.Warn("modal poster unavailable, using fallback", "poster", msg.src, "fallback", m.st.Modal.Poster.Src)
		// The fallback gets a single check; its failure is ignored by the
		// now-disarmed slot.
		return m, m.probeModalPoster(m.st.Modal.Poster.Src)
	}
	if msg.src == m.st.Fallback {
		m.logger.Warn("fallback poster unavailable", "fallback", msg.src)
	}
	return m, nil
}

// cardImage returns the poster slot for a card, with the fallback already
// substituted when its probe failed.
func (m Model) cardImage(card state.Card) (poster.Image, posterStatus) {
	img := poster.NewImage(card.Poster, card.Title, m.st.Fallback)
	status := m.posters[card.Poster]
	if status == posterMissing {
		img.Fail()
	}
	return img, status
}
