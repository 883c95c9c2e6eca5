// Package tui provides the Bubble Tea interface for the benchmark games.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/verte-zerg/humanbench/internal/game"
	"github.com/verte-zerg/humanbench/internal/hit"
	"github.com/verte-zerg/humanbench/internal/model"
	"github.com/verte-zerg/humanbench/internal/session"
	"github.com/verte-zerg/humanbench/internal/stats"
)

const (
	headerRows   = 1
	footerRows   = 1
	historyLimit = 50
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea game UI.
type Model struct {
	ctrl    *session.Controller
	results stats.ResultLister
	logger  *zap.Logger
	fps     int
	now     func() time.Time

	pointer    model.PointerState
	lastUpdate time.Time

	width  int
	height int

	showHistory bool
	history     table.Model
	help        help.Model
	keys        keyMap
	errMsg      string
}

// NewModel constructs the game UI around a session controller.
func NewModel(ctrl *session.Controller, results stats.ResultLister, logger *zap.Logger, fps int) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		ctrl:    ctrl,
		results: results,
		logger:  logger,
		fps:     fps,
		now:     time.Now,
		help:    help.New(),
		keys:    defaultKeyMap(),
		history: table.New(table.WithColumns(historyColumns()), table.WithFocused(true)),
	}
	m.history.SetStyles(historyTableStyles())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.lastUpdate = m.now()
	return tickCmd(m.fps)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.history.SetWidth(msg.Width)
		m.history.SetHeight(max(1, m.bodyRows()-1))
		return m, nil
	case TickMsg:
		if m.showHistory {
			m.lastUpdate = m.now()
		} else {
			m.step()
		}
		return m, tickCmd(m.fps)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHistory {
		return m.handleHistoryKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.History):
		// A running game would keep its clock going behind the table.
		if m.ctrl.Phase() != model.Playing {
			m.showHistory = true
			m.refreshHistory()
		}
	case key.Matches(msg, m.keys.Reaction):
		m.ctrl.Select(model.Reaction)
	case key.Matches(msg, m.keys.Aim):
		m.ctrl.Select(model.Aim)
	case key.Matches(msg, m.keys.Sequence):
		m.ctrl.Select(model.Sequence)
	case key.Matches(msg, m.keys.Confirm):
		if !m.ctrl.Start() {
			m.ctrl.Retry()
		}
	case key.Matches(msg, m.keys.Save):
		if m.ctrl.Save() {
			m.refreshHistory()
		}
	case key.Matches(msg, m.keys.Back):
		m.ctrl.Abort()
	}
	return m, nil
}

// handleHistoryKey routes keys while the history table covers the field.
// Game keys are ignored so nothing starts behind the table.
func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.History), key.Matches(msg, m.keys.Back):
		m.showHistory = false
		return m, nil
	case key.Matches(msg, m.keys.Reaction, m.keys.Aim, m.keys.Sequence, m.keys.Confirm, m.keys.Save):
		return m, nil
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// handleMouse tracks the pointer. Button edges are applied at once so a
// quick click between two frames is not lost.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	v := m.fieldViewport()
	if !v.valid() || m.showHistory {
		return
	}
	col := clamp(msg.X, 0, v.cols-1)
	row := clamp(msg.Y-headerRows, 0, v.rows-1)
	m.pointer.Pos = v.toField(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pointer.LeftPressed = true
		m.step()
	case tea.MouseActionRelease:
		if !m.pointer.LeftPressed {
			return
		}
		m.pointer.LeftPressed = false
		m.step()
	}
}

func (m *Model) step() {
	now := m.now()
	delta := 0.0
	if !m.lastUpdate.IsZero() {
		delta = float64(now.Sub(m.lastUpdate).Microseconds()) / 1000
	}
	m.lastUpdate = now
	before := m.ctrl.Phase()
	m.ctrl.Update(delta, m.pointer)
	if before == model.Endgame && m.ctrl.Phase() == model.Menu {
		m.refreshHistory()
	}
}

func (m *Model) refreshHistory() {
	if m.results == nil {
		return
	}
	results, err := stats.History(context.Background(), m.results, historyLimit)
	if err != nil {
		m.errMsg = fmt.Sprintf("Failed to load history: %v", err)
		m.logger.Error("failed to load history", zap.Error(err))
		return
	}
	m.errMsg = ""
	m.history.SetRows(historyRows(results))
}

func (m *Model) bodyRows() int {
	return m.height - headerRows - footerRows
}

func (m *Model) fieldViewport() viewport {
	return viewport{cols: m.width, rows: m.bodyRows(), field: m.ctrl.Layout().Field}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.bodyRows() < 1 {
		return ""
	}
	header := lipgloss.Place(m.width, headerRows, lipgloss.Left, lipgloss.Top, m.renderHeader())
	var body string
	if m.showHistory {
		body = lipgloss.Place(m.width, m.bodyRows(), lipgloss.Left, lipgloss.Top, m.history.View())
	} else {
		body = m.renderField().render()
	}
	return header + "\n" + body + "\n" + m.renderFooter()
}

func (m *Model) renderHeader() string {
	segments := []string{"HumanBench"}
	for _, mode := range model.Modes {
		rec := m.ctrl.Record(mode)
		segments = append(segments, fmt.Sprintf("%s %s", mode.Title(), stats.ScoreText(rec.Best, rec.HasBest, rec.Unit)))
	}
	return headerStyle.Render(runewidth.Truncate(strings.Join(segments, "  "), m.width, "…"))
}

func (m *Model) renderFooter() string {
	if m.errMsg != "" {
		return errorStyle.Render(runewidth.Truncate(m.errMsg, m.width, "…"))
	}
	return footerStyle.Render(m.help.View(m.keys))
}

func (m *Model) renderField() *canvas {
	v := m.fieldViewport()
	layout := m.ctrl.Layout()
	top := model.Point{X: layout.Field.W / 2, Y: layout.Field.H / 10}
	below := model.Point{X: top.X, Y: top.Y + layout.Field.H/10}
	hover := m.ctrl.Hover()

	switch m.ctrl.Phase() {
	case model.Menu:
		c := newCanvas(v, paintBlank)
		c.text(top, "Human Benchmark")
		c.text(below, "Measure your abilities with brain games.")
		for i, mode := range model.Modes {
			button(c, layout.MenuButtons[i], mode.Title(), hover.Menu[i])
		}
		return c
	case model.Pregame:
		intro := game.Intros[m.ctrl.Mode()]
		c := newCanvas(v, paintBlank)
		c.text(top, intro.Title)
		c.text(below, intro.Description)
		button(c, layout.Start, "Start", hover.Start)
		return c
	case model.Endgame:
		mode := m.ctrl.Mode()
		rec := m.ctrl.Record(mode)
		c := newCanvas(v, paintBlank)
		c.text(top, mode.Title())
		c.text(below, stats.ScoreText(m.ctrl.LastScore(), true, mode.Unit()))
		c.text(model.Point{X: top.X, Y: below.Y + layout.Field.H/10}, "Best "+stats.ScoreText(rec.Best, rec.HasBest, rec.Unit))
		button(c, layout.Save, "Save score", hover.Save)
		button(c, layout.Try, "Try again", hover.Try)
		return c
	default:
		return m.renderGame(v, top)
	}
}

func (m *Model) renderGame(v viewport, top model.Point) *canvas {
	switch m.ctrl.Mode() {
	case model.Reaction:
		info := m.ctrl.Reaction().Info()
		c := newCanvas(v, tonePaint(info.Tone))
		mid := model.Point{X: top.X, Y: v.field.H / 2}
		c.text(mid, info.Title)
		c.text(model.Point{X: mid.X, Y: mid.Y + v.field.H/10}, info.Description)
		return c
	case model.Aim:
		a := m.ctrl.Aim()
		c := newCanvas(v, paintBlank)
		c.fill(paintTarget, a.Hits)
		c.text(top, a.RemainingText())
		return c
	default:
		s := m.ctrl.Sequence()
		c := newCanvas(v, paintBlank)
		lit := s.Lit()
		for i, sq := range s.Squares() {
			p := paintSquare
			if lit[i] {
				p = paintLit
			}
			c.fill(p, func(pt model.Point) bool { return hit.RectContains(sq, pt) })
		}
		c.text(model.Point{X: top.X, Y: top.Y / 2}, s.LevelText())
		return c
	}
}

func button(c *canvas, r model.Rect, label string, hovered bool) {
	p := paintButton
	if hovered {
		p = paintHover
	}
	c.fill(p, func(pt model.Point) bool { return hit.RectContains(r, pt) })
	c.textIn(r, label)
}

func tonePaint(t game.Tone) paint {
	switch t {
	case game.ToneAlert:
		return paintAlert
	case game.ToneGo:
		return paintGo
	default:
		return paintBlank
	}
}

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Saved", Width: 8},
		{Title: "Game", Width: 15},
		{Title: "Score", Width: 8},
		{Title: "Rounds", Width: 40},
	}
}

func historyRows(results []model.SessionResult) []table.Row {
	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rounds := make([]string, len(r.Rounds))
		for i, v := range r.Rounds {
			rounds[i] = fmt.Sprintf("%d", v)
		}
		rows = append(rows, table.Row{
			r.EndedAt.Format(time.TimeOnly),
			r.Mode.Title(),
			stats.ScoreText(r.Score, true, r.Unit),
			strings.Join(rounds, " "),
		})
	}
	return rows
}

func historyTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
