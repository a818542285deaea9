package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clawdbot-dashboard/internal/dashboard"
	"clawdbot-dashboard/internal/domain"
	"clawdbot-dashboard/internal/notify"
	"clawdbot-dashboard/internal/report"
	"clawdbot-dashboard/internal/service"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Board is the dashboard session the terminal view drives.
type Board interface {
	List() ([]domain.Task, error)
	Stats() (domain.Stats, error)
	Modal() dashboard.Modal
	BeginCreate()
	BeginEdit(id string) error
	SetDraft(d domain.Draft)
	Submit() (domain.Task, error)
	Cancel()
	Delete(id string)
}

type Exporter interface {
	Export(format report.Format) ([]byte, error)
}

type Options struct {
	Title    string
	Subtitle string
	// Exporter is used by the export key; export is disabled when nil.
	Exporter     Exporter
	ExportFormat report.Format
	ExportDir    string
}

type clearToastMsg struct{ seq int }

type exportDoneMsg struct {
	path string
	err  error
}

type Model struct {
	board     Board
	toasts    *notify.Toasts
	opts      Options
	keys      keyMap
	formKeys  formKeys
	help      help.Model
	styles    styles
	tasks     []domain.Task
	stats     domain.Stats
	cursor    int
	form      *form
	toast     *notify.Notification
	toastSeq  int
	width     int
	height    int
	loadError error
}

// New builds the model. Notifications the board emits must reach toasts so
// the model can show them.
func New(board Board, toasts *notify.Toasts, opts Options) Model {
	if opts.ExportFormat == "" {
		opts.ExportFormat = report.FormatJSON
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	m := Model{
		board:    board,
		toasts:   toasts,
		opts:     opts,
		keys:     defaultKeys(),
		formKeys: defaultFormKeys(),
		help:     help.New(),
		styles:   defaultStyles(),
	}
	m.reload()

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			m.toasts.Notify(notify.LevelError, fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.toasts.Notify(notify.LevelSuccess, "Exported to "+msg.path)
		}
		return m, m.showToasts()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.board.BeginCreate()
		cmd = m.openForm()
	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.board.BeginEdit(task.ID); err != nil {
			m.notifyError(err)
		} else {
			cmd = m.openForm()
		}
	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.board.Delete(task.ID)
	case key.Matches(msg, m.keys.Export):
		if m.opts.Exporter == nil {
			m.toasts.Notify(notify.LevelError, "Export is not configured")
		} else {
			cmd = m.exportCmd()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}

	m.reload()
	return m, tea.Batch(cmd, m.showToasts())
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.board.Cancel()
		m.form = nil
	case key.Matches(msg, m.formKeys.Submit):
		m.board.SetDraft(m.form.draft())
		if _, err := m.board.Submit(); err == nil || !m.board.Modal().Open() {
			m.form = nil
		}
		m.reload()
		return m, m.showToasts()
	case key.Matches(msg, m.formKeys.Next):
		return m, m.form.setFocus(m.form.focus + 1)
	case key.Matches(msg, m.formKeys.Prev):
		return m, m.form.setFocus(m.form.focus - 1)
	case key.Matches(msg, m.formKeys.Left) && m.form.cycle(-1):
	case key.Matches(msg, m.formKeys.Right) && m.form.cycle(1):
	default:
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *Model) openForm() tea.Cmd {
	mod := m.board.Modal()
	if !mod.Open() {
		return nil
	}

	var cmd tea.Cmd
	m.form, cmd = newForm(mod)
	return cmd
}

func (m *Model) reload() {
	tasks, err := m.board.List()
	if err != nil {
		m.loadError = err
		return
	}
	m.loadError = nil
	m.tasks = tasks
	m.stats = domain.ComputeStats(tasks)
	m.cursor = min(m.cursor, max(len(tasks)-1, 0))
}

func (m Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// exportCmd renders the report and writes it off the update loop.
func (m Model) exportCmd() tea.Cmd {
	exporter := m.opts.Exporter
	format := m.opts.ExportFormat
	path := filepath.Join(m.opts.ExportDir, "tasks"+format.Ext())

	return func() tea.Msg {
		data, err := exporter.Export(format)
		if err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m *Model) notifyError(err error) {
	if errors.Is(err, service.ErrNotFound) {
		m.toasts.Notify(notify.LevelError, dashboard.MsgMissing)
		return
	}
	m.toasts.Notify(notify.LevelError, err.Error())
}

// showToasts takes the newest pending notification and schedules its
// removal.
func (m *Model) showToasts() tea.Cmd {
	pending := m.toasts.Drain()
	if len(pending) == 0 {
		return nil
	}

	n := pending[len(pending)-1]
	m.toast = &n
	m.toastSeq++

	seq := m.toastSeq
	return tea.Tick(m.toasts.TTL(), func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}
