// Package tui renders the console views with bubbletea. One App serves one
// ViewMode for its whole lifetime; Update and View dispatch on it with a single
// switch each.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

// Backend is the slice of the gateway the console needs.
type Backend interface {
	Catalog(ctx context.Context) (apicore.Catalog, error)
	Report(ctx context.Context) (apicore.Report, error)
	MachineQueue(ctx context.Context, machineID int64) (apicore.MachineQueue, error)
	SubmitOrder(ctx context.Context, o apicore.Order) (apicore.OrderResult, error)
	ImportOrder(ctx context.Context, origin string) (apicore.OrderResult, error)
	CompleteTask(ctx context.Context, id int64) (apicore.CompleteResult, error)
}

type reportMsg struct {
	report apicore.Report
	err    error
}

type catalogMsg struct {
	catalog apicore.Catalog
	err     error
}

type queueMsg struct {
	queue apicore.MachineQueue
	err   error
}

type orderMsg struct {
	result apicore.OrderResult
	err    error
}

type completeMsg struct {
	result apicore.CompleteResult
	err    error
}

type tickMsg struct{}

type AppOption func(*App)

// WithRefresh sets how often admin and floor views reload. Zero disables it.
func WithRefresh(d time.Duration) AppOption {
	return func(a *App) { a.refresh = d }
}

func WithTimeout(d time.Duration) AppOption {
	return func(a *App) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithMachine picks the machine shown by the floor view.
func WithMachine(id int64) AppOption {
	return func(a *App) {
		if id > 0 {
			a.machine = id
		}
	}
}

type App struct {
	mode    ViewMode
	backend Backend
	timeout time.Duration
	refresh time.Duration
	machine int64

	width  int
	height int

	admin    adminView
	operator operatorView
	floor    floorView
}

func New(mode ViewMode, backend Backend, opts ...AppOption) *App {
	a := &App{
		mode:     mode,
		backend:  backend,
		timeout:  5 * time.Second,
		refresh:  3 * time.Second,
		machine:  1,
		operator: newOperatorView(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	switch a.mode {
	case ModeOperator:
		return tea.Batch(a.fetchCatalog(), a.operator.focusCmd())
	case ModeFloor:
		return tea.Batch(a.fetchQueue(), a.tick())
	default:
		return tea.Batch(a.fetchReport(), a.tick())
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		}
	case tickMsg:
		return a, tea.Batch(a.reload(), a.tick())
	}

	switch a.mode {
	case ModeOperator:
		return a.updateOperator(msg)
	case ModeFloor:
		return a.updateFloor(msg)
	default:
		return a.updateAdmin(msg)
	}
}

func (a *App) View() string {
	switch a.mode {
	case ModeOperator:
		return a.viewOperator()
	case ModeFloor:
		return a.viewFloor()
	default:
		return a.viewAdmin()
	}
}

func (a *App) reload() tea.Cmd {
	switch a.mode {
	case ModeFloor:
		return a.fetchQueue()
	case ModeAdmin:
		return a.fetchReport()
	default:
		return nil
	}
}

func (a *App) tick() tea.Cmd {
	if a.refresh <= 0 {
		return nil
	}
	return tea.Tick(a.refresh, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// call runs fn off the UI loop with the configured timeout.
func (a *App) call(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	timeout := a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return fn(ctx)
	}
}

func (a *App) fetchReport() tea.Cmd {
	return a.call(func(ctx context.Context) tea.Msg {
		r, err := a.backend.Report(ctx)
		return reportMsg{report: r, err: err}
	})
}

func (a *App) fetchCatalog() tea.Cmd {
	return a.call(func(ctx context.Context) tea.Msg {
		c, err := a.backend.Catalog(ctx)
		return catalogMsg{catalog: c, err: err}
	})
}

func (a *App) fetchQueue() tea.Cmd {
	machine := a.machine
	return a.call(func(ctx context.Context) tea.Msg {
		q, err := a.backend.MachineQueue(ctx, machine)
		return queueMsg{queue: q, err: err}
	})
}
