// Package tui renders the task list as an interactive terminal UI.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexrayosb/CRUD-TodoList/internal/output"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
	"github.com/alexrayosb/CRUD-TodoList/internal/viewstate"
)

// Focus is the element receiving key presses.
type Focus int

const (
	FocusTitle Focus = iota
	FocusDescription
	FocusList
)

// doneMsg reports a finished store operation. Failures are already logged by
// the store; the UI only refreshes from whatever state the store holds.
type doneMsg struct {
	op  string
	err error
}

// App is the Bubble Tea model for the task list.
type App struct {
	ctx   context.Context
	store *viewstate.Store

	titleInput       textinput.Model
	descriptionInput textinput.Model
	spinner          spinner.Model

	focus    Focus
	cursor   int
	inFlight int
	ticking  bool
}

// New creates an App bound to store. Operations run with ctx.
func New(ctx context.Context, store *viewstate.Store) *App {
	title := textinput.New()
	title.Placeholder = "Enter task title"
	title.CharLimit = 200
	title.Width = 40
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Enter task description"
	description.CharLimit = 500
	description.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cursorStyle

	return &App{
		ctx:              ctx,
		store:            store,
		titleInput:       title,
		descriptionInput: description,
		spinner:          s,
		focus:            FocusTitle,
	}
}

// Run starts the program on out and blocks until the user quits or ctx ends.
func Run(ctx context.Context, store *viewstate.Store, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctx, store),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.start("sync", a.store.Sync))
}

// start runs fn off the event loop and reports back with a doneMsg.
// Nothing stops two operations from overlapping.
func (a *App) start(op string, fn func(context.Context) error) tea.Cmd {
	a.inFlight++
	ctx := a.ctx
	cmd := func() tea.Msg {
		return doneMsg{op: op, err: fn(ctx)}
	}
	if a.ticking {
		return cmd
	}
	a.ticking = true
	return tea.Batch(cmd, a.spinner.Tick)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case doneMsg:
		a.inFlight--
		if msg.op == "create" {
			// Submit clears the store inputs only on success
			a.titleInput.SetValue(a.store.Title())
			a.descriptionInput.SetValue(a.store.Description())
		}
		a.clampCursor()
		return a, nil

	case spinner.TickMsg:
		if a.inFlight == 0 {
			a.ticking = false
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a.forwardToInput(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "tab":
		return a, a.setFocus((a.focus + 1) % 3)
	case "shift+tab":
		return a, a.setFocus((a.focus + 2) % 3)
	}

	if a.focus != FocusList {
		switch msg.String() {
		case "enter":
			return a, a.submit()
		case "esc":
			return a, a.setFocus(FocusList)
		}
		return a.forwardToInput(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < a.store.Len()-1 {
			a.cursor++
		}
	case " ", "space", "t":
		if task, ok := a.store.At(a.cursor + 1); ok {
			return a, a.start("toggle", func(ctx context.Context) error {
				return a.store.Toggle(ctx, task)
			})
		}
	case "d", "delete":
		if task, ok := a.store.At(a.cursor + 1); ok {
			return a, a.start("delete", func(ctx context.Context) error {
				return a.store.Delete(ctx, task.ID)
			})
		}
	case "r":
		return a, a.start("sync", a.store.Sync)
	case "a", "i":
		return a, a.setFocus(FocusTitle)
	}
	return a, nil
}

// submit sends the form. A blank title sends nothing.
func (a *App) submit() tea.Cmd {
	if strings.TrimSpace(a.store.Title()) == "" {
		return nil
	}
	return a.start("create", a.store.Submit)
}

func (a *App) setFocus(f Focus) tea.Cmd {
	a.focus = f
	a.titleInput.Blur()
	a.descriptionInput.Blur()
	switch f {
	case FocusTitle:
		return a.titleInput.Focus()
	case FocusDescription:
		return a.descriptionInput.Focus()
	}
	return nil
}

// forwardToInput passes msg to the focused input and mirrors its value into the store.
func (a *App) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.focus {
	case FocusTitle:
		a.titleInput, cmd = a.titleInput.Update(msg)
		a.store.SetTitle(a.titleInput.Value())
	case FocusDescription:
		a.descriptionInput, cmd = a.descriptionInput.Update(msg)
		a.store.SetDescription(a.descriptionInput.Value())
	}
	return a, cmd
}

func (a *App) clampCursor() {
	if n := a.store.Len(); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	heading := output.Heading
	if a.inFlight > 0 {
		heading += " " + a.spinner.View()
	}
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Title") + a.titleInput.View() + "\n")
	b.WriteString(labelStyle.Render("Description") + a.descriptionInput.View() + "\n")
	button := buttonIdleStyle
	if a.focus != FocusList {
		button = buttonStyle
	}
	b.WriteString(labelStyle.Render("") + button.Render("Add Task") + "\n\n")

	tasks := a.store.Tasks()
	if len(tasks) == 0 {
		b.WriteString(faintStyle.Render("no tasks") + "\n")
	}
	for i, task := range tasks {
		b.WriteString(a.renderRow(i, task))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render(a.hints()))
	b.WriteString("\n")
	return b.String()
}

func (a *App) renderRow(i int, task service.Task) string {
	prefix := "  "
	if a.focus == FocusList && i == a.cursor {
		prefix = cursorStyle.Render("> ")
	}

	row := titleStyle.Render(output.Title(task)) + " - " + output.Description(task) + " - " + output.Status(task)
	if task.Completed {
		row = completedStyle.Render(output.Row(task))
	}
	return prefix + row + "  " + faintStyle.Render("[Toggle] [Delete]")
}

func (a *App) hints() string {
	if a.focus == FocusList {
		return "↑/↓: move • space: toggle • d: delete • r: refresh • a: add • tab: form • q: quit"
	}
	return "enter: add task • tab: next field • esc: list • ctrl+c: quit"
}
