package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tasklist/internal/app"
	"github.com/dori/tasklist/internal/model"
	"github.com/dori/tasklist/internal/store"
	"github.com/dori/tasklist/internal/ui/theme"
)

// errBadNumber marks input that should have been a number
var errBadNumber = errors.New("not a number")

// Prompt is the line-oriented menu loop
type Prompt struct {
	app    *app.App
	in     *bufio.Reader
	out    io.Writer
	styles theme.Styles
}

// NewPrompt creates a menu loop reading from in and writing to out
func NewPrompt(application *app.App, in io.Reader, out io.Writer, th theme.Theme) *Prompt {
	return &Prompt{
		app:    application,
		in:     bufio.NewReader(in),
		out:    out,
		styles: theme.NewStyles(lipgloss.NewRenderer(out), th),
	}
}

// Run shows the menu until the user exits. Tasks are saved only on exit;
// if input ends first ErrInputClosed is returned and nothing is written.
func (p *Prompt) Run() error {
	if p.app.FileErr != nil {
		p.println(p.styles.Error.Render(msgFileErr(p.app.FileErr)))
	}

	for {
		p.displayMenu()
		line, ok := p.readLine(promptChoice)
		if !ok {
			p.println("")
			return ErrInputClosed
		}

		action, ok := ParseAction(line)
		if !ok {
			continue
		}

		switch action {
		case ActionView:
			p.viewTasks()
		case ActionAdd:
			if !p.addTask() {
				return ErrInputClosed
			}
		case ActionEdit:
			p.editTask()
		case ActionStatus:
			if !p.updateTaskStatus() {
				return ErrInputClosed
			}
		case ActionRemove:
			if !p.removeTask() {
				return ErrInputClosed
			}
		case ActionExit:
			if err := p.app.Save(); err != nil {
				p.println(p.styles.Error.Render(msgSaveErr(err)))
				continue
			}
			p.println(p.styles.Success.Render(msgGoodbye))
			return nil
		}
	}
}

func (p *Prompt) displayMenu() {
	p.println("")
	p.println(p.styles.Header.Render(menuHeader))
	for _, a := range Actions() {
		p.println(fmt.Sprintf("%s %s", p.styles.MenuKey.Render(fmt.Sprintf("%d.", int(a))), a))
	}
}

// viewTasks prints the list and reports whether it had any tasks
func (p *Prompt) viewTasks() bool {
	seq, err := p.app.Store.View()
	if errors.Is(err, store.ErrNoTasks) {
		p.println(p.styles.Warning.Render(msgNoTasks))
		return false
	}

	p.println("")
	p.println(p.styles.Header.Render("Your Tasks:"))
	for pos, t := range seq {
		p.println(formatTask(p.styles, pos, t))
	}
	return true
}

// addTask returns false when input ended
func (p *Prompt) addTask() bool {
	title, ok := p.readLine(promptTitle)
	if !ok {
		return false
	}

	t, err := p.app.Store.Add(title)
	if err != nil {
		if msg := addErrMessage(err); msg != "" {
			p.println(p.styles.Error.Render(msg))
		}
		return true
	}
	p.app.Log.Debug("task added", "title", t.Title)
	p.println(p.styles.Success.Render(msgAdded(t)))
	return true
}

func (p *Prompt) editTask() {
	if err := p.app.Store.Edit(0, ""); errors.Is(err, store.ErrNotImplemented) {
		p.println(p.styles.Warning.Render(msgNotEditable))
	}
}

// updateTaskStatus returns false when input ended
func (p *Prompt) updateTaskStatus() bool {
	if !p.viewTasks() {
		p.println(msgNoStatusTasks)
		return true
	}

	pos, err := p.readNumber(promptStatusTask)
	if err != nil {
		return p.numberErr(err)
	}
	// out-of-range positions are ignored silently
	if _, err := p.app.Store.Get(pos); err != nil {
		return true
	}

	p.println("")
	p.println(formatStatuses(p.styles))
	choice, err := p.readNumber(promptStatusValue)
	if err != nil {
		return p.numberErr(err)
	}
	status, ok := model.StatusAt(choice)
	if !ok {
		return true
	}

	t, err := p.app.SetStatus(pos, status)
	if err != nil {
		return true
	}
	p.println(p.styles.Success.Render(msgStatusUpdated(t)))
	return true
}

// removeTask returns false when input ended
func (p *Prompt) removeTask() bool {
	if !p.viewTasks() {
		return true
	}

	pos, err := p.readNumber(promptRemoveTask)
	if err != nil {
		return p.numberErr(err)
	}

	t, err := p.app.Store.Remove(pos)
	if err != nil {
		return true
	}
	p.app.Log.Debug("task removed", "position", pos, "title", t.Title)
	p.println(p.styles.Success.Render(msgRemoved(t)))
	return true
}

// numberErr reports a bad number and returns false when input ended
func (p *Prompt) numberErr(err error) bool {
	if errors.Is(err, ErrInputClosed) {
		return false
	}
	p.println(p.styles.Error.Render(msgBadNumber))
	return true
}

func (p *Prompt) readNumber(prompt string) (int, error) {
	line, ok := p.readLine(prompt)
	if !ok {
		return 0, ErrInputClosed
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadNumber, line)
	}
	return n, nil
}

// readLine returns false once input is exhausted. Lines have no length limit;
// a final line without a newline is still returned.
func (p *Prompt) readLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		if !errors.Is(err, io.EOF) {
			p.app.Log.Warn("reading input failed", "err", err)
		}
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (p *Prompt) println(s string) {
	fmt.Fprintln(p.out, s)
}
