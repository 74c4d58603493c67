package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dori/tasklist/internal/model"
	"github.com/dori/tasklist/internal/store"
	"github.com/dori/tasklist/internal/ui/theme"
)

// ErrInputClosed is returned when input ends before the user exits
var ErrInputClosed = errors.New("input closed before exit, changes not saved")

// Action is a menu entry
type Action int

const (
	ActionView Action = iota + 1
	ActionAdd
	ActionEdit
	ActionStatus
	ActionRemove
	ActionExit
)

// String returns the menu label for an action
func (a Action) String() string {
	switch a {
	case ActionView:
		return "View tasks"
	case ActionAdd:
		return "Add a new task"
	case ActionEdit:
		return "Edit a task"
	case ActionStatus:
		return "Change task status"
	case ActionRemove:
		return "Remove a task"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Actions returns the menu entries in display order
func Actions() []Action {
	return []Action{ActionView, ActionAdd, ActionEdit, ActionStatus, ActionRemove, ActionExit}
}

// ParseAction maps a menu choice like "4" to its action
func ParseAction(input string) (Action, bool) {
	input = strings.TrimSpace(input)
	for _, a := range Actions() {
		if input == fmt.Sprint(int(a)) {
			return a, true
		}
	}
	return 0, false
}

// Messages shared by both front ends
const (
	menuHeader       = "--- Tasks List Menu ---"
	msgNoTasks       = "No tasks found!"
	msgNoStatusTasks = "No tasks available to update status."
	msgBadNumber     = "Please enter a valid number."
	msgNotEditable   = "Editing task functionality not implemented yet."
	msgGoodbye       = "Tasks saved, Goodbye!"

	promptChoice      = "Choose an option (1-6): "
	promptTitle       = "Enter a new task: "
	promptStatusTask  = "Enter the task number to update status: "
	promptStatusValue = "Choose a status number: "
	promptRemoveTask  = "Enter the task number to remove: "
)

func msgAdded(t model.Task) string {
	return fmt.Sprintf("Task '%s' added successfully with status '%s'.", t.Title, t.Status)
}

func msgStatusUpdated(t model.Task) string {
	return fmt.Sprintf("Task '%s' status updated.", t.Title)
}

func msgRemoved(t model.Task) string {
	return fmt.Sprintf("Task '%s' removed successfully!", t.Title)
}

func msgFileErr(err error) string {
	return fmt.Sprintf("Error handling file: %v", err)
}

func msgSaveErr(err error) string {
	return fmt.Sprintf("Could not save tasks: %v", err)
}

// addErrMessage returns the message for a rejected title; empty titles
// are ignored without a message
func addErrMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrEmptyTitle):
		return ""
	case errors.Is(err, store.ErrInvalidTitle):
		return "Task title cannot contain '|' or line breaks."
	default:
		return err.Error()
	}
}

// formatTask renders one task the way the view action lists it
func formatTask(styles theme.Styles, pos int, t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s [%s]\n",
		styles.Index.Render(fmt.Sprintf("%d.", pos)),
		styles.Title.Render(t.Title),
		styles.Status(t.Status).Render(t.Status.String()))
	fmt.Fprintf(&b, "   %s %s\n", styles.Label.Render("Created:"), t.CreatedAt.Format(model.TimeLayout))
	fmt.Fprintf(&b, "   %s %s", styles.Label.Render("Last Status Change:"), t.StatusUpdatedAt.Format(model.TimeLayout))
	return b.String()
}

// formatStatuses renders the numbered status choices
func formatStatuses(styles theme.Styles) string {
	var b strings.Builder
	b.WriteString("Available statuses:")
	for i, s := range model.Statuses() {
		fmt.Fprintf(&b, "\n%s %s", styles.MenuKey.Render(fmt.Sprintf("%d.", i+1)), styles.Status(s).Render(s.String()))
	}
	return b.String()
}
