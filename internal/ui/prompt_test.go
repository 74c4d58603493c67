package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dori/tasklist/internal/app"
	"github.com/dori/tasklist/internal/model"
	"github.com/dori/tasklist/internal/store"
	"github.com/dori/tasklist/internal/ui/theme"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	dir := t.TempDir()
	cfg := &app.Config{
		File:    filepath.Join(dir, "tasks.txt"),
		Theme:   app.DefaultTheme,
		LogFile: filepath.Join(dir, "tasklist.log"),
	}

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	clock := func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	a, err := app.New(cfg, store.WithClock(clock))
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func runPrompt(t *testing.T, a *app.App, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewPrompt(a, strings.NewReader(input), &out, theme.Nord).Run()
	return out.String(), err
}

func readTaskFile(t *testing.T, a *app.App) string {
	t.Helper()
	data, err := os.ReadFile(a.Store.Path())
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestPromptShowsMenu(t *testing.T) {
	a := newTestApp(t)

	out, err := runPrompt(t, a, "6\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, want := range []string{
		"--- Tasks List Menu ---",
		"1. View tasks",
		"2. Add a new task",
		"3. Edit a task",
		"4. Change task status",
		"5. Remove a task",
		"6. Exit",
		"Choose an option (1-6): ",
		"Tasks saved, Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPromptInvalidChoiceThenView(t *testing.T) {
	a := newTestApp(t)

	out, err := runPrompt(t, a, "abc\n42\n\n1\n6\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out, "--- Tasks List Menu ---"); got != 5 {
		t.Errorf("menu shown %d times, want 5", got)
	}
	if !strings.Contains(out, "No tasks found!") {
		t.Error("view did not run after invalid choices")
	}
}

func TestPromptFullSession(t *testing.T) {
	a := newTestApp(t)

	input := strings.Join([]string{
		"2", "Buy milk",
		"2", "Walk dog",
		"4", "1", "5",
		"5", "2",
		"1",
		"6",
	}, "\n") + "\n"

	out, err := runPrompt(t, a, input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{
		"Task 'Buy milk' added successfully with status 'Open'.",
		"Task 'Walk dog' added successfully with status 'Open'.",
		"Available statuses:",
		"5. Done",
		"Task 'Buy milk' status updated.",
		"Task 'Walk dog' removed successfully!",
		"1. Buy milk [Done]",
		"Created: 2024-03-01 09:00:01",
		"Last Status Change: 2024-03-01 09:00:03",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	want := "Buy milk|Done|2024-03-01 09:00:01|2024-03-01 09:00:03\n"
	if got := readTaskFile(t, a); got != want {
		t.Errorf("task file = %q, want %q", got, want)
	}
}

func TestPromptBadNumbers(t *testing.T) {
	a := newTestApp(t)

	out, err := runPrompt(t, a, "2\nA\n4\nxyz\n4\n1\nDone\n5\n#1\n6\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out, "Please enter a valid number."); got != 3 {
		t.Errorf("guidance shown %d times, want 3\n%s", got, out)
	}
	tasks := a.Store.Tasks()
	if len(tasks) != 1 || tasks[0].Status != model.StatusOpen {
		t.Errorf("state changed: %+v", tasks)
	}
}

func TestPromptOutOfRangeIsSilent(t *testing.T) {
	a := newTestApp(t)

	out, err := runPrompt(t, a, "2\nA\n2\nB\n5\n9\n5\n0\n4\n3\n4\n1\n9\n4\n1\n0\n6\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, unwanted := range []string{"removed successfully", "status updated", "valid number"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("unexpected %q in output", unwanted)
		}
	}
	tasks := a.Store.Tasks()
	if len(tasks) != 2 || tasks[0].Status != model.StatusOpen || tasks[1].Status != model.StatusOpen {
		t.Errorf("state changed: %+v", tasks)
	}
}

func TestPromptEmptyListMessages(t *testing.T) {
	a := newTestApp(t)

	out, err := runPrompt(t, a, "4\n5\n6\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "No tasks available to update status.") {
		t.Error("missing empty-status message")
	}
	if strings.Contains(out, promptRemoveTask) || strings.Contains(out, promptStatusTask) {
		t.Error("asked for a task number on an empty list")
	}
}

func TestPromptAddRejections(t *testing.T) {
	a := newTestApp(t)

	out, err := runPrompt(t, a, "2\n   \n2\nfoo|bar\n6\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Task title cannot contain '|' or line breaks.") {
		t.Error("missing delimiter message")
	}
	if strings.Contains(out, "added successfully") {
		t.Error("rejected title was added")
	}
	if a.Store.Len() != 0 {
		t.Errorf("Len = %d", a.Store.Len())
	}
}

func TestPromptEditNotImplemented(t *testing.T) {
	a := newTestApp(t)

	out, err := runPrompt(t, a, "3\n6\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Editing task functionality not implemented yet.") {
		t.Error("missing not-implemented message")
	}
}

func TestPromptInputClosedDoesNotSave(t *testing.T) {
	a := newTestApp(t)

	_, err := runPrompt(t, a, "2\nUnsaved\n")
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run error = %v, want ErrInputClosed", err)
	}
	if got := readTaskFile(t, a); got != "" {
		t.Errorf("task file written without exit: %q", got)
	}

	// input ending inside a prompt behaves the same
	if _, err := runPrompt(t, a, "5\n"); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Run error = %v, want ErrInputClosed", err)
	}
}

func TestPromptLongLinesStayInLoop(t *testing.T) {
	a := newTestApp(t)
	long := strings.Repeat("x", 70*1024)

	input := "2\nkeep me\n" +
		strings.Repeat("9", 70*1024) + "\n" +
		"2\n" + long + "\n" +
		"1\n6\n"
	out, err := runPrompt(t, a, input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, msgGoodbye) {
		t.Error("session did not reach exit")
	}

	lines := strings.Split(strings.TrimSuffix(readTaskFile(t, a), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d saved lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "keep me|Open|") || !strings.HasPrefix(lines[1], long+"|Open|") {
		t.Errorf("unexpected task file prefixes: %.40q, %.40q", lines[0], lines[1])
	}
}

func TestPromptLastLineWithoutNewline(t *testing.T) {
	a := newTestApp(t)

	if _, err := runPrompt(t, a, "2\nTail\n6"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(readTaskFile(t, a), "Tail|Open|") {
		t.Errorf("task file = %q", readTaskFile(t, a))
	}
}

func TestPromptReportsFileErr(t *testing.T) {
	a := newTestApp(t)
	a.FileErr = errors.New("permission denied")

	out, err := runPrompt(t, a, "6\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Error handling file: permission denied") {
		t.Error("file error not reported")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
		ok   bool
	}{
		{"1", ActionView, true},
		{" 6 ", ActionExit, true},
		{"0", 0, false},
		{"7", 0, false},
		{"one", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAction(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAction(%q) = %v, %v", tt.in, got, ok)
		}
	}
}
