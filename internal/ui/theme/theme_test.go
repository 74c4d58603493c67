package theme

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tasklist/internal/model"
)

func TestByName(t *testing.T) {
	for _, th := range Available() {
		got, ok := ByName(th.Name)
		if !ok || got.Name != th.Name {
			t.Errorf("ByName(%q) = %v, %v", th.Name, got.Name, ok)
		}
	}
	if _, ok := ByName("solarized"); ok {
		t.Error("unexpected theme solarized")
	}
}

func TestEveryStatusHasAColor(t *testing.T) {
	for _, th := range Available() {
		for _, s := range model.Statuses() {
			if th.StatusColor(s) == "" {
				t.Errorf("%s: no color for %v", th.Name, s)
			}
		}
	}
}

func TestPlainRendererEmitsNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(lipgloss.NewRenderer(&buf), Nord)

	if got := styles.Header.Render("Menu"); got != "Menu" {
		t.Errorf("Header.Render = %q", got)
	}
	if got := styles.Status(model.StatusDone).Render("Done"); got != "Done" {
		t.Errorf("Status.Render = %q", got)
	}
}
