package markdown

import (
	"strings"
	"testing"

	"github.com/amonks/todolist/todo"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestSafeRender_RecoversFromRendererPanic(t *testing.T) {
	const renderWidth = 20

	rendererMu.Lock()
	prev, hadPrev := renderers[renderWidth]
	renderers[renderWidth] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[renderWidth] = prev
		} else {
			delete(renderers, renderWidth)
		}
		rendererMu.Unlock()
	}()

	out := SafeRender(renderWidth, 0, []byte("hello\n"))
	if string(out) != "hello" {
		t.Fatalf("expected fallback to original markdown, got %q", string(out))
	}
}

func TestChecklistSections(t *testing.T) {
	list := todo.List{
		{ID: 1, Text: "buy milk", Priority: todo.PriorityNormal, Date: "10/14/2026"},
		{ID: 2, Text: "call *bank*", Priority: todo.PriorityUrgent, Date: "10/13/2026", Completed: true},
		{ID: 3, Text: "pay\nrent", Priority: todo.PriorityUrgentCritical, Date: "10/12/2026"},
	}

	got := Checklist(list)

	want := "## Pending\n\n" +
		"- [ ] buy milk _(normal, 10/14/2026)_\n" +
		"- [ ] pay rent _(urgent-critical, 10/12/2026)_\n" +
		"\n## Completed\n\n" +
		"- [x] call \\*bank\\* _(urgent, 10/13/2026)_\n"
	if got != want {
		t.Fatalf("Checklist mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestChecklistEmpty(t *testing.T) {
	if got := Checklist(nil); got != "" {
		t.Fatalf("expected empty checklist, got %q", got)
	}
}

func TestRenderKeepsTaskText(t *testing.T) {
	out := Render(80, 2, []byte(Checklist(todo.List{{ID: 1, Text: "buy milk", Priority: todo.PriorityNormal, Date: "1/2/2026"}})))

	if !strings.Contains(string(out), "buy milk") {
		t.Fatalf("expected rendered output to contain task text, got %q", out)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" && !strings.HasPrefix(line, "  ") {
			t.Fatalf("expected every line indented, got %q", line)
		}
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if out := Render(80, 0, []byte("  \n")); out != nil {
		t.Fatalf("expected nil for blank input, got %q", out)
	}
}
