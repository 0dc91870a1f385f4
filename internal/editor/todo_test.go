package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amonks/todolist/todo"
)

func TestRenderTodoTOML_Create(t *testing.T) {
	content, err := RenderTodoTOML(DefaultCreateData())
	if err != nil {
		t.Fatalf("RenderTodoTOML failed: %v", err)
	}

	if !strings.Contains(content, `priority = "normal"`) {
		t.Errorf("expected default priority, got:\n%s", content)
	}
	if !strings.Contains(content, "---") {
		t.Error("expected frontmatter separator")
	}
	if strings.Contains(content, "# todo ") {
		t.Error("create template should not describe an existing todo")
	}
}

func TestRenderTodoTOML_Update(t *testing.T) {
	data := DataFromRecord(todo.Record{
		ID:       1760434200000,
		Text:     "Buy milk",
		Priority: todo.PriorityUrgent,
		Date:     "10/14/2026",
	})

	content, err := RenderTodoTOML(data)
	if err != nil {
		t.Fatalf("RenderTodoTOML failed: %v", err)
	}

	if !strings.Contains(content, "# todo 1760434200000 (urgent, added 10/14/2026)") {
		t.Errorf("expected header comment, got:\n%s", content)
	}
	if strings.Contains(content, "priority = ") {
		t.Error("priority should not be editable on update")
	}
	if !strings.HasSuffix(content, "---\nBuy milk\n") {
		t.Errorf("expected text body, got:\n%s", content)
	}
}

func TestParseTodoTOML(t *testing.T) {
	parsed, err := ParseTodoTOML("priority = \"Urgent\" # comment\n---\n\n  Call the plumber  \n")
	if err != nil {
		t.Fatalf("ParseTodoTOML failed: %v", err)
	}
	if parsed.Priority != todo.PriorityUrgent {
		t.Errorf("expected urgent, got %q", parsed.Priority)
	}
	if parsed.Text != "Call the plumber" {
		t.Errorf("expected trimmed text, got %q", parsed.Text)
	}
}

func TestParseTodoTOML_UpdateTemplateRoundTrip(t *testing.T) {
	content, err := RenderTodoTOML(DataFromRecord(todo.Record{ID: 7, Text: "old", Priority: todo.PriorityUrgent, Date: "1/2/2026"}))
	if err != nil {
		t.Fatalf("RenderTodoTOML failed: %v", err)
	}
	content = strings.Replace(content, "old", "new", 1)

	parsed, err := ParseTodoTOML(content)
	if err != nil {
		t.Fatalf("ParseTodoTOML failed: %v", err)
	}
	if parsed.Text != "new" {
		t.Errorf("expected edited text, got %q", parsed.Text)
	}
}

func TestParseTodoTOML_NoFrontmatter(t *testing.T) {
	parsed, err := ParseTodoTOML("just text\n")
	if err != nil {
		t.Fatalf("ParseTodoTOML failed: %v", err)
	}
	if parsed.Text != "just text" || parsed.Priority != todo.PriorityNormal {
		t.Errorf("unexpected parse result: %+v", parsed)
	}
}

func TestParseTodoTOML_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "empty text", content: "priority = \"normal\"\n---\n   \n", want: todo.ErrEmptyText},
		{name: "bad priority", content: "priority = \"whenever\"\n---\ntext\n", want: todo.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTodoTOML(tt.content)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseTodoTOML_InvalidTOML(t *testing.T) {
	if _, err := ParseTodoTOML("priority = \n---\ntext\n"); err == nil {
		t.Fatal("expected TOML error")
	}
}

func TestEditTodoUsesEditor(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	body := "#!/bin/sh\nprintf 'priority = \"urgent\"\\n---\\nedited text\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write editor script: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	existing := todo.Record{ID: 3, Text: "before", Priority: todo.PriorityNormal, Date: "1/2/2026"}
	parsed, err := EditTodo(&existing)
	if err != nil {
		t.Fatalf("EditTodo failed: %v", err)
	}
	if parsed.Text != "edited text" {
		t.Errorf("expected edited text, got %q", parsed.Text)
	}
	if parsed.Priority != todo.PriorityNormal {
		t.Errorf("expected update to keep priority, got %q", parsed.Priority)
	}
}

func TestEditReportsEditorFailure(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "false")

	if _, err := EditTodo(nil); err == nil || !strings.Contains(err.Error(), "editor exited with status 1") {
		t.Fatalf("expected editor failure, got %v", err)
	}
}

func TestCreateTodoTempFileExtension(t *testing.T) {
	file, err := createTodoTempFile()
	if err != nil {
		t.Fatalf("createTodoTempFile failed: %v", err)
	}
	t.Cleanup(func() {
		file.Close()
		os.Remove(file.Name())
	})

	if !strings.HasSuffix(file.Name(), ".md") {
		t.Errorf("expected temp file to end with .md, got %q", file.Name())
	}
}
