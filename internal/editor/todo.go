package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/amonks/todolist/todo"
)

// TodoData represents the data used to render the editor template.
type TodoData struct {
	// IsUpdate is true when editing an existing todo.
	IsUpdate bool
	// ID is the todo ID (only for updates).
	ID todo.ID
	// Priority is editable on create and shown read-only on update.
	Priority todo.Priority
	// Date is the creation date (only for updates).
	Date string
	// Text is the todo text.
	Text string
}

// DefaultCreateData returns TodoData with default values for creating a new todo.
func DefaultCreateData() TodoData {
	return TodoData{Priority: todo.PriorityNormal}
}

// DataFromRecord creates TodoData from an existing todo for editing.
func DataFromRecord(rec todo.Record) TodoData {
	return TodoData{
		IsUpdate: true,
		ID:       rec.ID,
		Priority: rec.Priority,
		Date:     rec.Date,
		Text:     rec.Text,
	}
}

var todoTemplate = template.Must(template.New("todo").Parse(`
{{- if .IsUpdate -}}
# todo {{ .ID }} ({{ .Priority }}, added {{ .Date }})
# priority is fixed at creation; only the text below is saved
{{- else -}}
priority = {{ printf "%q" .Priority }} # urgent-critical, urgent, normal
{{- end }}
---
{{ .Text }}
`))

// RenderTodoTOML renders the todo data as TOML frontmatter plus a text body.
func RenderTodoTOML(data TodoData) (string, error) {
	var buf bytes.Buffer
	if err := todoTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo represents the parsed result from the editor output.
type ParsedTodo struct {
	Priority todo.Priority
	Text     string
}

// ParseTodoTOML parses the editor output. Frontmatter comments are ignored.
// A missing priority means normal.
func ParseTodoTOML(content string) (*ParsedTodo, error) {
	frontmatter, body := splitFrontmatter(content)

	var raw struct {
		Priority string `toml:"priority"`
	}
	if _, err := toml.Decode(frontmatter, &raw); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	parsed := ParsedTodo{Priority: todo.PriorityNormal}
	if strings.TrimSpace(raw.Priority) != "" {
		priority, err := todo.ParsePriority(raw.Priority)
		if err != nil {
			return nil, err
		}
		parsed.Priority = priority
	}

	parsed.Text = strings.TrimSpace(body)
	if err := todo.ValidateText(parsed.Text); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return "", content
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTodoTempFile() (*os.File, error) {
	return os.CreateTemp("", "td-todo-*.md")
}

// EditTodo opens the editor for a todo and returns the parsed result.
// For create: pass nil for existing.
func EditTodo(existing *todo.Record) (*ParsedTodo, error) {
	data := DefaultCreateData()
	if existing != nil {
		data = DataFromRecord(*existing)
	}
	return EditTodoWithData(data)
}

// EditTodoWithData opens the editor with pre-populated data and returns the parsed result.
func EditTodoWithData(data TodoData) (*ParsedTodo, error) {
	content, err := RenderTodoTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTodoTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	parsed, err := ParseTodoTOML(string(edited))
	if err != nil {
		return nil, err
	}
	if data.IsUpdate {
		parsed.Priority = data.Priority
	}
	return parsed, nil
}
