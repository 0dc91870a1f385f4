package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/amonks/todolist/todo"
	"github.com/google/go-cmp/cmp"
)

func TestWriteListYAML(t *testing.T) {
	var buf bytes.Buffer
	list := todo.List{{ID: 1, Text: "buy milk", Priority: todo.PriorityNormal, Date: "10/14/2026"}}

	if err := writeList(&buf, list, formatYAML); err != nil {
		t.Fatalf("writeList: %v", err)
	}

	want := "- id: 1\n  text: buy milk\n  completed: false\n  priority: normal\n  date: 10/14/2026\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected yaml\n got: %q\nwant: %q", got, want)
	}
}

func TestWriteListJSONEmpty(t *testing.T) {
	var buf bytes.Buffer

	if err := writeList(&buf, nil, formatJSON); err != nil {
		t.Fatalf("writeList: %v", err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	list := sampleTodos()

	for _, format := range []string{formatJSON, formatYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeList(&buf, list, format); err != nil {
				t.Fatalf("writeList: %v", err)
			}
			got, err := readList(buf.Bytes(), format)
			if err != nil {
				t.Fatalf("readList: %v", err)
			}
			if diff := cmp.Diff(list, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadListNormalizesLegacyPriorities(t *testing.T) {
	data := []byte(`[{"id":1,"text":"買牛奶","completed":false,"priority":"超急件","date":"2026/10/14"}]`)

	got, err := readList(data, formatJSON)
	if err != nil {
		t.Fatalf("readList: %v", err)
	}
	if got[0].Priority != todo.PriorityUrgentCritical {
		t.Fatalf("expected legacy label to map to urgent-critical, got %q", got[0].Priority)
	}
}

func TestReadListRejectsUnknownPriority(t *testing.T) {
	data := []byte("- id: 1\n  text: x\n  priority: someday\n")

	if _, err := readList(data, formatYAML); !errors.Is(err, todo.ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestImportFileFormat(t *testing.T) {
	tests := []struct {
		path string
		flag string
		want string
	}{
		{path: "todos.json", want: formatJSON},
		{path: "todos.YAML", want: formatYAML},
		{path: "todos.yml", want: formatYAML},
		{path: "-", want: formatJSON},
		{path: "todos.json", flag: "yaml", want: formatYAML},
	}

	for _, tt := range tests {
		got, err := importFileFormat(tt.path, tt.flag)
		if err != nil {
			t.Fatalf("importFileFormat(%q, %q): %v", tt.path, tt.flag, err)
		}
		if got != tt.want {
			t.Errorf("importFileFormat(%q, %q) = %q, want %q", tt.path, tt.flag, got, tt.want)
		}
	}

	if _, err := importFileFormat("todos.json", "xml"); err == nil {
		t.Fatal("expected unknown format error")
	}
}
