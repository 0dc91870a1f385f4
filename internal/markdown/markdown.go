// Package markdown renders todo lists as GitHub-flavoured checklists.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/todo"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Checklist returns the list as markdown: a pending section, then a
// completed section. Empty sections are omitted.
func Checklist(list todo.List) string {
	var b strings.Builder
	writeSection := func(title string, records todo.List) {
		if len(records) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, rec := range records {
			mark := " "
			if rec.Completed {
				mark = "x"
			}
			text := internalstrings.NormalizeWhitespace(rec.Text)
			fmt.Fprintf(&b, "- [%s] %s _(%s, %s)_\n", mark, escape(text), rec.Priority, rec.Date)
		}
	}
	writeSection("Pending", list.Pending())
	writeSection("Completed", list.Completed())
	return b.String()
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`)

func escape(value string) string {
	return markdownEscaper.Replace(value)
}

// SafeRender formats markdown for terminal output, falling back to the
// input when the renderer fails or panics.
func SafeRender(width, indent int, input []byte) (out []byte) {
	defer func() {
		if recover() != nil {
			out = fallback(indent, input)
		}
	}()
	return Render(width, indent, input)
}

// Render formats markdown text for terminal output.
func Render(width, indent int, input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	value := internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	if indent < 0 {
		indent = 0
	}
	renderWidth := max(width-indent, 1)

	rendered := value
	if r := markdownRenderer(renderWidth); r != nil {
		formatted, err := r.Render(value)
		if err == nil {
			rendered = formatted
		}
	}
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	return []byte(indentBlock(rendered, indent))
}

func fallback(indent int, input []byte) []byte {
	value := internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(string(input)))
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return []byte(indentBlock(value, indent))
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

func indentBlock(value string, spaces int) string {
	if spaces <= 0 {
		return value
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
