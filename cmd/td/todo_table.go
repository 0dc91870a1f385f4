package main

import (
	"fmt"
	"strings"

	"github.com/amonks/todolist/internal/ui"
	"github.com/amonks/todolist/todo"
	"github.com/muesli/reflow/wordwrap"
)

// formatSections renders pending todos, then completed todos, each under a
// heading. Empty sections are omitted. total is the size of the unfiltered
// list and only picks the empty-list message.
func formatSections(list todo.List, total int) string {
	if len(list) == 0 {
		return emptyListMessage(total) + "\n"
	}

	var b strings.Builder
	writeSection := func(title string, records todo.List) {
		if len(records) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ui.Heading(title))
		b.WriteByte('\n')
		b.WriteString(formatTodoTable(records))
	}
	writeSection("Pending", list.Pending())
	writeSection("Completed", list.Completed())
	return b.String()
}

func formatTodoTable(list todo.List) string {
	builder := ui.NewTableBuilder([]string{"ID", "DATE", "PRI", "DONE", "TEXT"}, len(list))
	for _, rec := range list {
		done := ""
		if rec.Completed {
			done = "x"
		}
		builder.AddRow([]string{
			rec.ID.String(),
			rec.Date,
			ui.PriorityLabel(rec.Priority),
			done,
			ui.TruncateTableCell(ui.RecordText(rec)),
		})
	}
	return builder.String()
}

// formatTodoDetail renders one todo with its text wrapped to width.
func formatTodoDetail(rec todo.Record, width int) string {
	completed := "no"
	if rec.Completed {
		completed = "yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ID:        %s\n", rec.ID)
	fmt.Fprintf(&b, "Date:      %s\n", rec.Date)
	fmt.Fprintf(&b, "Priority:  %s\n", ui.PriorityLabel(rec.Priority))
	fmt.Fprintf(&b, "Completed: %s\n", completed)
	fmt.Fprintf(&b, "\n%s\n", wordwrap.String(rec.Text, max(width, 20)))
	return b.String()
}
