package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amonks/todolist/internal/editor"
	"github.com/amonks/todolist/internal/listflags"
	"github.com/amonks/todolist/internal/markdown"
	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/todo"
	"github.com/spf13/cobra"
)

var errTextRequired = errors.New("text is required when not running interactively")

// td add
var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a todo",
	Long: `Add a todo and print its id.

Without text, opens $EDITOR when running interactively.`,
	RunE: runAdd,
}

var addPriority string

// td list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos, pending first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listJSON      bool
	listMarkdown  bool
	listPending   bool
	listCompleted bool
)

// td show
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

// td edit
var editCmd = &cobra.Command{
	Use:   "edit <id> [text...]",
	Short: "Replace the text of a todo",
	Long: `Replace the text of a todo.

Without text, opens $EDITOR when running interactively.
Unknown ids are ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

// td toggle
var toggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Flip completion of one or more todos",
	Long:  "Flip completion of one or more todos. Unknown ids are ignored.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runToggle,
}

// td delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more todos",
	Long:  "Delete one or more todos. Unknown ids are ignored.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

// td sort
var sortCmd = &cobra.Command{
	Use:       "sort date|priority",
	Short:     "Re-order the list and save the new order",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"date", "priority"},
	RunE:      runSort,
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, showCmd, editCmd, toggleCmd, deleteCmd, sortCmd)

	addPriorityFlagAliases(addCmd)
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(todo.PriorityNormal), "Priority (urgent-critical, urgent, normal)")

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listMarkdown, "markdown", false, "Output as a markdown checklist")
	listflags.AddSectionFlags(listCmd, &listPending, &listCompleted)
	listCmd.MarkFlagsMutuallyExclusive("json", "markdown")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	priority, err := todo.ParsePriority(addPriority)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(args, " "))

	if text == "" && editor.IsInteractive() {
		data := editor.DefaultCreateData()
		data.Priority = priority
		parsed, err := editor.EditTodoWithData(data)
		if err != nil {
			return err
		}
		text = parsed.Text
		priority = parsed.Priority
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	_, rec, err := a.session.Add(commandContext(cmd), text, priority)
	if err != nil {
		return err
	}
	fmt.Println(rec.ID)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	list := a.session.List()
	switch {
	case listPending:
		list = list.Pending()
	case listCompleted:
		list = list.Completed()
	}

	switch {
	case listJSON:
		return encodeJSONToStdout(list)
	case listMarkdown:
		if len(list) == 0 {
			fmt.Println(emptyListMessage(len(a.session.List())))
			return nil
		}
		fmt.Println(string(markdown.SafeRender(outputWidth(), 0, []byte(markdown.Checklist(list)))))
		return nil
	default:
		fmt.Print(formatSections(list, len(a.session.List())))
		return nil
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	rec, ok := a.session.List().Find(id)
	if !ok {
		return fmt.Errorf("todo %d not found", id)
	}
	if showJSON {
		return encodeJSONToStdout(rec)
	}
	fmt.Print(formatTodoDetail(rec, outputWidth()))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(args[1:], " "))

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if text == "" {
		rec, ok := a.session.List().Find(id)
		if !ok {
			return nil
		}
		if !editor.IsInteractive() {
			return errTextRequired
		}
		parsed, err := editor.EditTodo(&rec)
		if err != nil {
			return err
		}
		text = parsed.Text
	}

	list, err := a.session.Edit(commandContext(cmd), id, text)
	if err != nil {
		return err
	}
	if rec, ok := list.Find(id); ok {
		fmt.Printf("Edited %d: %s\n", rec.ID, internalstrings.NormalizeWhitespace(rec.Text))
	}
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, id := range ids {
		list, err := a.session.Toggle(commandContext(cmd), id)
		if err != nil {
			return err
		}
		rec, ok := list.Find(id)
		if !ok {
			continue
		}
		verb := "Reopened"
		if rec.Completed {
			verb = "Completed"
		}
		fmt.Printf("%s %d: %s\n", verb, rec.ID, internalstrings.NormalizeWhitespace(rec.Text))
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, id := range ids {
		rec, ok := a.session.List().Find(id)
		if _, err := a.session.Delete(commandContext(cmd), id); err != nil {
			return err
		}
		if ok {
			fmt.Printf("Deleted %d: %s\n", rec.ID, internalstrings.NormalizeWhitespace(rec.Text))
		}
	}
	return nil
}

func runSort(cmd *cobra.Command, args []string) error {
	field := internalstrings.NormalizeLowerTrimSpace(args[0])
	if field != "date" && field != "priority" {
		return fmt.Errorf("sort by %q: must be date or priority", args[0])
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := commandContext(cmd)
	var list todo.List
	if field == "date" {
		list, err = a.session.SortByDate(ctx)
	} else {
		list, err = a.session.SortByPriority(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Print(formatSections(list, len(list)))
	return nil
}

func parseIDArg(value string) (todo.ID, error) {
	id, err := todo.ParseID(value)
	if err != nil {
		return 0, fmt.Errorf("invalid todo id %q", value)
	}
	return id, nil
}

func parseIDArgs(values []string) ([]todo.ID, error) {
	ids := make([]todo.ID, 0, len(values))
	for _, value := range values {
		id, err := parseIDArg(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func emptyListMessage(total int) string {
	if total == 0 {
		return "No todos found. Add one with: td add <text>"
	}
	return "No matching todos."
}
