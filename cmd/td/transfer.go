package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/todo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// td export
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole list to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var exportFormat string

// td import
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the list with the todos in a JSON or YAML file",
	Long: `Replace the list with the todos in a JSON or YAML file.

The format is taken from --format, then the file extension, and defaults
to JSON. Use - to read from stdin. Every record is validated and
duplicate ids are rejected before anything is saved.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importFormat string

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", formatJSON, "Output format (json, yaml)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format (json, yaml)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(exportFormat)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	return writeList(os.Stdout, a.session.List(), format)
}

func runImport(cmd *cobra.Command, args []string) error {
	format, err := importFileFormat(args[0], importFormat)
	if err != nil {
		return err
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}
	list, err := readList(data, format)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	next, err := a.session.Replace(commandContext(cmd), list)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d todos\n", len(next))
	return nil
}

func parseFormat(value string) (string, error) {
	switch internalstrings.NormalizeLowerTrimSpace(value) {
	case "", formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q: must be json or yaml", value)
	}
}

func importFileFormat(path, flag string) (string, error) {
	if strings.TrimSpace(flag) != "" {
		return parseFormat(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return formatJSON, nil
	}
}

// exportRecord fixes the field names used by both export formats.
type exportRecord struct {
	ID        todo.ID `json:"id" yaml:"id"`
	Text      string  `json:"text" yaml:"text"`
	Completed bool    `json:"completed" yaml:"completed"`
	Priority  string  `json:"priority" yaml:"priority"`
	Date      string  `json:"date" yaml:"date"`
}

func writeList(w io.Writer, list todo.List, format string) error {
	records := make([]exportRecord, 0, len(list))
	for _, rec := range list {
		records = append(records, exportRecord{
			ID:        rec.ID,
			Text:      rec.Text,
			Completed: rec.Completed,
			Priority:  string(rec.Priority),
			Date:      rec.Date,
		})
	}

	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return encodeJSON(w, records)
}

// readList decodes an exported list. Priorities are resolved like user
// input, so legacy labels and any casing are accepted.
func readList(data []byte, format string) (todo.List, error) {
	var records []exportRecord
	var err error
	if format == formatYAML {
		err = yaml.Unmarshal(data, &records)
	} else {
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	list := make(todo.List, 0, len(records))
	for _, rec := range records {
		priority, err := todo.ParsePriority(rec.Priority)
		if err != nil {
			return nil, fmt.Errorf("todo %d: %w", rec.ID, err)
		}
		list = append(list, todo.Record{
			ID:        rec.ID,
			Text:      rec.Text,
			Completed: rec.Completed,
			Priority:  priority,
			Date:      rec.Date,
		})
	}
	return list, nil
}
