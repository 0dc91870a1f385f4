package main

import (
	"encoding/json"
	"io"
	"os"

	"golang.org/x/term"
)

const defaultOutputWidth = 80

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func encodeJSONToStdout(value any) error {
	return encodeJSON(os.Stdout, value)
}

// outputWidth returns the terminal width, or defaultOutputWidth when stdout
// is not a terminal.
func outputWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultOutputWidth
	}
	return width
}
