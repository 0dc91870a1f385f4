package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \n\t ", want: ""},
		{name: "single token", input: "milk", want: "milk"},
		{name: "collapses spaces", input: "buy   fresh    milk", want: "buy fresh milk"},
		{name: "collapses newlines", input: "buy\n\n fresh\tmilk", want: "buy fresh milk"},
		{name: "wide runes", input: " 買  牛奶 ", want: "買 牛奶"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeWhitespace(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already lower", input: "urgent", want: "urgent"},
		{name: "mixed case", input: "Urgent-Critical", want: "urgent-critical"},
		{name: "padded", input: "  NORMAL \n", want: "normal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeLowerTrimSpace(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "lf only", input: "one\ntwo", want: "one\ntwo"},
		{name: "crlf", input: "one\r\ntwo\r\n", want: "one\ntwo\n"},
		{name: "bare cr", input: "one\rtwo", want: "one\ntwo"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeNewlines(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "none", input: "text", want: "text"},
		{name: "mixed", input: "text\r\n\n\r", want: "text"},
		{name: "keeps inner", input: "one\ntwo\n", want: "one\ntwo"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TrimTrailingNewlines(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTrimTrailingWhitespace(t *testing.T) {
	if got := TrimTrailingWhitespace("text \t \n"); got != "text" {
		t.Fatalf("expected trailing whitespace trimmed, got %q", got)
	}
}
