package todo

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestPriority_IsValid(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
	}{
		{PriorityUrgentCritical, true},
		{PriorityUrgent, true},
		{PriorityNormal, true},
		{Priority("low"), false},
		{Priority(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.IsValid(); got != tt.valid {
				t.Errorf("Priority(%q).IsValid() = %v, want %v", tt.priority, got, tt.valid)
			}
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	tests := []struct {
		priority Priority
		rank     int
	}{
		{PriorityUrgentCritical, 1},
		{PriorityUrgent, 2},
		{PriorityNormal, 3},
		{Priority("whenever"), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.Rank(); got != tt.rank {
				t.Errorf("Priority(%q).Rank() = %d, want %d", tt.priority, got, tt.rank)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"urgent-critical", PriorityUrgentCritical, false},
		{"URGENT", PriorityUrgent, false},
		{"  normal ", PriorityNormal, false},
		{"超急件", PriorityUrgentCritical, false},
		{"急件", PriorityUrgent, false},
		{"普通件", PriorityNormal, false},
		{"low", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPriority) {
					t.Fatalf("ParsePriority(%q) error = %v, want ErrInvalidPriority", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecord_JSONFieldNames(t *testing.T) {
	rec := Record{ID: 1700000000000, Text: "buy milk", Priority: PriorityNormal, Date: "10/14/2026"}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"id":1700000000000,"text":"buy milk","completed":false,"priority":"normal","date":"10/14/2026"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestRecord_UnmarshalLegacyPriority(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`{"id":1,"text":"x","completed":true,"priority":"超急件","date":"2024/5/1"}`), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Priority != PriorityUrgentCritical {
		t.Errorf("expected legacy label to normalize, got %q", rec.Priority)
	}
	if !rec.Completed {
		t.Error("expected completed to decode")
	}
}

func TestRecord_UnmarshalKeepsUnknownPriority(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`{"id":1,"text":"x","priority":"someday"}`), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Priority != Priority("someday") {
		t.Errorf("expected unknown priority to be kept, got %q", rec.Priority)
	}
}
