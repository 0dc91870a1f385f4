package todo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amonks/todolist/internal/validation"
)

var (
	// ErrEmptyText is returned when a todo text is empty or only whitespace.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrInvalidPriority is returned when a priority is not one of the known values.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrDuplicateID is returned when two records share an ID.
	ErrDuplicateID = errors.New("duplicate todo id")

	// ErrDeserialization is matched by every DeserializationError.
	ErrDeserialization = errors.New("persisted todos are malformed")

	// ErrUnknownLocale is returned when a locale has no known date layout.
	ErrUnknownLocale = errors.New("unknown locale")
)

// DeserializationError reports a persisted slot that could not be decoded.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decode slot %q: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrDeserialization.
func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// ValidateText checks that text has visible content.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}

// ValidatePriority checks that the priority is a known value.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return invalidPriorityError(string(priority))
	}
	return nil
}

// ValidateRecord checks that a record could have been produced by Add.
func ValidateRecord(r *Record) error {
	if err := ValidateText(r.Text); err != nil {
		return err
	}
	return ValidatePriority(r.Priority)
}

// ValidateList checks every record and the ID uniqueness invariant.
func ValidateList(list List) error {
	seen := make(map[ID]struct{}, len(list))
	for i := range list {
		if err := ValidateRecord(&list[i]); err != nil {
			return fmt.Errorf("validate todo %d: %w", list[i].ID, err)
		}
		if _, ok := seen[list[i].ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, list[i].ID)
		}
		seen[list[i].ID] = struct{}{}
	}
	return nil
}

func invalidPriorityError(value string) error {
	return validation.FormatInvalidValueError(ErrInvalidPriority, Priority(value), ValidPriorities())
}
