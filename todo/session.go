package todo

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	// Now is the clock used for IDs and creation dates. Defaults to time.Now.
	Now func() time.Time

	// DateLayout formats creation dates. Defaults to the DefaultLocale layout.
	DateLayout string

	// Logger receives debug logs for each operation. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Session owns the todo list for one interactive session.
//
// Every mutating method computes the new list, saves it, and only then
// replaces the session state. A Session is not safe for concurrent use.
type Session struct {
	store  *Store
	list   List
	ids    *IDSource
	now    func() time.Time
	layout string
	logger *zap.Logger
}

// Open loads the list from store and starts a session.
func Open(ctx context.Context, store *Store, opts SessionOptions) (*Session, error) {
	if store == nil {
		return nil, fmt.Errorf("todo session requires a store")
	}

	list, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	layout := opts.DateLayout
	if layout == "" {
		layout, _ = LayoutForLocale(DefaultLocale)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		store:  store,
		list:   list,
		ids:    NewIDSource(now, list.maxID()),
		now:    now,
		layout: layout,
		logger: logger,
	}, nil
}

// List returns a copy of the current list.
func (s *Session) List() List {
	return s.list.Clone()
}

// DateLayout returns the layout used for creation dates.
func (s *Session) DateLayout() string {
	return s.layout
}

// Add appends a new todo and returns the updated list and the new record.
func (s *Session) Add(ctx context.Context, text string, priority Priority) (List, Record, error) {
	if err := ValidateText(text); err != nil {
		return nil, Record{}, err
	}
	if err := ValidatePriority(priority); err != nil {
		return nil, Record{}, err
	}

	rec := Record{
		ID:        s.ids.Next(),
		Text:      text,
		Completed: false,
		Priority:  priority,
		Date:      FormatDate(s.now(), s.layout),
	}

	list, err := s.commit(ctx, "add", s.list.Add(rec), zap.Int64("id", int64(rec.ID)))
	if err != nil {
		return nil, Record{}, err
	}
	return list, rec, nil
}

// Delete removes the todo with the given ID. Unknown IDs are a no-op.
func (s *Session) Delete(ctx context.Context, id ID) (List, error) {
	return s.commit(ctx, "delete", s.list.Delete(id), zap.Int64("id", int64(id)))
}

// Edit replaces the text of the todo with the given ID. Unknown IDs are a no-op.
func (s *Session) Edit(ctx context.Context, id ID, text string) (List, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}
	return s.commit(ctx, "edit", s.list.Edit(id, text), zap.Int64("id", int64(id)))
}

// Toggle flips completion of the todo with the given ID. Unknown IDs are a no-op.
func (s *Session) Toggle(ctx context.Context, id ID) (List, error) {
	return s.commit(ctx, "toggle", s.list.Toggle(id), zap.Int64("id", int64(id)))
}

// SortByDate re-orders the list by creation date and persists the order.
func (s *Session) SortByDate(ctx context.Context) (List, error) {
	return s.commit(ctx, "sort by date", s.list.SortByDate(s.layout))
}

// SortByPriority re-orders the list by priority rank and persists the order.
func (s *Session) SortByPriority(ctx context.Context) (List, error) {
	return s.commit(ctx, "sort by priority", s.list.SortByPriority())
}

// Replace swaps the whole list, as when importing. The list must be valid.
func (s *Session) Replace(ctx context.Context, list List) (List, error) {
	if err := ValidateList(list); err != nil {
		return nil, err
	}
	next, err := s.commit(ctx, "replace", list.Clone(), zap.Int("count", len(list)))
	if err != nil {
		return nil, err
	}
	s.ids = NewIDSource(s.now, max(s.ids.last, list.maxID()))
	return next, nil
}

func (s *Session) commit(ctx context.Context, op string, next List, fields ...zap.Field) (List, error) {
	if err := s.store.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save todos: %w", err)
	}
	s.list = next
	s.logger.Debug("todo operation", append(fields, zap.String("op", op), zap.Int("len", len(next)))...)
	return next.Clone(), nil
}
