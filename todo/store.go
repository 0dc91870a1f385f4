package todo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amonks/todolist/internal/kv"
	"go.uber.org/zap"
)

// DefaultKey is the storage slot that holds the todo list.
const DefaultKey = "todos"

// StoreOptions configures a Store.
type StoreOptions struct {
	// Key names the storage slot. Defaults to DefaultKey.
	Key string

	// Strict makes Load return a DeserializationError for malformed data.
	// When false, malformed data is discarded with a warning and Load
	// returns an empty list.
	Strict bool

	// Logger receives warnings about discarded data. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Store reads and writes the todo list in a single storage slot.
type Store struct {
	storage kv.Storage
	key     string
	strict  bool
	logger  *zap.Logger
}

// NewStore returns a store backed by storage.
func NewStore(storage kv.Storage, opts StoreOptions) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("todo store requires a storage backend")
	}
	key := opts.Key
	if key == "" {
		key = DefaultKey
	}
	if err := kv.ValidateKey(key); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		storage: storage,
		key:     key,
		strict:  opts.Strict,
		logger:  logger,
	}, nil
}

// Key returns the storage slot name.
func (s *Store) Key() string {
	return s.key
}

// Load reads the persisted list. A missing slot yields an empty list.
func (s *Store) Load(ctx context.Context) (List, error) {
	data, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", s.key, err)
	}
	if !ok {
		return List{}, nil
	}

	list, err := decodeList(data)
	if err == nil && s.strict {
		err = ValidateList(list)
	}
	if err != nil {
		decodeErr := &DeserializationError{Key: s.key, Err: err}
		if s.strict {
			return nil, decodeErr
		}
		s.logger.Warn("discarding malformed todos",
			zap.String("key", s.key),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
		return List{}, nil
	}

	return s.dropDuplicateIDs(list), nil
}

// Save writes the full list to the slot, replacing what was there.
func (s *Store) Save(ctx context.Context, list List) error {
	data, err := encodeList(list)
	if err != nil {
		return fmt.Errorf("encode todos: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("write slot %q: %w", s.key, err)
	}
	return nil
}

// dropDuplicateIDs keeps the first record for each ID.
func (s *Store) dropDuplicateIDs(list List) List {
	seen := make(map[ID]struct{}, len(list))
	result := make(List, 0, len(list))
	for _, rec := range list {
		if _, ok := seen[rec.ID]; ok {
			s.logger.Warn("dropping todo with duplicate id",
				zap.String("key", s.key),
				zap.Int64("id", int64(rec.ID)),
				zap.String("text", rec.Text),
			)
			continue
		}
		seen[rec.ID] = struct{}{}
		result = append(result, rec)
	}
	return result
}

func decodeList(data []byte) (List, error) {
	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	if list == nil {
		// "null" is what a nil slice encodes to in some clients.
		list = List{}
	}
	return list, nil
}

func encodeList(list List) ([]byte, error) {
	if list == nil {
		list = List{}
	}
	return json.Marshal(list)
}
