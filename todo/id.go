package todo

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// IDSource mints strictly increasing IDs from a clock.
//
// Each ID is the current Unix time in milliseconds, bumped past the last
// minted ID when the clock has not advanced.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last ID
}

// NewIDSource returns a source whose IDs are greater than floor.
func NewIDSource(now func() time.Time, floor ID) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now, last: floor}
}

// Next returns a new ID.
func (s *IDSource) Next() ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ID(s.now().UnixMilli())
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// ParseID parses a decimal todo ID.
func ParseID(value string) (ID, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(parsed), nil
}

// String returns the decimal form of the ID.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
