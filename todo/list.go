package todo

import (
	"sort"
	"time"
)

// List is the ordered collection of todos. Insertion order is canonical
// until a sort re-orders it.
//
// List methods never modify the receiver; they return a new list.
type List []Record

// Clone returns a copy of the list that shares no backing array.
func (l List) Clone() List {
	if l == nil {
		return List{}
	}
	clone := make(List, len(l))
	copy(clone, l)
	return clone
}

// Add returns a new list with rec appended.
func (l List) Add(rec Record) List {
	next := make(List, 0, len(l)+1)
	next = append(next, l...)
	return append(next, rec)
}

// Delete returns a new list without the record matching id.
func (l List) Delete(id ID) List {
	next := make(List, 0, len(l))
	for _, rec := range l {
		if rec.ID == id {
			continue
		}
		next = append(next, rec)
	}
	return next
}

// Edit returns a new list with the text of the matching record replaced.
func (l List) Edit(id ID, text string) List {
	next := l.Clone()
	for i := range next {
		if next[i].ID == id {
			next[i].Text = text
		}
	}
	return next
}

// Toggle returns a new list with the matching record's completion flipped.
func (l List) Toggle(id ID) List {
	next := l.Clone()
	for i := range next {
		if next[i].ID == id {
			next[i].Completed = !next[i].Completed
		}
	}
	return next
}

// SortByDate returns a new list ordered by ascending creation date.
// Equal dates keep their relative order. Dates that cannot be parsed sort
// after every parseable date.
func (l List) SortByDate(layout string) List {
	type dated struct {
		rec Record
		at  time.Time
		ok  bool
	}
	entries := make([]dated, 0, len(l))
	for _, rec := range l {
		at, ok := ParseDate(rec.Date, layout)
		entries = append(entries, dated{rec: rec, at: at, ok: ok})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.at.Before(b.at)
	})
	next := make(List, 0, len(entries))
	for _, entry := range entries {
		next = append(next, entry.rec)
	}
	return next
}

// SortByPriority returns a new list ordered by ascending priority rank.
// Equal ranks keep their relative order.
func (l List) SortByPriority() List {
	next := l.Clone()
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Priority.Rank() < next[j].Priority.Rank()
	})
	return next
}

// Find returns the record with the given id.
func (l List) Find(id ID) (Record, bool) {
	for _, rec := range l {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Pending returns the records that are not completed, in list order.
func (l List) Pending() List {
	return l.filter(func(rec Record) bool { return !rec.Completed })
}

// Completed returns the completed records, in list order.
func (l List) Completed() List {
	return l.filter(func(rec Record) bool { return rec.Completed })
}

// IDs returns every record ID in list order.
func (l List) IDs() []ID {
	ids := make([]ID, 0, len(l))
	for _, rec := range l {
		ids = append(ids, rec.ID)
	}
	return ids
}

func (l List) maxID() ID {
	var max ID
	for _, rec := range l {
		if rec.ID > max {
			max = rec.ID
		}
	}
	return max
}

func (l List) filter(keep func(Record) bool) List {
	result := List{}
	for _, rec := range l {
		if keep(rec) {
			result = append(result, rec)
		}
	}
	return result
}
