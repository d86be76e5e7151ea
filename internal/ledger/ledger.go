// Package ledger keeps the day's food entries in memory.
//
// Entries live only as long as the process: nothing here is persisted or sent
// to the backend.
package ledger

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyInput is returned when the food name or the calories are blank.
	ErrEmptyInput = errors.New("ledger: food and calories are required")
	// ErrInvalidCalories is returned when calories is not a whole number
	// between 0 and MaxCalories.
	ErrInvalidCalories = errors.New("ledger: calories must be a whole number from 0 to 100000")
)

// MaxCalories bounds a single entry, which keeps Total from overflowing.
const MaxCalories = 100000

// Entry is one logged food item.
type Entry struct {
	ID        string
	Food      string
	Calories  int
	Timestamp time.Time
}

// Ledger is an ordered, in-memory list of entries. It is not safe for
// concurrent use; the TUI update loop is its only writer.
type Ledger struct {
	entries []Entry
	now     func() time.Time
	newID   func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDFunc overrides entry id generation.
func WithIDFunc(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ParseCalories converts user input into a calorie count.
func ParseCalories(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyInput
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > MaxCalories {
		return 0, ErrInvalidCalories
	}
	return n, nil
}

// Add appends a new entry. The ledger is left untouched when either input is
// blank or calories does not parse.
func (l *Ledger) Add(food, calories string) (Entry, error) {
	food = strings.TrimSpace(food)
	if food == "" || strings.TrimSpace(calories) == "" {
		return Entry{}, ErrEmptyInput
	}
	n, err := ParseCalories(calories)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:        l.uniqueID(),
		Food:      food,
		Calories:  n,
		Timestamp: l.now(),
	}
	l.entries = append(l.entries, e)
	return e, nil
}

// Delete removes the entry with the given id and reports whether one was found.
func (l *Ledger) Delete(id string) bool {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Total sums the calories of every present entry.
func (l *Ledger) Total() int {
	total := 0
	for _, e := range l.entries {
		total += e.Calories
	}
	return total
}

// Entries returns a copy of the entries in insertion order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// uniqueID draws ids until one is not in use. Deleted ids are never in use,
// but uuids make reuse practically impossible anyway.
func (l *Ledger) uniqueID() string {
	for {
		id := l.newID()
		if !l.has(id) {
			return id
		}
	}
}

func (l *Ledger) has(id string) bool {
	for _, e := range l.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}
