// Package planner owns the two plan document kinds: each customer's
// personal weekly plan and the admin's published weekly menu. Both map a
// weekday to an ordered sequence of meal placements; a day absent from the
// mapping is equivalent to an empty sequence. The two kinds deliberately
// persist differently — the customer plan commits on every mutation, the
// admin menu is a draft until an explicit Save (the original product
// behavior: admins compose, then publish).
package planner

import (
	"errors"
	"sync"
	"time"

	"meal-planner-api/models"
)

// ErrInvalidDay is returned when a day key is not one of the seven weekdays.
var ErrInvalidDay = errors.New("invalid day")

// Document is a plan document a drag gesture can target.
type Document interface {
	// AddEntry appends a placement for the meal under day.
	AddEntry(day models.Weekday, meal models.MealItem) error
	// RemoveEntry removes the placement at ordinal position index within
	// that day's sequence. Out-of-range positions are a silent no-op.
	RemoveEntry(day models.Weekday, index int) error
}

var (
	idMu   sync.Mutex
	lastID int64
)

// nextEntryID generates plan entry ids that are unique and increasing within
// a session. Millisecond timestamps collide under load, so same-millisecond
// calls bump past the previous id.
func nextEntryID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
