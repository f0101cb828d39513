// Package dragdrop is the interaction state machine that carries a dragged
// catalog item's identity across a drag gesture into a day-scoped drop zone.
// Each view (admin menu planner, customer plan) owns its own Protocol
// instance, so the captured item is instance state rather than a process
// global and concurrent views cannot interfere.
package dragdrop

import (
	"sync"

	"meal-planner-api/models"
	"meal-planner-api/planner"
)

// State is the gesture phase of a Protocol.
type State string

const (
	// StateIdle means no drag is in flight.
	StateIdle State = "IDLE"
	// StateDragging means an item has been captured and awaits a drop.
	StateDragging State = "DRAGGING"
)

// Captured is the dragged item's identity carried across the gesture.
type Captured struct {
	MealID int    `json:"mealId"`
	Name   string `json:"name"`
}

// Protocol binds a drag gesture to one plan document. Only one drag may be
// active at a time on an instance; starting a new drag replaces any previous
// capture.
type Protocol struct {
	mu       sync.Mutex
	doc      planner.Document
	captured *Captured
	active   models.Weekday // zone currently hovered, "" when none
}

// New returns an idle protocol bound to the given document.
func New(doc planner.Document) *Protocol {
	return &Protocol{doc: doc}
}

// State reports the current gesture phase.
func (p *Protocol) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.captured == nil {
		return StateIdle
	}
	return StateDragging
}

// DragStart begins the source phase, capturing the dragged item's identity.
func (p *Protocol) DragStart(mealID int, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.captured = &Captured{MealID: mealID, Name: name}
	p.active = ""
}

// DragEnter marks day's drop zone as hovered. Hook point for a UI layer to
// highlight the zone.
func (p *Protocol) DragEnter(day models.Weekday) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if models.ValidWeekday(day) {
		p.active = day
	}
}

// DragLeave clears the hovered zone. Hook point for a UI layer to clear
// highlighting.
func (p *Protocol) DragLeave() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = ""
}

// ActiveZone returns the currently hovered drop zone, or "" when none.
func (p *Protocol) ActiveZone() models.Weekday {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Drop completes the target phase. When a capture and a valid target day are
// both present it appends a placement to the bound document and ends the
// gesture; otherwise the drop is a silent no-op (stray drops raise no
// error). The bool reports whether a placement was made.
func (p *Protocol) Drop(day models.Weekday) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = ""

	if p.captured == nil || !models.ValidWeekday(day) {
		return false, nil
	}
	meal := models.MealItem{ID: p.captured.MealID, Name: p.captured.Name}
	if err := p.doc.AddEntry(day, meal); err != nil {
		return false, err
	}
	p.captured = nil
	return true, nil
}

// Cancel ends the gesture without a drop.
func (p *Protocol) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.captured = nil
	p.active = ""
}
