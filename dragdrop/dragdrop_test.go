package dragdrop

import (
	"testing"

	"meal-planner-api/models"
)

// recordingDoc captures AddEntry calls without touching the store.
type recordingDoc struct {
	added []models.PlanEntry
}

func (d *recordingDoc) AddEntry(day models.Weekday, meal models.MealItem) error {
	d.added = append(d.added, models.PlanEntry{Day: day, MealID: meal.ID, Name: meal.Name})
	return nil
}

func (d *recordingDoc) RemoveEntry(models.Weekday, int) error { return nil }

func TestStrayDropIsNoOp(t *testing.T) {
	doc := &recordingDoc{}
	p := New(doc)

	// Simulates a stray drop: no active captured drag state.
	placed, err := p.Drop(models.Monday)
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if placed {
		t.Error("stray drop reported a placement")
	}
	if len(doc.added) != 0 {
		t.Errorf("stray drop created entries: %+v", doc.added)
	}
}

func TestDropAppendsToDocument(t *testing.T) {
	doc := &recordingDoc{}
	p := New(doc)

	p.DragStart(3, "Steak")
	if p.State() != StateDragging {
		t.Errorf("state after DragStart = %v, want %v", p.State(), StateDragging)
	}

	placed, err := p.Drop(models.Monday)
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if !placed {
		t.Fatal("Drop with capture and valid day reported no placement")
	}
	if len(doc.added) != 1 || doc.added[0].MealID != 3 || doc.added[0].Day != models.Monday {
		t.Errorf("document received %+v, want steak on Monday", doc.added)
	}
	if p.State() != StateIdle {
		t.Errorf("state after drop = %v, want %v (gesture over)", p.State(), StateIdle)
	}
}

func TestDropOnInvalidDayKeepsCapture(t *testing.T) {
	doc := &recordingDoc{}
	p := New(doc)

	p.DragStart(1, "Soup")
	placed, err := p.Drop("Nowhere")
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if placed || len(doc.added) != 0 {
		t.Error("drop outside a recognized zone created a placement")
	}
	if p.State() != StateDragging {
		t.Error("unrecognized drop zone ended the gesture")
	}

	// The gesture can still complete on a real zone.
	if placed, _ := p.Drop(models.Friday); !placed {
		t.Error("capture lost after a drop outside any zone")
	}
}

func TestDragStartReplacesPreviousCapture(t *testing.T) {
	doc := &recordingDoc{}
	p := New(doc)

	p.DragStart(1, "Soup")
	p.DragStart(2, "Salad")

	if _, err := p.Drop(models.Tuesday); err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if len(doc.added) != 1 || doc.added[0].MealID != 2 {
		t.Errorf("document received %+v, want only the replacing capture", doc.added)
	}
}

func TestEnterLeaveHooks(t *testing.T) {
	p := New(&recordingDoc{})

	p.DragEnter(models.Wednesday)
	if p.ActiveZone() != models.Wednesday {
		t.Errorf("ActiveZone = %v, want Wednesday", p.ActiveZone())
	}

	p.DragEnter("NotADay")
	if p.ActiveZone() != models.Wednesday {
		t.Error("unrecognized zone replaced the active zone")
	}

	p.DragLeave()
	if p.ActiveZone() != "" {
		t.Errorf("ActiveZone after leave = %v, want empty", p.ActiveZone())
	}
}

func TestCancelClearsCapture(t *testing.T) {
	doc := &recordingDoc{}
	p := New(doc)

	p.DragStart(1, "Soup")
	p.Cancel()
	if p.State() != StateIdle {
		t.Errorf("state after cancel = %v, want %v", p.State(), StateIdle)
	}
	if placed, _ := p.Drop(models.Monday); placed {
		t.Error("drop after cancel created a placement")
	}
}
