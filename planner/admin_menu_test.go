package planner

import (
	"testing"

	"meal-planner-api/models"
)

func TestAdminMenuDraftPersistsOnlyOnSave(t *testing.T) {
	openTestStore(t)

	draft, err := LoadAdminMenu()
	if err != nil {
		t.Fatalf("LoadAdminMenu failed: %v", err)
	}
	if err := draft.AddEntry(models.Monday, models.MealItem{ID: 3, Name: "Steak"}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	published, err := PublishedMenu()
	if err != nil {
		t.Fatalf("PublishedMenu failed: %v", err)
	}
	if len(published) != 0 {
		t.Errorf("draft mutation visible before Save: %v", published)
	}

	if err := draft.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	published, err = PublishedMenu()
	if err != nil {
		t.Fatalf("PublishedMenu failed: %v", err)
	}
	slots := published[models.Monday]
	if len(slots) != 1 || slots[0].MealID != 3 || slots[0].Name != "Steak" {
		t.Errorf("published Monday = %+v, want the steak slot", slots)
	}
}

func TestAdminMenuRemoveEntry(t *testing.T) {
	openTestStore(t)

	draft, err := LoadAdminMenu()
	if err != nil {
		t.Fatalf("LoadAdminMenu failed: %v", err)
	}
	if err := draft.AddEntry(models.Monday, models.MealItem{ID: 1, Name: "Soup"}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if err := draft.AddEntry(models.Monday, models.MealItem{ID: 2, Name: "Steak"}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	if err := draft.RemoveEntry(models.Monday, 0); err != nil {
		t.Fatalf("RemoveEntry failed: %v", err)
	}
	slots := draft.Days()[models.Monday]
	if len(slots) != 1 || slots[0].Name != "Steak" {
		t.Errorf("Monday after remove = %+v, want only the steak", slots)
	}

	// Removing the last slot drops the day key entirely.
	if err := draft.RemoveEntry(models.Monday, 0); err != nil {
		t.Fatalf("RemoveEntry failed: %v", err)
	}
	if _, ok := draft.Days()[models.Monday]; ok {
		t.Error("empty day still present in mapping")
	}

	// Out-of-range positions are a silent no-op.
	if err := draft.RemoveEntry(models.Tuesday, 3); err != nil {
		t.Errorf("out-of-range RemoveEntry err = %v, want nil", err)
	}
}

func TestAdminMenuRejectsInvalidDay(t *testing.T) {
	openTestStore(t)

	draft, err := LoadAdminMenu()
	if err != nil {
		t.Fatalf("LoadAdminMenu failed: %v", err)
	}
	if err := draft.AddEntry("Someday", models.MealItem{ID: 1}); err != ErrInvalidDay {
		t.Errorf("AddEntry(Someday) err = %v, want ErrInvalidDay", err)
	}
}
