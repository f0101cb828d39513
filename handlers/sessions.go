package handlers

import (
	"sync"

	"meal-planner-api/dragdrop"
	"meal-planner-api/planner"
)

// Session-scoped state for the planner views. Each (user, view) pair gets
// its own drag protocol instance, and each admin gets their own menu draft,
// so the admin and customer planners never share captured drag state.
var (
	sessMu        sync.Mutex
	customerDrags = map[string]*dragdrop.Protocol{}
	adminDrags    = map[string]*dragdrop.Protocol{}
	adminDrafts   = map[string]*planner.AdminMenu{}
)

func customerDrag(userID string) *dragdrop.Protocol {
	sessMu.Lock()
	defer sessMu.Unlock()
	p, ok := customerDrags[userID]
	if !ok {
		p = dragdrop.New(planner.PlanFor(userID))
		customerDrags[userID] = p
	}
	return p
}

func adminDraft(userID string) (*planner.AdminMenu, error) {
	sessMu.Lock()
	defer sessMu.Unlock()
	return adminDraftLocked(userID)
}

func adminDraftLocked(userID string) (*planner.AdminMenu, error) {
	draft, ok := adminDrafts[userID]
	if !ok {
		loaded, err := planner.LoadAdminMenu()
		if err != nil {
			return nil, err
		}
		draft = loaded
		adminDrafts[userID] = draft
	}
	return draft, nil
}

func adminDrag(userID string) (*dragdrop.Protocol, error) {
	sessMu.Lock()
	defer sessMu.Unlock()
	p, ok := adminDrags[userID]
	if !ok {
		draft, err := adminDraftLocked(userID)
		if err != nil {
			return nil, err
		}
		p = dragdrop.New(draft)
		adminDrags[userID] = p
	}
	return p, nil
}
