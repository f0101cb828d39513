package orders

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"meal-planner-api/catalog"
	"meal-planner-api/models"
	"meal-planner-api/store"
)

func openTestStore(t *testing.T) {
	t.Helper()
	if err := store.Open(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
}

func TestPlaceRejectsEmptyCart(t *testing.T) {
	openTestStore(t)

	cart := &Cart{}
	if _, err := Place("cust001", cart); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("Place on empty cart err = %v, want ErrEmptyCart", err)
	}

	ledger, err := List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ledger) != 0 {
		t.Errorf("rejected placement changed the ledger: %+v", ledger)
	}
}

func TestPlaceSoupScenario(t *testing.T) {
	openTestStore(t)
	soup := models.MealItem{ID: 1, Name: "Soup", Calories: 300, Price: 9.50}
	if err := store.Write(store.TableRecipes, []models.MealItem{soup}); err != nil {
		t.Fatalf("seed catalog failed: %v", err)
	}

	cart := CartFor("cust001")
	meal, err := catalog.Get(1)
	if err != nil {
		t.Fatalf("catalog.Get failed: %v", err)
	}
	cart.Add(meal)
	cart.Add(meal)

	order, err := Place("cust001", cart)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if len(order.Items) != 2 {
		t.Errorf("order has %d items, want 2", len(order.Items))
	}
	if math.Abs(order.Total-19.00) > 0.001 {
		t.Errorf("order total = %v, want 19.00", order.Total)
	}
	if order.CustomerID != "cust001" {
		t.Errorf("order customer = %q, want cust001", order.CustomerID)
	}
	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Errorf("order id = %q, want ORD- prefix", order.ID)
	}

	if len(cart.Items()) != 0 {
		t.Errorf("cart not cleared after placement: %+v", cart.Items())
	}

	ledger, err := List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ledger) != 1 {
		t.Errorf("ledger has %d orders, want exactly 1", len(ledger))
	}
}

func TestOrderSnapshotsSurviveCatalogEdits(t *testing.T) {
	openTestStore(t)
	if err := store.Write(store.TableRecipes, []models.MealItem{
		{ID: 1, Name: "Soup", Calories: 300, Price: 9.50},
	}); err != nil {
		t.Fatalf("seed catalog failed: %v", err)
	}

	cart := &Cart{}
	meal, _ := catalog.Get(1)
	cart.Add(meal)

	// Reprice after the snapshot was taken.
	if _, err := catalog.Update(1, catalog.Fields{Name: "Soup", Calories: 300, Price: 99.99}); err != nil {
		t.Fatalf("catalog.Update failed: %v", err)
	}

	order, err := Place("cust001", cart)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if math.Abs(order.Total-9.50) > 0.001 {
		t.Errorf("order total = %v, want the capture-time 9.50", order.Total)
	}
	if order.Items[0].Price != 9.50 {
		t.Errorf("item price = %v, want the capture-time 9.50", order.Items[0].Price)
	}
}

func TestCartRemove(t *testing.T) {
	cart := &Cart{}
	cart.Add(models.MealItem{ID: 1, Name: "Soup", Price: 9.50})
	cart.Add(models.MealItem{ID: 2, Name: "Steak", Price: 18.50})

	cart.Remove(0)
	items := cart.Items()
	if len(items) != 1 || items[0].Name != "Steak" {
		t.Errorf("cart after remove = %+v, want only the steak", items)
	}

	// Out-of-range positions are a silent no-op.
	cart.Remove(7)
	cart.Remove(-1)
	if len(cart.Items()) != 1 {
		t.Errorf("out-of-range remove changed the cart: %+v", cart.Items())
	}
}

func TestRecentReturnsReverseChronological(t *testing.T) {
	openTestStore(t)

	for i, name := range []string{"first", "second", "third"} {
		cart := &Cart{}
		cart.Add(models.MealItem{ID: i + 1, Name: name, Price: 1})
		if _, err := Place("cust001", cart); err != nil {
			t.Fatalf("Place failed: %v", err)
		}
	}

	recent, err := Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d orders", len(recent))
	}
	if recent[0].Items[0].Name != "third" || recent[1].Items[0].Name != "second" {
		t.Errorf("Recent order wrong: %q then %q", recent[0].Items[0].Name, recent[1].Items[0].Name)
	}

	// Asking for more than exist returns everything.
	all, err := Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Recent(10) returned %d orders, want 3", len(all))
	}
}

func TestForCustomer(t *testing.T) {
	openTestStore(t)

	for _, userID := range []string{"cust001", "cust002", "cust001"} {
		cart := &Cart{}
		cart.Add(models.MealItem{ID: 1, Name: "Soup", Price: 9.50})
		if _, err := Place(userID, cart); err != nil {
			t.Fatalf("Place failed: %v", err)
		}
	}

	mine, err := ForCustomer("cust001")
	if err != nil {
		t.Fatalf("ForCustomer failed: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("cust001 has %d orders, want 2", len(mine))
	}
	for _, o := range mine {
		if o.CustomerID != "cust001" {
			t.Errorf("foreign order in result: %+v", o)
		}
	}
}
