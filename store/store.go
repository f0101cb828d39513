// Package store is a minimal key-value layer over named "tables", each
// persisted as a single JSON blob in one sqlite relation. Tables hold either
// an ordered sequence of records or a mapping; the shape is the caller's
// contract, the store only moves bytes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"meal-planner-api/models"
)

// Table names. Each is independently readable/writable.
const (
	TableUsers     = "users"
	TableRecipes   = "recipes"
	TableUserPlans = "user_plans"
	TableAdminMenu = "admin_menu"
	TableOrders    = "orders"
)

// tableRow is one named table persisted as a JSON blob.
type tableRow struct {
	Name string `gorm:"primaryKey"`
	Data []byte
}

func (tableRow) TableName() string { return "tables" }

var (
	// mu makes individual Read/Write calls atomic. Read-modify-write
	// sequences are serialized by the owning repository's own mutex.
	mu sync.RWMutex
	db *gorm.DB
)

// Open connects to the sqlite file at path and migrates the blob relation.
func Open(path string) error {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if err := gdb.AutoMigrate(&tableRow{}); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}
	mu.Lock()
	db = gdb
	mu.Unlock()
	return nil
}

// Read unmarshals the named table into out. A missing table leaves out at
// its zero value — an empty sequence for slice-shaped tables; callers of
// map-shaped tables (user_plans, admin_menu) normalize nil to an empty map.
func Read(table string, out any) error {
	mu.RLock()
	defer mu.RUnlock()
	var row tableRow
	err := db.First(&row, "name = ?", table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read table %s: %w", table, err)
	}
	if err := json.Unmarshal(row.Data, out); err != nil {
		return fmt.Errorf("decode table %s: %w", table, err)
	}
	return nil
}

// Write replaces the named table's contents with v.
func Write(table string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode table %s: %w", table, err)
	}
	mu.Lock()
	defer mu.Unlock()
	row := tableRow{Name: table, Data: data}
	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("write table %s: %w", table, err)
	}
	return nil
}

// EnsureInitialized seeds default data for tables that do not exist yet.
// Run once at process start; existing tables are left untouched.
func EnsureInitialized() error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	seeds := []struct {
		table string
		value any
	}{
		{TableUsers, []models.User{
			{ID: "admin001", Username: "admin", PasswordHash: string(adminHash), Role: models.RoleAdmin},
			{ID: "cust001", Username: "customer", PasswordHash: string(adminHash), Role: models.RoleCustomer},
		}},
		{TableRecipes, []models.MealItem{
			{ID: 1, Name: "Chicken & Veggies", Calories: 450, Protein: 40, Fat: 15, Carbs: 40, Price: 12.99, PrepTime: "30m"},
			{ID: 2, Name: "Vegan Lentil Soup", Calories: 300, Protein: 15, Fat: 5, Carbs: 50, Price: 9.50, PrepTime: "45m"},
			{ID: 3, Name: "Steak with Asparagus", Calories: 600, Protein: 60, Fat: 35, Carbs: 10, Price: 18.50, PrepTime: "25m"},
		}},
		{TableUserPlans, map[string][]models.PlanEntry{}},
		{TableAdminMenu, map[models.Weekday][]models.MenuSlot{}},
		{TableOrders, []models.Order{}},
	}

	for _, seed := range seeds {
		ok, err := exists(seed.table)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := Write(seed.table, seed.value); err != nil {
			return err
		}
	}
	return nil
}

func exists(table string) (bool, error) {
	mu.RLock()
	defer mu.RUnlock()
	var n int64
	if err := db.Model(&tableRow{}).Where("name = ?", table).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check table %s: %w", table, err)
	}
	return n > 0, nil
}
