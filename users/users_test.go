package users

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"meal-planner-api/models"
	"meal-planner-api/store"
)

func openTestStore(t *testing.T) {
	t.Helper()
	if err := store.Open(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	if err := store.EnsureInitialized(); err != nil {
		t.Fatalf("store.EnsureInitialized failed: %v", err)
	}
}

func TestAuthenticateSeedAccounts(t *testing.T) {
	openTestStore(t)

	tests := []struct {
		name     string
		username string
		password string
		role     models.UserRole
		wantErr  error
	}{
		{"admin logs in", "admin", "password", models.RoleAdmin, nil},
		{"customer logs in", "customer", "password", models.RoleCustomer, nil},
		{"wrong password", "admin", "hunter2", models.RoleAdmin, ErrInvalidCredentials},
		{"role must match", "admin", "password", models.RoleCustomer, ErrInvalidCredentials},
		{"unknown username", "nobody", "password", models.RoleCustomer, ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := Authenticate(tt.username, tt.password, tt.role)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Authenticate err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && user.Role != tt.role {
				t.Errorf("authenticated role = %v, want %v", user.Role, tt.role)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	openTestStore(t)

	user, err := Create("alice", "secret123", models.RoleCustomer)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasPrefix(user.ID, "user-") {
		t.Errorf("user id = %q, want user- prefix", user.ID)
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}

	if _, err := Authenticate("alice", "secret123", models.RoleCustomer); err != nil {
		t.Errorf("new account cannot log in: %v", err)
	}

	t.Run("duplicate username is rejected", func(t *testing.T) {
		if _, err := Create("alice", "other456", models.RoleAdmin); !errors.Is(err, ErrDuplicateUsername) {
			t.Errorf("Create(alice) err = %v, want ErrDuplicateUsername", err)
		}
	})
}
