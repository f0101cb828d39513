// Package users is the account repository over the users table.
package users

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"meal-planner-api/models"
	"meal-planner-api/store"
)

// ErrDuplicateUsername is returned by Create on a signup collision.
var ErrDuplicateUsername = errors.New("username already taken")

// ErrInvalidCredentials is returned when no account matches the supplied
// username, password, and role.
var ErrInvalidCredentials = errors.New("invalid username, password, or role")

// mu serializes read-modify-write sequences against the users table.
var mu sync.Mutex

// List returns every registered user.
func List() ([]models.User, error) {
	var all []models.User
	if err := store.Read(store.TableUsers, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// ByID returns the user with the given id, or false when absent.
func ByID(id string) (models.User, bool, error) {
	all, err := List()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range all {
		if u.ID == id {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// Create registers a new account. Usernames are unique across roles; a
// collision returns ErrDuplicateUsername.
func Create(username, password string, role models.UserRole) (models.User, error) {
	mu.Lock()
	defer mu.Unlock()

	all, err := List()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range all {
		if u.Username == username {
			return models.User{}, ErrDuplicateUsername
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		ID:           "user-" + uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	all = append(all, user)
	if err := store.Write(store.TableUsers, all); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate matches an account by username, password, and role — the
// role the user logs in as must match the stored one, as in the original
// login flow.
func Authenticate(username, password string, role models.UserRole) (models.User, error) {
	all, err := List()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range all {
		if u.Username != username || u.Role != role {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}
