package repository

import (
	"github.com/yukikurage/todo-list/internal/models"
)

// ListSummary is a todo list annotated with its live item count.
type ListSummary struct {
	ID        uint64
	UserID    uint64
	Name      string
	ItemCount int64
}

// TodoListRepository defines the interface for todo list data access.
// Every lookup is scoped to the owning user.
type TodoListRepository interface {
	// Create creates a new list
	Create(list *models.TodoList) error

	// FindOwned finds a list by ID only if it belongs to userID
	FindOwned(userID, listID uint64) (*models.TodoList, error)

	// ListOwnedWithCounts lists all lists of userID with their item counts
	ListOwnedWithCounts(userID uint64) ([]ListSummary, error)

	// DeleteOwned deletes a list of userID and all of its items atomically
	DeleteOwned(userID, listID uint64) error
}

// ListItemRepository defines the interface for list item data access.
// Items are only reachable through a list owned by userID.
type ListItemRepository interface {
	// CreateInOwnedList creates an item under a list owned by userID
	CreateInOwnedList(userID, listID uint64, item *models.ListItem) error

	// FindInOwnedList finds an item of a list owned by userID
	FindInOwnedList(userID, listID, itemID uint64) (*models.ListItem, error)

	// ListByOwnedList lists the items of a list owned by userID
	ListByOwnedList(userID, listID uint64) ([]models.ListItem, error)

	// ToggleInOwnedList flips the completion flag of an item
	ToggleInOwnedList(userID, listID, itemID uint64) (*models.ListItem, error)

	// DeleteInOwnedList deletes an item of a list owned by userID
	DeleteInOwnedList(userID, listID, itemID uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// ExistsByUsername reports whether the username is taken
	ExistsByUsername(username string) (bool, error)

	// ExistsByEmail reports whether the email is taken
	ExistsByEmail(email string) (bool, error)
}
