package repository

import (
	"github.com/yukikurage/todo-list/internal/database"
	"github.com/yukikurage/todo-list/internal/models"
	"gorm.io/gorm"
)

// GormTodoListRepository is a GORM implementation of TodoListRepository
type GormTodoListRepository struct {
	db *gorm.DB
}

// NewTodoListRepository creates a new TodoListRepository
func NewTodoListRepository(db *gorm.DB) TodoListRepository {
	return &GormTodoListRepository{db: db}
}

// Create creates a new list
func (r *GormTodoListRepository) Create(list *models.TodoList) error {
	return r.db.Create(list).Error
}

// FindOwned finds a list by ID only if it belongs to userID
func (r *GormTodoListRepository) FindOwned(userID, listID uint64) (*models.TodoList, error) {
	return findOwnedList(r.db, userID, listID)
}

// ListOwnedWithCounts lists all lists of userID with their item counts,
// oldest first.
func (r *GormTodoListRepository) ListOwnedWithCounts(userID uint64) ([]ListSummary, error) {
	itemCount := r.db.Model(&models.ListItem{}).
		Select("COUNT(*)").
		Where("list_items.list_id = todo_lists.id")

	summaries := []ListSummary{}
	err := r.db.Model(&models.TodoList{}).
		Select("todo_lists.id, todo_lists.user_id, todo_lists.name, (?) AS item_count", itemCount).
		Scopes(database.OwnedBy(userID)).
		Order("todo_lists.id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// DeleteOwned deletes a list and all of its items in a transaction.
// gorm.ErrRecordNotFound is returned when userID does not own the list.
func (r *GormTodoListRepository) DeleteOwned(userID, listID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		list, err := findOwnedList(tx, userID, listID)
		if err != nil {
			return err
		}

		if err := tx.Where("list_id = ?", list.ID).Delete(&models.ListItem{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ? AND user_id = ?", list.ID, userID).Delete(&models.TodoList{}).Error
	})
}

func findOwnedList(db *gorm.DB, userID, listID uint64) (*models.TodoList, error) {
	var list models.TodoList
	if err := db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}
