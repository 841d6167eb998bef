package database

import (
	"github.com/yukikurage/todo-list/internal/models"
	"gorm.io/gorm"
)

// OwnedBy restricts a todo_lists query to the lists of userID.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("todo_lists.user_id = ?", userID)
	}
}

// InOwnedList restricts a list_items query to items of listID, and only
// when that list belongs to userID.
func InOwnedList(userID, listID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		owned := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.TodoList{}).
			Select("id").
			Where("id = ? AND user_id = ?", listID, userID)
		return db.Where("list_items.list_id = ?", listID).Where("list_items.list_id IN (?)", owned)
	}
}
