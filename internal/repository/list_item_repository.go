package repository

import (
	"github.com/yukikurage/todo-list/internal/database"
	"github.com/yukikurage/todo-list/internal/models"
	"gorm.io/gorm"
)

// GormListItemRepository is a GORM implementation of ListItemRepository
type GormListItemRepository struct {
	db *gorm.DB
}

// NewListItemRepository creates a new ListItemRepository
func NewListItemRepository(db *gorm.DB) ListItemRepository {
	return &GormListItemRepository{db: db}
}

// CreateInOwnedList resolves the owned list and creates the item in the
// same transaction.
func (r *GormListItemRepository) CreateInOwnedList(userID, listID uint64, item *models.ListItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		list, err := findOwnedList(tx, userID, listID)
		if err != nil {
			return err
		}

		item.ListID = list.ID
		return tx.Create(item).Error
	})
}

// FindInOwnedList finds an item of a list owned by userID
func (r *GormListItemRepository) FindInOwnedList(userID, listID, itemID uint64) (*models.ListItem, error) {
	return findItemInOwnedList(r.db, userID, listID, itemID)
}

// ListByOwnedList lists the items of a list owned by userID, oldest first
func (r *GormListItemRepository) ListByOwnedList(userID, listID uint64) ([]models.ListItem, error) {
	items := []models.ListItem{}
	err := r.db.Scopes(database.InOwnedList(userID, listID)).
		Order("list_items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ToggleInOwnedList flips the completion flag with a single conditional
// update and returns the updated item.
func (r *GormListItemRepository) ToggleInOwnedList(userID, listID, itemID uint64) (*models.ListItem, error) {
	var item *models.ListItem

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findOwnedList(tx, userID, listID); err != nil {
			return err
		}

		result := tx.Model(&models.ListItem{}).
			Scopes(database.InOwnedList(userID, listID)).
			Where("list_items.id = ?", itemID).
			Update("is_completed", gorm.Expr("NOT is_completed"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		found, err := findItemInOwnedList(tx, userID, listID, itemID)
		if err != nil {
			return err
		}
		item = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteInOwnedList deletes an item of a list owned by userID
func (r *GormListItemRepository) DeleteInOwnedList(userID, listID, itemID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findOwnedList(tx, userID, listID); err != nil {
			return err
		}

		result := tx.Scopes(database.InOwnedList(userID, listID)).
			Where("list_items.id = ?", itemID).
			Delete(&models.ListItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func findItemInOwnedList(db *gorm.DB, userID, listID, itemID uint64) (*models.ListItem, error) {
	var item models.ListItem
	err := db.Scopes(database.InOwnedList(userID, listID)).
		Where("list_items.id = ?", itemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
