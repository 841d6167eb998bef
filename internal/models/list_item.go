package models

import "time"

// MaxItemTextLength bounds ListItem.Text.
const MaxItemTextLength = 100

type ListItem struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ListID      uint64    `gorm:"not null;index" json:"list_id"`
	Text        string    `gorm:"type:varchar(100);not null" json:"text"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	List TodoList `gorm:"foreignKey:ListID" json:"-"`
}
