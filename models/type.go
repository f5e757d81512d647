package models

import "time"

// Type categorises a project (web app, library, game...).
type Type struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_types_name"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:varchar(120);not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
