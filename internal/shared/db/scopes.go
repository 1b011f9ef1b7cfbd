package db

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows of one tenant. Every user-facing query
// goes through it.
func OwnedBy(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
