package scope

import "gorm.io/gorm"

// OwnedBy returns a GORM scope that filters rows by the owning user. Every
// read, update and delete on user-owned records goes through it so one user's
// records are never visible to another's requests.
func OwnedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
