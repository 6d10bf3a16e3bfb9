package seeds

import (
	users "inggrisku_backend/internals/seeds/users"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* User demo untuk environment development
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
