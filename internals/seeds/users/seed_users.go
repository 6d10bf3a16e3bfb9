package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"inggrisku_backend/internals/features/users/auth/model"
	profileModel "inggrisku_backend/internals/features/users/profile/model"
)

type UserSeed struct {
	UserName    string  `json:"user_name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName *string `json:"display_name"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		user := model.UserModel{
			UserName: data.UserName,
			Email:    data.Email,
			Password: string(hashed),
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Gagal membuat user '%s': %v", data.Email, err)
			continue
		}
		if err := db.Create(&profileModel.UserProfile{
			UserProfileUserID:      user.ID,
			UserProfileDisplayName: data.DisplayName,
		}).Error; err != nil {
			log.Printf("❌ Gagal membuat profil '%s': %v", data.Email, err)
		}
		log.Printf("✅ User '%s' berhasil dibuat.", data.Email)
	}
}
