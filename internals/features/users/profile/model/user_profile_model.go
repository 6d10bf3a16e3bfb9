package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile menyimpan data tampilan kandidat. DisplayName nullable:
// NULL artinya belum pernah diisi, string kosong tetap dianggap absen
// oleh fallback chain di certificate builder.
type UserProfile struct {
	UserProfileID          uint       `json:"user_profile_id" gorm:"column:user_profile_id;primaryKey"`
	UserProfileUserID      uuid.UUID  `json:"user_profile_user_id" gorm:"column:user_profile_user_id;type:uuid;unique;not null"`
	UserProfileDisplayName *string    `json:"user_profile_display_name,omitempty" gorm:"column:user_profile_display_name;size:100"`
	UserProfileCountry     *string    `json:"user_profile_country,omitempty" gorm:"column:user_profile_country;size:64"`
	UserProfileBirthDate   *time.Time `json:"user_profile_birth_date,omitempty" gorm:"column:user_profile_birth_date"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
