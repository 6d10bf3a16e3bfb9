package model

import (
	"time"

	"github.com/google/uuid"
)

// UserCertificate menyimpan nomor sertifikat yang diterbitkan back-office
// untuk satu attempt. Kalau baris belum ada, builder memakai nomor fallback
// deterministik — bukan error.
type UserCertificate struct {
	UserCertID        uint      `json:"user_cert_id" gorm:"column:user_cert_id;primaryKey"`
	UserCertAttemptID uuid.UUID `json:"user_cert_attempt_id" gorm:"column:user_cert_attempt_id;type:uuid;unique;not null"`
	UserCertNumber    string    `json:"user_cert_number" gorm:"column:user_cert_number;size:64;unique;not null"`
	UserCertIssuedAt  time.Time `json:"user_cert_issued_at" gorm:"column:user_cert_issued_at;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (UserCertificate) TableName() string {
	return "user_certificates"
}
