package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ExamAttempt = satu kali pengerjaan tes lengkap milik satu user.
// Skor per skill nullable: section yang belum dinilai dianggap 0 oleh
// certificate builder, bukan memblokir seluruh record.
type ExamAttempt struct {
	ExamAttemptID     uuid.UUID `gorm:"column:exam_attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_attempt_id"`
	ExamAttemptUserID uuid.UUID `gorm:"column:exam_attempt_user_id;type:uuid;not null;index" json:"exam_attempt_user_id"`

	ExamAttemptListeningScore *float64 `gorm:"column:exam_attempt_listening_score" json:"exam_attempt_listening_score,omitempty"`
	ExamAttemptReadingScore   *float64 `gorm:"column:exam_attempt_reading_score" json:"exam_attempt_reading_score,omitempty"`
	ExamAttemptWritingScore   *float64 `gorm:"column:exam_attempt_writing_score" json:"exam_attempt_writing_score,omitempty"`
	ExamAttemptSpeakingScore  *float64 `gorm:"column:exam_attempt_speaking_score" json:"exam_attempt_speaking_score,omitempty"`

	// Section yang sudah dinilai, mis. {listening,reading}
	ExamAttemptGradedSections pq.StringArray `gorm:"column:exam_attempt_graded_sections;type:text[]" json:"exam_attempt_graded_sections,omitempty"`

	ExamAttemptTakenAt time.Time `gorm:"column:exam_attempt_taken_at;not null" json:"exam_attempt_taken_at"`

	// Audit: pembayaran reattempt yang dikonsumsi saat attempt ini dimulai (nil = attempt gratis pertama)
	ExamAttemptPaymentTransactionID *uuid.UUID `gorm:"column:exam_attempt_payment_transaction_id;type:uuid" json:"exam_attempt_payment_transaction_id,omitempty"`

	CreatedAt time.Time `gorm:"column:exam_attempt_created_at;autoCreateTime" json:"exam_attempt_created_at"`
	UpdatedAt time.Time `gorm:"column:exam_attempt_updated_at;autoUpdateTime" json:"exam_attempt_updated_at"`
}

func (ExamAttempt) TableName() string { return "exam_attempts" }
