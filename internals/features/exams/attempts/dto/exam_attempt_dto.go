package dto

// SubmitScoresRequest: skor mentah per skill dari mesin penilaian.
// Nilai di luar [0,100] di-clamp, bukan ditolak — data upstream tepercaya
// tapi bisa noisy.
type SubmitScoresRequest struct {
	ListeningScore *float64 `json:"listening_score"`
	ReadingScore   *float64 `json:"reading_score"`
	WritingScore   *float64 `json:"writing_score"`
	SpeakingScore  *float64 `json:"speaking_score"`
	GradedSections []string `json:"graded_sections" validate:"omitempty,dive,oneof=listening reading writing speaking"`
}

type StartAttemptResponse struct {
	ExamAttemptID      string  `json:"exam_attempt_id"`
	TakenAt            string  `json:"taken_at"`
	ConsumedPaymentRef *string `json:"consumed_payment_reference,omitempty"`
	FirstAttempt       bool    `json:"first_attempt"`
}
