package dto

// SkillResult: skor + level CEFR satu skill.
type SkillResult struct {
	Skill      string `json:"skill"`
	Score      int    `json:"score"`
	LevelCode  string `json:"level_code"`
	LevelLabel string `json:"level_label"`
}

// CertificationRecord adalah view-model sertifikat yang dirender client.
// Immutable: dibangun ulang dari attempt kalau skor berubah di hulu,
// tidak pernah dimutasi sebagian.
type CertificationRecord struct {
	CandidateName     string `json:"candidate_name"`
	AwardDate         string `json:"award_date"` // format: 05 Mar 2024
	CertificateNumber string `json:"certificate_number"`

	Listening SkillResult `json:"listening"`
	Reading   SkillResult `json:"reading"`
	Writing   SkillResult `json:"writing"`
	Speaking  SkillResult `json:"speaking"`

	OverallScore      int    `json:"overall_score"`
	OverallLevelCode  string `json:"overall_level_code"`
	OverallLevelLabel string `json:"overall_level_label"`
}
