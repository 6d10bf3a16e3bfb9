// internals/features/certificates/certificate/service/builder.go
package service

import (
	"strings"

	"inggrisku_backend/internals/features/certificates/certificate/dto"
	attemptModel "inggrisku_backend/internals/features/exams/attempts/model"
)

// Identity: sumber nama kandidat, dievaluasi berurutan. Nil ATAU string
// kosong sama-sama dianggap absen — jangan andalkan falsy coalescing.
type Identity struct {
	ProfileName *string // dari user_profiles.display_name
	AccountName *string // dari users.user_name
}

const fallbackCandidateName = "Candidate"

// ResolveCandidateName: profil → nama akun → "Candidate".
func ResolveCandidateName(id Identity) string {
	if id.ProfileName != nil && strings.TrimSpace(*id.ProfileName) != "" {
		return strings.TrimSpace(*id.ProfileName)
	}
	if id.AccountName != nil && strings.TrimSpace(*id.AccountName) != "" {
		return strings.TrimSpace(*id.AccountName)
	}
	return fallbackCandidateName
}

// FallbackCertificateNumber: nomor deterministik saat back-office belum
// menerbitkan nomor resmi: CERT- + 8 karakter pertama attempt id.
func FallbackCertificateNumber(attemptID string) string {
	if len(attemptID) > 8 {
		attemptID = attemptID[:8]
	}
	return "CERT-" + attemptID
}

const awardDateLayout = "02 Jan 2006"

// BuildCertificationRecord merakit view-model sertifikat lengkap dari satu
// attempt. Tidak pernah menghasilkan record parsial: attempt yang tidak
// ditemukan ditangani caller SEBELUM sampai ke sini.
func BuildCertificationRecord(attempt attemptModel.ExamAttempt, identity Identity, certNumber *string) dto.CertificationRecord {
	listening := RoundScore(attempt.ExamAttemptListeningScore)
	reading := RoundScore(attempt.ExamAttemptReadingScore)
	writing := RoundScore(attempt.ExamAttemptWritingScore)
	speaking := RoundScore(attempt.ExamAttemptSpeakingScore)

	overall := AggregateScore(listening, reading, writing, speaking)
	overallLevel := ClassifyLevel(overall)

	number := ""
	if certNumber != nil && strings.TrimSpace(*certNumber) != "" {
		number = strings.TrimSpace(*certNumber)
	} else {
		number = FallbackCertificateNumber(attempt.ExamAttemptID.String())
	}

	return dto.CertificationRecord{
		CandidateName:     ResolveCandidateName(identity),
		AwardDate:         attempt.ExamAttemptTakenAt.Format(awardDateLayout),
		CertificateNumber: number,

		Listening: skillResult("listening", listening),
		Reading:   skillResult("reading", reading),
		Writing:   skillResult("writing", writing),
		Speaking:  skillResult("speaking", speaking),

		OverallScore:      overall,
		OverallLevelCode:  overallLevel.Code,
		OverallLevelLabel: overallLevel.Label,
	}
}

func skillResult(skill string, score int) dto.SkillResult {
	level := ClassifyLevel(score)
	return dto.SkillResult{
		Skill:      skill,
		Score:      score,
		LevelCode:  level.Code,
		LevelLabel: level.Label,
	}
}
