package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attemptModel "inggrisku_backend/internals/features/exams/attempts/model"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func sampleAttempt() attemptModel.ExamAttempt {
	return attemptModel.ExamAttempt{
		ExamAttemptID:             uuid.New(),
		ExamAttemptUserID:         uuid.New(),
		ExamAttemptListeningScore: floatPtr(70),
		ExamAttemptReadingScore:   floatPtr(80),
		ExamAttemptWritingScore:   floatPtr(90),
		ExamAttemptSpeakingScore:  floatPtr(60),
		ExamAttemptTakenAt:        time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC),
	}
}

func TestBuildCertificationRecordComplete(t *testing.T) {
	attempt := sampleAttempt()
	number := "IGK-2024-000123"

	record := BuildCertificationRecord(attempt, Identity{ProfileName: strPtr("Budi Santoso")}, &number)

	assert.Equal(t, "Budi Santoso", record.CandidateName)
	assert.Equal(t, "05 Mar 2024", record.AwardDate)
	assert.Equal(t, "IGK-2024-000123", record.CertificateNumber)
	assert.Equal(t, 75, record.OverallScore)
	assert.Equal(t, "C1", record.OverallLevelCode)
	assert.Equal(t, "Advanced", record.OverallLevelLabel)
	assert.Equal(t, 70, record.Listening.Score)
	assert.Equal(t, "B2", record.Reading.LevelCode)
	assert.Equal(t, "C2", record.Writing.LevelCode)
	assert.Equal(t, "B2", record.Speaking.LevelCode)
}

func TestBuildCertificationRecordMissingSkillTreatedAsZero(t *testing.T) {
	attempt := sampleAttempt()
	attempt.ExamAttemptListeningScore = nil
	attempt.ExamAttemptReadingScore = floatPtr(55)
	attempt.ExamAttemptWritingScore = floatPtr(55)
	attempt.ExamAttemptSpeakingScore = floatPtr(55)

	record := BuildCertificationRecord(attempt, Identity{}, nil)

	assert.Equal(t, 0, record.Listening.Score)
	assert.Equal(t, "A0", record.Listening.LevelCode)
	// round((0+55+55+55)/4) = round(41.25) = 41 → B1
	assert.Equal(t, 41, record.OverallScore)
	assert.Equal(t, "B1", record.OverallLevelCode)
}

func TestBuildCertificationRecordCertificateNumberFallback(t *testing.T) {
	attempt := sampleAttempt()

	record := BuildCertificationRecord(attempt, Identity{}, nil)
	require.Len(t, record.CertificateNumber, len("CERT-")+8)
	assert.Equal(t, "CERT-"+attempt.ExamAttemptID.String()[:8], record.CertificateNumber)

	// nomor kosong diperlakukan sama dengan nil
	empty := "   "
	record = BuildCertificationRecord(attempt, Identity{}, &empty)
	assert.Equal(t, "CERT-"+attempt.ExamAttemptID.String()[:8], record.CertificateNumber)
}

func TestFallbackCertificateNumber(t *testing.T) {
	assert.Equal(t, "CERT-abc12345", FallbackCertificateNumber("abc12345-xyz"))
	assert.Equal(t, "CERT-short", FallbackCertificateNumber("short"))
}

func TestResolveCandidateNameFallbackChain(t *testing.T) {
	// profil menang
	name := ResolveCandidateName(Identity{ProfileName: strPtr("Siti"), AccountName: strPtr("siti88")})
	assert.Equal(t, "Siti", name)

	// profil kosong ≠ profil terisi: jatuh ke nama akun
	name = ResolveCandidateName(Identity{ProfileName: strPtr("  "), AccountName: strPtr("siti88")})
	assert.Equal(t, "siti88", name)

	// dua-duanya absen → literal "Candidate"
	name = ResolveCandidateName(Identity{})
	assert.Equal(t, "Candidate", name)
}
