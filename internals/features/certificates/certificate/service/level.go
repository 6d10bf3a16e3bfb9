// internals/features/certificates/certificate/service/level.go
package service

import "math"

// Level = band CEFR + label tampilan.
type Level struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var (
	LevelA0 = Level{Code: "A0", Label: "Novice"}
	LevelA1 = Level{Code: "A1", Label: "Beginner"}
	LevelA2 = Level{Code: "A2", Label: "Elementary"}
	LevelB1 = Level{Code: "B1", Label: "Intermediate"}
	LevelB2 = Level{Code: "B2", Label: "Upper Intermediate"}
	LevelC1 = Level{Code: "C1", Label: "Advanced"}
	LevelC2 = Level{Code: "C2", Label: "Proficient"}
)

// ClassifyLevel memetakan skor ke band CEFR. Total untuk semua integer:
// skor <0 jatuh ke A0, skor >100 jatuh ke C2.
func ClassifyLevel(score int) Level {
	switch {
	case score >= 86:
		return LevelC2
	case score >= 71:
		return LevelC1
	case score >= 51:
		return LevelB2
	case score >= 41:
		return LevelB1
	case score >= 21:
		return LevelA2
	case score >= 11:
		return LevelA1
	default:
		return LevelA0
	}
}

// AggregateScore = rata-rata empat skill, dibulatkan half away from zero
// (0.5 naik), konsisten dengan math.Round.
func AggregateScore(listening, reading, writing, speaking int) int {
	return int(math.Round(float64(listening+reading+writing+speaking) / 4.0))
}

// RoundScore membulatkan skor mentah (nullable) ke integer; nil = 0.
// Skor parsial lebih baik daripada memblokir seluruh record.
func RoundScore(raw *float64) int {
	if raw == nil {
		return 0
	}
	return int(math.Round(*raw))
}
