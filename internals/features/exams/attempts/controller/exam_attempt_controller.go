// 📁 controller/exam_attempt_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"inggrisku_backend/internals/features/exams/attempts/dto"
	"inggrisku_backend/internals/features/exams/attempts/model"
	paymentService "inggrisku_backend/internals/features/payments/transactions/service"
	helper "inggrisku_backend/internals/helpers"
)

var validate = validator.New()

type ExamAttemptController struct {
	DB *gorm.DB
}

func NewExamAttemptController(db *gorm.DB) *ExamAttemptController {
	return &ExamAttemptController{DB: db}
}

// 🟢 START ATTEMPT: attempt pertama gratis; selanjutnya wajib mengonsumsi
// satu pembayaran reattempt verified — dicek & ditandai DI SERVER secara
// atomik, bukan dari flag client.
func (ctrl *ExamAttemptController) StartAttempt(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	var prior int64
	if err := ctrl.DB.Model(&model.ExamAttempt{}).
		Where("exam_attempt_user_id = ?", userID).
		Count(&prior).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	attempt := model.ExamAttempt{
		ExamAttemptUserID:  userID,
		ExamAttemptTakenAt: time.Now().UTC(),
	}

	var consumedRef *string
	if prior > 0 {
		tx, err := paymentService.ConsumeVerifiedReattempt(ctrl.DB, userID)
		if err != nil {
			if errors.Is(err, paymentService.ErrNoVerifiedReattempt) {
				return helper.JsonError(c, fiber.StatusPaymentRequired, "Tes ulang butuh pembayaran terverifikasi")
			}
			log.Println("[ERROR] consume reattempt:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek pembayaran")
		}
		attempt.ExamAttemptPaymentTransactionID = &tx.PaymentTransactionID
		consumedRef = &tx.PaymentTransactionReference
	}

	if err := ctrl.DB.Create(&attempt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat attempt")
	}

	return helper.JsonCreated(c, "Attempt dimulai", dto.StartAttemptResponse{
		ExamAttemptID:      attempt.ExamAttemptID.String(),
		TakenAt:            attempt.ExamAttemptTakenAt.Format(time.RFC3339),
		ConsumedPaymentRef: consumedRef,
		FirstAttempt:       prior == 0,
	})
}

// 🟢 SUBMIT SCORES: simpan skor per skill (di-clamp ke [0,100])
func (ctrl *ExamAttemptController) SubmitScores(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	attemptID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attempt id tidak valid")
	}

	var body dto.SubmitScoresRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "graded_sections tidak valid")
	}

	var attempt model.ExamAttempt
	if err := ctrl.DB.
		Where("exam_attempt_id = ? AND exam_attempt_user_id = ?", attemptID, userID).
		First(&attempt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attempt tidak ditemukan")
	}

	updates := map[string]interface{}{}
	if body.ListeningScore != nil {
		updates["exam_attempt_listening_score"] = clampScore(*body.ListeningScore)
	}
	if body.ReadingScore != nil {
		updates["exam_attempt_reading_score"] = clampScore(*body.ReadingScore)
	}
	if body.WritingScore != nil {
		updates["exam_attempt_writing_score"] = clampScore(*body.WritingScore)
	}
	if body.SpeakingScore != nil {
		updates["exam_attempt_speaking_score"] = clampScore(*body.SpeakingScore)
	}
	if len(body.GradedSections) > 0 {
		updates["exam_attempt_graded_sections"] = pq.StringArray(body.GradedSections)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada skor yang dikirim")
	}

	if err := ctrl.DB.Model(&attempt).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan skor")
	}

	// baca ulang hasil akhir
	if err := ctrl.DB.First(&attempt, "exam_attempt_id = ?", attemptID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonUpdated(c, "Skor tersimpan", attempt)
}

// 🟢 GET: satu attempt milik pemanggil
func (ctrl *ExamAttemptController) GetAttempt(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	attemptID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attempt id tidak valid")
	}

	var attempt model.ExamAttempt
	if err := ctrl.DB.
		Where("exam_attempt_id = ? AND exam_attempt_user_id = ?", attemptID, userID).
		First(&attempt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attempt tidak ditemukan")
	}
	return helper.JsonOK(c, "", attempt)
}

// 🟢 LIST: attempt milik pemanggil (paginated, terbaru dulu)
func (ctrl *ExamAttemptController) ListMyAttempts(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctrl.DB.Model(&model.ExamAttempt{}).
		Where("exam_attempt_user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data attempt")
	}

	var attempts []model.ExamAttempt
	if err := base.
		Order("exam_attempt_taken_at desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data attempt")
	}

	return helper.JsonList(c, "", attempts, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// clamp ke [0,100]; upstream tepercaya tapi bisa noisy
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
