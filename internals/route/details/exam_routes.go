package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "inggrisku_backend/internals/features/exams/attempts/controller"
)

func ExamUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attemptController.NewExamAttemptController(db)

	attempts := r.Group("/attempts")
	attempts.Post("/", ctrl.StartAttempt)
	attempts.Get("/", ctrl.ListMyAttempts)
	attempts.Get("/:id", ctrl.GetAttempt)
	attempts.Patch("/:id/scores", ctrl.SubmitScores)
}
