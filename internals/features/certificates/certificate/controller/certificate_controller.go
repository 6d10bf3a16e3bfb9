// 📁 controller/certificate_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certModel "inggrisku_backend/internals/features/certificates/certificate/model"
	certService "inggrisku_backend/internals/features/certificates/certificate/service"
	attemptModel "inggrisku_backend/internals/features/exams/attempts/model"
	userModel "inggrisku_backend/internals/features/users/auth/model"
	profileModel "inggrisku_backend/internals/features/users/profile/model"
	helper "inggrisku_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// 🟢 GET CERTIFICATE: bangun CertificationRecord dari satu attempt milik
// pemanggil. Attempt hilang / bukan milik caller → 404, TIDAK PERNAH
// sertifikat setengah terisi.
func (ctrl *CertificateController) GetCertificate(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	attemptID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attempt id tidak valid")
	}

	// RecordUnavailable: not found / bukan pemilik, keduanya 404
	var attempt attemptModel.ExamAttempt
	if err := ctrl.DB.
		Where("exam_attempt_id = ? AND exam_attempt_user_id = ?", attemptID, userID).
		First(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attempt tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	// Fallback chain nama: profil → nama akun → "Candidate"
	identity := certService.Identity{}
	var profile profileModel.UserProfile
	if err := ctrl.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error; err == nil {
		identity.ProfileName = profile.UserProfileDisplayName
	}
	var user userModel.UserModel
	if err := ctrl.DB.Select("user_name").First(&user, "id = ?", userID).Error; err == nil && user.UserName != "" {
		name := user.UserName
		identity.AccountName = &name
	}

	// Nomor sertifikat resmi kalau sudah diterbitkan; kalau belum, fallback
	var certNumber *string
	var cert certModel.UserCertificate
	if err := ctrl.DB.Where("user_cert_attempt_id = ?", attemptID).First(&cert).Error; err == nil {
		certNumber = &cert.UserCertNumber
	}

	record := certService.BuildCertificationRecord(attempt, identity, certNumber)
	return helper.JsonOK(c, "", record)
}
