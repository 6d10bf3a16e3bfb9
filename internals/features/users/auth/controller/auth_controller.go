// 📁 controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"inggrisku_backend/internals/features/users/auth/dto"
	"inggrisku_backend/internals/features/users/auth/model"
	authService "inggrisku_backend/internals/features/users/auth/service"
	profileModel "inggrisku_backend/internals/features/users/profile/model"
	helper "inggrisku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 REGISTER: buat akun baru + baris profil kosong
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, formatValidationErrors(err))
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	// Email harus unik
	var existing model.UserModel
	if err := ctrl.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := model.UserModel{
		UserName: strings.TrimSpace(body.UserName),
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}

	// user + profil dalam satu transaksi
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&profileModel.UserProfile{
			UserProfileUserID: user.ID,
		}).Error
	}); err != nil {
		log.Println("[ERROR] register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Akun berhasil dibuat", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

// 🟢 LOGIN: verifikasi password & terbitkan access token
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, formatValidationErrors(err))
	}

	var user model.UserModel
	err := ctrl.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error
	if err != nil {
		// respon sama untuk email tidak ada vs password salah
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, expiresIn, err := authService.IssueAccessToken(user)
	if err != nil {
		log.Println("[ERROR] issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}

// 🟢 ME: data akun + profil milik pemanggil
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var profile profileModel.UserProfile
	_ = ctrl.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error

	return helper.JsonOK(c, "", fiber.Map{
		"user":    user,
		"profile": profile,
	})
}

func formatValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				out[field] = append(out[field], field+" wajib diisi.")
			case "email":
				out[field] = append(out[field], "Format email tidak valid.")
			case "min":
				out[field] = append(out[field], field+" minimal "+fe.Param()+" karakter.")
			case "max":
				out[field] = append(out[field], field+" maksimal "+fe.Param()+" karakter.")
			case "oneof":
				out[field] = append(out[field], field+" harus salah satu dari: "+fe.Param())
			case "gt":
				out[field] = append(out[field], field+" harus lebih dari "+fe.Param())
			default:
				out[field] = append(out[field], field+" tidak valid.")
			}
		}
		return out
	}
	out["_"] = []string{err.Error()}
	return out
}
