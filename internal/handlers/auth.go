package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/eventhub/internal/config"
	"github.com/example/eventhub/internal/models"
	"github.com/example/eventhub/internal/monitoring"
	"github.com/example/eventhub/internal/services"
	"github.com/example/eventhub/internal/utils"
)

// Auth actions accepted in the request body.
const (
	actionRegister             = "register"
	actionVerify               = "verify"
	actionLogin                = "login"
	actionResetPasswordRequest = "reset_password_request"
	actionResetPassword        = "reset_password"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer services.Mailer
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, mailer services.Mailer) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, mailer: mailer}
}

type authEnvelope struct {
	Action string `json:"action"`
}

// Handle dispatches the auth request to the sub-flow named by its action.
// Each action parses its own request variant so a field is only ever
// required by the action that uses it.
func (h *AuthHandler) Handle(c *fiber.Ctx) error {
	var env authEnvelope
	if err := c.BodyParser(&env); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var err error
	switch env.Action {
	case actionRegister:
		err = h.register(c)
	case actionVerify:
		err = h.verify(c)
	case actionLogin:
		err = h.login(c)
	case actionResetPasswordRequest:
		err = h.resetPasswordRequest(c)
	case actionResetPassword:
		err = h.resetPassword(c)
	default:
		err = fiber.NewError(fiber.StatusBadRequest, "unknown action")
	}

	monitoring.RecordAuthRequest(env.Action, err == nil)
	return err
}

type registerRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Phone == "" || req.FullName == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	code, err := utils.GenerateCode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate verification code")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:        req.Email,
			Phone:        req.Phone,
			FullName:     req.FullName,
			PasswordHash: passwordHash,
			IsVerified:   false,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		verification := models.VerificationCode{
			Email:     req.Email,
			Code:      code,
			CodeType:  models.CodeTypeRegistration,
			ExpiresAt: time.Now().Add(h.cfg.CodeTTL),
		}
		return tx.Create(&verification).Error
	})
	if err != nil {
		return err
	}

	subject, body := services.RegistrationEmail(code)
	emailSent := h.sendEmail("verification", req.Email, subject, body)

	message := "verification code sent to email"
	if !emailSent {
		message = "registration created, but email not sent"
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    message,
		"email_sent": emailSent,
	})
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (h *AuthHandler) verify(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	verification, err := h.findCode(req.Email, req.Code, models.CodeTypeRegistration)
	if err != nil {
		return err
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := consumeCode(tx, verification); err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("email = ?", req.Email).
			Update("is_verified", true).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "email verified",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	}

	if !user.IsVerified {
		return fiber.NewError(fiber.StatusForbidden, "email not verified")
	}

	// Stateless contract: the profile is returned as-is, no session token.
	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":          user.ID,
			"email":       user.Email,
			"phone":       user.Phone,
			"full_name":   user.FullName,
			"is_verified": user.IsVerified,
			"role":        user.Role,
		},
	})
}

type resetPasswordRequestRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) resetPasswordRequest(c *fiber.Ctx) error {
	var req resetPasswordRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "email not found")
		}
		return err
	}

	code, err := utils.GenerateCode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate verification code")
	}

	verification := models.VerificationCode{
		Email:     req.Email,
		Code:      code,
		CodeType:  models.CodeTypePasswordReset,
		ExpiresAt: time.Now().Add(h.cfg.CodeTTL),
	}
	if err := h.db.Create(&verification).Error; err != nil {
		return err
	}

	subject, body := services.PasswordResetEmail(code)
	emailSent := h.sendEmail("password_reset", req.Email, subject, body)

	message := "reset code sent to email"
	if !emailSent {
		message = "reset requested, but email not sent"
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    message,
		"email_sent": emailSent,
	})
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) resetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	verification, err := h.findCode(req.Email, req.Code, models.CodeTypePasswordReset)
	if err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := consumeCode(tx, verification); err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("email = ?", req.Email).
			Update("password_hash", passwordHash).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "password updated",
	})
}

// findCode returns the newest unused code matching email, code and type.
// A missing row maps to "invalid code", a stale one to "code expired".
func (h *AuthHandler) findCode(email, code, codeType string) (*models.VerificationCode, error) {
	var verification models.VerificationCode
	err := h.db.Where("email = ? AND code = ? AND code_type = ? AND used = ?",
		email, code, codeType, false).
		Order("created_at desc").
		First(&verification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid code")
		}
		return nil, err
	}

	if verification.ExpiresAt.Before(time.Now()) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "code expired")
	}

	return &verification, nil
}

func consumeCode(tx *gorm.DB, verification *models.VerificationCode) error {
	now := time.Now()
	return tx.Model(verification).Updates(map[string]interface{}{
		"used":    true,
		"used_at": &now,
	}).Error
}
