package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login resolves the account by email across back-office users, clients and
// cleaners, and returns a JWT carrying the resolved role.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, hash, role, err := ac.lookupAccount(input.Email)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(id, input.Email, string(role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for %s (role=%s)", input.Email, role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_role": strings.ToLower(string(role)),
	})
}

func (ac *AuthController) lookupAccount(email string) (uint, string, models.Role, error) {
	var user models.User
	if err := ac.DB.Where("email = ?", email).First(&user).Error; err == nil {
		return user.ID, user.Password, user.Role, nil
	}

	var client models.Client
	if err := ac.DB.Where("email = ? AND is_deleted = ?", email, false).First(&client).Error; err == nil {
		return client.ID, client.Password, models.RoleClient, nil
	}

	var cleaner models.Cleaner
	if err := ac.DB.Where("email = ? AND is_deleted = ?", email, false).First(&cleaner).Error; err == nil {
		return cleaner.ID, cleaner.Password, models.RoleCleaner, nil
	}

	return 0, "", "", gorm.ErrRecordNotFound
}

// ErrNoPermission is the shared permission error for controllers
var ErrNoPermission = &CustomError{"You do not have permission"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}
