package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/middlewares"
	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/repositories"
	"github.com/sparklean/cleaning-app/utils"
)

type CleanerController struct {
	DB   *gorm.DB
	Repo *repositories.CleanerRepository
}

func NewCleanerController(db *gorm.DB) *CleanerController {
	return &CleanerController{DB: db, Repo: repositories.NewCleanerRepository(db)}
}

// Register cleaner baru (anonymous)
func (cc *CleanerController) Register(c *gin.Context) {
	type request struct {
		FirstName       string          `json:"first_name" binding:"required"`
		LastName        string          `json:"last_name" binding:"required"`
		Email           string          `json:"email" binding:"required,email"`
		Password        string          `json:"password" binding:"required,min=8"`
		Phone           string          `json:"phone"`
		BirthDate       *time.Time      `json:"birth_date"`
		Schedule        models.Schedule `json:"schedule" binding:"required,oneof=full_time shift_work"`
		DateOfStartWork time.Time       `json:"date_of_start_work" binding:"required"`
		ServiceIDs      []uint          `json:"service_ids"`
		DistrictIDs     []uint          `json:"district_ids"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cleaner := models.Cleaner{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        string(hashed),
		Phone:           req.Phone,
		BirthDate:       req.BirthDate,
		Schedule:        req.Schedule,
		DateOfStartWork: req.DateOfStartWork,
	}

	for _, id := range req.ServiceIDs {
		var service models.Service
		if err := cc.DB.Where("is_deleted = ?", false).First(&service, id).Error; err != nil {
			utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("unknown service in capability set"))
			return
		}
		cleaner.Services = append(cleaner.Services, service)
	}

	for _, id := range req.DistrictIDs {
		var district models.District
		if err := cc.DB.First(&district, id).Error; err != nil {
			utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("unknown district"))
			return
		}
		cleaner.Districts = append(cleaner.Districts, district)
	}

	if err := cc.DB.Create(&cleaner).Error; err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	utils.InfoLogger.Printf("New cleaner registered: %s (schedule=%s)", cleaner.Email, cleaner.Schedule)

	utils.RespondJSON(c, http.StatusCreated, "Cleaner registered", gin.H{
		"cleaner_id": cleaner.ID,
	})
}

// GetCleaner -> profil cleaner, dirinya sendiri atau admin
func (cc *CleanerController) GetCleaner(c *gin.Context) {
	user, _ := middlewares.ActingUser(c)

	id, err := strconv.Atoi(c.Param("cleaner_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid cleaner id"))
		return
	}

	if !user.IsAdmin() && !(user.Role == models.RoleCleaner && user.ID == uint(id)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	cleaner, err := cc.Repo.GetCleaner(uint(id))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cleaner detail", cleaner)
}

// GetAllCleaners -> admin only
func (cc *CleanerController) GetAllCleaners(c *gin.Context) {
	cleaners, err := cc.Repo.GetAllCleaners()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All cleaners", cleaners)
}

// DeleteCleaner -> soft delete
func (cc *CleanerController) DeleteCleaner(c *gin.Context) {
	user, _ := middlewares.ActingUser(c)

	id, err := strconv.Atoi(c.Param("cleaner_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid cleaner id"))
		return
	}

	if !user.IsAdmin() && !(user.Role == models.RoleCleaner && user.ID == uint(id)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var cleaner models.Cleaner
	if err := cc.DB.Where("is_deleted = ?", false).First(&cleaner, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("cleaner not found"))
		return
	}

	cleaner.IsDeleted = true
	if err := cc.DB.Save(&cleaner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
