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
	"github.com/sparklean/cleaning-app/utils"
)

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// Register client baru (anonymous)
func (cc *ClientController) Register(c *gin.Context) {
	type request struct {
		FirstName string     `json:"first_name" binding:"required"`
		LastName  string     `json:"last_name" binding:"required"`
		Email     string     `json:"email" binding:"required,email"`
		Password  string     `json:"password" binding:"required,min=8"`
		Phone     string     `json:"phone"`
		BirthDate *time.Time `json:"birth_date"`
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

	client := models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	}

	if err := cc.DB.Create(&client).Error; err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	utils.InfoLogger.Printf("New client registered: %s", client.Email)

	utils.RespondJSON(c, http.StatusCreated, "Client registered", gin.H{
		"client_id": client.ID,
	})
}

// GetClient -> profil client, hanya dirinya sendiri atau admin
func (cc *ClientController) GetClient(c *gin.Context) {
	user, _ := middlewares.ActingUser(c)

	id, err := strconv.Atoi(c.Param("client_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid client id"))
		return
	}

	if !user.IsAdmin() && !(user.Role == models.RoleClient && user.ID == uint(id)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var client models.Client
	if err := cc.DB.Preload("CleaningObjects", "is_deleted = ?", false).
		Where("is_deleted = ?", false).First(&client, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("client not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client detail", client)
}

// GetAllClients -> admin only
func (cc *ClientController) GetAllClients(c *gin.Context) {
	var clients []models.Client
	if err := cc.DB.Where("is_deleted = ?", false).Find(&clients).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All clients", clients)
}

// UpdateClient -> client memperbarui profilnya sendiri
func (cc *ClientController) UpdateClient(c *gin.Context) {
	user, _ := middlewares.ActingUser(c)

	id, err := strconv.Atoi(c.Param("client_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid client id"))
		return
	}

	if !user.IsAdmin() && !(user.Role == models.RoleClient && user.ID == uint(id)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var client models.Client
	if err := cc.DB.Where("is_deleted = ?", false).First(&client, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("client not found"))
		return
	}

	type request struct {
		FirstName string     `json:"first_name" binding:"required"`
		LastName  string     `json:"last_name" binding:"required"`
		Phone     string     `json:"phone"`
		BirthDate *time.Time `json:"birth_date"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.Phone = req.Phone
	client.BirthDate = req.BirthDate

	if err := cc.DB.Save(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteClient -> soft delete
func (cc *ClientController) DeleteClient(c *gin.Context) {
	user, _ := middlewares.ActingUser(c)

	id, err := strconv.Atoi(c.Param("client_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid client id"))
		return
	}

	if !user.IsAdmin() && !(user.Role == models.RoleClient && user.ID == uint(id)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var client models.Client
	if err := cc.DB.Where("is_deleted = ?", false).First(&client, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("client not found"))
		return
	}

	client.IsDeleted = true
	if err := cc.DB.Save(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
