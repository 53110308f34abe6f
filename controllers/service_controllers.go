package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/utils"
)

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// GetAllServices -> katalog publik layanan ad-hoc
func (sc *ServiceController) GetAllServices(c *gin.Context) {
	var services []models.Service
	if err := sc.DB.Where("is_deleted = ?", false).Order("id asc").Find(&services).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of services", services)
}

// CreateService -> admin only
func (sc *ServiceController) CreateService(c *gin.Context) {
	type request struct {
		Name     string  `json:"name" binding:"required"`
		Duration float64 `json:"duration" binding:"required,gt=0"`
		Price    float64 `json:"price" binding:"required,gte=0"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	service := models.Service{
		Name:     req.Name,
		Duration: req.Duration,
		Price:    req.Price,
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Service created", gin.H{"service_id": service.ID})
}

// UpdateService -> admin only
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("service_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid service id"))
		return
	}

	var service models.Service
	if err := sc.DB.Where("is_deleted = ?", false).First(&service, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("service not found"))
		return
	}

	type request struct {
		Name     string  `json:"name" binding:"required"`
		Duration float64 `json:"duration" binding:"required,gt=0"`
		Price    float64 `json:"price" binding:"required,gte=0"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	service.Name = req.Name
	service.Duration = req.Duration
	service.Price = req.Price

	if err := sc.DB.Save(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteService -> soft delete, admin only
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("service_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid service id"))
		return
	}

	var service models.Service
	if err := sc.DB.Where("is_deleted = ?", false).First(&service, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("service not found"))
		return
	}

	service.IsDeleted = true
	if err := sc.DB.Save(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
