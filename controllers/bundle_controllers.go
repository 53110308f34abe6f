package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/repositories"
	"github.com/sparklean/cleaning-app/utils"
)

type BundleController struct {
	DB   *gorm.DB
	Repo *repositories.BundleRepository
}

func NewBundleController(db *gorm.DB) *BundleController {
	return &BundleController{DB: db, Repo: repositories.NewBundleRepository(db)}
}

// GetAllBundles -> katalog publik
func (bc *BundleController) GetAllBundles(c *gin.Context) {
	bundles, err := bc.Repo.GetAllBundles()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bundles", bundles)
}

// GetBundleByID -> detail 1 bundle
func (bc *BundleController) GetBundleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bundle_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid bundle id"))
		return
	}

	bundle, err := bc.Repo.GetBundle(uint(id))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Bundle detail", bundle)
}

// CreateBundle -> admin only
func (bc *BundleController) CreateBundle(c *gin.Context) {
	type request struct {
		Name       string         `json:"name" binding:"required"`
		Measure    models.Measure `json:"measure" binding:"required,oneof=apartment room square_meter window"`
		Duration   float64        `json:"duration" binding:"required,gt=0"`
		Price      float64        `json:"price" binding:"required,gte=0"`
		ServiceIDs []uint         `json:"service_ids"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	bundle := models.Bundle{
		Name:     req.Name,
		Measure:  req.Measure,
		Duration: req.Duration,
		Price:    req.Price,
	}

	for _, id := range req.ServiceIDs {
		var service models.Service
		if err := bc.DB.Where("is_deleted = ?", false).First(&service, id).Error; err != nil {
			utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("unknown service in bundle"))
			return
		}
		bundle.Services = append(bundle.Services, service)
	}

	if err := bc.DB.Create(&bundle).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Bundle created", gin.H{"bundle_id": bundle.ID})
}

// UpdateBundle -> admin only
func (bc *BundleController) UpdateBundle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bundle_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid bundle id"))
		return
	}

	bundle, err := bc.Repo.GetBundle(uint(id))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	type request struct {
		Name     string         `json:"name" binding:"required"`
		Measure  models.Measure `json:"measure" binding:"required,oneof=apartment room square_meter window"`
		Duration float64        `json:"duration" binding:"required,gt=0"`
		Price    float64        `json:"price" binding:"required,gte=0"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	bundle.Name = req.Name
	bundle.Measure = req.Measure
	bundle.Duration = req.Duration
	bundle.Price = req.Price

	if err := bc.DB.Save(bundle).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBundle -> soft delete, admin only
func (bc *BundleController) DeleteBundle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bundle_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid bundle id"))
		return
	}

	bundle, err := bc.Repo.GetBundle(uint(id))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	bundle.IsDeleted = true
	if err := bc.DB.Save(bundle).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
