package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/middlewares"
	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/utils"
)

type CleaningObjectController struct {
	DB *gorm.DB
}

func NewCleaningObjectController(db *gorm.DB) *CleaningObjectController {
	return &CleaningObjectController{DB: db}
}

// CreateCleaningObject -> client mendaftarkan properti miliknya
func (coc *CleaningObjectController) CreateCleaningObject(c *gin.Context) {
	user, _ := middlewares.ActingUser(c)

	type request struct {
		Address           string  `json:"address" binding:"required"`
		NumberOfRooms     int     `json:"number_of_rooms" binding:"required,min=1"`
		NumberOfBathrooms int     `json:"number_of_bathrooms" binding:"min=0"`
		NumberOfWindows   int     `json:"number_of_windows" binding:"min=0"`
		Square            float64 `json:"square" binding:"gte=0"`
		DistrictID        *uint   `json:"district_id"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if req.DistrictID != nil {
		var district models.District
		if err := coc.DB.First(&district, *req.DistrictID).Error; err != nil {
			utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("unknown district"))
			return
		}
	}

	object := models.CleaningObject{
		ClientID:          user.ID,
		Address:           req.Address,
		NumberOfRooms:     req.NumberOfRooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		NumberOfWindows:   req.NumberOfWindows,
		Square:            req.Square,
		DistrictID:        req.DistrictID,
	}

	if err := coc.DB.Create(&object).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Cleaning object created", gin.H{
		"cleaning_object_id": object.ID,
	})
}

// GetCleaningObjects -> daftar properti milik client yang sedang login
func (coc *CleaningObjectController) GetCleaningObjects(c *gin.Context) {
	user, _ := middlewares.ActingUser(c)

	var objects []models.CleaningObject
	query := coc.DB.Preload("District").Where("is_deleted = ?", false)
	if !user.IsAdmin() {
		query = query.Where("client_id = ?", user.ID)
	}
	if err := query.Order("id asc").Find(&objects).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of cleaning objects", objects)
}

// DeleteCleaningObject -> soft delete, pemilik atau admin
func (coc *CleaningObjectController) DeleteCleaningObject(c *gin.Context) {
	user, _ := middlewares.ActingUser(c)

	id, err := strconv.Atoi(c.Param("object_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid cleaning object id"))
		return
	}

	var object models.CleaningObject
	if err := coc.DB.Where("is_deleted = ?", false).First(&object, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("cleaning object not found"))
		return
	}

	if !user.IsAdmin() && object.ClientID != user.ID {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	object.IsDeleted = true
	if err := coc.DB.Save(&object).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
