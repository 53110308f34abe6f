package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/middlewares"
	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/ops"
	"github.com/sparklean/cleaning-app/services"
	"github.com/sparklean/cleaning-app/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB, service *services.OrderService) *OrderController {
	return &OrderController{DB: db, Service: service}
}

// CreateOrder -> buat order (status created atau moderation)
func (oc *OrderController) CreateOrder(c *gin.Context) {
	user, ok := middlewares.ActingUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("missing acting user"))
		return
	}

	type ReqBody struct {
		ClientID         uint      `json:"client_id"`
		CleaningObjectID uint      `json:"cleaning_object_id" binding:"required"`
		StartTime        time.Time `json:"start_time" binding:"required"`
		EndTime          time.Time `json:"end_time" binding:"required"`
		CleanersCount    int       `json:"cleaners_count" binding:"required,min=1"`
		BundleIDs        []uint    `json:"bundle_ids" binding:"required"`
		ServiceIDs       []uint    `json:"service_ids"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if !body.EndTime.After(body.StartTime) {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("end_time must be after start_time"))
		return
	}

	// Client books for itself, admin may book on behalf of any client
	clientID := user.ID
	if user.IsAdmin() && body.ClientID != 0 {
		clientID = body.ClientID
	}

	var object models.CleaningObject
	if err := oc.DB.Where("is_deleted = ?", false).First(&object, body.CleaningObjectID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("cleaning object not found"))
		return
	}
	if object.ClientID != clientID {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	order := models.Order{
		ClientID:         clientID,
		CleaningObjectID: object.ID,
		StartTime:        body.StartTime,
		EndTime:          body.EndTime,
		CleanersCount:    body.CleanersCount,
	}

	for _, id := range body.BundleIDs {
		order.Bundles = append(order.Bundles, models.Bundle{ID: id})
	}

	for _, id := range body.ServiceIDs {
		var service models.Service
		if err := oc.DB.Where("is_deleted = ?", false).First(&service, id).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("service %d not found", id))
			return
		}
		order.Services = append(order.Services, service)
	}

	orderID, err := oc.Service.AddOrder(&order)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	if order.Status == models.StatusModeration {
		ops.BroadcastModerationNeeded(order)
		ops.BroadcastOperatorNotification(fmt.Sprintf("Order #%d needs manual cleaner assignment", orderID))
	} else {
		ops.BroadcastOrderCreated(order)
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{
		"order_id":  orderID,
		"reference": order.Reference,
		"status":    order.Status,
		"price":     order.Price,
	})
}

// GetOrderByID -> detail 1 order, hanya pemilik atau admin
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	user, ok := middlewares.ActingUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("missing acting user"))
		return
	}

	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.Service.GetOrder(uint(id), user)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetAllOrders -> list semua order aktif (admin/operator)
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Service.GetAllOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrder -> full replace atas field yang mutable
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	user, ok := middlewares.ActingUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("missing acting user"))
		return
	}

	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	type ReqBody struct {
		Status     models.Status `json:"status" binding:"required"`
		StartTime  time.Time     `json:"start_time" binding:"required"`
		EndTime    time.Time     `json:"end_time" binding:"required"`
		BundleIDs  []uint        `json:"bundle_ids"`
		ServiceIDs []uint        `json:"service_ids"`
		CleanerIDs []uint        `json:"cleaner_ids"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if !body.EndTime.After(body.StartTime) {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("end_time must be after start_time"))
		return
	}

	now := time.Now()
	patch := models.Order{
		Status:     body.Status,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		UpdateTime: &now,
	}

	for _, bundleID := range body.BundleIDs {
		var bundle models.Bundle
		if err := oc.DB.Where("is_deleted = ?", false).First(&bundle, bundleID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("bundle %d not found", bundleID))
			return
		}
		patch.Bundles = append(patch.Bundles, bundle)
	}

	for _, serviceID := range body.ServiceIDs {
		var service models.Service
		if err := oc.DB.Where("is_deleted = ?", false).First(&service, serviceID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("service %d not found", serviceID))
			return
		}
		patch.Services = append(patch.Services, service)
	}

	for _, cleanerID := range body.CleanerIDs {
		var cleaner models.Cleaner
		if err := oc.DB.Where("is_deleted = ?", false).First(&cleaner, cleanerID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("cleaner %d not found", cleanerID))
			return
		}
		patch.CleanersBand = append(patch.CleanersBand, cleaner)
	}

	if err := oc.Service.UpdateOrder(&patch, uint(id)); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	if updated, err := oc.Service.GetOrder(uint(id), user); err == nil {
		ops.BroadcastOrderUpdate(*updated)
	}

	c.Status(http.StatusNoContent)
}

// DeleteOrder -> soft delete, hanya pemilik atau admin
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	user, ok := middlewares.ActingUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("missing acting user"))
		return
	}

	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	if err := oc.Service.DeleteOrder(uint(id), user); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	ops.BroadcastOrderDeleted(uint(id))

	c.Status(http.StatusNoContent)
}
