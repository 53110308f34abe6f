package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/router"
	"github.com/sparklean/cleaning-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.District{},
		&models.Client{},
		&models.Cleaner{},
		&models.CleaningObject{},
		&models.Service{},
		&models.Bundle{},
		&models.Order{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	// Seed katalog dan dua cleaner full-time
	db.Create(&models.Bundle{Name: "General cleaning", Measure: models.MeasureApartment, Duration: 6, Price: 100})
	db.Create(&models.Service{Name: "Window washing", Duration: 2, Price: 10})
	started := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	db.Create(&models.Cleaner{FirstName: "Greta", LastName: "Brooms", Email: "greta@example.com", Password: "x",
		Schedule: models.ScheduleFullTime, DateOfStartWork: started})
	db.Create(&models.Cleaner{FirstName: "Hans", LastName: "Mopp", Email: "hans@example.com", Password: "x",
		Schedule: models.ScheduleFullTime, DateOfStartWork: started})

	// Seed admin back-office
	hashed, _ := bcrypt.GenerateFromPassword([]byte("S3cretAdmin!"), bcrypt.DefaultCost)
	db.Create(&models.User{Name: "Administrator", Email: "admin@example.com", Password: string(hashed), Role: models.RoleAdmin})

	return db
}

func doJSON(r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp["data"].(map[string]interface{})
	return data
}

// TestBookingFlow menguji flow utama:
// register client -> login -> daftarkan object -> buat order -> baca order,
// lalu admin melihat daftar order
func TestBookingFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	// 1. Register client
	w := doJSON(r, "POST", "/clients", "", map[string]interface{}{
		"first_name": "Adam",
		"last_name":  "Smith",
		"email":      "adam@example.com",
		"password":   "Password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// 2. Login
	w = doJSON(r, "POST", "/login", "", map[string]interface{}{
		"email":    "adam@example.com",
		"password": "Password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	token, _ := dataOf(t, w)["token"].(string)
	assert.NotEmpty(t, token)

	// 3. Daftarkan cleaning object
	w = doJSON(r, "POST", "/cleaning-objects", token, map[string]interface{}{
		"address":             "Baker Street 221b",
		"number_of_rooms":     3,
		"number_of_bathrooms": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	objectID := dataOf(t, w)["cleaning_object_id"].(float64)

	// 4. Buat order
	w = doJSON(r, "POST", "/orders", token, map[string]interface{}{
		"cleaning_object_id": objectID,
		"start_time":         "2022-08-01T14:00:00Z",
		"end_time":           "2022-08-01T18:00:00Z",
		"cleaners_count":     2,
		"bundle_ids":         []uint{1},
		"service_ids":        []uint{1},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderData := dataOf(t, w)
	assert.Equal(t, string(models.StatusCreated), orderData["status"])
	assert.Equal(t, 110.0, orderData["price"])
	orderID := int(orderData["order_id"].(float64))

	// 5. Client membaca ordernya sendiri
	w = doJSON(r, "GET", fmt.Sprintf("/orders/%d", orderID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 6. Tanpa token -> 401
	w = doJSON(r, "GET", fmt.Sprintf("/orders/%d", orderID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 7. Admin login dan melihat seluruh order
	w = doJSON(r, "POST", "/login", "", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "S3cretAdmin!",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	adminToken, _ := dataOf(t, w)["token"].(string)

	w = doJSON(r, "GET", "/orders", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	orders, _ := listResp["data"].([]interface{})
	assert.Len(t, orders, 1)

	// 8. Client lain tidak boleh membaca order ini
	w = doJSON(r, "POST", "/clients", "", map[string]interface{}{
		"first_name": "Eve",
		"last_name":  "Lurk",
		"email":      "eve@example.com",
		"password":   "Password456",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, "POST", "/login", "", map[string]interface{}{
		"email":    "eve@example.com",
		"password": "Password456",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	eveToken, _ := dataOf(t, w)["token"].(string)

	w = doJSON(r, "GET", fmt.Sprintf("/orders/%d", orderID), eveToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
