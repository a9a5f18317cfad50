package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"grabngo/internal/handlers"
	"grabngo/internal/middleware"
	"grabngo/internal/models"
	"grabngo/internal/repositories"
	"grabngo/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds a Fiber app on a per-test in-memory SQLite database with
// all handlers and services wired, plus seeded canteens, menu, and accounts.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Canteen{},
		&models.Student{},
		&models.StaffAdmin{},
		&models.MenuItem{},
		&models.Payment{},
		&models.Order{},
		&models.OrderLineItem{},
	)
	require.NoError(t, err)

	// Initialize Repositories
	canteenRepo := repositories.NewGORMCanteenRepository(db)
	menuRepo := repositories.NewGORMMenuRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	studentRepo := repositories.NewGORMStudentRepository(db)
	staffRepo := repositories.NewGORMStaffRepository(db)

	// Initialize Services (nil event publisher: no broker in tests)
	menuService := services.NewMenuService(menuRepo, canteenRepo)
	orderService := services.NewOrderService(orderRepo, studentRepo, nil)
	reportService := services.NewReportService(orderRepo)
	authService := services.NewAuthService(studentRepo, staffRepo, canteenRepo, "test_jwt_secret")

	// Initialize Handlers
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reportHandler := handlers.NewReportHandler(reportService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	api := app.Group("/api")

	authHandler.RegisterRoutes(api)
	menuHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)

	admin := api.Group("", middleware.AdminRequired(authService))
	menuHandler.RegisterAdminRoutes(admin)

	seedForTest(t, db)
	return app, db
}

// seedForTest inserts one canteen with two menu items, one student
// (ID 501, password "secret123"), and one staff admin (ID 11, password
// "adminpass") assigned to the canteen.
func seedForTest(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&models.Canteen{CanteenID: 1, Name: "Main Block Canteen", Description: "Near the library"}).Error)
	require.NoError(t, db.Create(&models.MenuItem{MenuItemID: 1, CanteenID: 1, Name: "Masala Dosa", Price: 40, Stock: 5}).Error)
	require.NoError(t, db.Create(&models.MenuItem{MenuItemID: 2, CanteenID: 1, Name: "Filter Coffee", Price: 25, Stock: 3}).Error)

	studentHash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Student{StudentID: 501, Name: "Alice", Password: string(studentHash)}).Error)

	staffHash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.StaffAdmin{StaffID: 11, Name: "Chef", CanteenID: 1, Password: string(staffHash)}).Error)
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1) // -1 for no timeout
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	resp.Body.Close()
	return resp, decoded
}

func loginStudent(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/login/student",
		map[string]interface{}{"student_id": 501, "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/login/admin",
		map[string]interface{}{"adminId": 11, "canteenName": "Main Block Canteen", "password": "adminpass"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestPlaceOrderEndToEnd(t *testing.T) {
	app, db := setupApp(t)

	orderReq := map[string]interface{}{
		"studentId": 501,
		"cartItems": []map[string]interface{}{
			{"menu_item_id": 1, "quantity": 2},
			{"menu_item_id": 2, "quantity": 1},
		},
		"totalAmount": 105.0,
	}
	resp, body := doJSON(t, app, http.MethodPost, "/api/orders", orderReq, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Order placed successfully!", body["message"])
	assert.NotNil(t, body["orderId"])

	// Live stock reflects the decrement.
	resp, body = doJSON(t, app, http.MethodGet, "/api/menu/1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	menu := body["menu"].([]interface{})
	require.Len(t, menu, 2)
	first := menu[0].(map[string]interface{})
	second := menu[1].(map[string]interface{})
	assert.EqualValues(t, 3, first["stock"])
	assert.EqualValues(t, 2, second["stock"])

	// The order shows up in the student's history.
	resp, body = doJSON(t, app, http.MethodGet, "/api/orders/student/501", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	orders := body["orders"].([]interface{})
	require.Len(t, orders, 1)
	order := orders[0].(map[string]interface{})
	assert.EqualValues(t, 105, order["total_amount"])
	assert.Equal(t, models.OrderStatusPlaced, order["status"])
	assert.Len(t, order["items"].([]interface{}), 2)

	// Exactly one payment row, consistent with the order.
	var payments []models.Payment
	require.NoError(t, db.Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.InDelta(t, 105.0, payments[0].Amount, 0.001)
}

func TestPlaceOrder_ServerRecomputesTotal(t *testing.T) {
	app, db := setupApp(t)

	// A tampered client total must not be persisted.
	orderReq := map[string]interface{}{
		"studentId":   501,
		"cartItems":   []map[string]interface{}{{"menu_item_id": 1, "quantity": 1}},
		"totalAmount": 0.01,
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/api/orders", orderReq, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.InDelta(t, 40.0, order.TotalAmount, 0.001)
}

func TestPlaceOrder_Failures(t *testing.T) {
	app, _ := setupApp(t)

	// Insufficient stock is a distinct rejection and changes nothing.
	resp, body := doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"studentId":   501,
		"cartItems":   []map[string]interface{}{{"menu_item_id": 2, "quantity": 99}},
		"totalAmount": 2475.0,
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	// Unknown menu item.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"studentId":   501,
		"cartItems":   []map[string]interface{}{{"menu_item_id": 999, "quantity": 1}},
		"totalAmount": 10.0,
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Empty cart.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"studentId":   501,
		"cartItems":   []map[string]interface{}{},
		"totalAmount": 0.0,
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown student.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"studentId":   999,
		"cartItems":   []map[string]interface{}{{"menu_item_id": 1, "quantity": 1}},
		"totalAmount": 40.0,
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Stock untouched after all the failures.
	resp, body = doJSON(t, app, http.MethodGet, "/api/menu/1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	menu := body["menu"].([]interface{})
	assert.EqualValues(t, 5, menu[0].(map[string]interface{})["stock"])
	assert.EqualValues(t, 3, menu[1].(map[string]interface{})["stock"])
}

func TestMenuReadsAreIdempotent(t *testing.T) {
	app, _ := setupApp(t)

	_, first := doJSON(t, app, http.MethodGet, "/api/menu/1", nil, "")
	_, second := doJSON(t, app, http.MethodGet, "/api/menu/1", nil, "")
	assert.Equal(t, first, second)

	// Unknown canteen yields an empty menu, not a 404.
	resp, body := doJSON(t, app, http.MethodGet, "/api/menu/404", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["menu"])
}

func TestCanteenListing(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/canteens", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	canteens := body["canteens"].([]interface{})
	require.Len(t, canteens, 1)
	assert.Equal(t, "Main Block Canteen", canteens[0].(map[string]interface{})["name"])
}

func TestStudentRegistrationAndLogin(t *testing.T) {
	app, _ := setupApp(t)

	registerReq := map[string]interface{}{
		"student_id": 502,
		"name":       "Bob",
		"department": "CSE",
		"password":   "hunter2secret",
	}
	resp, body := doJSON(t, app, http.MethodPost, "/api/register/student", registerReq, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	// Duplicate registration is a conflict.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/register/student", registerReq, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The new student can log in.
	resp, body = doJSON(t, app, http.MethodPost, "/api/login/student",
		map[string]interface{}{"student_id": 502, "password": "hunter2secret"}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	// Wrong password is unauthorized.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/login/student",
		map[string]interface{}{"student_id": 502, "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminStockManagement(t *testing.T) {
	app, _ := setupApp(t)

	stockReq := map[string]interface{}{"stock": 50}

	// No token.
	resp, _ := doJSON(t, app, http.MethodPut, "/api/menu-item/1/stock", stockReq, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// A student token is not enough.
	studentToken := loginStudent(t, app)
	resp, _ = doJSON(t, app, http.MethodPut, "/api/menu-item/1/stock", stockReq, studentToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin token: direct overwrite, bypassing the order transaction.
	adminToken := loginAdmin(t, app)
	resp, body := doJSON(t, app, http.MethodPut, "/api/menu-item/1/stock", stockReq, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Stock updated successfully.", body["message"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/menu/1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	menu := body["menu"].([]interface{})
	assert.EqualValues(t, 50, menu[0].(map[string]interface{})["stock"])

	// Unknown item.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/menu-item/999/stock", stockReq, adminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminMenuItemLifecycle(t *testing.T) {
	app, _ := setupApp(t)
	adminToken := loginAdmin(t, app)

	newItem := map[string]interface{}{
		"canteen_id": 1,
		"name":       "Vada Pav",
		"price":      18.0,
		"stock":      20,
	}
	resp, body := doJSON(t, app, http.MethodPost, "/api/menu-item", newItem, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := body["newItem"].(map[string]interface{})
	itemID := created["menu_item_id"]
	assert.NotNil(t, itemID)

	resp, body = doJSON(t, app, http.MethodGet, "/api/menu/1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["menu"].([]interface{}), 3)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/menu-item/%v", itemID), nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/menu/1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["menu"].([]interface{}), 2)

	// Unknown canteen on create.
	badItem := map[string]interface{}{"canteen_id": 404, "name": "Ghost Curry", "price": 10.0, "stock": 1}
	resp, _ = doJSON(t, app, http.MethodPost, "/api/menu-item", badItem, adminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSalesAndCanteenReports(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"studentId":   501,
		"cartItems":   []map[string]interface{}{{"menu_item_id": 1, "quantity": 2}},
		"totalAmount": 80.0,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	today := time.Now().Format("2006-01-02")
	resp, body := doJSON(t, app, http.MethodGet, "/api/sales/"+today, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 80, body["totalSales"])

	// A malformed date is rejected.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/sales/not-a-date", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/canteen/1/orders", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	orders := body["orders"].([]interface{})
	require.Len(t, orders, 1)
	assert.Equal(t, "Alice", orders[0].(map[string]interface{})["student_name"])
}
