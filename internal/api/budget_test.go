package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "month", "income", "housing", "food", "transportation",
		"healthcare", "education", "savings", "other", "created_at",
	})
}

func TestCreateBudgetHandler(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `budgets`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/api/budget", CreateBudgetHandler(db))

	body := `{"month":"2025-06","income":3200,"housing":1100,"food":450}`
	req := httptest.NewRequest("POST", "/api/budget", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Budget created successfully", resp["message"])
	assert.Equal(t, float64(7), resp["id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBudgetHandler_ZeroIncomeAllowed(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `budgets`").
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/api/budget", CreateBudgetHandler(db))

	body := `{"month":"2025-06","income":0}`
	req := httptest.NewRequest("POST", "/api/budget", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBudgetHandler_MissingIncome(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/api/budget", CreateBudgetHandler(db))

	body := `{"month":"2025-06"}`
	req := httptest.NewRequest("POST", "/api/budget", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestListBudgetsHandler(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(uint(1)).
		WillReturnRows(budgetRows().
			AddRow(2, 1, "2025-06", 3200, 1100, 450, 0, 0, 0, 200, 0, time.Now()).
			AddRow(1, 1, "2025-05", 3100, 1100, 420, 0, 0, 0, 150, 0, time.Now()))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/budget", ListBudgetsHandler(db))

	req := httptest.NewRequest("GET", "/budget", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Budgets []map[string]interface{} `json:"budgets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Budgets, 2)
	assert.Equal(t, "2025-06", resp.Budgets[0]["month"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBudgetHandler(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(5, 1).
		WillReturnRows(budgetRows().
			AddRow(5, 1, "2025-06", 3200, 0, 0, 0, 0, 0, 0, 0, time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `budgets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/api/budget/:id", DeleteBudgetHandler(db))

	req := httptest.NewRequest("DELETE", "/api/budget/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Budget deleted successfully", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBudgetHandler_NotOwner(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	// Budget belongs to user 1; caller is user 2. No DELETE may be issued.
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(5, 1).
		WillReturnRows(budgetRows().
			AddRow(5, 1, "2025-06", 3200, 0, 0, 0, 0, 0, 0, 0, time.Now()))

	router := gin.New()
	router.Use(setUserIDMiddleware(2))
	router.DELETE("/api/budget/:id", DeleteBudgetHandler(db))

	req := httptest.NewRequest("DELETE", "/api/budget/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 403, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Unauthorized", resp["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBudgetHandler_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(99, 1).
		WillReturnRows(budgetRows())

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/api/budget/:id", DeleteBudgetHandler(db))

	req := httptest.NewRequest("DELETE", "/api/budget/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
