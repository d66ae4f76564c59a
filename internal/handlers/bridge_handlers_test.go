package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/bridge"
	"gym_club_backend/internal/handlers"
	"gym_club_backend/internal/models"
)

func newBridgeEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewBridgeHandler(bridge.NewDispatcher(bridge.Services{}))
	r := gin.New()
	r.GET("/invoke", h.Operations)
	r.POST("/invoke/:operation", h.Invoke)
	return r
}

func TestInvokeUnknownOperationIsEnvelope(t *testing.T) {
	r := newBridgeEngine()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/invoke/dropTables", strings.NewReader("{}")))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var res models.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Success || !strings.Contains(res.Error, "unknown operation") {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestInvokeRejectsOversizedBody(t *testing.T) {
	r := newBridgeEngine()
	body := `{"term":"` + strings.Repeat("x", 1<<20) + `"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/invoke/searchMembers", strings.NewReader(body)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestOperationsListsCatalog(t *testing.T) {
	r := newBridgeEngine()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoke", nil))
	var res struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Success || len(res.Data) != 28 || res.Data[0] != "addDayUseService" {
		t.Fatalf("unexpected catalog %+v", res)
	}
}
