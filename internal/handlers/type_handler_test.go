package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"hearth/internal/models"
	"hearth/internal/services"
)

type mockTypeService struct {
	createTypeFn         func(name, relate string) (*models.TransactionType, error)
	getTypesByRelationFn func(relate string) ([]models.TransactionType, error)
}

var _ services.TypeServicer = (*mockTypeService)(nil)

func (m *mockTypeService) CreateType(name, relate string) (*models.TransactionType, error) {
	if m.createTypeFn != nil {
		return m.createTypeFn(name, relate)
	}
	return &models.TransactionType{Name: name, Relate: relate}, nil
}

func (m *mockTypeService) GetTypesByRelation(relate string) ([]models.TransactionType, error) {
	if m.getTypesByRelationFn != nil {
		return m.getTypesByRelationFn(relate)
	}
	return nil, nil
}

func setupTypeRouter(handler *TypeHandler) *gin.Engine {
	r := gin.New()
	r.POST("/types", handler.CreateType)
	r.GET("/types/:relate", handler.GetTypesByRelation)
	return r
}

func TestCreateTypeHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := setupTypeRouter(NewTypeHandler(&mockTypeService{}))

		rec := doRequest(r, http.MethodPost, "/types", `{"name":"Groceries","relate":"transaction"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("unknown_relation", func(t *testing.T) {
		r := setupTypeRouter(NewTypeHandler(&mockTypeService{}))

		rec := doRequest(r, http.MethodPost, "/types", `{"name":"Groceries","relate":"banana"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestGetTypesByRelationHandler(t *testing.T) {
	var gotRelate string
	mock := &mockTypeService{
		getTypesByRelationFn: func(relate string) ([]models.TransactionType, error) {
			gotRelate = relate
			return []models.TransactionType{{ID: 1, Name: "Work", Relate: relate}}, nil
		},
	}
	r := setupTypeRouter(NewTypeHandler(mock))

	rec := doRequest(r, http.MethodGet, "/types/transaction", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotRelate != "transaction" {
		t.Errorf("expected relate transaction, got %q", gotRelate)
	}

	entries := parseJSONArray(t, rec)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}
