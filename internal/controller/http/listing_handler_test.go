package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"motorhub/internal/apperr"
	"motorhub/internal/entity"
	"motorhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockListingUseCase struct {
	mock.Mock
}

func (m *MockListingUseCase) Create(ownerID, title string, price float64) (*entity.Listing, error) {
	args := m.Called(ownerID, title, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *MockListingUseCase) ListMine(ownerID string) ([]*entity.Listing, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Listing), args.Error(1)
}

var _ usecase.ListingUseCase = (*MockListingUseCase)(nil)

func TestCreateListing_Created(t *testing.T) {
	mockUseCase := new(MockListingUseCase)
	handler := NewListingHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/listings", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Create(c)
	})

	listing := &entity.Listing{
		ID:        "listing-1",
		AccountID: "account-123",
		Title:     "2019 Volkswagen Golf",
		Price:     9500,
		Status:    entity.ListingStatusActive,
	}
	mockUseCase.On("Create", "user-123", "2019 Volkswagen Golf", 9500.0).Return(listing, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"title": "2019 Volkswagen Golf",
		"price": 9500,
	})
	req, _ := http.NewRequest("POST", "/listings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "2019 Volkswagen Golf", response["title"])
	assert.Equal(t, "active", response["status"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateListing_QuotaDenied(t *testing.T) {
	mockUseCase := new(MockListingUseCase)
	handler := NewListingHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/listings", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Create(c)
	})

	mockUseCase.On("Create", "user-123", "2019 Volkswagen Golf", 9500.0).
		Return(nil, apperr.New(apperr.KindQuotaExceeded, "Maximum listings limit (10) reached for current subscription tier"))

	body, _ := json.Marshal(map[string]interface{}{
		"title": "2019 Volkswagen Golf",
		"price": 9500,
	})
	req, _ := http.NewRequest("POST", "/listings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "QUOTA_EXCEEDED", response["code"])
	assert.Contains(t, response["error"], "Maximum listings limit (10) reached")
}

func TestCreateListing_TitleTooShort(t *testing.T) {
	mockUseCase := new(MockListingUseCase)
	handler := NewListingHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/listings", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Create(c)
	})

	body, _ := json.Marshal(map[string]interface{}{
		"title": "ab",
		"price": 100,
	})
	req, _ := http.NewRequest("POST", "/listings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateListing_NoAccount(t *testing.T) {
	mockUseCase := new(MockListingUseCase)
	handler := NewListingHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/listings", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Create(c)
	})

	mockUseCase.On("Create", "user-123", "2019 Volkswagen Golf", 9500.0).
		Return(nil, apperr.New(apperr.KindNotFound, "user has no privileged account"))

	body, _ := json.Marshal(map[string]interface{}{
		"title": "2019 Volkswagen Golf",
		"price": 9500,
	})
	req, _ := http.NewRequest("POST", "/listings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMyListings(t *testing.T) {
	mockUseCase := new(MockListingUseCase)
	handler := NewListingHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/listings", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ListMine(c)
	})

	listings := []*entity.Listing{
		{ID: "listing-1", AccountID: "account-123", Title: "2019 Volkswagen Golf"},
		{ID: "listing-2", AccountID: "account-123", Title: "2016 Skoda Octavia"},
	}
	mockUseCase.On("ListMine", "user-123").Return(listings, nil)

	req, _ := http.NewRequest("GET", "/listings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["count"])

	mockUseCase.AssertExpectations(t)
}
