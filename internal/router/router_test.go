// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/Neha-Singh-j/E-commerce/internal/config"
	"github.com/Neha-Singh-j/E-commerce/internal/store"
)

// StorefrontTestSuite drives the whole HTTP surface against the in-memory
// store: seller onboarding, catalog, cart, checkout, reviews, wishlist.
type StorefrontTestSuite struct {
	suite.Suite
	router *gin.Engine

	sellerToken string
	buyerToken  string
	productID   string
}

func (s *StorefrontTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "router-test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		RateLimit: config.RateLimitConfig{
			GeneralPerSecond: 1000,
			GeneralBurst:     1000,
			AuthPerMinute:    1000,
			UploadPerMinute:  1000,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}

	s.router = Initialize(store.NewMemoryStore(), cfg)

	s.sellerToken = s.register("seller_sam", "sam@example.com", "seller")
	s.buyerToken = s.register("buyer_bea", "bea@example.com", "buyer")
	s.productID = s.createProduct("ceramic mug", 10.00, 10)
}

func (s *StorefrontTestSuite) register(username, email, role string) string {
	w := s.request("POST", "/v1/auth/register", gin.H{
		"username": username,
		"email":    email,
		"password": "StrongPass1",
		"role":     role,
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Data.Token)
	return resp.Data.Token
}

func (s *StorefrontTestSuite) createProduct(name string, price float64, stock int) string {
	w := s.request("POST", "/v1/products", gin.H{
		"name":        name,
		"description": "Hand glazed, dishwasher safe ceramic mug.",
		"category":    "kitchen",
		"price":       price,
		"stock":       stock,
		"image_url":   "https://cdn.example.com/mug.png",
	}, s.sellerToken)
	s.Require().Equal(http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			Product struct {
				ID string `json:"id"`
			} `json:"product"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Product.ID
}

func (s *StorefrontTestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *StorefrontTestSuite) TestHealthCheck() {
	w := s.request("GET", "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "healthy")
}

func (s *StorefrontTestSuite) TestBrowseCatalogAnonymously() {
	w := s.request("GET", "/v1/products?search=mug", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "ceramic mug")
	s.NotEmpty(w.Header().Get("X-Total-Count"))

	w = s.request("GET", "/v1/products/"+s.productID, nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *StorefrontTestSuite) TestBuyerCannotCreateProducts() {
	w := s.request("POST", "/v1/products", gin.H{
		"name":        "contraband",
		"description": "Buyers cannot list products at all.",
		"price":       1.00,
		"image_url":   "https://cdn.example.com/x.png",
	}, s.buyerToken)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *StorefrontTestSuite) TestCartRequiresAuth() {
	w := s.request("GET", "/v1/cart", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *StorefrontTestSuite) TestCartAndCheckoutFlow() {
	w := s.request("POST", "/v1/cart/items", gin.H{
		"product_id": s.productID,
		"quantity":   2,
	}, s.buyerToken)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request("GET", "/v1/cart", nil, s.buyerToken)
	s.Require().Equal(http.StatusOK, w.Code)
	var cart struct {
		Data struct {
			TotalAmount float64 `json:"total_amount"`
			TotalItems  int     `json:"total_items"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &cart))
	s.Equal(20.00, cart.Data.TotalAmount)
	s.Equal(2, cart.Data.TotalItems)

	w = s.request("POST", "/v1/orders", nil, s.buyerToken)
	s.Require().Equal(http.StatusCreated, w.Code)

	// The cart is consumed by checkout
	w = s.request("POST", "/v1/orders", nil, s.buyerToken)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request("GET", "/v1/orders", nil, s.buyerToken)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "ceramic mug")
}

func (s *StorefrontTestSuite) TestReviewFlow() {
	path := fmt.Sprintf("/v1/products/%s/reviews", s.productID)

	w := s.request("POST", path, gin.H{
		"rating":  4,
		"comment": "Very happy with this mug overall.",
	}, s.buyerToken)
	s.Require().Equal(http.StatusCreated, w.Code)

	// Same author, same product: rejected
	w = s.request("POST", path, gin.H{
		"rating":  5,
		"comment": "Trying to review this twice now.",
	}, s.buyerToken)
	s.Equal(http.StatusConflict, w.Code)

	w = s.request("GET", path, nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Very happy")
}

func (s *StorefrontTestSuite) TestWishlistToggle() {
	path := "/v1/wishlist/" + s.productID

	w := s.request("POST", path, nil, s.buyerToken)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"in_wishlist":true`)

	w = s.request("POST", path, nil, s.buyerToken)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"in_wishlist":false`)
}

func (s *StorefrontTestSuite) TestStaticPages() {
	w := s.request("GET", "/v1/pages/about", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "About Us")

	w = s.request("GET", "/v1/pages/no-such-page", nil, "")
	s.Equal(http.StatusNotFound, w.Code)
}

func TestStorefrontSuite(t *testing.T) {
	suite.Run(t, new(StorefrontTestSuite))
}
