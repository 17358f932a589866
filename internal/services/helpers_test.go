// internal/services/helpers_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Neha-Singh-j/E-commerce/internal/config"
	"github.com/Neha-Singh-j/E-commerce/internal/models"
	"github.com/Neha-Singh-j/E-commerce/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
}

func seedUser(t *testing.T, st store.Store, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Username: "user_" + uuid.NewString()[:8],
		Email:    uuid.NewString()[:8] + "@example.com",
		Role:     role,
	}
	require.NoError(t, user.SetPassword("TestPass123"))
	require.NoError(t, st.Users().Create(context.Background(), user))
	return user
}

func seedProduct(t *testing.T, st store.Store, authorID uuid.UUID, name string, price float64, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		AuthorID:    authorID,
		Name:        name,
		Description: "A sturdy, dependable test product.",
		Category:    "general",
		Price:       price,
		Stock:       stock,
		ImageURL:    "https://cdn.example.com/" + name + ".png",
	}
	require.NoError(t, st.Products().Create(context.Background(), product))
	return product
}
