package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	identityapp "github.com/storefront/backend/internal/application/identity"
	orderingapp "github.com/storefront/backend/internal/application/ordering"
	reportapp "github.com/storefront/backend/internal/application/report"
	shoppingapp "github.com/storefront/backend/internal/application/shopping"
	storageapp "github.com/storefront/backend/internal/application/storage"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/storage"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	engine *gin.Engine
	db     *gorm.DB
	tokens *auth.SessionTokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.AutoMigrate(db))

	log := zap.NewNop()
	tokens := auth.NewSessionTokenService("test-secret-key-for-handler-tests", time.Hour, "storefront-test")

	userRepo := persistence.NewGormUserRepository(db)
	addressRepo := persistence.NewGormAddressRepository(db)
	categoryRepo := persistence.NewGormCategoryRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	cartRepo := persistence.NewGormCartRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)

	authService := identityapp.NewAuthService(userRepo, tokens, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	cartService := shoppingapp.NewCartService(cartRepo, productRepo, log)
	checkoutService := orderingapp.NewCheckoutService(orderRepo, cartRepo, addressRepo, log)
	statsService := reportapp.NewStatsService(productRepo, userRepo, orderRepo)
	uploadService := storageapp.NewUploadService(storage.NewStubObjectStorage())

	cookies := config.CookieConfig{Path: "/", SameSite: "none"}

	r := router.New(router.WithAdminMiddleware(
		middleware.SessionAuth(tokens),
		middleware.RequireRole(string(identity.RoleAdmin)),
	))
	r.RegisterPublic(
		NewAuthHandler(authService, cookies, log),
		NewUploadHandler(uploadService, log),
	)
	r.RegisterAdmin(
		NewCategoryHandler(categoryService, log),
		NewProductHandler(productService, log),
		NewCartHandler(cartService, log),
		NewOrderHandler(checkoutService, log),
		NewStatsHandler(statsService, log),
	)

	return &testEnv{engine: r.Setup(), db: db, tokens: tokens}
}

// adminCookie issues a session cookie for a persisted admin account
func (e *testEnv) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()

	admin := &identity.User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        "admin-" + uuid.NewString()[:8] + "@example.com",
		PasswordHash: "not-a-real-hash",
		Name:         "Admin",
		Role:         identity.RoleAdmin,
	}
	require.NoError(t, e.db.Create(admin).Error)

	token, _, err := e.tokens.Issue(admin)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedCategory(t *testing.T, name string) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, e.db.Create(category).Error)
	return category
}

func (e *testEnv) seedProduct(t *testing.T, categoryID uuid.UUID, price string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("Smartphone", "smartphone-"+uuid.NewString()[:8],
		"Flagship phone", decimal.RequireFromString(price), 10, categoryID, nil)
	require.NoError(t, err)
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func (e *testEnv) seedUserWithAddress(t *testing.T) *identity.User {
	t.Helper()

	user := &identity.User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        "shopper-" + uuid.NewString()[:8] + "@example.com",
		PasswordHash: "not-a-real-hash",
		Name:         "Shopper",
		Role:         identity.RoleUser,
	}
	require.NoError(t, e.db.Create(user).Error)

	address := &identity.Address{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     user.ID,
		FullName:   "Shopper",
		Line1:      "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
	}
	require.NoError(t, e.db.Create(address).Error)
	return user
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
