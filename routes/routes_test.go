package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hammer-backend/auth"
	"hammer-backend/controllers"
	"hammer-backend/models"
	"hammer-backend/services"
)

type stubIntents struct {
	lastAmount int64
}

func (s *stubIntents) CreateIntent(amountMinor int64) (string, error) {
	s.lastAmount = amountMinor
	return "cs_test_secret", nil
}

type env struct {
	router  *gin.Engine
	tokens  *auth.TokenService
	users   *services.UserService
	intents *stubIntents
	db      *gorm.DB
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.ProfileUpdate{},
	))

	tokens := auth.NewTokenService("route-secret", time.Hour)
	users := services.NewUserService(db)
	products := services.NewProductService(db)
	bookings := services.NewBookingService(db)
	reviews := services.NewReviewService(db)
	profiles := services.NewProfileService(db)
	intents := &stubIntents{}

	router := SetupRouter(
		controllers.NewUserController(users, tokens),
		controllers.NewProductController(products),
		controllers.NewBookingController(bookings),
		controllers.NewReviewController(reviews),
		controllers.NewProfileController(profiles),
		controllers.NewPaymentController(intents),
		tokens,
		users,
		"",
	)
	return &env{router: router, tokens: tokens, users: users, intents: intents, db: db}
}

func (e *env) request(t *testing.T, method, target, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLiveness(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello HAMMER.BD SERVER", w.Body.String())
}

func TestRegisterPromoteScenario(t *testing.T) {
	e := newEnv(t)

	// Registration upserts the identity and hands back a token for alice.
	w := e.request(t, http.MethodPut, "/user/alice@x.com", "", map[string]interface{}{"role": "user"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	tokenStr, _ := body["token"].(string)
	require.NotEmpty(t, tokenStr)
	email, err := e.tokens.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", email)

	// Upserting the same email again keeps a single record and the new token
	// still verifies to the same email.
	w = e.request(t, http.MethodPut, "/user/alice@x.com", "", map[string]interface{}{"name": "Alice"})
	require.Equal(t, http.StatusOK, w.Code)
	var count int64
	require.NoError(t, e.db.Model(&models.User{}).Where("email = ?", "alice@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// A non-admin caller cannot promote.
	w = e.request(t, http.MethodPut, "/user/admin/alice@x.com", tokenStr, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// An admin caller can.
	_, err = e.users.Upsert("boss@x.com", map[string]interface{}{"role": "admin"})
	require.NoError(t, err)
	bossToken, err := e.tokens.Issue("boss@x.com")
	require.NoError(t, err)

	w = e.request(t, http.MethodPut, "/user/admin/alice@x.com", bossToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.request(t, http.MethodGet, "/admin/alice@x.com", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["admin"])
}

func TestListUsersRequiresAuth(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodGet, "/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, err := e.users.Upsert("alice@x.com", nil)
	require.NoError(t, err)
	token, err := e.tokens.Issue("alice@x.com")
	require.NoError(t, err)

	w = e.request(t, http.MethodGet, "/user", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingCreateIsIdempotentByConvention(t *testing.T) {
	e := newEnv(t)

	payload := map[string]interface{}{
		"product": 7, "date": "May 15, 2026", "visitor": "alice@x.com",
		"productName": "Claw Hammer", "price": 120,
	}

	w := e.request(t, http.MethodPost, "/booking", "", payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	w = e.request(t, http.MethodPost, "/booking", "", payload)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotNil(t, body["booking"])

	var count int64
	require.NoError(t, e.db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBookingListOwnershipGate(t *testing.T) {
	e := newEnv(t)

	token, err := e.tokens.Issue("a@x.com")
	require.NoError(t, err)

	w := e.request(t, http.MethodGet, "/booking?visitor=b@x.com", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.request(t, http.MethodGet, "/booking?visitor=a@x.com", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingMarkPaid(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodPost, "/booking", "", map[string]interface{}{
		"product": 3, "date": "Jun 1, 2026", "visitor": "bob@x.com", "price": 50,
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, err := e.tokens.Issue("bob@x.com")
	require.NoError(t, err)

	var booking models.Booking
	require.NoError(t, e.db.First(&booking).Error)

	w = e.request(t, http.MethodPatch, fmt.Sprintf("/booking/%d", booking.ID), token, map[string]interface{}{
		"transactionId": "txn_777", "amount": 50,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, e.db.First(&booking, booking.ID).Error)
	assert.True(t, booking.Paid)
	assert.Equal(t, "txn_777", booking.TransactionID)

	w = e.request(t, http.MethodGet, fmt.Sprintf("/booking/%d", booking.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddProductAdminGate(t *testing.T) {
	e := newEnv(t)

	_, err := e.users.Upsert("boss@x.com", map[string]interface{}{"role": "admin"})
	require.NoError(t, err)
	_, err = e.users.Upsert("user@x.com", nil)
	require.NoError(t, err)
	bossToken, err := e.tokens.Issue("boss@x.com")
	require.NoError(t, err)
	userToken, err := e.tokens.Issue("user@x.com")
	require.NoError(t, err)

	product := map[string]interface{}{"name": "Sledge", "price": 30, "email": "boss@x.com"}

	assert.Equal(t, http.StatusForbidden,
		e.request(t, http.MethodPost, "/addProduct", userToken, product).Code)
	assert.Equal(t, http.StatusCreated,
		e.request(t, http.MethodPost, "/addProduct", bossToken, product).Code)

	// Public catalog sees it too.
	w := e.request(t, http.MethodGet, "/product", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sledge")

	// Delete keyed by the email field.
	w = e.request(t, http.MethodDelete, "/addProduct/boss@x.com", bossToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, e.db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestReviewsAndProfileAreOpen(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodPost, "/addReview", "", map[string]interface{}{
		"name": "Alice", "rating": 5, "comment": "great hammer",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = e.request(t, http.MethodGet, "/addReview", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "great hammer")

	w = e.request(t, http.MethodPost, "/updateProfile", "", map[string]interface{}{
		"email": "alice@x.com", "education": "BSc", "location": "Dhaka",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, e.db.Model(&models.ProfileUpdate{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreatePaymentIntent(t *testing.T) {
	e := newEnv(t)

	// Auth required.
	w := e.request(t, http.MethodPost, "/create-payment-intent", "", map[string]interface{}{"price": 19.5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := e.tokens.Issue("bob@x.com")
	require.NoError(t, err)

	w = e.request(t, http.MethodPost, "/create-payment-intent", token, map[string]interface{}{"price": 19.5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cs_test_secret", decode(t, w)["clientSecret"])
	assert.EqualValues(t, 1950, e.intents.lastAmount)
}
