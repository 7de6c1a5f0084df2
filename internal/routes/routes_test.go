package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/bizmarket/internal/audit"
	"github.com/BruksfildServices01/bizmarket/internal/config"
	"github.com/BruksfildServices01/bizmarket/internal/db"
	"github.com/BruksfildServices01/bizmarket/internal/db/dbtest"
	"github.com/BruksfildServices01/bizmarket/internal/payment"
	"github.com/BruksfildServices01/bizmarket/internal/payment/paymenttest"
)

const (
	adminEmail    = "admin@bizmarket.com"
	adminPassword = "admin123"
	webhookSecret = "whsec-test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type app struct {
	router  *gin.Engine
	gateway *paymenttest.Gateway
}

func newApp(t *testing.T) *app {
	gdb := dbtest.New(t)
	require.NoError(t, db.SeedAdmin(context.Background(), gdb, adminEmail, adminPassword, zap.NewNop()))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	dispatcher := audit.NewDispatcher(audit.New(gdb), zap.NewNop())
	t.Cleanup(dispatcher.Close)

	gateway := paymenttest.New()
	cfg := &config.Config{
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		TokenTTL:             time.Hour,
		PaymentWebhookSecret: webhookSecret,
		PaymentCurrency:      "USD",
		PaymentTimeout:       2 * time.Second,
		RateLimitPerMinute:   1000,
	}

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB:      gdb,
		Redis:   rdb,
		Config:  cfg,
		Log:     zap.NewNop(),
		Gateway: gateway,
		Audit:   dispatcher,
	})
	return &app{router: r, gateway: gateway}
}

func (a *app) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (a *app) signUp(t *testing.T, email, role string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/auth", "", gin.H{
		"action":   "signup",
		"email":    email,
		"password": "secret123",
		"userData": gin.H{"full_name": "Test User", "user_type": role},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

func (a *app) signIn(t *testing.T, email, password string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/auth", "", gin.H{"action": "signin", "email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

func shopPayload() gin.H {
	return gin.H{
		"action":        "create",
		"title":         "Shop",
		"description":   "A well established neighbourhood shop with loyal customers and steady revenue.",
		"industry":      "Retail",
		"business_type": "acquisition",
		"location":      "NY",
		"asking_price":  10000,
	}
}

func (a *app) createBusiness(t *testing.T, token string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/businesses", token, shopPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["id"].(string)
}

func listIDs(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	ids := make([]string, 0, len(out.Data))
	for _, d := range out.Data {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, len(ids), out.Total)
	return ids
}

func TestListingLifecycle(t *testing.T) {
	a := newApp(t)
	seller := a.signUp(t, "seller@example.com", "seller")
	admin := a.signIn(t, adminEmail, adminPassword)

	w := a.do(t, http.MethodPost, "/businesses", seller, shopPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	id := created["id"].(string)
	assert.Equal(t, "Shop", created["title"])
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, false, created["featured"])
	assert.Equal(t, float64(0), created["views"])

	assert.Empty(t, listIDs(t, a.do(t, http.MethodGet, "/businesses", "", nil)))

	w = a.do(t, http.MethodPost, "/admin", admin, gin.H{"action": "get_enquiries", "status": "unread"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	enquiries := decode(t, w)["data"].([]any)
	require.Len(t, enquiries, 1)
	notice := enquiries[0].(map[string]any)
	assert.Equal(t, "new_listing", notice["type"])
	assert.Equal(t, id, notice["business_id"])

	w = a.do(t, http.MethodPost, "/admin", admin, gin.H{"action": "approve_business", "business_id": id})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "active", data["status"])

	assert.Equal(t, []string{id}, listIDs(t, a.do(t, http.MethodGet, "/businesses", "", nil)))
	assert.Equal(t, []string{id}, listIDs(t, a.do(t, http.MethodGet, "/businesses?industry=Retail&min_price=5000", "", nil)))
	assert.Empty(t, listIDs(t, a.do(t, http.MethodGet, "/businesses?max_price=5000", "", nil)))
}

func TestCreateBusiness_DistinctIDs(t *testing.T) {
	a := newApp(t)
	seller := a.signUp(t, "seller@example.com", "seller")

	first := a.createBusiness(t, seller)
	second := a.createBusiness(t, seller)
	assert.NotEqual(t, first, second)

	assert.Len(t, listIDs(t, a.do(t, http.MethodGet, "/me/businesses", seller, nil)), 2)
}

func TestCreateBusiness_Validation(t *testing.T) {
	a := newApp(t)
	seller := a.signUp(t, "seller@example.com", "seller")

	payload := shopPayload()
	payload["description"] = "too short"
	payload["asking_price"] = 10

	w := a.do(t, http.MethodPost, "/businesses", seller, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "validation_failed", body["error_code"])
	fields := body["fields"].(map[string]any)
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "asking_price")

	payload = shopPayload()
	payload["title"] = "   "
	payload["industry"] = "\t"
	w = a.do(t, http.MethodPost, "/businesses", seller, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields = decode(t, w)["fields"].(map[string]any)
	assert.Equal(t, "must not be blank", fields["title"])
	assert.Equal(t, "must not be blank", fields["industry"])

	payload = shopPayload()
	payload["title"] = "  ab  "
	w = a.do(t, http.MethodPost, "/businesses", seller, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "ab", decode(t, w)["title"])

	w = a.do(t, http.MethodPost, "/businesses", "", shopPayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_Guard(t *testing.T) {
	a := newApp(t)
	seller := a.signUp(t, "seller@example.com", "seller")
	id := a.createBusiness(t, seller)

	for _, action := range []string{"approve_business", "reject_business", "get_dashboard"} {
		w := a.do(t, http.MethodPost, "/admin", seller, gin.H{"action": action, "business_id": id})
		assert.Equal(t, http.StatusForbidden, w.Code, action)
	}

	w := a.do(t, http.MethodPost, "/admin", "", gin.H{"action": "get_dashboard"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(t, http.MethodPost, "/admin", "not-a-jwt", gin.H{"action": "get_dashboard"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_Actions(t *testing.T) {
	a := newApp(t)
	admin := a.signIn(t, adminEmail, adminPassword)

	w := a.do(t, http.MethodPost, "/admin", admin, gin.H{"action": "approve_business", "business_id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(t, http.MethodPost, "/admin", admin, gin.H{"action": "approve_business"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/admin", admin, gin.H{"action": "drop_tables"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_action", decode(t, w)["error_code"])

	w = a.do(t, http.MethodPost, "/admin", admin, gin.H{"action": "get_dashboard"})
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["total_users"])
}

func TestAuth_SignUpVerifySignOut(t *testing.T) {
	a := newApp(t)
	token := a.signUp(t, "buyer@example.com", "buyer")

	w := a.do(t, http.MethodPost, "/auth", "", gin.H{
		"action":   "signup",
		"email":    "buyer@example.com",
		"password": "secret123",
		"userData": gin.H{"full_name": "Again"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(t, http.MethodPost, "/auth", token, gin.H{"action": "verify"})
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "buyer@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")

	w = a.do(t, http.MethodPost, "/auth", token, gin.H{"action": "signout"})
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodPost, "/auth", token, gin.H{"action": "verify"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(t, http.MethodPost, "/auth", "", gin.H{"action": "signin", "email": "buyer@example.com", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEnquiry(t *testing.T) {
	a := newApp(t)
	seller := a.signUp(t, "seller@example.com", "seller")
	admin := a.signIn(t, adminEmail, adminPassword)
	id := a.createBusiness(t, seller)
	a.do(t, http.MethodPost, "/admin", admin, gin.H{"action": "approve_business", "business_id": id})

	w := a.do(t, http.MethodPost, "/businesses", "", gin.H{
		"action":       "enquiry",
		"business_id":  id,
		"message":      "Is the lease transferable?",
		"contact_info": "jane@example.com",
		"bid_amount":   9000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Enquiry sent successfully", decode(t, w)["message"])

	w = a.do(t, http.MethodPost, "/businesses", "", gin.H{"action": "enquiry", "business_id": id, "message": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/businesses", "", gin.H{
		"action": "enquiry", "business_id": "missing", "message": "Hello, is this still available?", "contact_info": "x@y.com",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBusinessUpdate_AllowList(t *testing.T) {
	a := newApp(t)
	seller := a.signUp(t, "seller@example.com", "seller")
	other := a.signUp(t, "other@example.com", "seller")
	id := a.createBusiness(t, seller)

	w := a.do(t, http.MethodPut, "/businesses/"+id, seller, gin.H{
		"title":    "Shop and Deli",
		"status":   "active",
		"views":    9999,
		"featured": true,
		"owner_id": "someone-else",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Shop and Deli", body["title"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, float64(0), body["views"])
	assert.Equal(t, false, body["featured"])

	w = a.do(t, http.MethodPut, "/businesses/"+id, seller, gin.H{"title": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPut, "/businesses/"+id, seller, gin.H{"title": "Shop"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Shop", decode(t, w)["title"])

	w = a.do(t, http.MethodPut, "/businesses/"+id, other, gin.H{"title": "Stolen listing"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(t, http.MethodGet, "/businesses/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(t, http.MethodGet, "/businesses/"+id, seller, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdvertisementPayment(t *testing.T) {
	a := newApp(t)
	seller := a.signUp(t, "seller@example.com", "seller")
	admin := a.signIn(t, adminEmail, adminPassword)

	w := a.do(t, http.MethodPost, "/advertisements", seller, gin.H{
		"action":        "create",
		"title":         "Franchise expo booth",
		"description":   "Reach thousands of qualified buyers looking for their next business opportunity.",
		"category":      "events",
		"location":      "Chicago",
		"contact_email": "ads@example.com",
		"budget":        500,
		"duration":      30,
		"ad_type":       "premium",
		"price":         1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ad := decode(t, w)
	adID := ad["id"].(string)
	assert.Equal(t, float64(99), ad["price"])
	assert.Equal(t, "pending", ad["payment_status"])

	w = a.do(t, http.MethodPost, "/admin", admin, gin.H{"action": "activate_advertisement", "ad_id": adID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// active but unpaid ads stay hidden
	assert.Empty(t, listIDs(t, a.do(t, http.MethodGet, "/advertisements", "", nil)))

	w = a.do(t, http.MethodPost, "/payments", seller, gin.H{
		"action":   "create_payment_intent",
		"metadata": gin.H{"ad_id": adID},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, decode(t, w)["checkout_url"])

	a.gateway.SetPayment("pay-1", payment.StatusApproved, "advertisement:"+adID)

	for i := 0; i < 2; i++ {
		w = a.do(t, http.MethodPost, "/advertisements", seller, gin.H{
			"action":            "payment_success",
			"ad_id":             adID,
			"payment_intent_id": "pay-1",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, i == 0, decode(t, w)["applied"])
	}

	assert.Equal(t, []string{adID}, listIDs(t, a.do(t, http.MethodGet, "/advertisements", "", nil)))
	assert.Len(t, listIDs(t, a.do(t, http.MethodGet, "/me/advertisements", seller, nil)), 1)

	w = a.do(t, http.MethodPost, "/payments", seller, gin.H{
		"action":   "create_payment_intent",
		"metadata": gin.H{"ad_id": adID},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPaymentWebhook(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodPost, "/payments/webhook?data.id=123&type=payment", "", gin.H{"data": gin.H{"id": "123"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_signature", decode(t, w)["error_code"])

	a.gateway.SetPayment("123", "rejected", "advertisement:none")
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook?data.id=123&type=payment", bytes.NewBufferString(`{"type":"payment"}`))
	req.Header.Set("x-request-id", "req-1")
	req.Header.Set("x-signature", payment.Sign(webhookSecret, "123", "req-1", strconv.FormatInt(time.Now().Unix(), 10)))
	w = httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decode(t, w)["received"])
}

func TestRouter_Surface(t *testing.T) {
	a := newApp(t)

	w := a.do(t, http.MethodOptions, "/admin", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = a.do(t, http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "route_not_found", decode(t, w)["error_code"])

	w = a.do(t, http.MethodDelete, "/businesses", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = a.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
