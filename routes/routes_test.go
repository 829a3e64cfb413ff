package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketry-shop/admin"
	"rocketry-shop/catalog"
	"rocketry-shop/config"
	"rocketry-shop/services"
	"rocketry-shop/session"
	"rocketry-shop/storage"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		AppEnv:        "test",
		Port:          "0",
		AdminUsername: "Alfred",
		AdminPassword: "DieHard123-",
	}

	kv := storage.NewMemory()
	router := gin.New()
	SetupRoutes(router, Deps{
		Registry: services.NewRegistry(kv, session.DemoTables()),
		Catalog:  catalog.New(),
		Admin:    admin.NewStore(kv),
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)
	w, body := doJSON(t, router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestCartFlowWithScopeHeader(t *testing.T) {
	router := setupRouter(t)

	// First request without a scope gets one issued.
	w, _ := doJSON(t, router, http.MethodGet, "/cart", nil, nil)
	require.Equal(t, 200, w.Code)
	scope := w.Header().Get("X-Session-ID")
	require.NotEmpty(t, scope)
	headers := map[string]string{"X-Session-ID": scope}

	for i := 0; i < 2; i++ {
		w, _ = doJSON(t, router, http.MethodPost, "/cart/items",
			map[string]string{"product_id": "2"}, headers)
		require.Equal(t, 200, w.Code)
	}

	w, body := doJSON(t, router, http.MethodGet, "/cart", nil, headers)
	require.Equal(t, 200, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, 2.0, data["item_count"])
	assert.InDelta(t, 2*12.99, data["total"].(float64), 1e-9)

	// Another scope sees an empty cart.
	w, body = doJSON(t, router, http.MethodGet, "/cart", nil,
		map[string]string{"X-Session-ID": "other-scope"})
	require.Equal(t, 200, w.Code)
	assert.Equal(t, 0.0, body["data"].(map[string]interface{})["item_count"])

	// Unknown products are rejected.
	w, _ = doJSON(t, router, http.MethodPost, "/cart/items",
		map[string]string{"product_id": "999"}, headers)
	assert.Equal(t, 404, w.Code)
}

func TestLoginAndProfileFlow(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/auth/login",
		map[string]string{"email": "teacher@school.edu", "password": "teacher123"}, nil)
	require.Equal(t, 200, w.Code)
	data := body["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "Teacher Demo", data["user"].(map[string]interface{})["name"])

	auth := map[string]string{"Authorization": "Bearer " + token}

	w, body = doJSON(t, router, http.MethodGet, "/auth/profile", nil, auth)
	require.Equal(t, 200, w.Code)
	profile := body["data"].(map[string]interface{})["profile"].(map[string]interface{})
	assert.Equal(t, "0161 987 6543", profile["phone"])

	w, body = doJSON(t, router, http.MethodPatch, "/auth/profile",
		map[string]string{"phone": "123"}, auth)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "123", body["data"].(map[string]interface{})["phone"])

	w, body = doJSON(t, router, http.MethodGet, "/auth/orders", nil, auth)
	require.Equal(t, 200, w.Code)
	assert.Len(t, body["data"].([]interface{}), 2)

	// A bad password is rejected uniformly.
	w, body = doJSON(t, router, http.MethodPost, "/auth/login",
		map[string]string{"email": "admin@rocketryforschools.co.uk", "password": "wrongpass"}, nil)
	assert.Equal(t, 401, w.Code)
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestCheckoutCreatesAdminOrder(t *testing.T) {
	router := setupRouter(t)
	headers := map[string]string{"X-Session-ID": "checkout-scope"}

	// Empty cart cannot check out.
	w, body := doJSON(t, router, http.MethodPost, "/checkout", map[string]string{
		"name": "Jane", "email": "jane@example.com",
		"address": "1 High St", "payment_method": "Credit Card",
	}, headers)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Your cart is empty", body["message"])

	w, _ = doJSON(t, router, http.MethodPost, "/cart/items",
		map[string]string{"product_id": "1"}, headers)
	require.Equal(t, 200, w.Code)

	w, body = doJSON(t, router, http.MethodPost, "/checkout", map[string]string{
		"name": "Jane", "email": "jane@example.com",
		"address": "1 High St", "payment_method": "Credit Card",
	}, headers)
	require.Equal(t, 201, w.Code)
	orderID := body["data"].(map[string]interface{})["id"].(string)

	// The cart is cleared.
	w, body = doJSON(t, router, http.MethodGet, "/cart", nil, headers)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, 0.0, body["data"].(map[string]interface{})["item_count"])

	// The order shows up in the admin dataset next to the seeded ones.
	w, body = doJSON(t, router, http.MethodPost, "/admin/login",
		map[string]string{"username": "Alfred", "password": "DieHard123-"}, nil)
	require.Equal(t, 200, w.Code)
	token := body["data"].(map[string]interface{})["token"].(string)
	auth := map[string]string{"Authorization": "Bearer " + token}

	w, body = doJSON(t, router, http.MethodGet, "/admin/orders/"+orderID, nil, auth)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "pending", body["data"].(map[string]interface{})["status"])
}

func TestAdminEndpointsRequireAdminToken(t *testing.T) {
	router := setupRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/admin/orders", nil, nil)
	assert.Equal(t, 401, w.Code)

	// A regular storefront account is not an admin.
	w, body := doJSON(t, router, http.MethodPost, "/auth/login",
		map[string]string{"email": "teacher@school.edu", "password": "teacher123"}, nil)
	require.Equal(t, 200, w.Code)
	token := body["data"].(map[string]interface{})["token"].(string)

	w, _ = doJSON(t, router, http.MethodGet, "/admin/orders", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, 403, w.Code)

	// The admin storefront account does pass.
	w, body = doJSON(t, router, http.MethodPost, "/auth/login",
		map[string]string{"email": "admin@rocketryforschools.co.uk", "password": "password123"}, nil)
	require.Equal(t, 200, w.Code)
	token = body["data"].(map[string]interface{})["token"].(string)

	w, _ = doJSON(t, router, http.MethodGet, "/admin/orders", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, 200, w.Code)

	// Wrong panel credentials are rejected.
	w, _ = doJSON(t, router, http.MethodPost, "/admin/login",
		map[string]string{"username": "Alfred", "password": "nope"}, nil)
	assert.Equal(t, 401, w.Code)
}

func TestProductsEndpoint(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/products", nil, nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, body["data"].([]interface{}), 9)

	w, body = doJSON(t, router, http.MethodGet, "/products/featured", nil, nil)
	require.Equal(t, 200, w.Code)
	assert.Len(t, body["data"].([]interface{}), 6)

	w, body = doJSON(t, router, http.MethodGet, "/products/3", nil, nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "UKROC Competition Team Kit", body["data"].(map[string]interface{})["name"])

	w, _ = doJSON(t, router, http.MethodGet, "/products/404", nil, nil)
	assert.Equal(t, 404, w.Code)
}
