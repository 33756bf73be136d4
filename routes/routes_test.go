package routes

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"sevasetu/handlers"
	"sevasetu/middleware"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubBundle answers every route with the name of the bundle field serving it.
func stubBundle() *handlers.HandlerBundle {
	hb := &handlers.HandlerBundle{}
	v := reflect.ValueOf(hb).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Name
		v.Field(i).Set(reflect.ValueOf(gin.HandlerFunc(func(c *gin.Context) {
			c.String(http.StatusOK, name)
		})))
	}
	hb.Identity = func(c *gin.Context) { c.Next() }
	hb.RateLimit = func(c *gin.Context) { c.Next() }
	hb.RequestLog = func(c *gin.Context) { c.Next() }
	hb.AdminAuth = middleware.JWTAuthAdminMiddleware()
	return hb
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, stubBundle())

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/health", "Health"},
		{http.MethodGet, "/api/services", "GetAvailableServices"},
		{http.MethodGet, "/api/geo/pincode/226001", "LookupPincode"},
		{http.MethodPost, "/api/cart/items", "AddItem"},
		{http.MethodDelete, "/api/cart/items/Sofa%20Cleaning", "RemoveItem"},
		{http.MethodGet, "/api/bookings/time-slots", "TimeSlots"},
		{http.MethodPost, "/api/bookings/checkout", "Checkout"},
		{http.MethodPost, "/api/feedback", "SubmitFeedback"},
		{http.MethodPost, "/api/support", "CreateTicket"},
		{http.MethodPost, "/api/admin/login", "AdminLogin"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestCustomerRoutesCarryCartID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, stubBundle())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/last", nil))
	assert.NotEmpty(t, w.Header().Get(utils.CartIDHeader))
}

func TestAdminRoutesRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, stubBundle())

	for _, path := range []string{"/api/admin/dashboard", "/api/admin/orders", "/api/admin/revenue"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
