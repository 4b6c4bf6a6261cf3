package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pingRegistrar struct {
	path string
}

func (p pingRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(p.path, func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func TestRouter_Setup(t *testing.T) {
	t.Run("mounts public routes at the root", func(t *testing.T) {
		r := New()
		r.RegisterPublic(pingRegistrar{path: "/ping"})
		engine := r.Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mounts admin routes under /admin behind the guard", func(t *testing.T) {
		guardHits := 0
		guard := func(c *gin.Context) {
			guardHits++
			c.Next()
		}

		r := New(WithAdminMiddleware(guard))
		r.RegisterAdmin(pingRegistrar{path: "/stats"})
		engine := r.Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, guardHits)

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("global middleware applies to every route", func(t *testing.T) {
		r := New(WithMiddleware(func(c *gin.Context) {
			c.Header("X-Marker", "present")
			c.Next()
		}))
		r.RegisterPublic(pingRegistrar{path: "/ping"})
		engine := r.Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, "present", w.Header().Get("X-Marker"))
	})

	t.Run("static and parameter admin routes coexist", func(t *testing.T) {
		r := New()
		r.RegisterAdmin(pingRegistrar{path: "/categories"}, pingRegistrar{path: "/:userId/add"})
		engine := r.Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/categories", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/42/add", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
