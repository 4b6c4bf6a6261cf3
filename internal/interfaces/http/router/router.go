// Package router assembles the HTTP routing tree from handler
// registrars and shared middleware.
package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers a handler's routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router builds the gin engine from registered handlers. Public
// registrars mount at the root; admin registrars mount under /admin
// behind the session middleware.
type Router struct {
	engine          *gin.Engine
	middleware      []gin.HandlerFunc
	adminMiddleware []gin.HandlerFunc
	public          []RouteRegistrar
	admin           []RouteRegistrar
}

// Option configures the router
type Option func(*Router)

// WithMiddleware adds global middleware, applied to every route
func WithMiddleware(mw ...gin.HandlerFunc) Option {
	return func(r *Router) {
		r.middleware = append(r.middleware, mw...)
	}
}

// WithAdminMiddleware adds middleware guarding the /admin group
func WithAdminMiddleware(mw ...gin.HandlerFunc) Option {
	return func(r *Router) {
		r.adminMiddleware = append(r.adminMiddleware, mw...)
	}
}

// New creates a router
func New(opts ...Option) *Router {
	r := &Router{
		engine: gin.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPublic adds handlers whose routes need no session
func (r *Router) RegisterPublic(registrars ...RouteRegistrar) {
	r.public = append(r.public, registrars...)
}

// RegisterAdmin adds handlers mounted under /admin
func (r *Router) RegisterAdmin(registrars ...RouteRegistrar) {
	r.admin = append(r.admin, registrars...)
}

// Setup wires middleware and routes and returns the engine. Callers
// supply recovery through WithMiddleware.
func (r *Router) Setup() *gin.Engine {
	r.engine.Use(r.middleware...)

	root := r.engine.Group("")
	for _, registrar := range r.public {
		registrar.RegisterRoutes(root)
	}

	admin := r.engine.Group("/admin")
	admin.Use(r.adminMiddleware...)
	for _, registrar := range r.admin {
		registrar.RegisterRoutes(admin)
	}

	return r.engine
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
