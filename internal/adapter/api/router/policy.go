package router

import (
	"bazaartrack/internal/adapter/api/middleware"
	"bazaartrack/internal/domain/entity"
)

var (
	adminOnly     = middleware.RequireRoles(entity.RoleAdmin)
	vendorOnly    = middleware.RequireRoles(entity.RoleVendor)
	vendorOrAdmin = middleware.RequireRoles(entity.RoleVendor, entity.RoleAdmin)
	userOnly      = middleware.RequireRoles(entity.RoleUser)
	anyCaller     = middleware.Authenticated()
)

// AccessPolicy is the only place route access is declared. Routes not listed are public.
func AccessPolicy() middleware.Policy {
	return middleware.Policy{
		"POST /users":            anyCaller,
		"GET /users":             adminOnly,
		"GET /users/search":      adminOnly,
		"GET /users/role/:email": anyCaller,
		"PATCH /users/:id/role":  adminOnly,

		"GET /products":                     vendorOrAdmin,
		"POST /products":                    vendorOnly,
		"PUT /products/:id":                 vendorOrAdmin,
		"DELETE /products/:id":              vendorOrAdmin,
		"PATCH /admin/products/:id/approve": adminOnly,
		"PATCH /admin/products/:id/reject":  adminOnly,

		"GET /advertisements":                    vendorOnly,
		"POST /advertisements":                   vendorOnly,
		"PATCH /advertisements/:id":              vendorOnly,
		"DELETE /advertisements/:id":             vendorOrAdmin,
		"GET /admin/advertisements":              adminOnly,
		"PATCH /admin/advertisements/:id/status": adminOnly,

		"POST /create-payment-intent": userOnly,
		"POST /payments":              userOnly,
		"GET /orders":                 adminOnly,
		"GET /my-orders":              userOnly,

		"GET /watchList":        userOnly,
		"POST /watchList":       userOnly,
		"DELETE /watchList/:id": userOnly,

		"POST /reviews":    anyCaller,
		"POST /uploads":    anyCaller,
		"GET /admin/stats": adminOnly,
	}
}
