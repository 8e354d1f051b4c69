package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/api/http/handlers"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/auth"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Sellers        *handlers.SellersHandler
	Products       *handlers.ProductsHandler
	Claims         *handlers.ClaimsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/sellers/register", cfg.Sellers.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Users.Logout)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	users.Get("/me", cfg.Users.Profile)
	users.Patch("/me", cfg.Users.UpdateProfile)

	products := app.Group("/products", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleCustomer))
	products.Post("/", cfg.Products.Register)
	products.Get("/", cfg.Products.List)

	claims := app.Group("/claims", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleCustomer))
	claims.Post("/", cfg.Claims.Create)
	claims.Get("/", cfg.Claims.List)

	sellers := app.Group("/sellers/me", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleSeller))
	sellers.Patch("/", cfg.Sellers.UpdateProfile)
	sellers.Post("/deactivate", cfg.Sellers.Deactivate)
	sellers.Get("/products", cfg.Sellers.ListProducts)
	sellers.Get("/claims", cfg.Sellers.ListClaims)
	sellers.Patch("/claims/:id", cfg.Sellers.TransitionClaim)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Post("/sellers", cfg.Admin.CreateSeller)
	admin.Get("/sellers", cfg.Admin.ListSellers)
	admin.Patch("/sellers/:id/contract", cfg.Admin.SetContractStatus)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Patch("/users/:id/active", cfg.Admin.SetUserActive)
	admin.Get("/claims", cfg.Admin.ListClaims)
	admin.Patch("/claims/:id", cfg.Admin.TransitionClaim)
	admin.Get("/audit", cfg.Admin.AuditTrail)
}
