package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"activity-booking-platform/internal/middleware"
)

// RouterDeps bundles everything the router mounts
type RouterDeps struct {
	Auth         *AuthHandlers
	Catalog      *CatalogHandlers
	Cart         *CartHandlers
	Transactions *TransactionHandlers
	Admin        *AdminHandlers
	Sessions     *middleware.SessionManager

	AllowedOrigins []string
}

// NewRouter wires all endpoints behind the shared middleware chain
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(deps.Sessions.LoadSession)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})
	r.Use(corsHandler.Handler)

	r.Route("/api", func(r chi.Router) {
		// Public catalog
		r.Get("/activities", deps.Catalog.ListActivities)
		r.Get("/activities/{id}", deps.Catalog.GetActivity)
		r.Get("/categories", deps.Catalog.ListCategories)
		r.Get("/banners", deps.Catalog.ListBanners)
		r.Get("/promos", deps.Catalog.ListPromos)
		r.Get("/payment-methods", deps.Catalog.ListPaymentMethods)

		// Auth
		r.Post("/login", deps.Auth.Login)
		r.Post("/logout", deps.Auth.Logout)
		r.Get("/me", deps.Auth.Me)

		// Signed-in users
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/cart", deps.Cart.GetCart)
			r.Post("/cart", deps.Cart.AddItem)
			r.Patch("/cart/{id}", deps.Cart.UpdateQuantity)
			r.Delete("/cart/{id}", deps.Cart.RemoveItem)
			r.Post("/cart/bulk-delete", deps.Cart.BulkRemove)
			r.Post("/cart/{id}/select", deps.Cart.ToggleSelect)
			r.Post("/cart/select-all", deps.Cart.ToggleSelectAll)
			r.Post("/cart/promo", deps.Cart.ApplyPromo)
			r.Delete("/cart/promo", deps.Cart.RemovePromo)
			r.Post("/checkout", deps.Cart.Checkout)

			r.Get("/transactions", deps.Transactions.ListMine)
			r.Get("/transactions/{id}", deps.Transactions.Detail)
			r.Get("/transactions/{id}/countdown", deps.Transactions.Countdown)
			r.Post("/transactions/{id}/cancel", deps.Transactions.Cancel)
			r.Post("/transactions/{id}/proof", deps.Transactions.SubmitProof)
		})

		// Back office
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/transactions", deps.Admin.ListTransactions)
			r.Patch("/transactions/{id}/status", deps.Admin.UpdateTransactionStatus)

			r.Post("/activities", deps.Admin.CreateActivity)
			r.Patch("/activities/{id}", deps.Admin.UpdateActivity)
			r.Delete("/activities/{id}", deps.Admin.DeleteActivity)

			r.Post("/categories", deps.Admin.CreateCategory)
			r.Patch("/categories/{id}", deps.Admin.UpdateCategory)
			r.Delete("/categories/{id}", deps.Admin.DeleteCategory)

			r.Post("/banners", deps.Admin.CreateBanner)
			r.Patch("/banners/{id}", deps.Admin.UpdateBanner)
			r.Delete("/banners/{id}", deps.Admin.DeleteBanner)

			r.Post("/promos", deps.Admin.CreatePromo)
			r.Patch("/promos/{id}", deps.Admin.UpdatePromo)
			r.Delete("/promos/{id}", deps.Admin.DeletePromo)
		})
	})

	return r
}
