package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/infra/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachTracingMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/carts", func(r chi.Router) {
		r.Post("/", handler.CreateCart)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.GetCart)
			r.Post("/items", handler.AddItem)
			r.Put("/items/{itemID}", handler.SetQuantity)
			r.Delete("/items/{itemID}", handler.RemoveItem)
			r.Put("/promo", handler.ApplyPromoCode)
			r.Delete("/promo", handler.ClearPromoCode)
		})
	})
	return r
}
