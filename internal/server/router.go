package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	customerctrl "beorn/internal/customer/controller"
	menuctrl "beorn/internal/menu/controller"
	orderctrl "beorn/internal/order/controller"
	restaurantctrl "beorn/internal/restaurant/controller"
)

func NewRouter(
	orderCtrl *orderctrl.OrderController,
	customerCtrl *customerctrl.CustomerController,
	restaurantCtrl *restaurantctrl.RestaurantController,
	menuCtrl *menuctrl.MenuController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderCtrl.PlaceOrder)
		r.Get("/{orderId}", orderCtrl.GetOrder)
		r.Patch("/{orderId}/status", orderCtrl.UpdateStatus)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", customerCtrl.Register)
		r.Get("/top", customerCtrl.TopCustomers)
		r.Get("/{customerId}", customerCtrl.GetCustomer)
		r.Get("/{customerId}/orders", customerCtrl.Orders)
	})

	r.Route("/restaurants", func(r chi.Router) {
		r.Post("/", restaurantCtrl.Create)
		r.Get("/{restaurantId}", restaurantCtrl.GetRestaurant)
		r.Get("/{restaurantId}/menu", restaurantCtrl.Menu)
	})

	r.Route("/menu", func(r chi.Router) {
		r.Get("/top-items", menuCtrl.TopItems)
		r.Patch("/{menuItemId}", menuCtrl.UpdateMenuItem)
	})

	return r
}
