package router

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	SetAvailability(c *ginext.Context)
	GetListingBookings(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	GetWishlist(c *ginext.Context)
	AddToWishlist(c *ginext.Context)
	RemoveFromWishlist(c *ginext.Context)
	ClearWishlist(c *ginext.Context)
}

// InitRouter registers the API. bookingMW wraps only the endpoints that open
// payment orders or touch the ledger.
func InitRouter(mode string, h Handler, bookingMW []ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Listings
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/listings/:id/availability", h.CheckAvailability)
		api.PUT("/listings/:id/availability", h.SetAvailability)
		api.GET("/listings/:id/bookings", h.GetListingBookings)

		// Bookings
		bookings := api.Group("/bookings", bookingMW...)
		bookings.POST("", h.CreateBooking)
		bookings.POST("/verify", h.VerifyPayment)
		bookings.POST("/:id/cancel", h.CancelBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.GET("/users/:id/wishlist", h.GetWishlist)
		api.DELETE("/users/:id/wishlist", h.ClearWishlist)
		api.POST("/users/:id/wishlist/:listing_id", h.AddToWishlist)
		api.DELETE("/users/:id/wishlist/:listing_id", h.RemoveFromWishlist)

		admin := api.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
		admin.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
