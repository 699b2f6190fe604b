package api

import (
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Bookings *BookingHandler
	Hotels   *HotelHandler
}

func NewRouter(handlers Handlers, tokens middleware.TokenValidator) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	authorized := router.Group("/", middleware.JWTAuth(tokens))
	handlers.Bookings.Register(authorized.Group("/booking"))
	handlers.Hotels.Register(authorized.Group("/hotels"))

	return router
}
