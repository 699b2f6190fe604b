package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/hotelbooking/internal/middleware"
	"github.com/Domenick1991/hotelbooking/internal/service/hotels"
	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	service hotels.HotelUseCase
}

func NewHotelHandler(service hotels.HotelUseCase) *HotelHandler {
	return &HotelHandler{service: service}
}

func (h *HotelHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:hotelId", h.get)
}

func (h *HotelHandler) list(c *gin.Context) {
	hotels, err := h.service.List(c.Request.Context(), c.GetInt64(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *HotelHandler) get(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil || hotelID <= 0 {
		respondValidation(c, "hotelId must be a positive integer")
		return
	}

	hotel, err := h.service.GetWithRooms(c.Request.Context(), c.GetInt64(middleware.UserIDKey), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}
