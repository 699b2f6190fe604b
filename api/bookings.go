package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/hotelbooking/internal/middleware"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type roomRequest struct {
	RoomID int64 `json:"roomId" binding:"required,gt=0"`
}

type bookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.get)
	router.POST("", h.create)
	router.PUT("/:bookingId", h.change)
}

func (h *BookingHandler) get(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	booking, err := h.service.GetBooking(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) create(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "roomId must be a positive integer")
		return
	}

	booking, err := h.service.PostBooking(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookingIDResponse{BookingID: booking.ID})
}

func (h *BookingHandler) change(c *gin.Context) {
	userID := c.GetInt64(middleware.UserIDKey)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID <= 0 {
		respondValidation(c, "bookingId must be a positive integer")
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "roomId must be a positive integer")
		return
	}

	booking, err := h.service.ChangeBooking(c.Request.Context(), userID, bookingID, req.RoomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingIDResponse{BookingID: booking.ID})
}
