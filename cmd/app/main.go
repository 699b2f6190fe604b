package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/hotelbooking/api"
	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/bootstrap"
	"github.com/Domenick1991/hotelbooking/internal/cache"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logging"
	"github.com/Domenick1991/hotelbooking/internal/pkg/jwt"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/Domenick1991/hotelbooking/internal/service/capacity"
	"github.com/Domenick1991/hotelbooking/internal/service/eligibility"
	"github.com/Domenick1991/hotelbooking/internal/service/hotels"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := logging.Setup(cfg.Log); err != nil {
		logrus.Fatalf("setup logging: %v", err)
	}
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if cfg.Database.CreateSchema {
		if err := repository.CreateSchema(ctx, pool); err != nil {
			logrus.Fatalf("create schema: %v", err)
		}
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.HotelsCacheTTL)*time.Second)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("redis unavailable, hotel listings will not be cached")
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		logrus.WithError(err).Warn("kafka unavailable, booking events will be dropped")
	}

	bookingRepo := repository.NewBookingRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	hotelRepo := repository.NewHotelRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	eligibilityChecker := eligibility.NewChecker(enrollmentRepo, ticketRepo)
	capacityChecker := capacity.NewChecker(roomRepo, bookingRepo)

	bookingService := booking.NewBookingService(
		bookingRepo,
		eligibilityChecker,
		capacityChecker,
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithEligibilityRecheck(cfg.Booking.RecheckEligibilityOnChange),
	)
	hotelService := hotels.NewHotelService(hotelRepo, roomRepo, eligibilityChecker, redisCache)

	tokens := jwt.New(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	router := api.NewRouter(api.Handlers{
		Bookings: api.NewBookingHandler(bookingService),
		Hotels:   api.NewHotelHandler(hotelService),
	}, tokens)

	if err := bootstrap.Run(ctx, cfg.HTTP, router); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
