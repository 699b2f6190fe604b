// Package hotels lists the hotels and rooms an eligible user can book.
package hotels

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/sirupsen/logrus"
)

type HotelUseCase interface {
	List(ctx context.Context, userID int64) ([]domain.Hotel, error)
	GetWithRooms(ctx context.Context, userID, hotelID int64) (*domain.HotelWithRooms, error)
}

type EligibilityChecker interface {
	Check(ctx context.Context, userID int64) error
}

type HotelCache interface {
	GetHotels(ctx context.Context) ([]domain.Hotel, error)
	SetHotels(ctx context.Context, hotels []domain.Hotel) error
	GetHotel(ctx context.Context, hotelID int64) (*domain.HotelWithRooms, error)
	SetHotel(ctx context.Context, hotel *domain.HotelWithRooms) error
}

type HotelService struct {
	hotels      repository.HotelRepository
	rooms       repository.RoomRepository
	eligibility EligibilityChecker
	cache       HotelCache
}

// NewHotelService builds the service; cache may be nil.
func NewHotelService(
	hotels repository.HotelRepository,
	rooms repository.RoomRepository,
	eligibility EligibilityChecker,
	cache HotelCache,
) *HotelService {
	return &HotelService{hotels: hotels, rooms: rooms, eligibility: eligibility, cache: cache}
}

func (s *HotelService) List(ctx context.Context, userID int64) ([]domain.Hotel, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.GetHotels(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			logrus.WithError(err).Warn("hotels cache read failed")
		}
	}

	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetHotels(ctx, hotels); err != nil {
			logrus.WithError(err).Warn("hotels cache write failed")
		}
	}
	return hotels, nil
}

func (s *HotelService) GetWithRooms(ctx context.Context, userID, hotelID int64) (*domain.HotelWithRooms, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.GetHotel(ctx, hotelID); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			logrus.WithError(err).WithField("hotel_id", hotelID).Warn("hotel cache read failed")
		}
	}

	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, domain.NotFound("hotel not found")
	}

	rooms, err := s.rooms.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	result := &domain.HotelWithRooms{Hotel: *hotel, Rooms: rooms}
	if s.cache != nil {
		if err := s.cache.SetHotel(ctx, result); err != nil {
			logrus.WithError(err).WithField("hotel_id", hotelID).Warn("hotel cache write failed")
		}
	}
	return result, nil
}

var _ HotelUseCase = (*HotelService)(nil)
