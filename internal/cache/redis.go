package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetHotels returns nil without error on a cache miss.
func (c *RedisCache) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	found, err := c.get(ctx, hotelsKey(), &hotels)
	if err != nil || !found {
		return nil, err
	}
	return hotels, nil
}

func (c *RedisCache) SetHotels(ctx context.Context, hotels []domain.Hotel) error {
	return c.set(ctx, hotelsKey(), hotels)
}

// GetHotel returns nil without error on a cache miss.
func (c *RedisCache) GetHotel(ctx context.Context, hotelID int64) (*domain.HotelWithRooms, error) {
	var hotel domain.HotelWithRooms
	found, err := c.get(ctx, hotelKey(hotelID), &hotel)
	if err != nil || !found {
		return nil, err
	}
	return &hotel, nil
}

func (c *RedisCache) SetHotel(ctx context.Context, hotel *domain.HotelWithRooms) error {
	return c.set(ctx, hotelKey(hotel.ID), hotel)
}

// InvalidateHotels drops the cached detail of the given hotels. Their room
// occupancy changes with every booking.
func (c *RedisCache) InvalidateHotels(ctx context.Context, hotelIDs ...int64) error {
	if len(hotelIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hotelIDs))
	for _, id := range hotelIDs {
		keys = append(keys, hotelKey(id))
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

func hotelsKey() string {
	return "cache:hotels"
}

func hotelKey(hotelID int64) string {
	return fmt.Sprintf("cache:hotel:%d", hotelID)
}
