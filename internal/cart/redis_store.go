package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session carts in redis so multiple storefront instances can
// serve one session. Carts expire with the session TTL; this is session
// storage, not a durable order history.
type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:  client,
		baseTTL: 30 * time.Minute,
	}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart domain.Cart
	if err2 := json.Unmarshal(data, &cart); err2 != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err2)
	}
	return &cart, nil
}

func (s *RedisStore) AddLine(ctx context.Context, sessionID string, p domain.Product) (bool, error) {
	now := time.Now()
	cart, err := s.Get(ctx, sessionID)
	if errors.Is(err, ErrCartNotFound) {
		cart = &domain.Cart{SessionID: sessionID, CreatedAt: now}
	} else if err != nil {
		return false, err
	}

	added := false
	if line := cart.Line(p.ID); line != nil {
		line.Quantity++
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{Product: p, Quantity: 1, AddedAt: now})
		added = true
	}
	cart.UpdatedAt = now

	return added, s.save(ctx, sessionID, cart)
}

func (s *RedisStore) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	cart, err := s.Get(ctx, sessionID)
	if errors.Is(err, ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	line := cart.Line(productID)
	if line == nil {
		return nil
	}
	line.Quantity = quantity
	cart.UpdatedAt = time.Now()
	return s.save(ctx, sessionID, cart)
}

func (s *RedisStore) RemoveLine(ctx context.Context, sessionID, productID string) (bool, error) {
	cart, err := s.Get(ctx, sessionID)
	if errors.Is(err, ErrCartNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	for i, line := range cart.Lines {
		if line.Product.ID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			cart.UpdatedAt = time.Now()
			return true, s.save(ctx, sessionID, cart)
		}
	}
	return false, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (s *RedisStore) save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	// jitter spreads expirations so a burst of sessions does not expire at once
	ttl := s.baseTTL + time.Duration(rand.Intn(5))*time.Minute
	if err := s.client.Set(ctx, cartKey(sessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
