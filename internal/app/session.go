package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/redis/go-redis/v9"
)

type sessionKey string

const (
	SessionKeyGuest = sessionKey("guest")
)

func (s sessionKey) String() string {
	return string(s)
}

const (
	cartTTL         = 30 * time.Minute
	seatCursorTTL   = 10 * time.Minute
	checkoutLockTTL = 30 * time.Second
)

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func seatCursorKey(sessionID string, showtimeID int) string {
	return fmt.Sprintf("seat_cursor:%s:%d", sessionID, showtimeID)
}

func checkoutLockKey(sessionID string) string {
	return fmt.Sprintf("checkout_lock:%s", sessionID)
}

// getCart loads the session's snack cart; an absent key is an empty cart.
func (app *Application) getCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := app.redis.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &domain.Cart{}, nil
		}
		return nil, err
	}

	var cart domain.Cart

	err = json.Unmarshal(data, &cart)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart for session: %w", err)
	}

	return &cart, nil
}

func (app *Application) saveCart(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if len(cart.Items) == 0 {
		return app.redis.Del(ctx, cartKey(sessionID)).Err()
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return app.redis.Set(ctx, cartKey(sessionID), data, cartTTL).Err()
}

// getSeatCursor returns the session's selected seat for a showtime, or "".
func (app *Application) getSeatCursor(ctx context.Context, sessionID string, showtimeID int) (string, error) {
	seat, err := app.redis.Get(ctx, seatCursorKey(sessionID, showtimeID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}

	return seat, nil
}

func (app *Application) setSeatCursor(ctx context.Context, sessionID string, showtimeID int, seat string) error {
	if seat == "" {
		return app.redis.Del(ctx, seatCursorKey(sessionID, showtimeID)).Err()
	}

	return app.redis.Set(ctx, seatCursorKey(sessionID, showtimeID), seat, seatCursorTTL).Err()
}

// acquireCheckoutLock enforces a single in-flight submission per session.
func (app *Application) acquireCheckoutLock(ctx context.Context, sessionID string) (bool, error) {
	return app.redis.SetNX(ctx, checkoutLockKey(sessionID), "1", checkoutLockTTL).Result()
}

func (app *Application) releaseCheckoutLock(ctx context.Context, sessionID string) {
	err := app.redis.Del(ctx, checkoutLockKey(sessionID)).Err()
	if err != nil {
		app.logger.Error("failed to release checkout lock", "error", err)
	}
}

// clearSale drops the session state consumed by a committed sale.
func (app *Application) clearSale(ctx context.Context, sessionID string, showtimeID int) {
	err := app.redis.Del(ctx, cartKey(sessionID), seatCursorKey(sessionID, showtimeID)).Err()
	if err != nil {
		app.logger.Error("failed to clear session sale state", "error", err)
	}
}
