// Package session carries the authenticated caller through a request and
// keeps the server-side record that makes an access token usable.
//
// A token is accepted only while its key exists in Redis, so logout is a
// single DEL and needs no token blacklist.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session"

type Session struct {
	UserID  uuid.UUID
	Role    string
	TokenID string
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func Key(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, userID.String(), tokenID)
}

// Save records s for ttl. The stored value is the role so a lookup can
// detect a token whose role claim no longer matches.
func (st *Store) Save(ctx context.Context, s Session, ttl time.Duration) error {
	return st.client.Set(ctx, Key(s.UserID, s.TokenID), s.Role, ttl).Err()
}

// Active reports whether s is still live.
func (st *Store) Active(ctx context.Context, s Session) (bool, error) {
	role, err := st.client.Get(ctx, Key(s.UserID, s.TokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return role == s.Role, nil
}

func (st *Store) Clear(ctx context.Context, s Session) error {
	return st.client.Del(ctx, Key(s.UserID, s.TokenID)).Err()
}
