package blacklist

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	UserBlackList  = "blacklist:user:"
	TokenBlackList = "blacklist:token:"
)

var (
	ErrUserBanned   = errors.New("user is banned")
	ErrTokenRevoked = errors.New("token has been revoked")
)

type Blacklist interface {
	BanUser(ctx context.Context, userID string, ttl time.Duration) error
	BanToken(ctx context.Context, token string, ttl time.Duration) error
	CheckUser(ctx context.Context, userID string) error
	CheckToken(ctx context.Context, token string) error
}

type RedisBlacklist struct {
	client      *redis.Client
	userPrefix  string
	tokenPrefix string
}

func NewRedisBlacklist(client *redis.Client, userPrefix, tokenPrefix string) *RedisBlacklist {
	return &RedisBlacklist{
		client:      client,
		userPrefix:  userPrefix,
		tokenPrefix: tokenPrefix,
	}
}

func (b *RedisBlacklist) BanUser(ctx context.Context, userID string, ttl time.Duration) error {
	return b.client.Set(ctx, b.userPrefix+userID, "user_banned", ttl).Err()
}

// BanToken marks an access token as revoked until it would have expired
// anyway, so the key set stays bounded.
func (b *RedisBlacklist) BanToken(ctx context.Context, token string, ttl time.Duration) error {
	return b.client.Set(ctx, b.tokenPrefix+token, "token_banned", ttl).Err()
}

func (b *RedisBlacklist) CheckUser(ctx context.Context, userID string) error {
	err := b.client.Get(ctx, b.userPrefix+userID).Err()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	return ErrUserBanned
}

func (b *RedisBlacklist) CheckToken(ctx context.Context, token string) error {
	err := b.client.Get(ctx, b.tokenPrefix+token).Err()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	return ErrTokenRevoked
}
