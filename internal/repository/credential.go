package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campreg/campreg/internal/domain"
	"github.com/redis/go-redis/v9"
)

const credentialKeyPrefix = "admin:credential:"

// CredentialRepository keeps the admin token and identity durably, until
// logout or the long credential TTL runs out.
type CredentialRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCredentialRepo(client *redis.Client, ttl time.Duration) *CredentialRepository {
	return &CredentialRepository{client: client, ttl: ttl}
}

func (r *CredentialRepository) Get(ctx context.Context, sessionID string) (*domain.Credential, error) {
	data, err := r.client.Get(ctx, credentialKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}

	var c domain.Credential
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}
	return &c, nil
}

func (r *CredentialRepository) Save(ctx context.Context, sessionID string, c *domain.Credential) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	if err := r.client.Set(ctx, credentialKeyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *CredentialRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, credentialKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
