package provider

import (
	"errors"
	"time"

	"github.com/nftgallery/goapi/base/ctx"
)

var ErrNotFound = errors.New("cache provider: not found")

// Provider is a raw byte cache backend
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
