// Package cache はキーバリュー型キャッシュの抽象とRedis実装を提供する。
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss はキーがキャッシュに存在しないことを示す。
var ErrMiss = errors.New("cache miss")

// Store はバイト列を保持するキャッシュのインターフェース。
type Store interface {
	// Get はキーに対応する値を返す。存在しない場合はErrMissを返す。
	Get(ctx context.Context, key string) ([]byte, error)
	// Set はキーに値を保存する。ttlが0以下の場合は期限なしで保存する。
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
