package handler

import (
	"context"
	"database/sql"
	"time"
)

// DBHealthChecker は *sql.DB を HealthChecker に適合させるアダプタ。
type DBHealthChecker struct {
	db      *sql.DB
	timeout time.Duration
}

// NewDBHealthChecker はDBHealthCheckerを生成する。
// timeoutは疎通確認1回あたりの上限時間。
func NewDBHealthChecker(db *sql.DB, timeout time.Duration) *DBHealthChecker {
	return &DBHealthChecker{db: db, timeout: timeout}
}

// Check はデータベースへの疎通を確認する。
func (c *DBHealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.db.PingContext(ctx)
}

// compile-time interface check
var _ HealthChecker = (*DBHealthChecker)(nil)
