package db

import (
	"fmt"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	mu     sync.Mutex
	shared *gorm.DB
)

// Acquire returns the process-wide GORM handle, connecting on first use and
// reusing the memoized handle afterwards. A handle that no longer answers a
// ping is discarded so the next call reconnects instead of failing forever.
func Acquire(dsn string) (*gorm.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if shared != nil {
		if sqlDB, err := shared.DB(); err == nil && sqlDB.Ping() == nil {
			return shared, nil
		}
		shared = nil
	}

	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	shared = conn
	return shared, nil
}
