package database

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

const pingAttempts = 3

// pingWithRetry pings the database, retrying resolver failures with
// exponential backoff (1s, 2s, 4s). In containerized deployments the
// database hostname may not resolve for the first seconds after startup;
// anything other than a DNS failure is returned immediately.
func pingWithRetry(ctx context.Context, db *stdsql.DB) error {
	var lastErr error
	for attempt := 0; attempt < pingAttempts; attempt++ {
		if attempt > 0 {
			wait := time.Duration(1<<(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		lastErr = db.PingContext(ctx)
		if lastErr == nil {
			return nil
		}
		if !isResolverFailure(lastErr) {
			return lastErr
		}
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", pingAttempts, lastErr)
}

// isResolverFailure reports whether err looks like a DNS resolution failure.
// The string sentinels cover errors surfaced by proxies and drivers that
// flatten the original net.DNSError into text.
func isResolverFailure(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "getaddrinfo failed") ||
		strings.Contains(msg, "name or service not known")
}
