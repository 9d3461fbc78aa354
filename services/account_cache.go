package services

import (
	"context"
	"log"
	"sync"
	"time"

	"main/model"
)

// AccountInfo is the resolved identity of the bridged account.
type AccountInfo struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// FallbackAccount is served whenever a refresh fails, so redirect and
// status endpoints always have a usable identity.
var FallbackAccount = AccountInfo{Username: "unknown", DisplayName: "Unknown User"}

// AccountFetcher is the upstream call the cache wraps.
type AccountFetcher interface {
	GetAccount(ctx context.Context) (*model.Account, error)
}

// AccountCache memoizes the upstream account profile in a single slot.
// The bridge serves exactly one account, so there is no keying. The
// lock is never held across the refresh fetch; concurrent misses may
// double-fetch and the last write wins, which is fine here.
type AccountCache struct {
	mu        sync.Mutex
	fetcher   AccountFetcher
	ttl       time.Duration
	info      AccountInfo
	fetchedAt time.Time
}

func NewAccountCache(fetcher AccountFetcher, ttl time.Duration) *AccountCache {
	return &AccountCache{
		fetcher: fetcher,
		ttl:     ttl,
	}
}

// Get returns the cached identity while it is younger than the TTL,
// refreshing it otherwise. A failed refresh never propagates; it yields
// FallbackAccount and leaves the slot unstamped so the next call
// retries.
func (ac *AccountCache) Get(ctx context.Context) AccountInfo {
	ac.mu.Lock()
	if !ac.fetchedAt.IsZero() && time.Since(ac.fetchedAt) < ac.ttl {
		info := ac.info
		ac.mu.Unlock()
		return info
	}
	ac.mu.Unlock()

	account, err := ac.fetcher.GetAccount(ctx)
	if err != nil {
		log.Printf("Error fetching account info: %v", err)
		return FallbackAccount
	}

	info := AccountInfo{
		Username:    account.Username,
		DisplayName: account.DisplayName,
	}

	ac.mu.Lock()
	ac.info = info
	ac.fetchedAt = time.Now()
	ac.mu.Unlock()

	return info
}
