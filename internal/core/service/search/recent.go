package search

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"training-reels/internal/core/domain"
	"training-reels/internal/core/port"

	"github.com/samber/lo"
)

// RecentSearchesKey is the storage key of the recent searches list
const RecentSearchesKey = "recent_searches"

type recentStore struct {
	kv     port.KeyValueStore
	logger *slog.Logger

	// mu serializes the read-modify-write of Add against Clear
	mu sync.Mutex
}

// NewRecentStore keeps recent queries as a JSON list under RecentSearchesKey.
// Storage failures are logged at debug and never returned.
func NewRecentStore(kv port.KeyValueStore, logger *slog.Logger) port.RecentSearchStore {
	return &recentStore{kv: kv, logger: logger}
}

// List returns the queries, most recent first
func (r *recentStore) List(ctx context.Context) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(ctx)
}

func (r *recentStore) list(ctx context.Context) []string {
	raw, err := r.kv.Get(ctx, RecentSearchesKey)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			r.logger.Debug("could not read recent searches", "error", err)
		}
		return []string{}
	}

	var queries []string
	if err := json.Unmarshal(raw, &queries); err != nil {
		r.logger.Debug("recent searches are corrupt", "error", err)
		return []string{}
	}

	queries = lo.Uniq(lo.Compact(queries))
	if len(queries) > domain.MaxRecentSearches {
		queries = queries[:domain.MaxRecentSearches]
	}
	return queries
}

// Add moves query to the front, dropping the oldest entry past the capacity
func (r *recentStore) Add(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	queries := append([]string{query}, lo.Without(r.list(ctx), query)...)
	if len(queries) > domain.MaxRecentSearches {
		queries = queries[:domain.MaxRecentSearches]
	}

	raw, err := json.Marshal(queries)
	if err != nil {
		r.logger.Debug("could not encode recent searches", "error", err)
		return
	}
	if err := r.kv.Set(ctx, RecentSearchesKey, raw); err != nil {
		r.logger.Debug("could not write recent searches", "error", err)
	}
}

func (r *recentStore) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.kv.Delete(ctx, RecentSearchesKey); err != nil {
		r.logger.Debug("could not clear recent searches", "error", err)
	}
}
