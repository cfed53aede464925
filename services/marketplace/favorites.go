package marketplace

import (
	"context"
	"encoding/json"
	"sync"

	"apna/database/kv"
	"apna/utils"
)

// Favorites is the customer's saved-provider list, persisted as a JSON array
// of ids. It lives only in the key-value store and is never sent to the
// marketplace store.
type Favorites struct {
	store kv.Store
	mu    sync.Mutex
}

func NewFavorites(store kv.Store) *Favorites {
	return &Favorites{store: store}
}

// IDs returns the saved ids in insertion order. Malformed data reads as empty;
// non-string entries are dropped.
func (f *Favorites) IDs(ctx context.Context) []string {
	if f.store == nil {
		return []string{}
	}
	raw, ok := f.store.Get(ctx, utils.FavoriteProvidersKey)
	if !ok || raw == "" {
		return []string{}
	}
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if id, ok := item.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (f *Favorites) Set(ctx context.Context, ids []string) {
	if f.store == nil {
		return
	}
	if ids == nil {
		ids = []string{}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return
	}
	f.store.Set(ctx, utils.FavoriteProvidersKey, string(payload))
}

func (f *Favorites) IsFavorite(ctx context.Context, providerID string) bool {
	for _, id := range f.IDs(ctx) {
		if id == providerID {
			return true
		}
	}
	return false
}

// Toggle removes providerID if saved, otherwise appends it. It reports
// whether the provider is saved afterwards.
func (f *Favorites) Toggle(ctx context.Context, providerID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.IDs(ctx)
	next := make([]string, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == providerID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, providerID)
	}
	f.Set(ctx, next)
	return !found
}
