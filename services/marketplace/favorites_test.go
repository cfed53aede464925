package marketplace

import (
	"context"
	"reflect"
	"testing"

	"apna/database/kv"
	"apna/utils"
)

func TestFavoritesToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	fav := NewFavorites(store)
	fav.Set(ctx, []string{"1", "3"})

	if saved := fav.Toggle(ctx, "5"); !saved {
		t.Fatal("expected provider 5 to be saved")
	}
	if got := fav.IDs(ctx); !reflect.DeepEqual(got, []string{"1", "3", "5"}) {
		t.Fatalf("expected [1 3 5], got %v", got)
	}
	if saved := fav.Toggle(ctx, "5"); saved {
		t.Fatal("expected provider 5 to be removed")
	}
	if got := fav.IDs(ctx); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Fatalf("expected original set [1 3], got %v", got)
	}

	raw, _ := store.Get(ctx, utils.FavoriteProvidersKey)
	if raw != `["1","3"]` {
		t.Fatalf("unexpected persisted value %s", raw)
	}
}

func TestFavoritesIsFavorite(t *testing.T) {
	ctx := context.Background()
	fav := NewFavorites(kv.NewMemoryStore())
	if fav.IsFavorite(ctx, "1") {
		t.Fatal("expected empty favorites")
	}
	fav.Toggle(ctx, "1")
	if !fav.IsFavorite(ctx, "1") {
		t.Fatal("expected provider 1 saved")
	}
}

func TestFavoritesToleratesBadData(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: `not json`, want: []string{}},
		{raw: `{"1":true}`, want: []string{}},
		{raw: `["1", 2, null, "4", {"id":"5"}]`, want: []string{"1", "4"}},
		{raw: `[]`, want: []string{}},
	}
	for _, tc := range tests {
		store := kv.NewMemoryStore()
		store.Set(ctx, utils.FavoriteProvidersKey, tc.raw)
		if got := NewFavorites(store).IDs(ctx); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("raw %s: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestFavoritesWithoutStore(t *testing.T) {
	fav := NewFavorites(nil)
	ctx := context.Background()
	fav.Toggle(ctx, "1")
	if got := fav.IDs(ctx); len(got) != 0 {
		t.Fatalf("expected no favorites without a store, got %v", got)
	}
}
