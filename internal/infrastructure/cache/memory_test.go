package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/renvare/backend/internal/domain"
)

func TestMemoryCacheSetAndGet(t *testing.T) {
	c := NewMemoryCacheWithCleanup(time.Hour)
	defer c.Close()
	ctx := context.Background()

	t.Run("returns stored value with its original type", func(t *testing.T) {
		products := []domain.Product{{Name: "Lettmelk", Price: 20}}
		if err := c.Set(ctx, "search:melk", products, time.Minute); err != nil {
			t.Fatalf("Set: %v", err)
		}

		value, err := c.Get(ctx, "search:melk")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}

		got, ok := value.([]domain.Product)
		if !ok {
			t.Fatalf("value type = %T, want []domain.Product", value)
		}
		if len(got) != 1 || got[0].Name != "Lettmelk" {
			t.Errorf("value = %v", got)
		}
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		_, err := c.Get(ctx, "nope")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("miss on expired key", func(t *testing.T) {
		if err := c.Set(ctx, "short", "value", time.Millisecond); err != nil {
			t.Fatalf("Set: %v", err)
		}
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "short")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss for expired entry", err)
		}
	})
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCacheWithCleanup(time.Hour)
	defer c.Close()
	ctx := context.Background()

	_ = c.Set(ctx, "key", "value", time.Minute)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := c.Get(ctx, "key"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("error = %v, want ErrCacheMiss after delete", err)
	}
}

func TestMemoryCacheExists(t *testing.T) {
	c := NewMemoryCacheWithCleanup(time.Hour)
	defer c.Close()
	ctx := context.Background()

	exists, _ := c.Exists(ctx, "key")
	if exists {
		t.Error("Exists = true before Set")
	}

	_ = c.Set(ctx, "key", "value", time.Minute)
	exists, _ = c.Exists(ctx, "key")
	if !exists {
		t.Error("Exists = false after Set")
	}

	_ = c.Set(ctx, "expired", "value", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	exists, _ = c.Exists(ctx, "expired")
	if exists {
		t.Error("Exists = true for expired entry")
	}
}

func TestMemoryCacheSizeAndClear(t *testing.T) {
	c := NewMemoryCacheWithCleanup(time.Hour)
	defer c.Close()
	ctx := context.Background()

	_ = c.Set(ctx, "a", 1, time.Minute)
	_ = c.Set(ctx, "b", 2, time.Minute)

	if c.Size() != 2 {
		t.Errorf("Size = %d, want 2", c.Size())
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size = %d after Clear, want 0", c.Size())
	}
}

func TestMemoryCacheCleanupEvictsExpired(t *testing.T) {
	c := NewMemoryCacheWithCleanup(10 * time.Millisecond)
	defer c.Close()
	ctx := context.Background()

	_ = c.Set(ctx, "short", "value", time.Millisecond)
	_ = c.Set(ctx, "long", "value", time.Hour)

	time.Sleep(50 * time.Millisecond)

	if c.Size() != 1 {
		t.Errorf("Size = %d after cleanup, want 1", c.Size())
	}
}
