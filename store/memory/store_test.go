package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tracreed/ebina/store"
)

func TestPrefix(t *testing.T) {
	s := New(time.Hour)
	defer s.Close()
	ctx := context.Background()

	if _, err := s.Prefix(ctx, 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	for _, prefix := range []string{"e!", ""} {
		if err := s.SetPrefix(ctx, 1, prefix); err != nil {
			t.Fatal(err)
		}
		got, err := s.Prefix(ctx, 1)
		if err != nil || got != prefix {
			t.Errorf("Prefix = %q, %v; want %q", got, err, prefix)
		}
	}

	if err := s.DeletePrefix(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.DeletePrefix(ctx, 1); err != nil {
		t.Errorf("deleting twice: %v", err)
	}
	if _, err := s.Prefix(ctx, 1); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error after delete = %v, want ErrNotFound", err)
	}
}

func TestExpiry(t *testing.T) {
	s := New(20 * time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	_ = s.SetPrefix(ctx, 2, "!")
	time.Sleep(100 * time.Millisecond)

	if _, err := s.Prefix(ctx, 2); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound after expiry", err)
	}
}
