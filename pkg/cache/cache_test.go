package cache

import (
	"testing"
	"time"

	"github.com/metrue/discussing/pkg/models"
)

func TestStore_SetGet(t *testing.T) {
	s := New()

	comments := []models.Comment{
		{ID: "v2ex-1", Author: "u", Content: "hi", Platform: "v2ex"},
	}

	s.Set("v2ex|https://v2ex.com/t/1", comments, time.Minute)

	got, ok := s.Get("v2ex|https://v2ex.com/t/1")
	if !ok {
		t.Fatal("want cache hit, got miss")
	}
	if len(got) != 1 || got[0].ID != "v2ex-1" {
		t.Errorf("want cached comments back, got %+v", got)
	}
}

func TestStore_GetUnknownKey(t *testing.T) {
	s := New()

	if _, ok := s.Get("reddit|https://example.com"); ok {
		t.Error("want cache miss for unknown key, got hit")
	}
}

func TestStore_Expiry(t *testing.T) {
	s := New()

	s.Set("hn|https://news.ycombinator.com/item?id=1", []models.Comment{{ID: "hn-1"}}, 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	if _, ok := s.Get("hn|https://news.ycombinator.com/item?id=1"); ok {
		t.Error("want cache miss after expiry, got hit")
	}
	if s.Len() != 0 {
		t.Errorf("want expired entry dropped, got %d entries", s.Len())
	}
}

func TestStore_NonPositiveTTL(t *testing.T) {
	s := New()

	s.Set("key", []models.Comment{{ID: "hn-1"}}, 0)
	s.Set("key", []models.Comment{{ID: "hn-1"}}, -time.Second)

	if s.Len() != 0 {
		t.Errorf("want no entries stored with non-positive TTL, got %d", s.Len())
	}
}
