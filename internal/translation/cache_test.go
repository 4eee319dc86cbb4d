package translation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"codeberg.org/snonux/vidrecall/internal/language"
	"codeberg.org/snonux/vidrecall/internal/testutil"
)

func TestCache(t *testing.T) {
	cache := NewCache()

	if _, found := cache.Get(language.Spanish, "cat"); found {
		t.Error("Expected not found in empty cache")
	}

	cache.Add(language.Spanish, "cat", "gato")
	cache.Add(language.French, "cat", "chat")

	if got, found := cache.Get(language.Spanish, "cat"); !found || got != "gato" {
		t.Errorf("Expected 'gato', got %q (found=%v)", got, found)
	}
	if got, _ := cache.Get(language.French, "cat"); got != "chat" {
		t.Errorf("Expected 'chat', got %q", got)
	}

	cache.Add(language.Spanish, "cat", "gato (animal)")
	if got, _ := cache.Get(language.Spanish, "cat"); got != "gato (animal)" {
		t.Errorf("Expected overwrite, got %q", got)
	}
	if cache.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", cache.Len())
	}
}

func TestCache_Concurrent(t *testing.T) {
	cache := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Add(language.Hindi, "text", "पाठ")
			cache.Get(language.Hindi, "text")
		}()
	}
	wg.Wait()
	if cache.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", cache.Len())
	}
}

func TestCachingTranslator(t *testing.T) {
	mock := &testutil.MockTranslator{
		Translations: map[language.Code]string{language.Spanish: "Hola."},
		Errors:       map[language.Code]error{language.French: errors.New("down")},
	}
	ct := NewCachingTranslator(mock, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := ct.Translate(ctx, "Hello.", language.Spanish)
		if err != nil || got != "Hola." {
			t.Fatalf("Translate() = %q, %v", got, err)
		}
	}
	if n := len(mock.Calls()); n != 1 {
		t.Errorf("Expected 1 upstream call, got %d", n)
	}

	for i := 0; i < 2; i++ {
		if _, err := ct.Translate(ctx, "Hello.", language.French); err == nil {
			t.Error("Expected error")
		}
	}
	if n := len(mock.Calls()); n != 3 {
		t.Errorf("Failures must not be cached, got %d upstream calls", n)
	}
}
