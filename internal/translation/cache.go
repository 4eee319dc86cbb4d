package translation

import (
	"context"
	"sync"

	"codeberg.org/snonux/vidrecall/internal/language"
)

type cacheKey struct {
	lang language.Code
	text string
}

// Cache stores translations in memory, keyed by language and text
type Cache struct {
	mu           sync.RWMutex
	translations map[cacheKey]string
}

// NewCache creates a new translation cache
func NewCache() *Cache {
	return &Cache{
		translations: make(map[cacheKey]string),
	}
}

// Add adds a translation to the cache
func (c *Cache) Add(lang language.Code, text, translation string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations[cacheKey{lang, text}] = translation
}

// Get retrieves a translation from the cache
func (c *Cache) Get(lang language.Code, text string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translation, ok := c.translations[cacheKey{lang, text}]
	return translation, ok
}

// Len returns the number of cached translations
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.translations)
}

// CachingTranslator answers repeated requests from a Cache
type CachingTranslator struct {
	next  Translator
	cache *Cache
}

// NewCachingTranslator wraps next with cache
func NewCachingTranslator(next Translator, cache *Cache) *CachingTranslator {
	if cache == nil {
		cache = NewCache()
	}
	return &CachingTranslator{next: next, cache: cache}
}

// Translate returns a cached translation or asks next and remembers the result.
// Failures are not cached.
func (t *CachingTranslator) Translate(ctx context.Context, text string, target language.Code) (string, error) {
	if translation, ok := t.cache.Get(target, text); ok {
		return translation, nil
	}
	translation, err := t.next.Translate(ctx, text, target)
	if err != nil {
		return "", err
	}
	t.cache.Add(target, text, translation)
	return translation, nil
}
