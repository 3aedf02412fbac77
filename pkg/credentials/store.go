// Package credentials persists the optional Civitai API key. The key lives
// in two places written together: a durable redis slot that survives
// restarts and a same-origin cookie the browser sends back on its own. Both
// are written only after an import the backend actually accepted, so a key
// that was never validated is never cached.
package credentials

import (
	"context"
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// KeyName is the fixed slot name shared by every sink. Changing it orphans
// previously stored keys.
const KeyName = "civitai-api-key"

// Sink is one place a credential can live.
type Sink interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, value string) error
}

// Store fans Load/Save out over its sinks.
type Store struct {
	sinks []Sink
}

func NewStore(sinks ...Sink) *Store {
	return &Store{sinks: sinks}
}

// With returns a store that additionally writes to request-scoped sinks,
// leaving the receiver untouched.
func (s *Store) With(extra ...Sink) *Store {
	combined := make([]Sink, 0, len(s.sinks)+len(extra))
	combined = append(combined, s.sinks...)
	combined = append(combined, extra...)
	return &Store{sinks: combined}
}

// Load returns the first credential any sink holds. Sinks that fail are
// skipped; their errors surface only when no sink produced a value.
func (s *Store) Load(ctx context.Context) (string, error) {
	var errs []error
	for _, sink := range s.sinks {
		value, err := sink.Load(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if value != "" {
			return value, nil
		}
	}
	return "", errors.Join(errs...)
}

// Save writes the credential to every sink. All sinks are attempted even
// when an earlier one fails.
func (s *Store) Save(ctx context.Context, value string) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Save(ctx, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RedisSink is the durable slot.
type RedisSink struct {
	rdb *redis.Client
}

func NewRedisSink(rdb *redis.Client) *RedisSink {
	return &RedisSink{rdb: rdb}
}

func (s *RedisSink) Load(ctx context.Context) (string, error) {
	value, err := s.rdb.Get(ctx, KeyName).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return value, err
}

func (s *RedisSink) Save(ctx context.Context, value string) error {
	// No expiry: the slot lives until overwritten.
	return s.rdb.Set(ctx, KeyName, value, 0).Err()
}

// CookieSink is the short-lived, same-origin slot attached per request.
type CookieSink struct {
	w http.ResponseWriter
	r *http.Request
}

func NewCookieSink(w http.ResponseWriter, r *http.Request) *CookieSink {
	return &CookieSink{w: w, r: r}
}

func (s *CookieSink) Load(_ context.Context) (string, error) {
	cookie, err := s.r.Cookie(KeyName)
	if errors.Is(err, http.ErrNoCookie) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

func (s *CookieSink) Save(_ context.Context, value string) error {
	http.SetCookie(s.w, &http.Cookie{Name: KeyName, Value: value, Path: "/"})
	return nil
}
