package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"smart-todo/pkg/log"
	"smart-todo/pkg/scope"
)

const (
	limiterCacheSize = 10000
	limiterIdleTTL   = 10 * time.Minute
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limits     *limiterStore
}

// New creates the HTTP middleware set. aiPerMin <= 0 disables rate limiting.
func New(l log.Logger, jwtManager scope.Manager, aiPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limits:     newLimiterStore(aiPerMin),
	}
}

// limiterStore keeps one token bucket per caller. Idle callers fall out of
// the cache after limiterIdleTTL.
type limiterStore struct {
	mu     sync.Mutex
	cache  *expirable.LRU[string, *rate.Limiter]
	perMin int
}

func newLimiterStore(perMin int) *limiterStore {
	return &limiterStore{
		cache:  expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterIdleTTL),
		perMin: perMin,
	}
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lim, ok := s.cache.Get(key); ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)
	s.cache.Add(key, lim)
	return lim
}
