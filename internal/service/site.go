package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// siteInfoCacheTTL is how long a fetched site-info payload is reused before
// the backend is asked again.
const siteInfoCacheTTL = 5 * time.Minute

// SiteServiceOptions groups dependencies for SiteService.
type SiteServiceOptions struct {
	API           ports.SiteInfoAPI
	Logger        *slog.Logger
	FallbackTitle string
	CacheTTL      time.Duration
}

// SiteService serves public instance branding. Failures are soft: when the
// backend cannot be reached the fallback title is served, because branding
// must never block a page load.
type SiteService struct {
	api           ports.SiteInfoAPI
	logger        *slog.Logger
	fallbackTitle string
	cacheTTL      time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	cached    model.SiteInfo
	fetchedAt time.Time
}

// NewSiteService constructs a new SiteService.
func NewSiteService(opts SiteServiceOptions) *SiteService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	title := opts.FallbackTitle
	if title == "" {
		title = "Wisherr"
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = siteInfoCacheTTL
	}
	return &SiteService{
		api:           opts.API,
		logger:        logger,
		fallbackTitle: title,
		cacheTTL:      ttl,
	}
}

// Info returns the instance branding. Concurrent cache misses collapse into
// a single backend fetch.
func (s *SiteService) Info(ctx context.Context) model.SiteInfo {
	s.mu.RLock()
	if !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.cacheTTL {
		info := s.cached
		s.mu.RUnlock()
		return info
	}
	s.mu.RUnlock()

	result, err, _ := s.group.Do("site-info", func() (any, error) {
		info, fetchErr := s.api.SiteInfo(ctx)
		if fetchErr != nil {
			return model.SiteInfo{}, fetchErr
		}
		if info.SiteTitle == "" {
			info.SiteTitle = s.fallbackTitle
		}

		s.mu.Lock()
		s.cached = info
		s.fetchedAt = time.Now()
		s.mu.Unlock()

		return info, nil
	})
	if err != nil {
		s.logger.Warn("site info fetch failed, serving fallback", "error", err)
		return s.fallback()
	}

	info, ok := result.(model.SiteInfo)
	if !ok {
		return s.fallback()
	}
	return info
}

func (s *SiteService) fallback() model.SiteInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// A stale cached payload beats the bare fallback.
	if !s.fetchedAt.IsZero() {
		return s.cached
	}
	return model.SiteInfo{SiteTitle: s.fallbackTitle, AllowRegistration: true}
}
