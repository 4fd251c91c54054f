package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
)

type stubSiteAPI struct {
	mu    sync.Mutex
	info  model.SiteInfo
	err   error
	calls atomic.Int64
	delay time.Duration
}

func (s *stubSiteAPI) SiteInfo(context.Context) (model.SiteInfo, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info, s.err
}

func (s *stubSiteAPI) set(info model.SiteInfo, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
	s.err = err
}

func TestSiteService_Info(t *testing.T) {
	api := &stubSiteAPI{info: model.SiteInfo{SiteTitle: "My Lists", AllowRegistration: false}}
	service := NewSiteService(SiteServiceOptions{API: api})

	info := service.Info(context.Background())
	assert.Equal(t, "My Lists", info.SiteTitle)
	assert.False(t, info.AllowRegistration)
}

func TestSiteService_InfoIsCached(t *testing.T) {
	api := &stubSiteAPI{info: model.SiteInfo{SiteTitle: "My Lists"}}
	service := NewSiteService(SiteServiceOptions{API: api})

	_ = service.Info(context.Background())
	_ = service.Info(context.Background())
	_ = service.Info(context.Background())

	assert.Equal(t, int64(1), api.calls.Load())
}

func TestSiteService_FallbackOnError(t *testing.T) {
	api := &stubSiteAPI{err: errors.New("backend down")}
	service := NewSiteService(SiteServiceOptions{API: api})

	info := service.Info(context.Background())
	assert.Equal(t, "Wisherr", info.SiteTitle)
	assert.True(t, info.AllowRegistration)
}

func TestSiteService_CustomFallbackTitle(t *testing.T) {
	api := &stubSiteAPI{err: errors.New("backend down")}
	service := NewSiteService(SiteServiceOptions{API: api, FallbackTitle: "Family Wishlists"})

	info := service.Info(context.Background())
	assert.Equal(t, "Family Wishlists", info.SiteTitle)
}

func TestSiteService_EmptyTitleGetsFallback(t *testing.T) {
	api := &stubSiteAPI{info: model.SiteInfo{AllowRegistration: true}}
	service := NewSiteService(SiteServiceOptions{API: api})

	info := service.Info(context.Background())
	assert.Equal(t, "Wisherr", info.SiteTitle)
	assert.True(t, info.AllowRegistration)
}

func TestSiteService_StaleCacheBeatsFallback(t *testing.T) {
	api := &stubSiteAPI{info: model.SiteInfo{SiteTitle: "My Lists", AllowRegistration: true}}
	service := NewSiteService(SiteServiceOptions{API: api, CacheTTL: time.Nanosecond})

	_ = service.Info(context.Background())

	// Backend goes away; the expired cache entry is still better than the
	// hardcoded fallback.
	api.set(model.SiteInfo{}, errors.New("backend down"))
	time.Sleep(time.Millisecond)

	info := service.Info(context.Background())
	assert.Equal(t, "My Lists", info.SiteTitle)
}

func TestSiteService_ConcurrentMissesCollapse(t *testing.T) {
	api := &stubSiteAPI{info: model.SiteInfo{SiteTitle: "My Lists"}, delay: 20 * time.Millisecond}
	service := NewSiteService(SiteServiceOptions{API: api})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = service.Info(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), api.calls.Load())
}
