package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/target/crawl-admin/internal/core"
	"github.com/target/crawl-admin/internal/domain/model"
)

// Dashboard source names, used to mark cards unavailable.
const (
	SourceAccounts = "accounts"
	SourceTasks    = "tasks"
	SourceProxies  = "proxies"
	SourceRaw      = "raw"
	SourceSample   = "sample"
)

const dashboardCacheKey = "dashboard:snapshot"

// DashboardSources groups the backend ports the dashboard aggregates.
type DashboardSources struct {
	Accounts core.AccountAPI
	Tasks    core.TaskAPI
	Proxies  core.ProxyAPI
	Records  core.RecordAPI
}

// DashboardCache configures optional snapshot caching.
type DashboardCache struct {
	Repo core.CacheRepository
	TTL  time.Duration
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Sources DashboardSources // Required
	Cache   DashboardCache   // Optional
	Logger  *slog.Logger     // Optional
}

// DashboardService aggregates the dashboard snapshot from five backend
// sources fetched concurrently.
type DashboardService struct {
	src    DashboardSources
	cache  DashboardCache
	logger *slog.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	s := opts.Sources
	if s.Accounts == nil || s.Tasks == nil || s.Proxies == nil || s.Records == nil {
		panic("all dashboard sources are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{src: s, cache: opts.Cache, logger: logger}
}

// Snapshot returns the aggregated dashboard data. A source that fails is
// listed in Unavailable; only cancellation of ctx fails the call.
func (s *DashboardService) Snapshot(ctx context.Context) (*model.DashboardSnapshot, error) {
	if snap := s.cached(ctx); snap != nil {
		return snap, nil
	}

	snap := &model.DashboardSnapshot{
		StatusCounts: make(map[model.TaskStatus]int),
		RawByYear:    model.YearCounts{},
		SampleByYear: model.YearCounts{},
	}
	var mu sync.Mutex
	fail := func(source string, err error) {
		s.logger.WarnContext(ctx, "dashboard source unavailable", "source", source, "error", err)
		mu.Lock()
		snap.Unavailable = append(snap.Unavailable, source)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accounts, err := collectAll(gctx, s.src.Accounts.ListAccounts)
		if err != nil {
			fail(SourceAccounts, err)
			return nil
		}
		mu.Lock()
		snap.TotalAccounts = len(accounts)
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		tasks, err := collectAll(gctx, s.src.Tasks.ListTasks)
		if err != nil {
			fail(SourceTasks, err)
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		for i := range tasks {
			snap.StatusCounts[tasks[i].Status]++
		}
		snap.RunningTasks = snap.StatusCounts[model.TaskStatusRunning]
		return nil
	})
	g.Go(func() error {
		proxies, err := collectAll(gctx, s.src.Proxies.ListProxies)
		if err != nil {
			fail(SourceProxies, err)
			return nil
		}
		n := 0
		for i := range proxies {
			if proxies[i].Available() {
				n++
			}
		}
		mu.Lock()
		snap.AvailableProxies = n
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		counts, err := s.src.Records.RecordStatsByYear(gctx, model.RecordKindRaw)
		if err != nil {
			fail(SourceRaw, err)
			return nil
		}
		mu.Lock()
		snap.RawByYear, snap.TotalRaw = counts, counts.Total()
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		counts, err := s.src.Records.RecordStatsByYear(gctx, model.RecordKindSample)
		if err != nil {
			fail(SourceSample, err)
			return nil
		}
		mu.Lock()
		snap.SampleByYear, snap.TotalSample = counts, counts.Total()
		mu.Unlock()
		return nil
	})
	_ = g.Wait()
	sort.Strings(snap.Unavailable)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(snap.Unavailable) == 0 {
		s.store(ctx, snap)
	}
	return snap, nil
}

// Invalidate drops the cached snapshot so the next call refetches.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache.Repo == nil {
		return
	}
	if _, err := s.cache.Repo.Delete(ctx, dashboardCacheKey); err != nil {
		s.logger.WarnContext(ctx, "dashboard cache delete failed", "error", err)
	}
}

func (s *DashboardService) cached(ctx context.Context) *model.DashboardSnapshot {
	if s.cache.Repo == nil || s.cache.TTL <= 0 {
		return nil
	}
	raw, err := s.cache.Repo.Get(ctx, dashboardCacheKey)
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard cache read failed", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var snap model.DashboardSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.logger.WarnContext(ctx, "dashboard cache entry unreadable", "error", err)
		return nil
	}
	if snap.StatusCounts == nil {
		snap.StatusCounts = make(map[model.TaskStatus]int)
	}
	return &snap
}

func (s *DashboardService) store(ctx context.Context, snap *model.DashboardSnapshot) {
	if s.cache.Repo == nil || s.cache.TTL <= 0 {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.cache.Repo.Set(ctx, dashboardCacheKey, raw, s.cache.TTL); err != nil {
		s.logger.WarnContext(ctx, "dashboard cache write failed", "error", err)
	}
}
