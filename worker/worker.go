package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"go-calendar-api/core/cache"
	"go-calendar-api/core/config"
	"go-calendar-api/core/constants"
	"go-calendar-api/core/logger"
	calservice "go-calendar-api/modules/calendar/service"
	eventdto "go-calendar-api/modules/event/dto"
	"go-calendar-api/modules/event/repository"
	exportservice "go-calendar-api/modules/export/service"
)

const warmCacheTTL = 10 * time.Minute

// Deps are the collaborators the task handlers need.
type Deps struct {
	Repo     repository.EventRepositoryInterface
	Cache    *cache.Cache
	Export   exportservice.ExportServiceInterface
	Uploader exportservice.Uploader
}

// Server runs the asynq worker and, when backup is enabled, the cron
// scheduler that enqueues the nightly backup task.
type Server struct {
	srv   *asynq.Server
	sched *asynq.Scheduler
	mux   *asynq.ServeMux
}

func NewServer(cfg *config.Config, deps Deps) (*Server, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Worker.Concurrency,
	})

	h := &handlers{deps: deps}
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCacheWarm, h.handleCacheWarm)
	mux.HandleFunc(TypeBackup, h.handleBackup)

	s := &Server{
		srv: srv,
		mux: mux,
	}

	if cfg.Backup.Enabled && deps.Uploader != nil {
		s.sched = asynq.NewScheduler(redisOpt, nil)
		if _, err := s.sched.Register(cfg.Backup.Cron, asynq.NewTask(TypeBackup, nil)); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Server) Start() error {
	if err := s.srv.Start(s.mux); err != nil {
		return err
	}
	if s.sched != nil {
		if err := s.sched.Start(); err != nil {
			s.srv.Shutdown()
			return err
		}
	}
	logger.Info("Worker started")
	return nil
}

func (s *Server) Shutdown() {
	if s.sched != nil {
		s.sched.Shutdown()
	}
	s.srv.Shutdown()
	logger.Info("Worker stopped")
}

type handlers struct {
	deps Deps
}

// handleCacheWarm precomputes the month-grid range query for the
// written event's month and stores it under the current cache version,
// so the next month view is served without hitting Postgres.
func (h *handlers) handleCacheWarm(ctx context.Context, t *asynq.Task) error {
	var payload cacheWarmPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	ref := time.Date(payload.Year, time.Month(payload.Month), 1, 0, 0, 0, 0, time.UTC)
	days := calservice.MonthGrid(ref)
	start := days[0]
	end := calservice.EndOfDay(days[len(days)-1])

	events, err := h.deps.Repo.List(ctx, &start, &end, "")
	if err != nil {
		return err
	}

	key := cache.RangeKey(h.deps.Cache.Version(ctx), &start, &end, "")
	if err := h.deps.Cache.SetJSON(ctx, key, eventdto.ToEventResponses(events), warmCacheTTL); err != nil {
		return err
	}

	logger.Info("Worker:handleCacheWarm",
		"year", payload.Year,
		"month", payload.Month,
		"events", len(events),
	)
	return nil
}

func (h *handlers) handleBackup(ctx context.Context, t *asynq.Task) error {
	if h.deps.Uploader == nil {
		return fmt.Errorf("backup uploader not configured")
	}

	data, appErr := h.deps.Export.ExportICS(ctx)
	if appErr != nil {
		return appErr
	}

	key := exportservice.BackupObjectKey(constants.CalendarName, time.Now())
	return h.deps.Uploader.Upload(ctx, key, data)
}
