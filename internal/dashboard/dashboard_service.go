package dashboard

import (
	"context"

	"tb-console/internal/modules"
	"tb-console/internal/notes"
	"tb-console/internal/upstream"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// StatsSource is the slice of the backend client the dashboard needs.
type StatsSource interface {
	GetUserStats(ctx context.Context) (upstream.UserStats, error)
}

// Summary is the landing-page aggregate. Sections the current role
// cannot read, or that failed upstream, come back zeroed rather than
// failing the whole page.
type Summary struct {
	Stats    upstream.UserStats        `json:"stats"`
	Projects []modules.ProjectProgress `json:"projects"`
	Notes    int                       `json:"notes"`
}

type Service struct {
	stats    StatsSource
	progress modules.Service
	notes    notes.Service
	logger   *zap.Logger

	// Concurrent dashboard loads share one aggregation.
	sf singleflight.Group
}

func NewService(stats StatsSource, progress modules.Service, notesSvc notes.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{
		stats:    stats,
		progress: progress,
		notes:    notesSvc,
		logger:   logger.Named("dashboard.service"),
	}
}

func (s *Service) Summary(ctx context.Context) Summary {
	out, _, _ := s.sf.Do("summary", func() (any, error) {
		return s.build(ctx), nil
	})
	return out.(Summary)
}

func (s *Service) build(ctx context.Context) Summary {
	var summary Summary

	stats, err := s.stats.GetUserStats(ctx)
	if err != nil {
		s.logger.Warn("stats section degraded", zap.Error(err))
	} else {
		summary.Stats = stats
	}

	projects, err := s.progress.ProgressAll(ctx)
	if err != nil {
		s.logger.Warn("projects section degraded", zap.Error(err))
	} else {
		summary.Projects = projects
	}

	list, err := s.notes.List(ctx)
	if err != nil {
		s.logger.Warn("notes section degraded", zap.Error(err))
	} else {
		summary.Notes = len(list)
	}

	return summary
}
