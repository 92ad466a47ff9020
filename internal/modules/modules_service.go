package modules

import (
	"context"
	"net/http"
	"time"

	"tb-console/internal/shared/apperror"
	"tb-console/internal/store"
	"tb-console/internal/upstream"

	"go.uber.org/zap"
)

// ProjectLister supplies the project list for the progress roll-up.
type ProjectLister interface {
	ListProjects(ctx context.Context) ([]upstream.Project, error)
}

//go:generate mockgen -source=modules_service.go -destination=mock/modules_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, projectID int) ([]Module, error)
	Add(ctx context.Context, projectID int, req AddModuleRequest) (Module, error)
	Toggle(ctx context.Context, projectID int, moduleID int64) (Module, error)
	Remove(ctx context.Context, projectID int, moduleID int64) error
	Progress(ctx context.Context, projectID int) (int, error)
	ProgressAll(ctx context.Context) ([]ProjectProgress, error)
}

type service struct {
	store    store.Store
	projects ProjectLister
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(st store.Store, projects ProjectLister, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{
		store:    st,
		projects: projects,
		logger:   logger.Named("modules.service"),
		now:      time.Now,
	}
}

func (s *service) List(ctx context.Context, projectID int) ([]Module, error) {
	var list []Module
	store.GetJSON(ctx, s.store, store.ProjectModulesKey(projectID), &list)
	return list, nil
}

func (s *service) Add(ctx context.Context, projectID int, req AddModuleRequest) (Module, error) {
	module := Module{
		ID:          s.now().UnixMilli(),
		Name:        req.Name,
		Description: req.Description,
		Status:      StatusPending,
	}

	key := store.ProjectModulesKey(projectID)
	var list []Module
	store.GetJSON(ctx, s.store, key, &list)
	list = append(list, module)

	if err := store.SetJSON(ctx, s.store, key, list); err != nil {
		s.logger.Error("persist module list failed",
			zap.Int("project_id", projectID), zap.Error(err))
		return Module{}, err
	}

	s.logger.Info("module added",
		zap.Int("project_id", projectID), zap.Int64("module_id", module.ID))
	return module, nil
}

func (s *service) Toggle(ctx context.Context, projectID int, moduleID int64) (Module, error) {
	key := store.ProjectModulesKey(projectID)
	var list []Module
	store.GetJSON(ctx, s.store, key, &list)

	for i := range list {
		if list[i].ID != moduleID {
			continue
		}
		if list[i].Status == StatusCompleted {
			list[i].Status = StatusPending
		} else {
			list[i].Status = StatusCompleted
		}
		if err := store.SetJSON(ctx, s.store, key, list); err != nil {
			return Module{}, err
		}
		return list[i], nil
	}
	return Module{}, apperror.New(apperror.CodeNotFound, "module not found", http.StatusNotFound)
}

func (s *service) Remove(ctx context.Context, projectID int, moduleID int64) error {
	key := store.ProjectModulesKey(projectID)
	var list []Module
	store.GetJSON(ctx, s.store, key, &list)

	kept := list[:0]
	found := false
	for _, m := range list {
		if m.ID == moduleID {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return apperror.New(apperror.CodeNotFound, "module not found", http.StatusNotFound)
	}
	return store.SetJSON(ctx, s.store, key, kept)
}

func (s *service) Progress(ctx context.Context, projectID int) (int, error) {
	list, err := s.List(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return Progress(list), nil
}

// ProgressAll joins the upstream project list against the local module
// lists. Projects without a tracked list report 0.
func (s *service) ProgressAll(ctx context.Context) ([]ProjectProgress, error) {
	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProjectProgress, 0, len(projects))
	for _, p := range projects {
		var list []Module
		store.GetJSON(ctx, s.store, store.ProjectModulesKey(p.ProjectID), &list)
		out = append(out, ProjectProgress{
			ProjectID: p.ProjectID,
			Name:      p.Name,
			Progress:  Progress(list),
			Modules:   len(list),
		})
	}
	return out, nil
}
