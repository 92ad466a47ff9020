package updates

import (
	"context"
	"net/http"
	"time"

	"tb-console/internal/domain"
	"tb-console/internal/shared/apperror"
	"tb-console/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=updates_service.go -destination=mock/updates_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Update, error)
	Post(ctx context.Context, author string, role domain.Role, req PostUpdateRequest) (Update, error)
	Delete(ctx context.Context, id int64, role domain.Role, requester string) error
}

type service struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewService(st store.Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.L()
	}
	return &service{
		store:  st,
		logger: logger.Named("updates.service"),
		now:    time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]Update, error) {
	var feed []Update
	store.GetJSON(ctx, s.store, store.KeyUpdates, &feed)
	return feed, nil
}

func (s *service) Post(ctx context.Context, author string, role domain.Role, req PostUpdateRequest) (Update, error) {
	if req.To == "" {
		req.To = domain.AudienceAll
	}
	if req.TargetUser == "" {
		req.TargetUser = domain.AudienceAll
	}

	now := s.now()
	update := Update{
		ID:         now.UnixMilli(),
		Content:    req.Content,
		Author:     author,
		Role:       role,
		To:         req.To,
		TargetUser: req.TargetUser,
		Timestamp:  now.Format("1/2/2006, 3:04:05 PM"),
	}

	var feed []Update
	store.GetJSON(ctx, s.store, store.KeyUpdates, &feed)
	feed = append([]Update{update}, feed...)

	if err := store.SetJSON(ctx, s.store, store.KeyUpdates, feed); err != nil {
		s.logger.Error("persist updates feed failed", zap.Error(err))
		return Update{}, err
	}

	s.logger.Info("update posted",
		zap.Int64("id", update.ID),
		zap.String("to", update.To),
		zap.String("target_user", update.TargetUser),
	)
	return update, nil
}

// Delete removes one update. Only an admin or the update's author may
// delete it; everyone else sees the post but cannot touch it.
func (s *service) Delete(ctx context.Context, id int64, role domain.Role, requester string) error {
	var feed []Update
	store.GetJSON(ctx, s.store, store.KeyUpdates, &feed)

	kept := feed[:0]
	found := false
	for _, u := range feed {
		if u.ID == id {
			if role != domain.RoleAdmin && u.Author != requester {
				return apperror.New(apperror.CodeForbidden,
					"only the author or an admin can delete an update", http.StatusForbidden)
			}
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return apperror.New(apperror.CodeNotFound, "update not found", http.StatusNotFound)
	}
	return store.SetJSON(ctx, s.store, store.KeyUpdates, kept)
}
