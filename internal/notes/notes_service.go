package notes

import (
	"context"
	"net/http"
	"time"

	"tb-console/internal/shared/apperror"
	"tb-console/internal/store"

	"go.uber.org/zap"
)

type AddNoteRequest struct {
	Topic       string `json:"topic" binding:"required"`
	Description string `json:"description" binding:"required"`
}

//go:generate mockgen -source=notes_service.go -destination=mock/notes_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Note, error)
	Add(ctx context.Context, req AddNoteRequest) (Note, error)
	Delete(ctx context.Context, id int64) error
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
		logger: logger.Named("notes.service"),
		now:    time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]Note, error) {
	var list []Note
	store.GetJSON(ctx, s.store, store.KeyNotes, &list)
	return list, nil
}

func (s *service) Add(ctx context.Context, req AddNoteRequest) (Note, error) {
	now := s.now()
	note := Note{
		ID:          now.UnixMilli(),
		Topic:       req.Topic,
		Description: req.Description,
		CreatedAt:   now.Format("1/2/2006"),
	}

	var list []Note
	store.GetJSON(ctx, s.store, store.KeyNotes, &list)
	list = append([]Note{note}, list...)

	if err := store.SetJSON(ctx, s.store, store.KeyNotes, list); err != nil {
		s.logger.Error("persist notes failed", zap.Error(err))
		return Note{}, err
	}
	return note, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	var list []Note
	store.GetJSON(ctx, s.store, store.KeyNotes, &list)

	kept := list[:0]
	found := false
	for _, n := range list {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return apperror.New(apperror.CodeNotFound, "note not found", http.StatusNotFound)
	}
	return store.SetJSON(ctx, s.store, store.KeyNotes, kept)
}
