package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tb-console/internal/domain"
	"tb-console/internal/session"
	"tb-console/internal/store"
	"tb-console/internal/updates"
	"tb-console/internal/upstream"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SessionSource reads the current session each cycle, so a login or
// logout between ticks is picked up without restarting the poller.
type SessionSource interface {
	Current() session.Session
}

// AssignmentSource is the external change feed for new work.
type AssignmentSource interface {
	MyAssignments(ctx context.Context) ([]upstream.Assignment, error)
}

// UpdatesSource is the local change feed of posted team updates.
type UpdatesSource interface {
	List(ctx context.Context) ([]updates.Update, error)
}

// Poller reconciles both change feeds against the persisted seen-sets
// on a fixed interval and keeps the in-memory notification list.
//
// Assignment semantics: new = fetched minus seen, then the seen-set is
// REPLACED with the fetched id list, so an assignment that disappears
// and later reappears notifies again. Update semantics: newly relevant
// ids are UNIONed into the seen-set and never leave it. The two feeds
// deliberately differ.
type Poller struct {
	sessions    SessionSource
	assignments AssignmentSource
	updatesFeed UpdatesSource
	store       store.Store
	player      Player
	interval    time.Duration
	logger      *zap.Logger

	// Coalesces the ticker and on-demand refreshes: a cycle already in
	// flight is shared instead of run twice.
	sf singleflight.Group

	mu            sync.Mutex
	notifications []Notification
	unread        bool
	now           func() time.Time
}

func NewPoller(
	sessions SessionSource,
	assignments AssignmentSource,
	updatesFeed UpdatesSource,
	st store.Store,
	player Player,
	interval time.Duration,
	logger *zap.Logger,
) *Poller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if logger == nil {
		logger = zap.L()
	}
	if player == nil {
		player = BellPlayer{}
	}
	return &Poller{
		sessions:    sessions,
		assignments: assignments,
		updatesFeed: updatesFeed,
		store:       st,
		player:      player,
		interval:    interval,
		logger:      logger.Named("notify.poller"),
		now:         time.Now,
	}
}

// Run polls until ctx is cancelled. Cancellation stops future cycles;
// it does not abort one already in flight.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("notification poller started", zap.Duration("interval", p.interval))

	// Initial check before the first tick, matching the console's
	// behavior of checking immediately on mount.
	p.CheckNow(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("notification poller stopped")
			return
		case <-ticker.C:
			p.CheckNow(ctx)
		}
	}
}

// CheckNow runs one reconcile cycle. Concurrent callers share a single
// cycle rather than overlapping.
func (p *Poller) CheckNow(ctx context.Context) int {
	count, _, _ := p.sf.Do("cycle", func() (any, error) {
		return p.cycle(ctx), nil
	})
	return count.(int)
}

// cycle is one sequential pass: fetch, diff, notify. A failed
// assignment fetch degrades the cycle, it does not abort it.
func (p *Poller) cycle(ctx context.Context) int {
	sess := p.sessions.Current()
	if !sess.Authenticated() {
		return 0
	}

	var fresh []Notification

	if sess.Role == domain.RoleEmployee {
		fresh = append(fresh, p.checkAssignments(ctx, sess.Email)...)
	}
	fresh = append(fresh, p.checkUpdates(ctx, sess.Role, sess.Email)...)

	if len(fresh) == 0 {
		return 0
	}

	p.mu.Lock()
	p.notifications = append(fresh, p.notifications...)
	p.unread = true
	p.mu.Unlock()

	p.player.Play()
	p.logger.Debug("notifications surfaced", zap.Int("count", len(fresh)))
	return len(fresh)
}

func (p *Poller) checkAssignments(ctx context.Context, email string) []Notification {
	fetched, err := p.assignments.MyAssignments(ctx)
	if err != nil {
		p.logger.Warn("assignment poll failed", zap.Error(err))
		return nil
	}

	seenKey := store.SeenAssignmentsKey(email)
	var seen []int
	store.GetJSON(ctx, p.store, seenKey, &seen)

	seenSet := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	var fresh []Notification
	currentIDs := make([]int, 0, len(fetched))
	for _, a := range fetched {
		currentIDs = append(currentIDs, a.AssignmentID)
		if _, ok := seenSet[a.AssignmentID]; ok {
			continue
		}
		fresh = append(fresh, Notification{
			ID:        fmt.Sprintf("assign_%d", a.AssignmentID),
			Message:   "New assignment: " + a.ProjectName,
			Kind:      KindAssignment,
			Link:      "/my-assignments",
			CreatedAt: p.now(),
		})
	}

	// Replacement, not union: ids that vanished leave the seen-set, so
	// a release-then-reassign surfaces again.
	if err := store.SetJSON(ctx, p.store, seenKey, currentIDs); err != nil {
		p.logger.Error("persist seen assignments failed", zap.Error(err))
	}
	return fresh
}

func (p *Poller) checkUpdates(ctx context.Context, role domain.Role, email string) []Notification {
	feed, err := p.updatesFeed.List(ctx)
	if err != nil {
		p.logger.Warn("updates poll failed", zap.Error(err))
		return nil
	}

	seenKey := store.SeenUpdatesKey(email)
	var seen []int64
	store.GetJSON(ctx, p.store, seenKey, &seen)

	seenSet := make(map[int64]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	var fresh []Notification
	for _, u := range feed {
		if _, ok := seenSet[u.ID]; ok {
			continue
		}
		if !u.VisibleTo(role, email) {
			continue
		}
		fresh = append(fresh, Notification{
			ID:        fmt.Sprintf("update_%d", u.ID),
			Message:   "New update from " + u.Author,
			Kind:      KindUpdate,
			Link:      "/updates",
			CreatedAt: p.now(),
		})
		seen = append(seen, u.ID)
	}

	if len(fresh) > 0 {
		if err := store.SetJSON(ctx, p.store, seenKey, seen); err != nil {
			p.logger.Error("persist seen updates failed", zap.Error(err))
		}
	}
	return fresh
}

// Open returns the notification list and clears the unread flag, the
// way opening the bell dropdown does. The list itself stays.
func (p *Poller) Open() []Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unread = false
	out := make([]Notification, len(p.notifications))
	copy(out, p.notifications)
	return out
}

func (p *Poller) Unread() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unread
}

// ClearAll empties the in-memory list only; the persisted seen-sets are
// untouched, so cleared items do not come back.
func (p *Poller) ClearAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = nil
	p.unread = false
}
