package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"tb-console/internal/domain"
	"tb-console/internal/session"
	"tb-console/internal/store"
	"tb-console/internal/updates"
	"tb-console/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessions struct {
	sess session.Session
}

func (f *fakeSessions) Current() session.Session { return f.sess }

type fakeAssignments struct {
	MyAssignmentsFunc func(ctx context.Context) ([]upstream.Assignment, error)
	calls             int
}

func (f *fakeAssignments) MyAssignments(ctx context.Context) ([]upstream.Assignment, error) {
	f.calls++
	if f.MyAssignmentsFunc == nil {
		return nil, nil
	}
	return f.MyAssignmentsFunc(ctx)
}

type fakeUpdates struct {
	ListFunc func(ctx context.Context) ([]updates.Update, error)
}

func (f *fakeUpdates) List(ctx context.Context) ([]updates.Update, error) {
	if f.ListFunc == nil {
		return nil, nil
	}
	return f.ListFunc(ctx)
}

type fakePlayer struct {
	plays int
}

func (f *fakePlayer) Play() { f.plays++ }

func employeeSession(email string) session.Session {
	return session.Session{Token: "t", Role: domain.RoleEmployee, UserID: 7, Email: email}
}

func assignmentList(ids ...int) []upstream.Assignment {
	out := make([]upstream.Assignment, 0, len(ids))
	for _, id := range ids {
		out = append(out, upstream.Assignment{AssignmentID: id, ProjectName: "Apollo"})
	}
	return out
}

func newTestPoller(sess session.Session, a *fakeAssignments, u *fakeUpdates) (*Poller, store.Store, *fakePlayer) {
	st := store.NewMemory()
	player := &fakePlayer{}
	p := NewPoller(&fakeSessions{sess: sess}, a, u, st, player, time.Second, zap.NewNop())
	return p, st, player
}

func TestPollerNotifiesUnseenAssignments(t *testing.T) {
	a := &fakeAssignments{MyAssignmentsFunc: func(context.Context) ([]upstream.Assignment, error) {
		return assignmentList(1, 2, 3), nil
	}}
	p, st, player := newTestPoller(employeeSession("emp@tb.io"), a, &fakeUpdates{})

	require.NoError(t, store.SetJSON(context.Background(), st, store.SeenAssignmentsKey("emp@tb.io"), []int{1}))

	count := p.CheckNow(context.Background())
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, player.plays)
	assert.True(t, p.Unread())

	items := p.Open()
	require.Len(t, items, 2)
	assert.Equal(t, KindAssignment, items[0].Kind)
	assert.Equal(t, "/my-assignments", items[0].Link)
	assert.Contains(t, items[0].Message, "Apollo")
	assert.False(t, p.Unread(), "opening the list marks it read")

	var seen []int
	require.True(t, store.GetJSON(context.Background(), st, store.SeenAssignmentsKey("emp@tb.io"), &seen))
	assert.ElementsMatch(t, []int{1, 2, 3}, seen)
}

func TestPollerSeenAssignmentsReplacedNotUnioned(t *testing.T) {
	current := assignmentList(1, 2)
	a := &fakeAssignments{MyAssignmentsFunc: func(context.Context) ([]upstream.Assignment, error) {
		return current, nil
	}}
	p, _, _ := newTestPoller(employeeSession("emp@tb.io"), a, &fakeUpdates{})

	assert.Equal(t, 2, p.CheckNow(context.Background()))

	// Assignment 2 is released.
	current = assignmentList(1)
	assert.Equal(t, 0, p.CheckNow(context.Background()))

	// Still gone: nothing new.
	assert.Equal(t, 0, p.CheckNow(context.Background()))

	// Reassigned after absence: it left the seen-set, so it notifies again.
	current = assignmentList(1, 2)
	assert.Equal(t, 1, p.CheckNow(context.Background()))
}

func TestPollerSkipsAssignmentsForNonEmployees(t *testing.T) {
	a := &fakeAssignments{MyAssignmentsFunc: func(context.Context) ([]upstream.Assignment, error) {
		return assignmentList(1), nil
	}}
	sess := session.Session{Token: "t", Role: domain.RoleHR, UserID: 3, Email: "hr@tb.io"}
	p, _, _ := newTestPoller(sess, a, &fakeUpdates{})

	assert.Equal(t, 0, p.CheckNow(context.Background()))
	assert.Equal(t, 0, a.calls, "only employees poll the assignment feed")
}

func TestPollerSkipsWhenLoggedOut(t *testing.T) {
	a := &fakeAssignments{}
	p, _, player := newTestPoller(session.Session{}, a, &fakeUpdates{})

	assert.Equal(t, 0, p.CheckNow(context.Background()))
	assert.Equal(t, 0, a.calls)
	assert.Equal(t, 0, player.plays)
}

func TestPollerUpdateVisibilityAndUnion(t *testing.T) {
	feed := []updates.Update{
		{ID: 10, Content: "own post", Author: "emp@tb.io", To: domain.AudienceAll, TargetUser: domain.AudienceAll},
		{ID: 11, Content: "for hr", Author: "admin@tb.io", To: string(domain.RoleHR), TargetUser: domain.AudienceAll},
		{ID: 12, Content: "for me", Author: "admin@tb.io", Role: domain.RoleAdmin, To: string(domain.RoleEmployee), TargetUser: "emp@tb.io"},
		{ID: 13, Content: "broadcast", Author: "pm@tb.io", Role: domain.RolePM, To: domain.AudienceAll, TargetUser: domain.AudienceAll},
	}
	u := &fakeUpdates{ListFunc: func(context.Context) ([]updates.Update, error) {
		return feed, nil
	}}
	sess := session.Session{Token: "t", Role: domain.RoleEmployee, UserID: 7, Email: "emp@tb.io"}
	a := &fakeAssignments{MyAssignmentsFunc: func(context.Context) ([]upstream.Assignment, error) {
		return nil, nil
	}}
	p, st, _ := newTestPoller(sess, a, u)

	assert.Equal(t, 2, p.CheckNow(context.Background()), "own post and HR-targeted post filtered out")

	var seen []int64
	require.True(t, store.GetJSON(context.Background(), st, store.SeenUpdatesKey("emp@tb.io"), &seen))
	assert.ElementsMatch(t, []int64{12, 13}, seen)

	// Same feed again: everything relevant is already seen.
	assert.Equal(t, 0, p.CheckNow(context.Background()))

	// An update deleted from the feed stays in the seen-set. If it were
	// reposted with the same id it would stay silent, unlike assignments.
	feed = feed[2:]
	assert.Equal(t, 0, p.CheckNow(context.Background()))
	seen = nil
	require.True(t, store.GetJSON(context.Background(), st, store.SeenUpdatesKey("emp@tb.io"), &seen))
	assert.ElementsMatch(t, []int64{12, 13}, seen)
}

func TestPollerAssignmentFailureStillChecksUpdates(t *testing.T) {
	a := &fakeAssignments{MyAssignmentsFunc: func(context.Context) ([]upstream.Assignment, error) {
		return nil, errors.New("upstream down")
	}}
	u := &fakeUpdates{ListFunc: func(context.Context) ([]updates.Update, error) {
		return []updates.Update{
			{ID: 20, Content: "hi", Author: "admin@tb.io", To: domain.AudienceAll, TargetUser: domain.AudienceAll},
		}, nil
	}}
	p, _, player := newTestPoller(employeeSession("emp@tb.io"), a, u)

	assert.Equal(t, 1, p.CheckNow(context.Background()))
	assert.Equal(t, 1, player.plays)
}

func TestPollerClearAllKeepsSeenSets(t *testing.T) {
	a := &fakeAssignments{MyAssignmentsFunc: func(context.Context) ([]upstream.Assignment, error) {
		return assignmentList(1), nil
	}}
	p, _, _ := newTestPoller(employeeSession("emp@tb.io"), a, &fakeUpdates{})

	require.Equal(t, 1, p.CheckNow(context.Background()))
	p.ClearAll()
	assert.Empty(t, p.Open())
	assert.False(t, p.Unread())

	// The seen-set survived the clear, so nothing resurfaces.
	assert.Equal(t, 0, p.CheckNow(context.Background()))
}

func TestPollerPrependsNewestFirst(t *testing.T) {
	current := assignmentList(1)
	a := &fakeAssignments{MyAssignmentsFunc: func(context.Context) ([]upstream.Assignment, error) {
		return current, nil
	}}
	p, _, _ := newTestPoller(employeeSession("emp@tb.io"), a, &fakeUpdates{})

	require.Equal(t, 1, p.CheckNow(context.Background()))
	current = assignmentList(1, 2)
	require.Equal(t, 1, p.CheckNow(context.Background()))

	items := p.Open()
	require.Len(t, items, 2)
	assert.Equal(t, "assign_2", items[0].ID)
	assert.Equal(t, "assign_1", items[1].ID)
}
