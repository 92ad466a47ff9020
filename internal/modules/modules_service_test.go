package modules

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tb-console/internal/shared/apperror"
	"tb-console/internal/store"
	"tb-console/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProjects struct {
	ListProjectsFunc func(ctx context.Context) ([]upstream.Project, error)
}

func (f *fakeProjects) ListProjects(ctx context.Context) ([]upstream.Project, error) {
	return f.ListProjectsFunc(ctx)
}

func newTestService(projects ProjectLister) (*service, store.Store) {
	st := store.NewMemory()
	svc := NewService(st, projects, zap.NewNop()).(*service)

	// Monotonic clock so ids never collide within a test.
	tick := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	}
	return svc, st
}

func TestProgressRounding(t *testing.T) {
	done := func(name string) Module { return Module{Name: name, Status: StatusCompleted} }
	todo := func(name string) Module { return Module{Name: name, Status: StatusPending} }

	assert.Equal(t, 0, Progress(nil))
	assert.Equal(t, 0, Progress([]Module{todo("a")}))
	assert.Equal(t, 100, Progress([]Module{done("a"), done("b")}))
	assert.Equal(t, 50, Progress([]Module{done("a"), todo("b")}))
	assert.Equal(t, 33, Progress([]Module{done("a"), todo("b"), todo("c")}))
	assert.Equal(t, 67, Progress([]Module{done("a"), done("b"), todo("c")}))
}

func TestAddPersistsFullShape(t *testing.T) {
	svc, st := newTestService(nil)
	ctx := context.Background()

	added, err := svc.Add(ctx, 1, AddModuleRequest{Name: "Design", Description: "wireframes and flows"})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, added.Status)

	// The stored slot must keep the browser console's field layout so
	// an exported localStorage dump stays importable.
	raw, found, err := st.Get(ctx, store.ProjectModulesKey(1))
	require.NoError(t, err)
	require.True(t, found)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Design", entries[0]["name"])
	assert.Equal(t, "wireframes and flows", entries[0]["description"])
	assert.Equal(t, "PENDING", entries[0]["status"])
}

func TestAddToggleRemoveRoundTrip(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	m1, err := svc.Add(ctx, 5, AddModuleRequest{Name: "Design", Description: "UI first"})
	require.NoError(t, err)
	m2, err := svc.Add(ctx, 5, AddModuleRequest{Name: "Build"})
	require.NoError(t, err)
	assert.NotEqual(t, m1.ID, m2.ID)

	list, err := svc.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, StatusPending, list[0].Status)
	assert.Equal(t, "UI first", list[0].Description)

	toggled, err := svc.Toggle(ctx, 5, m1.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, toggled.Status)

	progress, err := svc.Progress(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 50, progress)

	// Toggling again flips it back.
	toggled, err = svc.Toggle(ctx, 5, m1.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, toggled.Status)

	require.NoError(t, svc.Remove(ctx, 5, m2.ID))
	list, err = svc.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m1.ID, list[0].ID)
}

func TestListsAreScopedPerProject(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, AddModuleRequest{Name: "Only in project 1"})
	require.NoError(t, err)

	other, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestToggleUnknownModule(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.Toggle(context.Background(), 5, 999)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)

	err = svc.Remove(context.Background(), 5, 999)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestProgressAll(t *testing.T) {
	projects := &fakeProjects{ListProjectsFunc: func(context.Context) ([]upstream.Project, error) {
		return []upstream.Project{
			{ProjectID: 1, Name: "Apollo"},
			{ProjectID: 2, Name: "Borealis"},
		}, nil
	}}
	svc, _ := newTestService(projects)
	ctx := context.Background()

	m, err := svc.Add(ctx, 1, AddModuleRequest{Name: "Design"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, 1, AddModuleRequest{Name: "Build"})
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, 1, m.ID)
	require.NoError(t, err)

	all, err := svc.ProgressAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ProjectProgress{ProjectID: 1, Name: "Apollo", Progress: 50, Modules: 2}, all[0])
	assert.Equal(t, ProjectProgress{ProjectID: 2, Name: "Borealis", Progress: 0, Modules: 0}, all[1])
}

func TestProgressAllUpstreamFailure(t *testing.T) {
	projects := &fakeProjects{ListProjectsFunc: func(context.Context) ([]upstream.Project, error) {
		return nil, errors.New("upstream down")
	}}
	svc, _ := newTestService(projects)

	_, err := svc.ProgressAll(context.Background())
	assert.Error(t, err)
}
