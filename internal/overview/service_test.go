package overview

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOverviewWithoutIdentityServesDefaults(t *testing.T) {
	svc := NewService(populatedStore(), zap.NewNop(), nil, time.Second, 8)

	for _, ident := range []*Identity{nil, {UserID: "u1"}} {
		payload := svc.Overview(context.Background(), ident, "pass-1")
		require.NotNil(t, payload)
		assert.Len(t, payload.Sections, len(ClusterOrder))
		assert.Equal(t, "", payload.Meta.CompanyName)
	}
}

func TestOverviewWithoutStoreServesDefaults(t *testing.T) {
	svc := NewService(nil, zap.NewNop(), nil, time.Second, 8)

	payload := svc.Overview(context.Background(), &Identity{UserID: "u1", CompanyID: "co1"}, "pass-1")

	require.NotNil(t, payload)
	assert.Len(t, payload.Sections, len(ClusterOrder))
}

func TestOverviewNeverFailsOnBrokenStore(t *testing.T) {
	store := populatedStore()
	store.err = errFake
	svc := NewService(store, zap.NewNop(), nil, time.Second, 8)

	payload := svc.Overview(context.Background(), &Identity{UserID: "u1", CompanyID: "co1"}, "pass-1")

	require.NotNil(t, payload)
	require.Len(t, payload.Sections, len(ClusterOrder))
	assert.Equal(t, "", payload.Meta.CompanyName)
	for _, section := range payload.Sections {
		assert.NotEmpty(t, section.Summary)
		assert.GreaterOrEqual(t, section.Progress, 0)
		assert.LessOrEqual(t, section.Progress, 100)
	}
}

func TestOverviewMemoizesWithinPass(t *testing.T) {
	store := populatedStore()
	svc := NewService(store, zap.NewNop(), nil, time.Second, 8)
	ident := &Identity{UserID: "u1", CompanyID: "co1"}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Overview(context.Background(), ident, "pass-1")
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), store.fetches.Load(), "one pass must trigger one fan-out fetch")

	svc.EndPass("pass-1")
	svc.Overview(context.Background(), ident, "pass-2")
	assert.Equal(t, int64(2), store.fetches.Load())
}

func TestOverviewRecordsSectionProgress(t *testing.T) {
	rec := newSpyRecorder()
	svc := NewService(populatedStore(), zap.NewNop(), rec, time.Second, 8)

	svc.Overview(context.Background(), &Identity{UserID: "u1", CompanyID: "co1"}, "pass-1")

	assert.Len(t, rec.sections, len(ClusterOrder))
	for _, id := range ClusterOrder {
		_, ok := rec.sections[string(id)]
		assert.True(t, ok, "progress for cluster %s not recorded", id)
	}
}
