package browsing

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/luciobotteri/refezionify-web/internal/usecases/menuing"
	"github.com/luciobotteri/refezionify-web/internal/usecases/menuing/mocks"
	"github.com/luciobotteri/refezionify-web/internal/usecases/rendering"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T, svc menuing.Service, now time.Time) (SessionStore, *clockwork.FakeClock, *observability.Metrics) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(now)
	metrics := observability.NewMetricsForTesting()

	factory := func(ctx context.Context) *menuing.Controller {
		return menuing.NewController(ctx, svc, rendering.NewRenderer(time.UTC), clock, metrics, menuing.ControllerConfig{
			Location:     time.UTC,
			FetchTimeout: time.Second,
		})
	}

	store := NewStore(context.Background(), factory, clock, metrics, StoreConfig{Location: time.UTC})
	return store, clock, metrics
}

func waitSettled(t *testing.T, session *Session) domain.ViewState {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	state, err := session.Controller.Wait(ctx)
	require.NoError(t, err)
	return state
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	svc.EXPECT().LoadWeather(gomock.Any()).Return(nil).AnyTimes()
	svc.EXPECT().LoadMonth(gomock.Any(), gomock.Any()).Return(menuing.MonthData{}).AnyTimes()

	store, _, metrics := newTestStore(t, svc, time.Date(2025, time.April, 10, 8, 0, 0, 0, time.UTC))

	first, state, err := store.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.MonthSelection{Month: 4, StartYear: 2024}, state.Selection)

	second, _, err := store.Create(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ActiveSessions))

	_, err = store.Advance(first.ID, domain.Forward)
	require.NoError(t, err)

	assert.Equal(t, 5, waitSettled(t, first).Selection.Month)
	assert.Equal(t, 4, waitSettled(t, second).Selection.Month)
}

func TestStore_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, _, _ := newTestStore(t, mocks.NewMockService(ctrl), time.Now())

	_, err := store.Get("inexistente")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = store.Advance("inexistente", domain.Forward)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	svc.EXPECT().LoadWeather(gomock.Any()).Return(nil).AnyTimes()
	svc.EXPECT().LoadMonth(gomock.Any(), gomock.Any()).Return(menuing.MonthData{}).AnyTimes()

	store, clock, metrics := newTestStore(t, svc, time.Date(2025, time.October, 1, 8, 0, 0, 0, time.UTC))

	old, _, err := store.Create(context.Background())
	require.NoError(t, err)
	waitSettled(t, old)

	clock.Advance(20 * time.Minute)

	recent, _, err := store.Create(context.Background())
	require.NoError(t, err)
	waitSettled(t, recent)

	clock.Advance(15 * time.Minute)

	assert.Equal(t, 1, store.Sweep(30*time.Minute))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ActiveSessions))

	_, err = store.Get(old.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = store.Get(recent.ID)
	assert.NoError(t, err)
}
