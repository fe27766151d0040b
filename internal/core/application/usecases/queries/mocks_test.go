package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 14, 11, 0, 0, 0, time.Local)

type MockStateReader struct {
	mock.Mock
}

func (m *MockStateReader) Get(ctx context.Context) (*dispatch.State, error) {
	args := m.Called(ctx)
	state, _ := args.Get(0).(*dispatch.State)
	return state, args.Error(1)
}

func readerFor(ctx context.Context, state *dispatch.State) *MockStateReader {
	reader := new(MockStateReader)
	reader.On("Get", ctx).Return(state, nil).Once()
	return reader
}

// fixture builds a state with two couriers, active orders on two days and
// a history including a record whose courier is gone.
func fixture(t *testing.T) *dispatch.State {
	t.Helper()
	state := dispatch.NewState()

	for _, c := range []struct{ id, name, tag string }{{"a", "Ana", "CG"}, {"b", "Bruno", ""}} {
		created, err := courier.NewCourier(kernel.ID(c.id), c.name, c.tag)
		require.NoError(t, err)
		require.NoError(t, state.AddCourier(created))
	}

	active := []struct {
		id, code  string
		courierID kernel.ID
		createdAt time.Time
	}{
		{"o1", "1234", "a", base},
		{"o2", "567", "a", base.Add(time.Minute)},
		{"o3", "123456", "b", base.Add(-24 * time.Hour)},
	}
	for _, o := range active {
		created, err := order.NewOrder(kernel.ID(o.id), o.code, "PIX", o.courierID, "", o.createdAt)
		require.NoError(t, err)
		require.NoError(t, state.AddOrder(created))
	}

	history := []struct {
		id, code  string
		pay       order.Payment
		courierID kernel.ID
		finished  time.Time
	}{
		{"h1", "1111", "PIX", "a", base.Add(time.Hour)},
		{"h2", "222", "Dinheiro", "", base.Add(3 * time.Hour)},
		{"h3", "3333", "PIX", "b", base.Add(2 * time.Hour)},
	}
	for _, h := range history {
		platform, _ := order.DetectPlatform(h.code)
		a, err := order.RestoreArchived(kernel.ID(h.id), h.code, platform, h.pay, h.courierID, kernel.DayKeyOf(base), base, h.finished)
		require.NoError(t, err)
		require.NoError(t, state.AppendHistory(a))
	}

	state.SetDayFilter(kernel.DayKeyOf(base))
	return state
}

// testContext mirrors testing.T.Context (Go 1.24+): the context is cancelled
// just before Cleanup-registered functions run.
func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
