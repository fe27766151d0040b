package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var baseTime = time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local)

type stateBuilder struct {
	t     *testing.T
	state *dispatch.State
}

func newStateBuilder(t *testing.T) *stateBuilder {
	t.Helper()
	return &stateBuilder{t: t, state: dispatch.NewState()}
}

func (b *stateBuilder) courier(id kernel.ID, name string) *stateBuilder {
	b.t.Helper()
	c, err := courier.RestoreCourier(id, name, "")
	require.NoError(b.t, err)
	require.NoError(b.t, b.state.AddCourier(c))
	return b
}

func (b *stateBuilder) active(id kernel.ID, code string, courierID kernel.ID, createdAt time.Time) *stateBuilder {
	b.t.Helper()
	platform, _ := order.DetectPlatform(code)
	o, err := order.RestoreOrder(id, code, platform, order.DefaultPayment, courierID, kernel.DayKeyOf(createdAt), createdAt)
	require.NoError(b.t, err)
	require.NoError(b.t, b.state.AddOrder(o))
	return b
}

func (b *stateBuilder) archived(id kernel.ID, code string, pay order.Payment, courierID kernel.ID) *stateBuilder {
	b.t.Helper()
	platform, _ := order.DetectPlatform(code)
	a, err := order.RestoreArchived(id, code, platform, pay, courierID, kernel.DayKeyOf(baseTime), baseTime, baseTime.Add(time.Hour))
	require.NoError(b.t, err)
	require.NoError(b.t, b.state.AppendHistory(a))
	return b
}

func (b *stateBuilder) build() *dispatch.State {
	return b.state
}
