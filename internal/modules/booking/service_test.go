package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salonbook/internal/database/testdb"
	"salonbook/internal/domain"
	"salonbook/internal/repository"
)

type fixture struct {
	store     *repository.Store
	master    *domain.Master
	procedure *domain.Procedure
	slots     []domain.ScheduleSlot
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := repository.NewStore(testdb.Open(t))

	m := &domain.Master{Name: "Olena Koval", Specialization: "colorist"}
	require.NoError(t, store.Masters.Create(ctx, m))
	p := &domain.Procedure{Title: "Coloring", Price: 1200}
	require.NoError(t, store.Procedures.Create(ctx, p))
	require.NoError(t, store.Procedures.Link(ctx, m.ID, p.ID))

	for _, tm := range []string{"10:00", "12:00"} {
		require.NoError(t, store.Slots.Create(ctx, &domain.ScheduleSlot{MasterID: m.ID, WorkDate: "2026-03-01", WorkTime: tm, IsAvailable: domain.SlotAvailable}))
	}
	slots, err := store.Slots.ListAvailable(ctx, m.ID)
	require.NoError(t, err)

	return &fixture{store: store, master: m, procedure: p, slots: slots}
}

func (f *fixture) request(slotID int64) ReserveRequest {
	return ReserveRequest{
		MasterID:    f.master.ID,
		ProcedureID: f.procedure.ID,
		SlotID:      slotID,
		Name:        " Ivan Petrenko ",
		Phone:       "0671234567",
	}
}

func count(t *testing.T, store *repository.Store, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, store.DB().Table(table).Count(&n).Error)
	return n
}

func TestValidateName(t *testing.T) {
	name, err := ValidateName("  Ivan Petrenko ")
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrenko", name)

	for _, bad := range []string{"Ivan", "Iv P", "", "     "} {
		_, err := ValidateName(bad)
		assert.ErrorIs(t, err, domain.ErrValidation, bad)
	}
}

func TestValidatePhone(t *testing.T) {
	phone, err := ValidatePhone(" 0671234567")
	require.NoError(t, err)
	assert.Equal(t, "0671234567", phone)

	for _, bad := range []string{"067123456", "06712345678", "067-123456", "+380671234"} {
		_, err := ValidatePhone(bad)
		assert.ErrorIs(t, err, domain.ErrValidation, bad)
	}
}

func TestService_Reserve_Success(t *testing.T) {
	f := setupFixture(t)
	svc := NewService(f.store, domain.ClientAlwaysNew, zap.NewNop())
	ctx := context.Background()

	b, err := svc.Reserve(ctx, f.request(f.slots[0].ID))
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "2026-03-01 10:00", b.FullTime)
	require.NotNil(t, b.Client)
	assert.Equal(t, "Ivan Petrenko", b.Client.Name)
	_, err = uuid.Parse(b.Reference)
	assert.NoError(t, err)

	assert.Equal(t, int64(1), count(t, f.store, "clients"))
	assert.Equal(t, int64(1), count(t, f.store, "bookings"))

	slot, err := f.store.Slots.GetByID(ctx, f.slots[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotBooked, slot.IsAvailable)

	avail, err := f.store.Slots.ListAvailable(ctx, f.master.ID)
	require.NoError(t, err)
	require.Len(t, avail, 1)
	assert.Equal(t, f.slots[1].ID, avail[0].ID)
}

func TestService_Reserve_SlotTakenTwice(t *testing.T) {
	f := setupFixture(t)
	svc := NewService(f.store, domain.ClientAlwaysNew, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Reserve(ctx, f.request(f.slots[0].ID))
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, f.request(f.slots[0].ID))
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	assert.Equal(t, int64(1), count(t, f.store, "clients"))
	assert.Equal(t, int64(1), count(t, f.store, "bookings"))
}

func TestService_Reserve_ProcedureNotOfferedRollsBack(t *testing.T) {
	f := setupFixture(t)
	svc := NewService(f.store, domain.ClientAlwaysNew, zap.NewNop())
	ctx := context.Background()

	other := &domain.Procedure{Title: "Manicure", Price: 500}
	require.NoError(t, f.store.Procedures.Create(ctx, other))

	req := f.request(f.slots[0].ID)
	req.ProcedureID = other.ID
	_, err := svc.Reserve(ctx, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	slot, err := f.store.Slots.GetByID(ctx, f.slots[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotAvailable, slot.IsAvailable)
	assert.Zero(t, count(t, f.store, "clients"))
	assert.Zero(t, count(t, f.store, "bookings"))
}

func TestService_Reserve_WrongMasterOrMissingSlot(t *testing.T) {
	f := setupFixture(t)
	svc := NewService(f.store, domain.ClientAlwaysNew, zap.NewNop())
	ctx := context.Background()

	req := f.request(f.slots[0].ID)
	req.MasterID = f.master.ID + 100
	_, err := svc.Reserve(ctx, req)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	_, err = svc.Reserve(ctx, f.request(9999))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, count(t, f.store, "bookings"))
}

func TestService_Reserve_InvalidInputTouchesNothing(t *testing.T) {
	f := setupFixture(t)
	svc := NewService(f.store, domain.ClientAlwaysNew, zap.NewNop())
	ctx := context.Background()

	req := f.request(f.slots[0].ID)
	req.Name = "Ivan"
	_, err := svc.Reserve(ctx, req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = f.request(f.slots[0].ID)
	req.Phone = "12345"
	_, err = svc.Reserve(ctx, req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	avail, err := f.store.Slots.ListAvailable(ctx, f.master.ID)
	require.NoError(t, err)
	assert.Len(t, avail, 2)
}

func TestService_Reserve_ClientStrategies(t *testing.T) {
	cases := []struct {
		strategy domain.ClientStrategy
		clients  int64
	}{
		{domain.ClientAlwaysNew, 2},
		{domain.ClientReuseByPhone, 1},
	}

	for _, tc := range cases {
		t.Run(string(tc.strategy), func(t *testing.T) {
			f := setupFixture(t)
			svc := NewService(f.store, tc.strategy, zap.NewNop())
			ctx := context.Background()

			first, err := svc.Reserve(ctx, f.request(f.slots[0].ID))
			require.NoError(t, err)
			second, err := svc.Reserve(ctx, f.request(f.slots[1].ID))
			require.NoError(t, err)

			assert.Equal(t, tc.clients, count(t, f.store, "clients"))
			assert.Equal(t, tc.strategy == domain.ClientReuseByPhone, first.ClientID == second.ClientID)
		})
	}
}

func TestService_PendingAndConfirm(t *testing.T) {
	f := setupFixture(t)
	svc := NewService(f.store, domain.ClientAlwaysNew, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Reserve(ctx, f.request(f.slots[0].ID))
	require.NoError(t, err)
	second, err := svc.Reserve(ctx, f.request(f.slots[1].ID))
	require.NoError(t, err)

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, "Olena Koval", pending[0].MasterName)
	assert.Equal(t, "Coloring", pending[0].ProcedureTitle)
	assert.Equal(t, "Ivan Petrenko", pending[0].ClientName)

	require.NoError(t, svc.Confirm(ctx, first.ID))
	require.NoError(t, svc.Confirm(ctx, first.ID))

	pending, err = svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	assert.ErrorIs(t, svc.Confirm(ctx, 4242), domain.ErrNotFound)
}
