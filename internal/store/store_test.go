package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/store"
)

const (
	me    = int64(7)
	rival = int64(9)
)

func confirmed(id int64) domain.Order {
	return domain.Order{ID: id, Status: domain.OrderConfirmed}
}

func acceptedBy(id, driver int64) domain.Order {
	return domain.Order{ID: id, Status: domain.OrderAccepted, LivreurID: driver}
}

func TestUpsertOrder_InsertAndReplace(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	require.True(t, s.UpsertOrder(confirmed(1)))

	got, ok := s.Order(1)
	require.True(t, ok)
	require.Equal(t, domain.OrderConfirmed, got.Status)

	// a fresher copy of the same id replaces wholesale
	upd := confirmed(1)
	upd.TotalWithDelivery = 42
	require.True(t, s.UpsertOrder(upd))
	got, _ = s.Order(1)
	require.Equal(t, 42.0, got.TotalWithDelivery)
}

func TestUpsertOrder_StaleStatusRejected(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	s.UpsertOrder(acceptedBy(1, me))

	// a stale duplicate pushed later must not regress ACCEPTED to PENDING
	stale := domain.Order{ID: 1, Status: domain.OrderPending}
	require.False(t, s.UpsertOrder(stale))

	got, _ := s.Order(1)
	require.Equal(t, domain.OrderAccepted, got.Status)
	require.Equal(t, me, got.LivreurID)
}

func TestUpsertOrder_AntiFlickerReplay(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	s.UpsertOrder(confirmed(1))
	s.UpsertOrder(acceptedBy(1, rival))

	// replaying the unassigned copy out of order must not resurrect it
	require.False(t, s.UpsertOrder(confirmed(1)))

	_, ok := s.Order(1)
	require.False(t, ok)
	require.Empty(t, s.AvailableOrders())
}

func TestUpsertOrder_TakenIdNeverResurfaces(t *testing.T) {
	t.Parallel()

	s := store.New(me)

	// the rival's broadcast can land before the order was ever pulled
	require.False(t, s.UpsertOrder(acceptedBy(1, rival)))

	// the delayed unassigned copy must not surface an order someone else won
	require.False(t, s.UpsertOrder(confirmed(1)))
	_, ok := s.Order(1)
	require.False(t, ok)
	require.Empty(t, s.AvailableOrders())
}

func TestUpsertRequest_TakenIdNeverResurfaces(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	open := domain.DeliveryRequest{ID: 6, Status: domain.RequestConfirmed}
	s.UpsertRequest(open)

	taken := open
	taken.Status = domain.RequestAccepted
	taken.LivreurID = rival
	require.True(t, s.UpsertRequest(taken))

	require.False(t, s.UpsertRequest(open))
	require.Empty(t, s.AvailableRequests())
}

func TestUpsertOrder_OtherDriverEvicts(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	s.UpsertOrder(confirmed(1))

	require.True(t, s.UpsertOrder(acceptedBy(1, rival)))
	_, ok := s.Order(1)
	require.False(t, ok)
}

func TestUpsertOrder_OtherDriverNeverInserted(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	require.False(t, s.UpsertOrder(acceptedBy(2, rival)))
	_, ok := s.Order(2)
	require.False(t, ok)
}

func TestUpsertOrder_OwnershipSticky(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	s.UpsertOrder(acceptedBy(1, me))

	// a conflicting broadcast naming another driver does not strip my copy;
	// the claim either succeeded (mine) or will be corrected by a refresh
	require.False(t, s.UpsertOrder(acceptedBy(1, rival)))
	got, ok := s.Order(1)
	require.True(t, ok)
	require.Equal(t, me, got.LivreurID)
}

func TestUpsertOrder_MineAlwaysApplies(t *testing.T) {
	t.Parallel()

	s := store.New(me)

	// direct claim response may land before the store ever saw the order
	require.True(t, s.UpsertOrder(acceptedBy(3, me)))
	require.Len(t, s.MyOrders(), 1)

	// and the later acceptance broadcast for the same id is idempotent
	require.True(t, s.UpsertOrder(acceptedBy(3, me)))
	require.Len(t, s.MyOrders(), 1)
}

func TestAvailableOrders_IgnoreIsViewOnly(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	s.UpsertOrder(confirmed(1))
	s.UpsertOrder(confirmed(2))

	s.Ignore(2)
	require.True(t, s.IsIgnored(2))

	avail := s.AvailableOrders()
	require.Len(t, avail, 1)
	require.Equal(t, int64(1), avail[0].ID)

	// ignored orders stay in the store, hidden from the view only
	_, ok := s.Order(2)
	require.True(t, ok)
}

func TestListings_DeterministicOrdering(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	for _, id := range []int64{5, 1, 9, 3} {
		s.UpsertOrder(confirmed(id))
	}

	for range 10 {
		got := s.Orders(nil)
		require.Equal(t, []int64{9, 5, 3, 1}, ids(got))
	}
}

func ids(orders []domain.Order) []int64 {
	out := make([]int64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestUpsertBundle_Rules(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	b := domain.Bundle{ID: 4, Code: "GC-4", Status: domain.BundlePending}
	require.True(t, s.UpsertBundle(b))
	require.Len(t, s.AvailableBundles(), 1)

	taken := b
	taken.Status = domain.BundleAccepted
	taken.LivreurID = rival
	require.True(t, s.UpsertBundle(taken))
	require.Empty(t, s.AvailableBundles())
	_, ok := s.Bundle(4)
	require.False(t, ok)
}

func TestApplyBundleAccepted_Atomic(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	s.UpsertOrder(confirmed(10))
	s.UpsertOrder(confirmed(11))

	b := domain.Bundle{
		ID:        4,
		Code:      "GC-4",
		Status:    domain.BundleAccepted,
		LivreurID: me,
		Orders:    []domain.Order{acceptedBy(10, me), acceptedBy(11, me)},
	}
	s.ApplyBundleAccepted(b)

	require.Len(t, s.MyBundles(), 1)
	require.Len(t, s.MyOrders(), 2)
	require.Empty(t, s.AvailableOrders())
}

func TestUpsertRequest_Rules(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	r := domain.DeliveryRequest{ID: 6, Status: domain.RequestConfirmed}
	require.True(t, s.UpsertRequest(r))
	require.Len(t, s.AvailableRequests(), 1)

	mine := r
	mine.Status = domain.RequestAccepted
	mine.LivreurID = me
	require.True(t, s.UpsertRequest(mine))
	require.Empty(t, s.AvailableRequests())
	require.Len(t, s.MyRequests(), 1)

	// stale pending replay does not flicker it back
	require.False(t, s.UpsertRequest(r))
	require.Len(t, s.MyRequests(), 1)
}

func TestReset_ClearsEverything(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	s.UpsertOrder(confirmed(1))
	s.UpsertBundle(domain.Bundle{ID: 2, Status: domain.BundlePending})
	s.UpsertRequest(domain.DeliveryRequest{ID: 3, Status: domain.RequestConfirmed})
	s.Ignore(1)

	s.Reset()

	require.Empty(t, s.Orders(nil))
	require.Empty(t, s.Bundles(nil))
	require.Empty(t, s.Requests(nil))
	require.False(t, s.IsIgnored(1))
}

func TestReset_ForgetsTakenIds(t *testing.T) {
	t.Parallel()

	s := store.New(me)
	s.UpsertOrder(confirmed(1))
	s.UpsertOrder(acceptedBy(1, rival))
	s.Reset()

	// a fresh session starts from whatever the backend serves
	require.True(t, s.UpsertOrder(confirmed(1)))
	require.Len(t, s.AvailableOrders(), 1)
}
