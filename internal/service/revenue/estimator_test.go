package revenue_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"service-livreur-client/internal/apperr"
	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/geo"
	"service-livreur-client/internal/service/revenue"
	testlog "service-livreur-client/internal/testutil"
)

func ptr(v float64) *float64 { return &v }

// stubCatalog resolves products to shops and shops to addresses from fixed
// maps. A nil map entry simulates a missing record.
type stubCatalog struct {
	productShop map[int64]int64
	shopAddress map[int64]int64
	addresses   map[int64]domain.Address

	productErr error
	shopCalls  int
}

func (s *stubCatalog) OrderDetails(context.Context, int64) (domain.Order, error) {
	panic("not used")
}

func (s *stubCatalog) ProductByID(_ context.Context, id int64) (domain.Product, error) {
	if s.productErr != nil {
		return domain.Product{}, s.productErr
	}
	shopID, ok := s.productShop[id]
	if !ok {
		return domain.Product{}, apperr.ErrNotFound
	}
	return domain.Product{ID: id, ShopID: shopID}, nil
}

func (s *stubCatalog) ShopByID(_ context.Context, id int64) (domain.Shop, error) {
	s.shopCalls++
	addrID, ok := s.shopAddress[id]
	if !ok {
		return domain.Shop{}, apperr.ErrNotFound
	}
	return domain.Shop{ID: id, AddressID: addrID}, nil
}

func (s *stubCatalog) AddressByID(_ context.Context, id int64) (domain.Address, error) {
	addr, ok := s.addresses[id]
	if !ok {
		return domain.Address{}, apperr.ErrNotFound
	}
	addr.ID = id
	return addr, nil
}

// two shops, three items; items 1 and 3 share shop 100
func twoShopCatalog() *stubCatalog {
	return &stubCatalog{
		productShop: map[int64]int64{1: 100, 2: 200, 3: 100},
		shopAddress: map[int64]int64{100: 10, 200: 20},
		addresses: map[int64]domain.Address{
			10: {Latitude: ptr(36.8065), Longitude: ptr(10.1815)}, // Tunis
			20: {Latitude: ptr(36.4510), Longitude: ptr(10.7357)}, // Nabeul
		},
	}
}

func twoShopOrder(status domain.OrderStatus, t domain.DeliveryType) domain.Order {
	return domain.Order{
		ID:     42,
		Status: status,
		Type:   t,
		Items: []domain.LineItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 2},
			{ProductID: 3, Quantity: 1},
		},
		Address: domain.Address{Latitude: ptr(35.8256), Longitude: ptr(10.6369)}, // Sousse
	}
}

func TestEstimateOrder_ReturnedPaysPerShop(t *testing.T) {
	t.Parallel()

	cat := twoShopCatalog()
	e := revenue.New(cat, testlog.New().Logger())

	got, err := e.EstimateOrder(context.Background(), twoShopOrder(domain.OrderReturned, domain.DeliveryStandard), domain.TransportBike)
	require.NoError(t, err)
	require.Equal(t, 2.0, got)
	// the returned rate never prices distance
	require.Zero(t, cat.shopCalls)
}

func TestEstimateOrder_CarRateByDeliveryType(t *testing.T) {
	t.Parallel()

	e := revenue.New(twoShopCatalog(), testlog.New().Logger())

	got, err := e.EstimateOrder(context.Background(), twoShopOrder(domain.OrderDelivered, domain.DeliveryExpress), domain.TransportCar)
	require.NoError(t, err)
	require.Equal(t, 8.0, got)

	got, err = e.EstimateOrder(context.Background(), twoShopOrder(domain.OrderDelivered, domain.DeliveryStandard), domain.TransportCar)
	require.NoError(t, err)
	require.InDelta(t, 6.4, got, 1e-9)
}

func TestEstimateOrder_DistanceMode(t *testing.T) {
	t.Parallel()

	e := revenue.New(twoShopCatalog(), testlog.New().Logger())

	got, err := e.EstimateOrder(context.Background(), twoShopOrder(domain.OrderDelivered, domain.DeliveryStandard), domain.TransportMoto)
	require.NoError(t, err)

	wantKm := geo.RouteKm([]geo.Point{
		{Lat: 36.8065, Lng: 10.1815},
		{Lat: 36.4510, Lng: 10.7357},
		{Lat: 35.8256, Lng: 10.6369},
	})
	require.InDelta(t, 0.8*wantKm, got, 1e-9)
}

func TestEstimateOrder_SkipsWaypointsWithoutCoordinates(t *testing.T) {
	t.Parallel()

	cat := twoShopCatalog()
	cat.addresses[20] = domain.Address{} // shop 200 has no coordinates

	e := revenue.New(cat, testlog.New().Logger())
	got, err := e.EstimateOrder(context.Background(), twoShopOrder(domain.OrderDelivered, domain.DeliveryStandard), domain.TransportMoto)
	require.NoError(t, err)

	wantKm := geo.RouteKm([]geo.Point{
		{Lat: 36.8065, Lng: 10.1815},
		{Lat: 35.8256, Lng: 10.6369},
	})
	require.InDelta(t, 0.8*wantKm, got, 1e-9)
}

func TestEstimateOrder_LookupFailureZeroes(t *testing.T) {
	t.Parallel()

	cat := twoShopCatalog()
	cat.productErr = fmt.Errorf("catalog: %w", apperr.ErrNetwork)

	// advisory only: a failed lookup yields zero, never an error
	rec := testlog.New()
	e := revenue.New(cat, rec.Logger())
	got, err := e.EstimateOrder(context.Background(), twoShopOrder(domain.OrderDelivered, domain.DeliveryStandard), domain.TransportMoto)
	require.NoError(t, err)
	require.Zero(t, got)
	require.True(t, rec.Has("estimate unavailable"))
}

func TestEstimateBundle_SumsMembers(t *testing.T) {
	t.Parallel()

	e := revenue.New(twoShopCatalog(), testlog.New().Logger())
	b := domain.Bundle{
		ID: 3,
		Orders: []domain.Order{
			twoShopOrder(domain.OrderReturned, domain.DeliveryStandard),
			twoShopOrder(domain.OrderReturned, domain.DeliveryStandard),
		},
	}

	got, err := e.EstimateBundle(context.Background(), b, domain.TransportBike)
	require.NoError(t, err)
	require.Equal(t, 4.0, got)
}

func TestEstimateBundle_MemberFailureZeroes(t *testing.T) {
	t.Parallel()

	cat := twoShopCatalog()
	cat.productErr = fmt.Errorf("catalog: %w", apperr.ErrNetwork)

	e := revenue.New(cat, testlog.New().Logger())
	b := domain.Bundle{ID: 3, Orders: []domain.Order{twoShopOrder(domain.OrderDelivered, domain.DeliveryStandard)}}

	got, err := e.EstimateBundle(context.Background(), b, domain.TransportMoto)
	require.NoError(t, err)
	require.Zero(t, got)
}
