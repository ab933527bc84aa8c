package eligibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/eligibility"
)

func order(with, without float64) domain.Order {
	return domain.Order{
		ID:                   1,
		Status:               domain.OrderConfirmed,
		TotalWithDelivery:    with,
		TotalWithoutDelivery: without,
	}
}

func profile(balance, ceiling float64, mode domain.TransportMode) domain.DriverProfile {
	return domain.DriverProfile{ID: 7, CashBalance: balance, CashCeiling: ceiling, Transport: mode}
}

func TestCanClaimOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance float64
		ceiling float64
		with    float64
		without float64
		want    bool
	}{
		{name: "well under ceiling", balance: 0, ceiling: 100, with: 25, without: 20, want: true},
		{name: "just under boundary", balance: 95, ceiling: 100, with: 34.99, without: 20, want: true},
		{name: "exact boundary blocks", balance: 95, ceiling: 100, with: 35, without: 20, want: false},
		{name: "over boundary blocks", balance: 95, ceiling: 100, with: 40, without: 20, want: false},
		{name: "negative fee treated as zero", balance: 0, ceiling: 100, with: 10, without: 20, want: true},
		{name: "dashboard scenario 95 plus 20", balance: 95, ceiling: 100, with: 40, without: 20, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := eligibility.CanClaimOrder(profile(tc.balance, tc.ceiling, domain.TransportMoto), order(tc.with, tc.without))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestBlockedGlobally(t *testing.T) {
	t.Parallel()

	require.False(t, eligibility.BlockedGlobally(profile(0, 100, domain.TransportMoto)))
	require.False(t, eligibility.BlockedGlobally(profile(109.99, 100, domain.TransportMoto)))
	require.True(t, eligibility.BlockedGlobally(profile(110, 100, domain.TransportMoto)))
	require.True(t, eligibility.BlockedGlobally(profile(200, 100, domain.TransportMoto)))
}

func TestBundleFee_MotoOverride(t *testing.T) {
	t.Parallel()

	b := domain.Bundle{
		ID:               3,
		Status:           domain.BundlePending,
		Orders:           []domain.Order{order(30, 25), order(40, 33)},
		TotalDeliveryFee: 12,
	}

	require.Equal(t, 10.0, eligibility.BundleFee(profile(0, 100, domain.TransportMoto), b))
	require.Equal(t, 12.0, eligibility.BundleFee(profile(0, 100, domain.TransportCar), b))
	require.Equal(t, 12.0, eligibility.BundleFee(profile(0, 100, domain.TransportBike), b))
}

func TestCanClaimBundle(t *testing.T) {
	t.Parallel()

	b := domain.Bundle{
		Orders:           []domain.Order{order(30, 25), order(40, 33), order(20, 15)},
		TotalDeliveryFee: 30,
	}

	// moto pays 15, car pays 30
	require.True(t, eligibility.CanClaimBundle(profile(80, 100, domain.TransportMoto), b))
	require.False(t, eligibility.CanClaimBundle(profile(80, 100, domain.TransportCar), b))
}

func TestCanClaimRequest_GlobalGateOnly(t *testing.T) {
	t.Parallel()

	req := domain.DeliveryRequest{ID: 5, Status: domain.RequestConfirmed}

	require.True(t, eligibility.CanClaimRequest(profile(50, 100, domain.TransportMoto), req))
	require.False(t, eligibility.CanClaimRequest(profile(110, 100, domain.TransportMoto), req))
}
