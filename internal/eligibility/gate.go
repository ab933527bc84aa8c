// Package eligibility implements the cash-ceiling gate deciding whether a
// driver may claim an entity. Pure functions, no side effects: callers that
// need an error map a false result to apperr.ErrBlocked.
package eligibility

import "service-livreur-client/internal/domain"

// ClaimTolerance is the buffer added to the ceiling before a driver is
// blocked, in currency units.
const ClaimTolerance = 10.0

// MotoBundleFeePerOrder is the flat per-member-order fee charged to moto
// drivers instead of the bundle's aggregate delivery fee.
const MotoBundleFeePerOrder = 5.0

// blocked is the single comparison every check reduces to. The boundary is
// inclusive: balance + fee == ceiling + tolerance blocks.
func blocked(balance, ceiling, fee float64) bool {
	return balance+fee >= ceiling+ClaimTolerance
}

// BlockedGlobally reports whether the driver may not claim anything at all,
// regardless of a specific entity.
func BlockedGlobally(p domain.DriverProfile) bool {
	return blocked(p.CashBalance, p.CashCeiling, 0)
}

// OrderFee is the cash the driver would carry for a single order.
func OrderFee(o domain.Order) float64 {
	return o.DeliveryFee()
}

// BundleFee is the cash the driver would carry for a bundle. Moto drivers
// pay a flat rate per member order; everyone else pays the aggregate fee.
func BundleFee(p domain.DriverProfile, b domain.Bundle) float64 {
	if p.Transport == domain.TransportMoto {
		return MotoBundleFeePerOrder * float64(len(b.Orders))
	}
	return b.TotalDeliveryFee
}

// CanClaimOrder reports whether the driver may claim the order.
func CanClaimOrder(p domain.DriverProfile, o domain.Order) bool {
	return !blocked(p.CashBalance, p.CashCeiling, OrderFee(o))
}

// CanClaimBundle reports whether the driver may claim the bundle.
func CanClaimBundle(p domain.DriverProfile, b domain.Bundle) bool {
	return !blocked(p.CashBalance, p.CashCeiling, BundleFee(p, b))
}

// CanClaimRequest reports whether the driver may claim the delivery request.
// Requests carry no cash on delivery, so only the global gate applies.
func CanClaimRequest(p domain.DriverProfile, _ domain.DeliveryRequest) bool {
	return !BlockedGlobally(p)
}
