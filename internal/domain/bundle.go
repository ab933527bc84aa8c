package domain

// BundleStatus represents the lifecycle status of a grouped-order bundle.
type BundleStatus string

// List of possible bundle statuses
const (
	BundlePending  BundleStatus = "PENDING"
	BundleAccepted BundleStatus = "ACCEPTED"
)

// Valid checks if the BundleStatus is valid.
func (s BundleStatus) Valid() bool {
	return s == BundlePending || s == BundleAccepted
}

// Rank orders bundle statuses; accepting never regresses to pending.
func (s BundleStatus) Rank() int {
	switch s {
	case BundlePending:
		return 0
	case BundleAccepted:
		return 1
	default:
		return -1
	}
}

// Bundle is a set of orders grouped for single-trip fulfillment
// ("grande commande"). Accepting it assigns every member order to the same
// driver in one remote call; the client never applies partial updates.
type Bundle struct {
	ID               int64        `json:"id"`
	Code             string       `json:"code"`
	CreatedAt        string       `json:"dateCreation,omitempty"`
	Status           BundleStatus `json:"statut"`
	LivreurID        int64        `json:"livreurId,omitempty"`
	ShopID           int64        `json:"boutiqueId,omitempty"`
	Orders           []Order      `json:"commandes"`
	TotalDeliveryFee float64      `json:"totalPrixLivraison"`
}

// Assigned reports whether any driver owns the bundle.
func (b Bundle) Assigned() bool { return b.LivreurID != 0 }

// Claimable reports whether the bundle may be claimed by any driver.
func (b Bundle) Claimable() bool {
	return b.Status == BundlePending && !b.Assigned()
}
