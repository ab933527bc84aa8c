package domain

// Product is the catalog view of a line item, looked up to resolve the
// supplying shop.
type Product struct {
	ID     int64   `json:"id"`
	Name   string  `json:"nom,omitempty"`
	Price  float64 `json:"prix,omitempty"`
	ShopID int64   `json:"boutiqueId"`
}

// Shop is a supplying boutique; its address carries the pickup coordinates.
type Shop struct {
	ID        int64  `json:"id"`
	Name      string `json:"nom,omitempty"`
	Phone     string `json:"telephone,omitempty"`
	AddressID int64  `json:"adresseId"`
}
