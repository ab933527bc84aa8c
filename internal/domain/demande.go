package domain

// RequestStatus represents the lifecycle status of a person-to-person
// delivery request. The enum is disjoint from OrderStatus by contract.
type RequestStatus string

// List of possible delivery request statuses
const (
	RequestPending   RequestStatus = "EN_ATTENTE"
	RequestConfirmed RequestStatus = "CONFIRMEE"
	RequestCancelled RequestStatus = "ANNULEE"
	RequestAccepted  RequestStatus = "ACCEPTEE"
	RequestInTransit RequestStatus = "EN_COURS"
	RequestDelivered RequestStatus = "LIVREE"
	RequestReturned  RequestStatus = "RETOUR"
)

var allowedRequestStatuses = [...]RequestStatus{
	RequestPending, RequestConfirmed, RequestCancelled, RequestAccepted,
	RequestInTransit, RequestDelivered, RequestReturned,
}

// Valid checks if the RequestStatus is valid.
func (s RequestStatus) Valid() bool {
	for _, v := range allowedRequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Rank orders request statuses along the lifecycle, mirroring OrderStatus.
func (s RequestStatus) Rank() int {
	switch s {
	case RequestPending:
		return 0
	case RequestConfirmed:
		return 1
	case RequestAccepted:
		return 2
	case RequestInTransit:
		return 3
	case RequestDelivered, RequestReturned:
		return 4
	case RequestCancelled:
		return 5
	default:
		return -1
	}
}

// DeliveryRequest is an ad-hoc courier job ("demande de livraison"),
// independent of shop inventory. The typeArticle field doubles as the wire
// discriminant for push classification.
type DeliveryRequest struct {
	ID        int64         `json:"id"`
	CreatedAt string        `json:"createdAt,omitempty"`
	UpdatedAt string        `json:"updatedAt,omitempty"`
	Status    RequestStatus `json:"statut"`
	LivreurID int64         `json:"livreurId,omitempty"`
	Type      DeliveryType  `json:"type,omitempty"`

	// pickup side
	LastName     string `json:"nom"`
	FirstName    string `json:"prenom"`
	Phone        string `json:"telephone"`
	Email        string `json:"email,omitempty"`
	City         string `json:"ville"`
	District     string `json:"quartier"`
	ShortAddress string `json:"adresseCourte"`
	Landmark     string `json:"pointDeRepere,omitempty"`

	// dropoff side
	RecipientLastName     string `json:"nomDestinataire"`
	RecipientFirstName    string `json:"prenomDestinataire"`
	RecipientPhone        string `json:"telephoneDestinataire"`
	RecipientCity         string `json:"villeDestinataire"`
	RecipientDistrict     string `json:"quartierDestinataire"`
	RecipientShortAddress string `json:"adresseCourteDestinataire"`
	RecipientLandmark     string `json:"pointDeRepereDestinataire,omitempty"`

	ScheduledDate string `json:"dateLivraison"`
	TimeSlot      string `json:"creneau,omitempty"`
	ItemType      string `json:"typeArticle,omitempty"`
	PhotoPath     string `json:"photoArticlePath,omitempty"`
	PaymentMethod string `json:"methodePaiement,omitempty"`
}

// Assigned reports whether any driver owns the request.
func (r DeliveryRequest) Assigned() bool { return r.LivreurID != 0 }

// Claimable reports whether the request may be claimed by any driver.
func (r DeliveryRequest) Claimable() bool {
	return (r.Status == RequestPending || r.Status == RequestConfirmed) && !r.Assigned()
}
