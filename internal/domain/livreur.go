package domain

// TransportMode represents the transport mode of a driver.
type TransportMode string

// List of possible transport modes
const (
	TransportMoto  TransportMode = "MOTO"
	TransportCar   TransportMode = "VOITURE"
	TransportBike  TransportMode = "VELO"
	TransportTruck TransportMode = "CAMION"
)

var allowedTransportModes = [...]TransportMode{
	TransportMoto, TransportCar, TransportBike, TransportTruck,
}

// Valid checks if the TransportMode is valid.
func (t TransportMode) Valid() bool {
	for _, v := range allowedTransportModes {
		if t == v {
			return true
		}
	}
	return false
}

// DriverProfile is the read-mostly view of the authenticated driver
// ("livreur"). The backend mutates cash balance as orders are delivered or
// returned; the client refetches it after state-changing actions.
type DriverProfile struct {
	ID          int64         `json:"id"`
	LastName    string        `json:"nom,omitempty"`
	FirstName   string        `json:"prenom,omitempty"`
	Phone       string        `json:"telephone,omitempty"`
	Transport   TransportMode `json:"moyen"`
	Available   bool          `json:"dispo"`
	Online      bool          `json:"online"`
	CashCeiling float64       `json:"plafond"`
	CashBalance float64       `json:"cashbalance"`
}
