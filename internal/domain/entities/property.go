package entities

// UnitStatus mirrors whether a live agreement currently holds the unit.
type UnitStatus string

const (
	UnitStatusVacant   UnitStatus = "vacant"
	UnitStatusOccupied UnitStatus = "occupied"
)

// Building, Unit and Tenant are owned by the building/tenant management
// service. The billing engine only reads them, except for Unit.Status which
// it flips as a side effect of agreement transitions.

type Building struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
	TotalFloors *int   `json:"total_floors,omitempty"`
}

type Unit struct {
	ID         string     `json:"id"`
	BuildingID string     `json:"building_id"`
	UnitNumber string     `json:"unit_number"`
	Floor      *int       `json:"floor,omitempty"`
	Type       string     `json:"type,omitempty"`
	RentAmount float64    `json:"rent_amount"`
	Status     UnitStatus `json:"status"`

	// Building is populated by repositories that join units to buildings.
	Building *Building `json:"building,omitempty"`
}

// OwnedBy reports whether the unit's building belongs to userID. A unit whose
// building was not loaded is never considered owned.
func (u Unit) OwnedBy(userID string) bool {
	return u.Building != nil && userID != "" && u.Building.UserID == userID
}

type Tenant struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
}

// UnitStatusUpdate is a unit occupancy flip committed together with an
// agreement write.
type UnitStatusUpdate struct {
	UnitID string
	Status UnitStatus
}
