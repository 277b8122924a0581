package models

// AmbulanceMode separates road ambulances from air lifts.
type AmbulanceMode string

const (
	AmbulanceRoad AmbulanceMode = "Road"
	AmbulanceAir  AmbulanceMode = "Air"
)

// AmbulanceTier is a vehicle class the patient can request.
type AmbulanceTier struct {
	ID    string        `bson:"id" json:"id"`
	Label string        `bson:"label" json:"label"`
	Price string        `bson:"price" json:"price"`
	Mode  AmbulanceMode `bson:"mode" json:"mode"`
}

// DispatchStep is the stage of an ambulance request.
type DispatchStep string

const (
	DispatchInput     DispatchStep = "input"
	DispatchSearching DispatchStep = "searching"
	DispatchTracking  DispatchStep = "tracking"
)

// AssignedDriver describes the crew en route. Fields stay empty until a fleet
// collaborator supplies them.
type AssignedDriver struct {
	Name    string  `json:"name"`
	Vehicle string  `json:"vehicle"`
	Plate   string  `json:"plate"`
	Rating  float64 `json:"rating"`
	Phone   string  `json:"phone"`
	ETA     string  `json:"eta"`
}

// AmbulanceRequest is the rendered state of a dispatch.
type AmbulanceRequest struct {
	Step    DispatchStep    `json:"step"`
	Mode    AmbulanceMode   `json:"mode"`
	TierID  string          `json:"tierId"`
	Pickup  string          `json:"pickup"`
	Dropoff string          `json:"dropoff"`
	Driver  *AssignedDriver `json:"driver,omitempty"`
}
