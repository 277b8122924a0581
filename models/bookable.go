package models

// BookableKind tags the catalog variant carried by a Bookable.
type BookableKind string

const (
	KindDoctor       BookableKind = "doctor"
	KindLabTest      BookableKind = "lab_test"
	KindLabPackage   BookableKind = "lab_package"
	KindNurseService BookableKind = "nurse_service"
	KindAmbulance    BookableKind = "ambulance"
)

// BookableKinds lists every kind in display order.
var BookableKinds = []BookableKind{KindDoctor, KindLabTest, KindLabPackage, KindNurseService, KindAmbulance}

// Valid reports whether k is a known kind.
func (k BookableKind) Valid() bool {
	for _, known := range BookableKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Bookable is the common shape the booking flow works with. Payload holds the
// kind-specific record (Doctor, LabTest, LabPackage, NurseService or AmbulanceTier)
// for presentation only.
type Bookable struct {
	ID           string       `json:"id"`
	Kind         BookableKind `json:"kind"`
	Name         string       `json:"name"`
	Price        float64      `json:"price"`
	Category     string       `json:"category,omitempty"`     // specialty for doctors
	Rating       float64      `json:"rating,omitempty"`       // 0 when the kind is unrated
	Availability string       `json:"availability,omitempty"` // "Today", "Tomorrow" or a location blurb
	Payload      any          `json:"payload,omitempty"`
}
