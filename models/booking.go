package models

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// AppointmentStatus is the lifecycle state of a confirmed appointment.
type AppointmentStatus string

const (
	StatusUpcoming  AppointmentStatus = "Upcoming"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// BookingDraft aggregates the selections of an in-progress booking.
type BookingDraft struct {
	Entity          Bookable  `json:"entity"`
	Date            time.Time `json:"-"`
	Time            string    `json:"time,omitempty"`
	Address         string    `json:"address,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	PreferredGender string    `json:"preferredGender,omitempty"` // "Any", "Female" or "Male"; nurse visits only
	RescheduleOf    string    `json:"rescheduleOf,omitempty"`
}

// BookingSummary is the read-only confirmation shown on the success view.
type BookingSummary struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Address string `json:"address"`
}

// Appointment is a confirmed booking. It is never persisted by this service.
type Appointment struct {
	ID           string            `bson:"id" json:"id"`
	EntityID     string            `bson:"entity_id" json:"entityId"`
	Kind         BookableKind      `bson:"kind" json:"kind"`
	EntityName   string            `bson:"entity_name" json:"entityName"`
	Category     string            `bson:"category,omitempty" json:"category,omitempty"`
	PatientName  string            `bson:"patient_name,omitempty" json:"patientName,omitempty"`
	Reason       string            `bson:"reason,omitempty" json:"reason,omitempty"`
	Date         string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time         string            `bson:"time" json:"time"`
	Address      string            `bson:"address,omitempty" json:"address,omitempty"`
	Status       AppointmentStatus `bson:"status" json:"status"`
	RescheduleOf string            `bson:"reschedule_of,omitempty" json:"rescheduleOf,omitempty"`
	CreatedAt    time.Time         `bson:"created_at" json:"createdAt"`
}
