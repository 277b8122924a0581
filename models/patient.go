package models

import "time"

// Gender options offered by the add-patient form.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Patient is one row of a doctor's patient register.
type Patient struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Age       int       `bson:"age" json:"age"`
	Gender    string    `bson:"gender" json:"gender"`
	Condition string    `bson:"condition" json:"condition"`
	LastVisit string    `bson:"last_visit" json:"lastVisit"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// NewPatient is the add-patient form as submitted.
type NewPatient struct {
	Name      string `json:"name"`
	Age       string `json:"age"`
	Gender    string `json:"gender"`
	Condition string `json:"condition"`
}

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "Pending"
	TaskCompleted TaskStatus = "Completed"
)

// ShiftTask is one item on a nurse's daily task list.
type ShiftTask struct {
	ID          string       `bson:"id" json:"id"`
	Description string       `bson:"description" json:"description"`
	PatientName string       `bson:"patient_name" json:"patientName"`
	Time        string       `bson:"time" json:"time"` // "03:04 PM"
	Status      TaskStatus   `bson:"status" json:"status"`
	Priority    TaskPriority `bson:"priority" json:"priority"`
}

// NewShiftTask is the add-task form as submitted.
type NewShiftTask struct {
	Description string       `json:"description"`
	PatientName string       `json:"patientName"`
	Priority    TaskPriority `json:"priority"`
}
