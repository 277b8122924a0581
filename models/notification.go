package models

import "time"

type Notification struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	Read      bool           `json:"read"`
}

// ReminderStatus is the lifecycle of the upcoming-appointment toast.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderVisible   ReminderStatus = "visible"
	ReminderDismissed ReminderStatus = "dismissed"
	ReminderViewed    ReminderStatus = "viewed"
)

// ReminderState is what the dashboard renders for reminders.
type ReminderState struct {
	Status        ReminderStatus `json:"status"`
	Toast         *Notification  `json:"toast,omitempty"`
	BannerVisible bool           `json:"bannerVisible"`
	Banner        string         `json:"banner,omitempty"`
}
