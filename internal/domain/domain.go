// Package domain contains the core data types for TravelBuddy.
// Every record is a plain, flat value; nothing here owns goroutines,
// timers, or references back into other entities.
package domain

import "time"

// Identity is the authenticated traveler held by the session for the
// application's lifetime until logout. Optional fields are empty strings
// when never set.
type Identity struct {
	ID                    string
	Email                 string
	FullName              string
	AvatarURL             string
	Bio                   string
	Location              string
	PhoneNumber           string
	EmergencyContactName  string
	EmergencyContactPhone string
}

// TripStatus describes whether a trip can still be joined.
type TripStatus string

const (
	TripStatusOpen      TripStatus = "open"
	TripStatusFull      TripStatus = "full"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// Trip is a proposed group journey with capacity, pricing, and date bounds.
// StartDate and EndDate are YYYY-MM-DD strings; they are display values,
// not scheduling inputs.
type Trip struct {
	ID               string
	CreatorID        string
	CreatorName      string
	Title            string
	Description      string
	Destination      string
	StartDate        string
	EndDate          string
	MaxTravelers     int
	CurrentTravelers int
	PricePerPerson   int
	Status           TripStatus
	CreatedAt        time.Time
}

// ChatMessage is a single entry in a trip chat transcript.
type ChatMessage struct {
	ID         string
	SenderID   string
	SenderName string
	Message    string
	Timestamp  time.Time
}

// AlertStatus describes the lifecycle of an emergency alert.
type AlertStatus string

const (
	AlertStatusActive     AlertStatus = "active"
	AlertStatusResolved   AlertStatus = "resolved"
	AlertStatusFalseAlarm AlertStatus = "false_alarm"
)

// EmergencyAlert is a distress signal raised by a traveler, optionally
// tied to a trip and a GPS fix. Latitude/Longitude are nil when the
// position was entered by hand.
type EmergencyAlert struct {
	ID        string
	UserID    string
	UserName  string
	TripID    string
	Location  string
	Message   string
	Latitude  *float64
	Longitude *float64
	Status    AlertStatus
	CreatedAt time.Time
}

// WeatherAlertType classifies a destination weather advisory.
type WeatherAlertType string

const (
	WeatherAlertHeat WeatherAlertType = "heat"
	WeatherAlertCold WeatherAlertType = "cold"
	WeatherAlertRain WeatherAlertType = "rain"
	WeatherAlertWind WeatherAlertType = "wind"
	WeatherAlertSafe WeatherAlertType = "safe"
)

// WeatherAlert is the advisory attached to a weather record.
type WeatherAlert struct {
	Type    WeatherAlertType
	Message string
}

// WeatherInfo is the static weather snapshot for a destination.
// Temperature is degrees Celsius, WindSpeed km/h, Humidity percent.
type WeatherInfo struct {
	Destination string
	Temperature int
	Condition   string
	Humidity    int
	WindSpeed   int
	Alert       *WeatherAlert
}

// NotificationType selects the visual treatment of a toast.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
)

// Notification is a transient toast. It self-destructs Duration after
// being pushed unless dismissed earlier.
type Notification struct {
	ID       string
	Type     NotificationType
	Title    string
	Message  string
	Duration time.Duration
}
