package models

import "time"

// Booking represents a reservation accepted into storage. Approved is nil
// while the booking awaits admin review.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	CustomerName    string    `bson:"customer_name" json:"customerName"`
	Sport           string    `bson:"sport" json:"sport"`
	PeopleCount     int       `bson:"people_count" json:"peopleCount"`
	Date            string    `bson:"date" json:"date"`            // "YYYY-MM-DD"
	StartTime       string    `bson:"start_time" json:"startTime"` // "HH:MM", 24-hour
	EndTime         string    `bson:"end_time" json:"endTime"`     // "HH:MM"; <= StartTime means the booking crosses midnight
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	CourtID         int       `bson:"court_id" json:"courtId"`
	Price           int       `bson:"price" json:"price"`
	Approved        *bool     `bson:"approved" json:"approved"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

// BookingWithCourt is a booking joined with its court name for admin listings.
type BookingWithCourt struct {
	Booking   `bson:",inline"`
	CourtName string `bson:"court_name" json:"courtName"`
}
