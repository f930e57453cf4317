package models

// BookingNotification is the payload queued for the Telegram worker after a
// reservation is committed.
type BookingNotification struct {
	BookingID    string `json:"bookingId"`
	CustomerName string `json:"customerName"`
	Sport        string `json:"sport"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	PeopleCount  int    `json:"peopleCount"`
	Price        int    `json:"price"`
	CourtName    string `json:"courtName"`
}
