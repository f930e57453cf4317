package models

import "time"

// CartItem is a candidate slot the customer intends to reserve. It exists
// only inside a cart session until checkout commits it as a Booking.
type CartItem struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	Sport         string  `json:"sport"`
	PeopleCount   int     `json:"peopleCount"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	CourtID       int     `json:"courtId"`
	CourtName     string  `json:"courtName"`
	Price         int     `json:"price"`
}

// CartSession is the redis-cached state of one customer's cart.
type CartSession struct {
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Total sums the priced items in the cart.
func (s CartSession) Total() int {
	total := 0
	for _, it := range s.Items {
		total += it.Price
	}
	return total
}
