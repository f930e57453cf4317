package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"turfbook/models"
)

// GetByCourtAndDates retrieves the non-rejected bookings for a court on the
// given calendar dates. Pending (approved == nil) and approved bookings both
// count; rejected ones are excluded so their slots free up again.
func (r *MongoBookingRepo) GetByCourtAndDates(courtID int, dates []string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"court_id": courtID,
		"date":     bson.M{"$in": dates},
		"approved": bson.M{"$ne": false},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for court %d: %w", courtID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// GetAll retrieves all bookings joined with their court names, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.BookingWithCourt, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "courts",
			"localField":   "court_id",
			"foreignField": "id",
			"as":           "court",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"court_name": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$court.name", 0}},
				"Unknown Court",
			}},
		}}},
		{{Key: "$project", Value: bson.M{"court": 0}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.BookingWithCourt
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	return results, nil
}
