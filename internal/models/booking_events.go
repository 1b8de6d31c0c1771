package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BookingEventsColName = "booking_events"

type BookingAction string

const (
	ActionCreated   BookingAction = "created"
	ActionApproved  BookingAction = "approved"
	ActionCancelled BookingAction = "cancelled"
)

// BookingEvent is one status change of a booking, kept in the activity log.
type BookingEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID  string             `bson:"booking_id" json:"bookingId"`
	ActorID    string             `bson:"actor_id" json:"actorId"`
	Action     BookingAction      `bson:"action" json:"action"`
	FromStatus BookingStatus      `bson:"from_status,omitempty" json:"fromStatus,omitempty"`
	ToStatus   BookingStatus      `bson:"to_status" json:"toStatus"`
	At         time.Time          `bson:"at" json:"at"`
}

type BookingEventRepo interface {
	RecordBookingEvent(ctx context.Context, event *BookingEvent) error
	ListBookingEvents(ctx context.Context, bookingID uuid.UUID) ([]BookingEvent, error)
}

func (e *BookingEvent) BeforeCreate() {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
}

// EnsureIndexes creates the lookup index used by ListBookingEvents.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, BookingEventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "booking_id", Value: 1},
				{Key: "at", Value: 1},
			},
			Options: options.Index().SetName("booking_at_idx"),
		},
		{
			Keys:    bson.D{{Key: "actor_id", Value: 1}},
			Options: options.Index().SetName("actor_id_idx"),
		},
	}

	if _, err := col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("error creating indexes: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) RecordBookingEvent(ctx context.Context, event *BookingEvent) error {
	col, err := mdb.GetCollection(ctx, BookingEventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	event.BeforeCreate()
	if _, err := col.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("error inserting booking event: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListBookingEvents(ctx context.Context, bookingID uuid.UUID) ([]BookingEvent, error) {
	col, err := mdb.GetCollection(ctx, BookingEventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "at", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{"booking_id": bookingID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding booking events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []BookingEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding booking events: %v", err)
	}
	return events, nil
}

// DiscardEvents is used when no activity log is configured.
type DiscardEvents struct{}

func (DiscardEvents) RecordBookingEvent(ctx context.Context, event *BookingEvent) error {
	return nil
}

func (DiscardEvents) ListBookingEvents(ctx context.Context, bookingID uuid.UUID) ([]BookingEvent, error) {
	return []BookingEvent{}, nil
}
