package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

const collectionShifts = "shifts"

// ShiftRepository persists shifts, scoped by user_id like the job repository.
// job_id is a soft reference: nothing here validates it against the jobs
// collection, and deleting a job leaves its shifts' documents as written.
type ShiftRepository struct {
	col *mongo.Collection
}

func NewShiftRepository(db *mongo.Database) *ShiftRepository {
	return &ShiftRepository{col: db.Collection(collectionShifts)}
}

type shiftDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	JobID         string             `bson:"job_id"`
	JobName       string             `bson:"job_name"`
	StartTime     time.Time          `bson:"start_time"`
	EndTime       time.Time          `bson:"end_time"`
	DurationHours float64            `bson:"duration_hours"`
	Earnings      float64            `bson:"earnings"`
	Notes         string             `bson:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d shiftDoc) toDomain() *domain.Shift {
	return &domain.Shift{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		JobID:         d.JobID,
		JobName:       d.JobName,
		StartTime:     d.StartTime.UTC(),
		EndTime:       d.EndTime.UTC(),
		DurationHours: d.DurationHours,
		Earnings:      d.Earnings,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

func (r *ShiftRepository) Insert(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := shiftDoc{
		UserID:        shift.UserID,
		JobID:         shift.JobID,
		JobName:       shift.JobName,
		StartTime:     shift.StartTime,
		EndTime:       shift.EndTime,
		DurationHours: shift.DurationHours,
		Earnings:      shift.Earnings,
		Notes:         shift.Notes,
		CreatedAt:     shift.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert shift: %w", err)
	}

	created := *shift
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// List returns the user's shifts ordered by start_time descending.
func (r *ShiftRepository) List(ctx context.Context, userID string) ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer cur.Close(ctx)

	shifts := make([]*domain.Shift, 0)
	for cur.Next(ctx) {
		var doc shiftDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode shift: %w", err)
		}
		shifts = append(shifts, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	return shifts, nil
}

// Update overwrites the whole mutable document, derived figures included.
func (r *ShiftRepository) Update(ctx context.Context, userID, shiftID string, fields ports.ShiftFields) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(shiftID)
	if err != nil {
		return domain.ErrShiftNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{
			"job_id":         fields.JobID,
			"job_name":       fields.JobName,
			"start_time":     fields.StartTime,
			"end_time":       fields.EndTime,
			"duration_hours": fields.DurationHours,
			"earnings":       fields.Earnings,
			"notes":          fields.Notes,
		}},
	)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrShiftNotFound
	}
	return nil
}

func (r *ShiftRepository) Delete(ctx context.Context, userID, shiftID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(shiftID)
	if err != nil {
		return domain.ErrShiftNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrShiftNotFound
	}
	return nil
}

func (r *ShiftRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "start_time", Value: -1}},
	})
	return err
}
