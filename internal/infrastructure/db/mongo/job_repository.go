package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

const collectionJobs = "jobs"

// JobRepository persists jobs. Every query carries a user_id filter so a job
// owned by another user behaves exactly like a missing one.
type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

type jobDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	JobName    string             `bson:"job_name"`
	HourlyRate float64            `bson:"hourly_rate"`
	Location   string             `bson:"location,omitempty"`
	Color      string             `bson:"color"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d jobDoc) toDomain() *domain.Job {
	return &domain.Job{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		JobName:    d.JobName,
		HourlyRate: d.HourlyRate,
		Location:   d.Location,
		Color:      d.Color,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

func (r *JobRepository) Insert(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := jobDoc{
		UserID:     job.UserID,
		JobName:    job.JobName,
		HourlyRate: job.HourlyRate,
		Location:   job.Location,
		Color:      job.Color,
		CreatedAt:  job.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// List returns the user's full job set. No ordering is guaranteed.
func (r *JobRepository) List(ctx context.Context, userID string) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.Job, 0)
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) FindByID(ctx context.Context, userID, jobID string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	var doc jobDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

// Update overwrites the four mutable fields in one $set.
func (r *JobRepository) Update(ctx context.Context, userID, jobID string, fields ports.JobFields) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return domain.ErrJobNotFound
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{
			"job_name":    fields.JobName,
			"hourly_rate": fields.HourlyRate,
			"location":    fields.Location,
			"color":       fields.Color,
		}},
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// Delete removes the job document only. Shifts referencing it are untouched.
func (r *JobRepository) Delete(ctx context.Context, userID, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return domain.ErrJobNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Count(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}

func (r *JobRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
