package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

// AttemptRepo handles MongoDB operations for attempts. Attempts are
// insert-only; there is deliberately no update or delete.
type AttemptRepo interface {
	Insert(ctx context.Context, attempt *model.Attempt) error
	GetByID(ctx context.Context, id string) (*model.Attempt, error)
	GetByQuestion(ctx context.Context, questionID string) ([]*model.Attempt, error)
	GetByUser(ctx context.Context, userID string) ([]*model.Attempt, error)
	GetBySession(ctx context.Context, sessionID string) ([]*model.Attempt, error)
	CountByUserAndQuestion(ctx context.Context, userID, questionID string) (int64, error)
	CountUserContextSince(ctx context.Context, userID, contextType string, since time.Time) (int64, error)
	RecentQuestionIDs(ctx context.Context, since time.Time) ([]string, error)
}

type attemptRepo struct {
	collection *mongo.Collection
}

// NewAttemptRepo creates a new attempt repository with indexes. The
// (userId, questionId) index is intentionally non-unique: concurrent
// submissions may race to the same attempt number and both rows are kept.
func NewAttemptRepo(db *mongo.Database) AttemptRepo {
	repo := &attemptRepo{
		collection: db.Collection("attempts"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *attemptRepo) ensureIndexes(ctx context.Context) {
	createIndex(ctx, r.collection, bson.D{
		{Key: "userId", Value: 1},
		{Key: "questionId", Value: 1},
	}, false)
	createIndex(ctx, r.collection, bson.D{
		{Key: "questionId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, false)
	createIndex(ctx, r.collection, bson.D{
		{Key: "userId", Value: 1},
		{Key: "contextType", Value: 1},
		{Key: "createdAt", Value: -1},
	}, false)
	createIndex(ctx, r.collection, bson.D{{Key: "sessionId", Value: 1}}, false)
}

func (r *attemptRepo) Insert(ctx context.Context, attempt *model.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, attempt)
	return err
}

func (r *attemptRepo) GetByID(ctx context.Context, id string) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&attempt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepo) GetByQuestion(ctx context.Context, questionID string) ([]*model.Attempt, error) {
	return r.find(ctx, bson.M{"questionId": questionID})
}

func (r *attemptRepo) GetByUser(ctx context.Context, userID string) ([]*model.Attempt, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *attemptRepo) GetBySession(ctx context.Context, sessionID string) ([]*model.Attempt, error) {
	return r.find(ctx, bson.M{"sessionId": sessionID})
}

func (r *attemptRepo) find(ctx context.Context, query bson.M) ([]*model.Attempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attempts []*model.Attempt
	if err := cursor.All(ctx, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepo) CountByUserAndQuestion(ctx context.Context, userID, questionID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"userId":     userID,
		"questionId": questionID,
	})
}

func (r *attemptRepo) CountUserContextSince(ctx context.Context, userID, contextType string, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"userId":      userID,
		"contextType": contextType,
		"createdAt":   bson.M{"$gte": since},
	})
}

// RecentQuestionIDs returns the distinct question ids attempted since the
// given time, used by the nightly analytics warmup.
func (r *attemptRepo) RecentQuestionIDs(ctx context.Context, since time.Time) ([]string, error) {
	raw, err := r.collection.Distinct(ctx, "questionId", bson.M{
		"createdAt": bson.M{"$gte": since},
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
