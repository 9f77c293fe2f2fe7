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

// SessionRepo handles MongoDB operations for quiz sessions
type SessionRepo interface {
	Create(ctx context.Context, session *model.QuizSession) error
	GetByID(ctx context.Context, id string) (*model.QuizSession, error)
	Update(ctx context.Context, session *model.QuizSession) error
	GetByUser(ctx context.Context, userID string, limit int64) ([]*model.QuizSession, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

// NewSessionRepo creates a new quiz session repository with indexes
func NewSessionRepo(db *mongo.Database) SessionRepo {
	repo := &sessionRepo{
		collection: db.Collection("quiz_sessions"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *sessionRepo) ensureIndexes(ctx context.Context) {
	createIndex(ctx, r.collection, bson.D{
		{Key: "userId", Value: 1},
		{Key: "startedAt", Value: -1},
	}, false)
	createIndex(ctx, r.collection, bson.D{{Key: "quizType", Value: 1}}, false)
}

func (r *sessionRepo) Create(ctx context.Context, session *model.QuizSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.QuizSession, error) {
	var session model.QuizSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *model.QuizSession) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	return err
}

func (r *sessionRepo) GetByUser(ctx context.Context, userID string, limit int64) ([]*model.QuizSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.QuizSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
