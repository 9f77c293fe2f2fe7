package repository

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

// QuestionFilter narrows List queries; zero values mean "any"
type QuestionFilter struct {
	Status     model.QuestionStatus
	Type       model.QuestionType
	Difficulty model.DifficultyLevel
	Tag        string
	CreatedBy  string
	Limit      int64
	Offset     int64
}

// QuestionRepo handles MongoDB operations for questions and their
// embedded options
type QuestionRepo interface {
	Create(ctx context.Context, question *model.Question) error
	GetByID(ctx context.Context, id string) (*model.Question, error)
	GetByIDs(ctx context.Context, ids []string) ([]*model.Question, error)
	List(ctx context.Context, filter QuestionFilter) ([]*model.Question, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id string) error
	SamplePublished(ctx context.Context, n int) ([]*model.Question, error)
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question repository with indexes
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	repo := &questionRepo{
		collection: db.Collection("questions"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *questionRepo) ensureIndexes(ctx context.Context) {
	createIndex(ctx, r.collection, bson.D{{Key: "status", Value: 1}}, false)
	createIndex(ctx, r.collection, bson.D{
		{Key: "type", Value: 1},
		{Key: "difficulty", Value: 1},
	}, false)
	createIndex(ctx, r.collection, bson.D{{Key: "tags", Value: 1}}, false)
	createIndex(ctx, r.collection, bson.D{{Key: "createdBy", Value: 1}}, false)
}

func (r *questionRepo) Create(ctx context.Context, question *model.Question) error {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, question)
	return err
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) GetByIDs(ctx context.Context, ids []string) ([]*model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) List(ctx context.Context, filter QuestionFilter) ([]*model.Question, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}
	if filter.CreatedBy != "" {
		query["createdBy"] = filter.CreatedBy
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	if filter.Offset > 0 {
		opts.SetSkip(filter.Offset)
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) Update(ctx context.Context, question *model.Question) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": question.ID}, question)
	return err
}

func (r *questionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// SamplePublished draws n random published questions, used for the daily
// challenge rotation.
func (r *questionRepo) SamplePublished(ctx context.Context, n int) ([]*model.Question, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": model.StatusPublished}}},
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// createIndex is shared by the repositories in this package
func createIndex(ctx context.Context, coll *mongo.Collection, keys bson.D, unique bool) {
	opts := options.Index().SetUnique(unique)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		slog.Warn("failed to create index", "collection", coll.Name(), "error", err)
	}
}
