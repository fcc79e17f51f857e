package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Quizzy/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const QuestionsCollection = "questions"

// questionDocument keeps the field layout of the existing questions collection,
// including the "__v" version key.
type questionDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	QuestionText  string             `bson:"questionText"`
	Choices       []string           `bson:"choices"`
	CorrectAnswer string             `bson:"correctAnswer"`
	Category      string             `bson:"category"`
	Difficulty    string             `bson:"difficulty"`
	Version       int                `bson:"__v"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d questionDocument) toModel() model.Question {
	return model.Question{
		ID:            d.ID.Hex(),
		QuestionText:  d.QuestionText,
		Choices:       append([]string(nil), d.Choices...),
		CorrectAnswer: d.CorrectAnswer,
		Category:      d.Category,
		Difficulty:    model.Difficulty(d.Difficulty),
		Version:       d.Version,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func newQuestionDocument(q model.Question, now time.Time) questionDocument {
	q.ApplyDefaults()
	oid, err := primitive.ObjectIDFromHex(q.ID)
	if err != nil {
		oid = primitive.NewObjectIDFromTimestamp(now)
	}
	createdAt, updatedAt := q.CreatedAt, q.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return questionDocument{
		ID:            oid,
		QuestionText:  q.QuestionText,
		Choices:       append([]string(nil), q.Choices...),
		CorrectAnswer: q.CorrectAnswer,
		Category:      q.Category,
		Difficulty:    string(q.Difficulty),
		Version:       q.Version,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func filterDocument(filter QuestionFilter) bson.M {
	doc := bson.M{}
	if filter.Category != "" {
		doc["category"] = filter.Category
	}
	if filter.Difficulty != "" {
		doc["difficulty"] = filter.Difficulty
	}
	return doc
}

type mongoQuestionRepository struct {
	collection *mongo.Collection
}

func NewMongoQuestionRepository(db *mongo.Database) QuestionRepository {
	return &mongoQuestionRepository{collection: db.Collection(QuestionsCollection)}
}

// EnsureQuestionIndexes creates the indexes backing the category and
// difficulty filters. It is idempotent.
func EnsureQuestionIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(QuestionsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "difficulty", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create question indexes: %w", err)
	}
	return nil
}

func (r *mongoQuestionRepository) Find(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	cursor, err := r.collection.Find(ctx, filterDocument(filter))
	if err != nil {
		return nil, err
	}
	var docs []questionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	questions := make([]model.Question, 0, len(docs))
	for _, d := range docs {
		questions = append(questions, d.toModel())
	}
	return questions, nil
}

func (r *mongoQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc questionDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	q := doc.toModel()
	return &q, nil
}

// FindByIDs keys the result by the ids as given, so an upper-case hex id
// finds the same question FindByID does.
func (r *mongoQuestionRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Question, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	requested := make(map[primitive.ObjectID][]string, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		if _, seen := requested[oid]; !seen {
			oids = append(oids, oid)
		}
		requested[oid] = append(requested[oid], id)
	}
	found := make(map[string]model.Question, len(ids))
	if len(oids) == 0 {
		return found, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	var docs []questionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		q := d.toModel()
		for _, id := range requested[d.ID] {
			found[id] = q
		}
	}
	return found, nil
}

func (r *mongoQuestionRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *mongoQuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// ReplaceAll is not atomic: a standalone mongod has no multi-document
// transactions, so a failed insert leaves the collection empty.
func (r *mongoQuestionRepository) ReplaceAll(ctx context.Context, questions []model.Question) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("clear questions: %w", err)
	}
	if len(questions) == 0 {
		return res.DeletedCount, nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(questions))
	for _, q := range questions {
		docs = append(docs, newQuestionDocument(q, now))
	}
	if _, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return res.DeletedCount, fmt.Errorf("insert questions: %w", err)
	}
	return res.DeletedCount, nil
}
