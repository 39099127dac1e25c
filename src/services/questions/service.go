package questions

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-AuditHub/src/database"
	"Backend-AuditHub/src/models"
)

var (
	questionsCollection    *mongo.Collection
	categoriesCollection   *mongo.Collection
	optionsCollection      *mongo.Collection
	conditionalsCollection *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	questionsCollection = database.QuestionCollection
	categoriesCollection = database.QuestionCategoryCollection
	optionsCollection = database.QuestionOptionCollection
	conditionalsCollection = database.QuestionConditionalCollection

	if questionsCollection == nil || categoriesCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("question category not found")
	ErrFormNotFound     = errors.New("form not found")
)

// CreateQuestion inserts a question into an existing category.
func CreateQuestion(ctx context.Context, req *models.CreateQuestionRequest) (*models.Question, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return nil, errors.New("invalid categoryId")
	}

	count, err := categoriesCollection.CountDocuments(ctx, bson.M{"_id": categoryID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrCategoryNotFound
	}

	question := &models.Question{
		CategoryID: categoryID,
		Text:       req.Text,
		Type:       models.QuestionType(req.Type),
		IsRequired: req.IsRequired,
		Order:      req.Order,
	}

	result, err := questionsCollection.InsertOne(ctx, question)
	if err != nil {
		return nil, err
	}
	question.ID = result.InsertedID.(primitive.ObjectID)
	return question, nil
}

// GetQuestions lists questions, optionally filtered by category, paginated.
func GetQuestions(params models.PaginationParams, categoryID string) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params = params.Normalize()

	filter := bson.M{}
	if categoryID != "" {
		oid, err := primitive.ObjectIDFromHex(categoryID)
		if err != nil {
			return nil, errors.New("invalid categoryId")
		}
		filter["categoryId"] = oid
	}
	if params.Search != "" {
		filter["text"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := questionsCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := questionsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Question
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(items, total, params), nil
}

// GetQuestionByID retrieves one question.
func GetQuestionByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	var question models.Question
	err := questionsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

// UpdateQuestion updates the editable fields of a question.
func UpdateQuestion(ctx context.Context, id primitive.ObjectID, req *models.CreateQuestionRequest) (*models.Question, error) {
	set := bson.M{}
	if req.Text != "" {
		set["text"] = req.Text
	}
	if req.Type != "" {
		set["type"] = req.Type
	}
	set["isRequired"] = req.IsRequired
	if req.Order >= 0 {
		set["order"] = req.Order
	}

	result, err := questionsCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrQuestionNotFound
	}
	return GetQuestionByID(ctx, id)
}

// DeleteQuestion removes a question together with its options and the
// conditionals that reference it from either side.
func DeleteQuestion(ctx context.Context, id primitive.ObjectID) error {
	result, err := questionsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrQuestionNotFound
	}

	if _, err = optionsCollection.DeleteMany(ctx, bson.M{"questionId": id}); err != nil {
		return err
	}
	_, err = conditionalsCollection.DeleteMany(ctx, bson.M{"$or": bson.A{
		bson.M{"questionId": id},
		bson.M{"conditionQuestionId": id},
	}})
	return err
}
