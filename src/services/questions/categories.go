package questions

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-AuditHub/src/database"
	"Backend-AuditHub/src/models"
)

// CreateCategory inserts a new section into an existing form.
func CreateCategory(ctx context.Context, req *models.CreateQuestionCategoryRequest) (*models.QuestionCategory, error) {
	formID, err := primitive.ObjectIDFromHex(req.FormID)
	if err != nil {
		return nil, errors.New("invalid formId")
	}

	count, err := database.FormCollection.CountDocuments(ctx, bson.M{"_id": formID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrFormNotFound
	}

	category := &models.QuestionCategory{
		FormID: formID,
		Name:   req.Name,
		Order:  req.Order,
	}

	result, err := categoriesCollection.InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return category, nil
}

// GetCategories lists categories, optionally scoped to one form, paginated.
func GetCategories(params models.PaginationParams, formID string) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params = params.Normalize()

	filter := bson.M{}
	if formID != "" {
		oid, err := primitive.ObjectIDFromHex(formID)
		if err != nil {
			return nil, errors.New("invalid formId")
		}
		filter["formId"] = oid
	}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := categoriesCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := categoriesCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.QuestionCategory
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(items, total, params), nil
}

// GetCategoryByID retrieves one category.
func GetCategoryByID(ctx context.Context, id primitive.ObjectID) (*models.QuestionCategory, error) {
	var category models.QuestionCategory
	err := categoriesCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// UpdateCategory updates name/order.
func UpdateCategory(ctx context.Context, id primitive.ObjectID, req *models.CreateQuestionCategoryRequest) (*models.QuestionCategory, error) {
	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Order >= 0 {
		set["order"] = req.Order
	}

	result, err := categoriesCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrCategoryNotFound
	}
	return GetCategoryByID(ctx, id)
}

// DeleteCategory removes a category and everything under it.
func DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	result, err := categoriesCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrCategoryNotFound
	}

	cursor, err := questionsCollection.Find(ctx, bson.M{"categoryId": id})
	if err != nil {
		return err
	}
	var qs []models.Question
	if err = cursor.All(ctx, &qs); err != nil {
		return err
	}
	for _, q := range qs {
		if err := DeleteQuestion(ctx, q.ID); err != nil && err != ErrQuestionNotFound {
			return err
		}
	}
	return nil
}
