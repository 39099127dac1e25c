package questions

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-AuditHub/src/models"
)

var ErrOptionNotFound = errors.New("question option not found")

// CreateOption adds an enumerated choice to an existing question.
func CreateOption(ctx context.Context, req *models.CreateQuestionOptionRequest) (*models.QuestionOption, error) {
	questionID, err := primitive.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		return nil, errors.New("invalid questionId")
	}

	question, err := GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.Type != models.QuestionMultipleChoice && question.Type != models.QuestionCheckbox {
		return nil, errors.New("options are only valid for multiple_choice and checkbox questions")
	}

	option := &models.QuestionOption{
		QuestionID: questionID,
		Text:       req.Text,
		Value:      req.Value,
		Order:      req.Order,
	}

	result, err := optionsCollection.InsertOne(ctx, option)
	if err != nil {
		return nil, err
	}
	option.ID = result.InsertedID.(primitive.ObjectID)
	return option, nil
}

// GetOptions lists options, optionally scoped to one question, paginated.
func GetOptions(params models.PaginationParams, questionID string) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params = params.Normalize()

	filter := bson.M{}
	if questionID != "" {
		oid, err := primitive.ObjectIDFromHex(questionID)
		if err != nil {
			return nil, errors.New("invalid questionId")
		}
		filter["questionId"] = oid
	}

	total, err := optionsCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := optionsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.QuestionOption
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(items, total, params), nil
}

// GetOptionByID retrieves one option.
func GetOptionByID(ctx context.Context, id primitive.ObjectID) (*models.QuestionOption, error) {
	var option models.QuestionOption
	err := optionsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&option)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}
	return &option, nil
}

// UpdateOption updates text/value/order.
func UpdateOption(ctx context.Context, id primitive.ObjectID, req *models.CreateQuestionOptionRequest) (*models.QuestionOption, error) {
	set := bson.M{}
	if req.Text != "" {
		set["text"] = req.Text
	}
	if req.Value != "" {
		set["value"] = req.Value
	}
	if req.Order >= 0 {
		set["order"] = req.Order
	}

	result, err := optionsCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrOptionNotFound
	}
	return GetOptionByID(ctx, id)
}

// DeleteOption removes one option.
func DeleteOption(ctx context.Context, id primitive.ObjectID) error {
	result, err := optionsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrOptionNotFound
	}
	return nil
}
