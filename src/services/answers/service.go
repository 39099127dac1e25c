package answers

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
	"Backend-AuditHub/src/services/submissions"
)

var (
	answersCollection     *mongo.Collection
	submissionsCollection *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	answersCollection = database.AnswerCollection
	submissionsCollection = database.SubmissionCollection

	if answersCollection == nil || submissionsCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

var ErrAnswerNotFound = errors.New("answer not found")

// CreateAnswer appends one answer to an existing submission. There is no way
// to move an answer between submissions afterwards.
func CreateAnswer(ctx context.Context, req *models.CreateAnswerRequest) (*models.Answer, error) {
	submissionID, err := primitive.ObjectIDFromHex(req.SubmissionID)
	if err != nil {
		return nil, errors.New("invalid submissionId")
	}
	questionID, err := primitive.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		return nil, errors.New("invalid questionId")
	}

	count, err := submissionsCollection.CountDocuments(ctx, bson.M{"_id": submissionID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, submissions.ErrSubmissionNotFound
	}

	answer := &models.Answer{
		SubmissionID: submissionID,
		QuestionID:   questionID,
		Value:        req.Value,
		CreatedAt:    time.Now(),
	}

	result, err := answersCollection.InsertOne(ctx, answer)
	if err != nil {
		return nil, err
	}
	answer.ID = result.InsertedID.(primitive.ObjectID)
	return answer, nil
}

// GetAnswers lists answers, optionally scoped to one submission, paginated.
func GetAnswers(params models.PaginationParams, submissionID string) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params = params.Normalize()

	filter := bson.M{}
	if submissionID != "" {
		oid, err := primitive.ObjectIDFromHex(submissionID)
		if err != nil {
			return nil, errors.New("invalid submissionId")
		}
		filter["submissionId"] = oid
	}

	total, err := answersCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := answersCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Answer
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(items, total, params), nil
}

// GetAnswerByID retrieves one answer.
func GetAnswerByID(ctx context.Context, id primitive.ObjectID) (*models.Answer, error) {
	var answer models.Answer
	err := answersCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&answer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}
	return &answer, nil
}

// UpdateAnswer can only change the value; the submission and question
// references stay fixed for the life of the row.
func UpdateAnswer(ctx context.Context, id primitive.ObjectID, value string) (*models.Answer, error) {
	result, err := answersCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"value": value}})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrAnswerNotFound
	}
	return GetAnswerByID(ctx, id)
}

// DeleteAnswer removes one answer.
func DeleteAnswer(ctx context.Context, id primitive.ObjectID) error {
	result, err := answersCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrAnswerNotFound
	}
	return nil
}
