package submissions

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
	"Backend-AuditHub/src/services/companies"
	"Backend-AuditHub/src/services/reports/email"
	"Backend-AuditHub/src/services/survey"
)

var (
	submissionsCollection *mongo.Collection
	answersCollection     *mongo.Collection
	questionsCollection   *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	submissionsCollection = database.SubmissionCollection
	answersCollection = database.AnswerCollection
	questionsCollection = database.QuestionCollection

	if submissionsCollection == nil || answersCollection == nil || questionsCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

var ErrSubmissionNotFound = errors.New("submission not found")

// CompleteSubmission runs the whole audit-completion flow: resolve the
// company by name, map the payload against the company's form, then insert
// the submission and its answers in one transaction. Either the submission
// row and every answer row are committed, or none are.
func CompleteSubmission(ctx context.Context, req *models.CompleteSubmissionRequest) (*models.Submission, []models.Answer, *survey.MappingResult, error) {
	company, err := companies.GetCompanyByName(ctx, req.CompanyName)
	if err != nil {
		return nil, nil, nil, err
	}

	ids, malformed, err := survey.ExtractQuestionIDs(req.FormData)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(malformed) > 0 {
		log.Printf("[submission] malformed question reference(s) in payload for %s: %v", company.Name, malformed)
	}

	questions, err := fetchQuestionsWithForm(ctx, ids)
	if err != nil {
		return nil, nil, nil, err
	}

	result, err := survey.MapFormData(req.FormData, company.FormID, questions)
	if err != nil {
		return nil, nil, nil, err
	}

	submission := &models.Submission{
		ID:        primitive.NewObjectID(),
		FormID:    company.FormID,
		CompanyID: company.ID,
		CreatedAt: time.Now(),
	}

	answers := make([]models.Answer, 0, len(result.ValidatedAnswers))
	docs := make([]interface{}, 0, len(result.ValidatedAnswers))
	for _, v := range result.ValidatedAnswers {
		answer := models.Answer{
			ID:           primitive.NewObjectID(),
			SubmissionID: submission.ID,
			QuestionID:   v.QuestionID,
			Value:        v.Value,
			CreatedAt:    submission.CreatedAt,
		}
		answers = append(answers, answer)
		docs = append(docs, answer)
	}

	session, err := database.GetClient().StartSession()
	if err != nil {
		return nil, nil, nil, err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := submissionsCollection.InsertOne(sc, submission); err != nil {
			return nil, err
		}
		if _, err := answersCollection.InsertMany(sc, docs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, nil, nil, err
	}

	log.Printf("[submission] inserted id=%s company=%s answers=%d invalid=%d",
		submission.ID.Hex(), company.Name, len(answers), len(result.InvalidQuestionIDs))

	// fire-and-forget; the submission is already durable
	email.NotifySubmissionReceived(submission.ID.Hex(), company.Name)

	return submission, answers, result, nil
}

// fetchQuestionsWithForm joins each candidate question to its category's
// form id, so the mapper can tell cross-form references apart. Questions
// whose category is gone keep a zero form id and fall out as invalid.
func fetchQuestionsWithForm(ctx context.Context, ids []primitive.ObjectID) ([]survey.QuestionWithForm, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": bson.M{"$in": ids}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "questionCategories",
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "category",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$category", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$addFields", Value: bson.M{"formId": "$category.formId"}}},
		bson.D{{Key: "$project", Value: bson.M{"category": 0}}},
	}

	cursor, err := questionsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []survey.QuestionWithForm
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// GetSubmissions lists submissions, optionally filtered, paginated.
func GetSubmissions(params models.PaginationParams, formID, companyID string) (*models.PaginatedResponse, error) {
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
	if companyID != "" {
		oid, err := primitive.ObjectIDFromHex(companyID)
		if err != nil {
			return nil, errors.New("invalid companyId")
		}
		filter["companyId"] = oid
	}

	total, err := submissionsCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := submissionsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Submission
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(items, total, params), nil
}

// GetSubmissionByID retrieves a submission by its ID
func GetSubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	var submission models.Submission
	err := submissionsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// DeleteSubmission removes a submission together with its answers.
func DeleteSubmission(ctx context.Context, id primitive.ObjectID) error {
	result, err := submissionsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSubmissionNotFound
	}
	_, err = answersCollection.DeleteMany(ctx, bson.M{"submissionId": id})
	return err
}
