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
	"Backend-AuditHub/src/services/survey"
)

var (
	ErrConditionalNotFound = errors.New("question conditional not found")
	ErrConditionalCycle    = errors.New("conditional would create a circular dependency between questions")
	ErrSelfConditional     = errors.New("a question cannot be conditional on itself")
)

// CreateConditional adds a visibility rule. Both questions must exist and the
// new dependency edge must not close a cycle — a form where A shows based on
// B and B shows based on A can never resolve, so it is rejected here instead
// of left undefined at evaluation time.
func CreateConditional(ctx context.Context, req *models.CreateQuestionConditionalRequest) (*models.QuestionConditional, error) {
	questionID, err := primitive.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		return nil, errors.New("invalid questionId")
	}
	conditionQuestionID, err := primitive.ObjectIDFromHex(req.ConditionQuestionID)
	if err != nil {
		return nil, errors.New("invalid conditionQuestionId")
	}
	if questionID == conditionQuestionID {
		return nil, ErrSelfConditional
	}

	if _, err := GetQuestionByID(ctx, questionID); err != nil {
		return nil, err
	}
	if _, err := GetQuestionByID(ctx, conditionQuestionID); err != nil {
		return nil, err
	}

	deps, err := dependencyEdges(ctx)
	if err != nil {
		return nil, err
	}
	if survey.CreatesCycle(deps, questionID.Hex(), conditionQuestionID.Hex()) {
		return nil, ErrConditionalCycle
	}

	conditional := &models.QuestionConditional{
		QuestionID:          questionID,
		ConditionQuestionID: conditionQuestionID,
		ConditionValues:     req.ConditionValues,
		ShowQuestion:        req.ShowQuestion,
		Operator:            models.ConditionalOperator(req.Operator),
	}

	result, err := conditionalsCollection.InsertOne(ctx, conditional)
	if err != nil {
		return nil, err
	}
	conditional.ID = result.InsertedID.(primitive.ObjectID)
	return conditional, nil
}

// dependencyEdges loads the existing conditional graph:
// question id -> ids of the questions its visibility depends on.
func dependencyEdges(ctx context.Context) (map[string][]string, error) {
	cursor, err := conditionalsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var conditionals []models.QuestionConditional
	if err = cursor.All(ctx, &conditionals); err != nil {
		return nil, err
	}

	deps := make(map[string][]string, len(conditionals))
	for _, c := range conditionals {
		deps[c.QuestionID.Hex()] = append(deps[c.QuestionID.Hex()], c.ConditionQuestionID.Hex())
	}
	return deps, nil
}

// GetConditionals lists conditionals, optionally scoped to one question.
func GetConditionals(params models.PaginationParams, questionID string) (*models.PaginatedResponse, error) {
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

	total, err := conditionalsCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := conditionalsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.QuestionConditional
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(items, total, params), nil
}

// GetConditionalByID retrieves one conditional.
func GetConditionalByID(ctx context.Context, id primitive.ObjectID) (*models.QuestionConditional, error) {
	var conditional models.QuestionConditional
	err := conditionalsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&conditional)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrConditionalNotFound
		}
		return nil, err
	}
	return &conditional, nil
}

// UpdateConditional replaces values/operator/showQuestion. The two question
// references are immutable; changing the edge means delete + create so the
// cycle check always sees the real graph.
func UpdateConditional(ctx context.Context, id primitive.ObjectID, req *models.CreateQuestionConditionalRequest) (*models.QuestionConditional, error) {
	set := bson.M{"showQuestion": req.ShowQuestion}
	if len(req.ConditionValues) > 0 {
		set["conditionValues"] = req.ConditionValues
	}
	if req.Operator != "" {
		set["operator"] = req.Operator
	}

	result, err := conditionalsCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrConditionalNotFound
	}
	return GetConditionalByID(ctx, id)
}

// DeleteConditional removes one conditional.
func DeleteConditional(ctx context.Context, id primitive.ObjectID) error {
	result, err := conditionalsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrConditionalNotFound
	}
	return nil
}
