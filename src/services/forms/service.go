package forms

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
	formsCollection        *mongo.Collection
	categoriesCollection   *mongo.Collection
	questionsCollection    *mongo.Collection
	optionsCollection      *mongo.Collection
	conditionalsCollection *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	formsCollection = database.FormCollection
	categoriesCollection = database.QuestionCategoryCollection
	questionsCollection = database.QuestionCollection
	optionsCollection = database.QuestionOptionCollection
	conditionalsCollection = database.QuestionConditionalCollection

	if formsCollection == nil || categoriesCollection == nil || questionsCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

var ErrFormNotFound = errors.New("form not found")

// CreateForm creates a new empty form; categories and questions are added
// through their own endpoints.
func CreateForm(ctx context.Context, req *models.CreateFormRequest) (*models.Form, error) {
	now := time.Now()
	form := &models.Form{
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := formsCollection.InsertOne(ctx, form)
	if err != nil {
		return nil, err
	}
	form.ID = result.InsertedID.(primitive.ObjectID)
	return form, nil
}

// GetForms retrieves all forms with pagination
func GetForms(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params = params.Normalize()

	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := formsCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := formsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []models.Form
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(forms, total, params), nil
}

// GetFormByID retrieves one form without its question tree.
func GetFormByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := formsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// GetFormTree resolves the whole questionnaire for the survey UI: categories
// in display order, each with its questions, options and visibility rules.
func GetFormTree(ctx context.Context, id primitive.ObjectID) (*models.FormTree, error) {
	form, err := GetFormByID(ctx, id)
	if err != nil {
		return nil, err
	}

	catOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := categoriesCollection.Find(ctx, bson.M{"formId": id}, catOpts)
	if err != nil {
		return nil, err
	}
	var categories []models.QuestionCategory
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	tree := &models.FormTree{Form: *form, Categories: make([]models.CategoryTree, 0, len(categories))}
	if len(categories) == 0 {
		return tree, nil
	}

	catIDs := make([]primitive.ObjectID, 0, len(categories))
	for _, c := range categories {
		catIDs = append(catIDs, c.ID)
	}

	qOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err = questionsCollection.Find(ctx, bson.M{"categoryId": bson.M{"$in": catIDs}}, qOpts)
	if err != nil {
		return nil, err
	}
	var questions []models.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	questionIDs := make([]primitive.ObjectID, 0, len(questions))
	for _, q := range questions {
		questionIDs = append(questionIDs, q.ID)
	}

	optionsByQuestion := make(map[primitive.ObjectID][]models.QuestionOption)
	conditionalsByQuestion := make(map[primitive.ObjectID][]models.QuestionConditional)
	if len(questionIDs) > 0 {
		oOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})
		cursor, err = optionsCollection.Find(ctx, bson.M{"questionId": bson.M{"$in": questionIDs}}, oOpts)
		if err != nil {
			return nil, err
		}
		var opts []models.QuestionOption
		if err = cursor.All(ctx, &opts); err != nil {
			return nil, err
		}
		for _, o := range opts {
			optionsByQuestion[o.QuestionID] = append(optionsByQuestion[o.QuestionID], o)
		}

		cursor, err = conditionalsCollection.Find(ctx, bson.M{"questionId": bson.M{"$in": questionIDs}})
		if err != nil {
			return nil, err
		}
		var conds []models.QuestionConditional
		if err = cursor.All(ctx, &conds); err != nil {
			return nil, err
		}
		for _, c := range conds {
			conditionalsByQuestion[c.QuestionID] = append(conditionalsByQuestion[c.QuestionID], c)
		}
	}

	questionsByCategory := make(map[primitive.ObjectID][]models.QuestionTree)
	for _, q := range questions {
		questionsByCategory[q.CategoryID] = append(questionsByCategory[q.CategoryID], models.QuestionTree{
			Question:     q,
			Options:      optionsByQuestion[q.ID],
			Conditionals: conditionalsByQuestion[q.ID],
		})
	}

	for _, c := range categories {
		tree.Categories = append(tree.Categories, models.CategoryTree{
			Category:  c,
			Questions: questionsByCategory[c.ID],
		})
	}
	return tree, nil
}

// UpdateForm updates title/description.
func UpdateForm(ctx context.Context, id primitive.ObjectID, req *models.CreateFormRequest) (*models.Form, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.Title != "" {
		set["title"] = req.Title
	}
	if req.Description != "" {
		set["description"] = req.Description
	}

	result, err := formsCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrFormNotFound
	}
	return GetFormByID(ctx, id)
}

// DeleteForm removes the form and its whole question tree.
func DeleteForm(ctx context.Context, id primitive.ObjectID) error {
	result, err := formsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrFormNotFound
	}

	cursor, err := categoriesCollection.Find(ctx, bson.M{"formId": id})
	if err != nil {
		return err
	}
	var categories []models.QuestionCategory
	if err = cursor.All(ctx, &categories); err != nil {
		return err
	}
	if len(categories) == 0 {
		return nil
	}

	catIDs := make([]primitive.ObjectID, 0, len(categories))
	for _, c := range categories {
		catIDs = append(catIDs, c.ID)
	}

	qCursor, err := questionsCollection.Find(ctx, bson.M{"categoryId": bson.M{"$in": catIDs}})
	if err != nil {
		return err
	}
	var questions []models.Question
	if err = qCursor.All(ctx, &questions); err != nil {
		return err
	}

	if len(questions) > 0 {
		questionIDs := make([]primitive.ObjectID, 0, len(questions))
		for _, q := range questions {
			questionIDs = append(questionIDs, q.ID)
		}
		if _, err = optionsCollection.DeleteMany(ctx, bson.M{"questionId": bson.M{"$in": questionIDs}}); err != nil {
			return err
		}
		if _, err = conditionalsCollection.DeleteMany(ctx, bson.M{"questionId": bson.M{"$in": questionIDs}}); err != nil {
			return err
		}
		if _, err = questionsCollection.DeleteMany(ctx, bson.M{"categoryId": bson.M{"$in": catIDs}}); err != nil {
			return err
		}
	}

	_, err = categoriesCollection.DeleteMany(ctx, bson.M{"formId": id})
	return err
}
