package seeder

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	DB "Backend-AuditHub/src/database"
	"Backend-AuditHub/src/models"
)

// SeedSampleData creates one sustainability audit form with categories,
// questions, options and visibility rules, plus a demo partner/client pair
// and an admin account. Skips entirely when any form already exists.
func SeedSampleData() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := DB.FormCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("⚠️ Forms already exist. Skipping seed.")
		return nil
	}

	form := models.Form{
		ID:          primitive.NewObjectID(),
		Title:       "Sustainability Audit 2026",
		Description: "Annual sustainability and compliance questionnaire",
		CreatedAt:   time.Now(),
	}
	if _, err := DB.FormCollection.InsertOne(ctx, form); err != nil {
		return err
	}

	general := models.QuestionCategory{ID: primitive.NewObjectID(), FormID: form.ID, Name: "General", Order: 1}
	energy := models.QuestionCategory{ID: primitive.NewObjectID(), FormID: form.ID, Name: "Energy & Emissions", Order: 2}
	waste := models.QuestionCategory{ID: primitive.NewObjectID(), FormID: form.ID, Name: "Waste Management", Order: 3}
	for _, cat := range []models.QuestionCategory{general, energy, waste} {
		if _, err := DB.QuestionCategoryCollection.InsertOne(ctx, cat); err != nil {
			return err
		}
	}

	employees := models.Question{ID: primitive.NewObjectID(), CategoryID: general.ID, Text: "How many employees does your company have?", Type: models.QuestionText, IsRequired: true, Order: 1}
	hasPolicy := models.Question{ID: primitive.NewObjectID(), CategoryID: general.ID, Text: "Does your company have a written sustainability policy?", Type: models.QuestionMultipleChoice, IsRequired: true, Order: 2}
	policyScope := models.Question{ID: primitive.NewObjectID(), CategoryID: general.ID, Text: "Which areas does the policy cover?", Type: models.QuestionCheckbox, IsRequired: false, Order: 3}
	energySources := models.Question{ID: primitive.NewObjectID(), CategoryID: energy.ID, Text: "Which energy sources does your company use?", Type: models.QuestionCheckbox, IsRequired: true, Order: 1}
	renewableShare := models.Question{ID: primitive.NewObjectID(), CategoryID: energy.ID, Text: "What share of your energy comes from renewable sources?", Type: models.QuestionText, IsRequired: false, Order: 2}
	separates := models.Question{ID: primitive.NewObjectID(), CategoryID: waste.ID, Text: "Do you separate recyclable waste?", Type: models.QuestionMultipleChoice, IsRequired: true, Order: 1}
	wasteDetail := models.Question{ID: primitive.NewObjectID(), CategoryID: waste.ID, Text: "Describe your recycling process.", Type: models.QuestionText, IsRequired: false, Order: 2}

	allQuestions := []models.Question{employees, hasPolicy, policyScope, energySources, renewableShare, separates, wasteDetail}
	for _, q := range allQuestions {
		if _, err := DB.QuestionCollection.InsertOne(ctx, q); err != nil {
			return err
		}
	}

	options := []models.QuestionOption{
		{ID: primitive.NewObjectID(), QuestionID: hasPolicy.ID, Text: "Yes", Value: "yes", Order: 1},
		{ID: primitive.NewObjectID(), QuestionID: hasPolicy.ID, Text: "No", Value: "no", Order: 2},
		{ID: primitive.NewObjectID(), QuestionID: policyScope.ID, Text: "Energy", Value: "energy", Order: 1},
		{ID: primitive.NewObjectID(), QuestionID: policyScope.ID, Text: "Waste", Value: "waste", Order: 2},
		{ID: primitive.NewObjectID(), QuestionID: policyScope.ID, Text: "Supply chain", Value: "supply_chain", Order: 3},
		{ID: primitive.NewObjectID(), QuestionID: energySources.ID, Text: "Grid electricity", Value: "grid", Order: 1},
		{ID: primitive.NewObjectID(), QuestionID: energySources.ID, Text: "Solar", Value: "solar", Order: 2},
		{ID: primitive.NewObjectID(), QuestionID: energySources.ID, Text: "Wind", Value: "wind", Order: 3},
		{ID: primitive.NewObjectID(), QuestionID: energySources.ID, Text: "Gas", Value: "gas", Order: 4},
		{ID: primitive.NewObjectID(), QuestionID: separates.ID, Text: "Yes", Value: "yes", Order: 1},
		{ID: primitive.NewObjectID(), QuestionID: separates.ID, Text: "No", Value: "no", Order: 2},
	}
	for _, o := range options {
		if _, err := DB.QuestionOptionCollection.InsertOne(ctx, o); err != nil {
			return err
		}
	}

	conditionals := []models.QuestionConditional{
		// policy scope only when a policy exists
		{ID: primitive.NewObjectID(), QuestionID: policyScope.ID, ConditionQuestionID: hasPolicy.ID, ConditionValues: []string{"yes"}, ShowQuestion: true, Operator: models.OperatorOR},
		// renewable share only when solar or wind is used
		{ID: primitive.NewObjectID(), QuestionID: renewableShare.ID, ConditionQuestionID: energySources.ID, ConditionValues: []string{"solar", "wind"}, ShowQuestion: true, Operator: models.OperatorOR},
		// recycling detail only when waste is separated
		{ID: primitive.NewObjectID(), QuestionID: wasteDetail.ID, ConditionQuestionID: separates.ID, ConditionValues: []string{"yes"}, ShowQuestion: true, Operator: models.OperatorOR},
	}
	for _, cond := range conditionals {
		if _, err := DB.QuestionConditionalCollection.InsertOne(ctx, cond); err != nil {
			return err
		}
	}

	partnerID := primitive.NewObjectID()
	companies := []models.Company{
		{ID: partnerID, FormID: form.ID, Name: "GreenPath Consulting", Industry: "Consulting", Size: "50-100", Email: "reports@greenpath.example", Type: models.CompanyPartner},
		{ID: primitive.NewObjectID(), FormID: form.ID, Name: "Acme Manufacturing", Industry: "Manufacturing", Size: "200-500", Email: "info@acme.example", Type: models.CompanyClient, PartnerID: &partnerID},
	}
	for _, company := range companies {
		if _, err := DB.CompanyCollection.InsertOne(ctx, company); err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		ID:       primitive.NewObjectID(),
		Email:    "admin@audithub.example",
		Password: string(hash),
		Role:     "Admin",
		Name:     "AuditHub Admin",
	}
	if _, err := DB.UserCollection.InsertOne(ctx, admin); err != nil {
		return err
	}

	log.Printf("✅ Seeded form %s with %d questions, 2 companies and 1 admin", form.ID.Hex(), len(allQuestions))
	return nil
}
