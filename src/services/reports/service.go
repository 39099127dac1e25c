package reports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-AuditHub/src/database"
	"Backend-AuditHub/src/models"
	"Backend-AuditHub/src/services/companies"
	"Backend-AuditHub/src/services/reports/email"
	"Backend-AuditHub/src/services/submissions"
	"Backend-AuditHub/src/services/survey"
)

var (
	reportCollection   *mongo.Collection
	formCollection     *mongo.Collection
	categoryCollection *mongo.Collection
	questionCollection *mongo.Collection
	answerCollection   *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	reportCollection = database.ReportCollection
	formCollection = database.FormCollection
	categoryCollection = database.QuestionCategoryCollection
	questionCollection = database.QuestionCollection
	answerCollection = database.AnswerCollection
	if reportCollection == nil {
		log.Fatal("Failed to get the reports collection")
	}
}

var ErrReportNotFound = errors.New("report not found")

// Prompts for the two narrative branches. The client version is shared with
// the audited company; the internal version stays with the agency.
const clientSystemPrompt = `You are a sustainability audit consultant. Based on the following audit interview, write a professional, encouraging report for the audited company. Summarize their current practices, highlight strengths, and give concrete improvement recommendations. Write in clear business prose, no bullet-point dumps.`

const internalSystemPrompt = `You are a senior auditor preparing an internal assessment. Based on the following audit interview, write a candid internal report: risk areas, inconsistencies or gaps in the answers, follow-up questions for the next engagement, and an overall readiness rating. This document is internal — be direct.`

// GenerateReport runs the full pipeline for one submission: assemble the
// transcript, generate both AI narratives concurrently, render the document
// attachments, email partner and agency in parallel, and persist one Report
// row per narrative. Email failures are reported per branch, not retried.
func GenerateReport(ctx context.Context, req *models.GenerateReportRequest) (*models.GenerateReportResult, error) {
	submissionID, err := primitive.ObjectIDFromHex(req.SubmissionID)
	if err != nil {
		return nil, submissions.ErrSubmissionNotFound
	}

	submission, err := submissions.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	company, err := companies.GetCompanyByID(ctx, submission.CompanyID)
	if err != nil {
		return nil, err
	}

	doc, err := assembleTranscript(ctx, submission, company)
	if err != nil {
		return nil, err
	}
	pairs := doc.Pairs()

	// Two narrative branches, no shared state until the join.
	var (
		wg                       sync.WaitGroup
		clientText, internalText string
		clientErr, internalErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		clientText, clientErr = GenerateNarrative(ctx, clientSystemPrompt, req.Model, pairs)
	}()
	go func() {
		defer wg.Done()
		internalText, internalErr = GenerateNarrative(ctx, internalSystemPrompt, req.Model, pairs)
	}()
	wg.Wait()

	if clientErr != nil {
		return nil, fmt.Errorf("client narrative generation failed: %w", clientErr)
	}
	if internalErr != nil {
		return nil, fmt.Errorf("internal narrative generation failed: %w", internalErr)
	}

	title := fmt.Sprintf("Audit Report — %s", company.Name)
	attachments, err := renderAttachments(ctx, title, doc, clientText, internalText)
	if err != nil {
		return nil, err
	}

	partnerResult, agencyResult := dispatchEmails(ctx, company, title, attachments)

	now := time.Now()
	rows := []models.Report{
		{
			ID:           primitive.NewObjectID(),
			SubmissionID: submission.ID,
			Title:        title,
			Kind:         models.ReportClient,
			Content:      clientText,
			GeneratedAt:  now,
		},
		{
			ID:           primitive.NewObjectID(),
			SubmissionID: submission.ID,
			Title:        title + " (internal)",
			Kind:         models.ReportInternal,
			Content:      internalText,
			GeneratedAt:  now,
		},
	}

	docs := make([]interface{}, len(rows))
	for i := range rows {
		docs[i] = rows[i]
	}
	if _, err := reportCollection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	log.Printf("[report] generated 2 reports for submission %s", submission.ID.Hex())

	return &models.GenerateReportResult{
		Message:            "Report generated",
		Reports:            rows,
		PartnerEmailResult: partnerResult,
		AgencyEmailResult:  agencyResult,
	}, nil
}

// assembleTranscript loads the submission's form tree and answers and builds
// the ordered question/answer document.
func assembleTranscript(ctx context.Context, submission *models.Submission, company *models.Company) (*survey.QADocument, error) {
	var form models.Form
	if err := formCollection.FindOne(ctx, bson.M{"_id": submission.FormID}).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("form not found for submission")
		}
		return nil, err
	}

	cursor, err := categoryCollection.Find(ctx, bson.M{"formId": form.ID})
	if err != nil {
		return nil, err
	}
	var categories []models.QuestionCategory
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	catIDs := make([]primitive.ObjectID, 0, len(categories))
	for _, c := range categories {
		catIDs = append(catIDs, c.ID)
	}

	var questions []models.Question
	if len(catIDs) > 0 {
		cursor, err = questionCollection.Find(ctx, bson.M{"categoryId": bson.M{"$in": catIDs}})
		if err != nil {
			return nil, err
		}
		if err = cursor.All(ctx, &questions); err != nil {
			return nil, err
		}
	}

	// Retrieval order matters for multi-value answers; _id order matches
	// insert order within the submission transaction.
	ansOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err = answerCollection.Find(ctx, bson.M{"submissionId": submission.ID}, ansOpts)
	if err != nil {
		return nil, err
	}
	var answers []models.Answer
	if err = cursor.All(ctx, &answers); err != nil {
		return nil, err
	}

	return survey.BuildQADocument(*company, form, categories, questions, answers), nil
}

type reportAttachments struct {
	qaDocx      email.Attachment
	clientPDF   email.Attachment
	internalPDF email.Attachment
}

func renderAttachments(ctx context.Context, title string, doc *survey.QADocument, clientText, internalText string) (*reportAttachments, error) {
	tag := uuid.NewString()[:8]

	qaBytes, err := RenderDocument(ctx, title, doc.Markdown(), "docx")
	if err != nil {
		return nil, fmt.Errorf("render QA document: %w", err)
	}

	clientBytes, err := RenderDocument(ctx, title, clientText, "pdf")
	if err != nil {
		return nil, fmt.Errorf("render client report: %w", err)
	}

	internalBytes, err := RenderDocument(ctx, title+" (internal)", internalText, "pdf")
	if err != nil {
		return nil, fmt.Errorf("render internal report: %w", err)
	}

	return &reportAttachments{
		qaDocx: email.Attachment{
			Filename:    fmt.Sprintf("audit-answers-%s.docx", tag),
			Content:     qaBytes,
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
		clientPDF: email.Attachment{
			Filename:    fmt.Sprintf("audit-report-%s.pdf", tag),
			Content:     clientBytes,
			ContentType: "application/pdf",
		},
		internalPDF: email.Attachment{
			Filename:    fmt.Sprintf("internal-assessment-%s.pdf", tag),
			Content:     internalBytes,
			ContentType: "application/pdf",
		},
	}, nil
}

// dispatchEmails fans out the two sends concurrently. The partner receives
// the client-facing narrative plus the raw answers; the agency additionally
// receives the internal assessment.
func dispatchEmails(ctx context.Context, company *models.Company, title string, att *reportAttachments) (models.EmailResult, models.EmailResult) {
	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		fail := models.EmailResult{Success: false, Error: err.Error()}
		return fail, fail
	}

	partnerHTML, err := email.RenderReportReadyHTML(email.ReportReadyData{
		CompanyName: company.Name,
		ReportTitle: title,
		GeneratedAt: time.Now(),
		Internal:    false,
	})
	if err != nil {
		fail := models.EmailResult{Success: false, Error: err.Error()}
		return fail, fail
	}
	agencyHTML, err := email.RenderReportReadyHTML(email.ReportReadyData{
		CompanyName: company.Name,
		ReportTitle: title,
		GeneratedAt: time.Now(),
		Internal:    true,
	})
	if err != nil {
		fail := models.EmailResult{Success: false, Error: err.Error()}
		return fail, fail
	}

	var (
		wg            sync.WaitGroup
		partnerResult models.EmailResult
		agencyResult  models.EmailResult
	)
	wg.Add(2)

	go func() {
		defer wg.Done()
		to, err := companies.ResolveStakeholderEmail(ctx, company)
		if err != nil {
			partnerResult = models.EmailResult{Success: false, Error: err.Error()}
			return
		}
		partnerResult = models.EmailResult{Recipient: to, Success: true}
		if err := sender.Send(to, title, partnerHTML, att.clientPDF, att.qaDocx); err != nil {
			log.Println("❌ partner report email:", err)
			partnerResult.Success = false
			partnerResult.Error = err.Error()
		}
	}()

	go func() {
		defer wg.Done()
		to := agencyEmail()
		if to == "" {
			agencyResult = models.EmailResult{Success: false, Error: "AGENCY_EMAIL not set"}
			return
		}
		agencyResult = models.EmailResult{Recipient: to, Success: true}
		if err := sender.Send(to, title+" (internal)", agencyHTML, att.internalPDF, att.clientPDF, att.qaDocx); err != nil {
			log.Println("❌ agency report email:", err)
			agencyResult.Success = false
			agencyResult.Error = err.Error()
		}
	}()

	wg.Wait()
	return partnerResult, agencyResult
}

func agencyEmail() string {
	return os.Getenv("AGENCY_EMAIL")
}

// GetReports returns the paginated report list, optionally scoped to one
// submission.
func GetReports(params models.PaginationParams, submissionID string) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params = params.Normalize()

	filter := bson.M{}
	if submissionID != "" {
		id, err := primitive.ObjectIDFromHex(submissionID)
		if err != nil {
			return nil, submissions.ErrSubmissionNotFound
		}
		filter["submissionId"] = id
	}

	total, err := reportCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "generatedAt", Value: -1}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := reportCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.Report
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(results, total, params), nil
}

func GetReportByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	if err := reportCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func DeleteReport(ctx context.Context, id primitive.ObjectID) error {
	res, err := reportCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrReportNotFound
	}
	return nil
}
