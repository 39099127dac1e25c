package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportKind distinguishes the client-facing narrative from the internal
// agency assessment generated for the same submission.
type ReportKind string

const (
	ReportClient   ReportKind = "client"
	ReportInternal ReportKind = "internal"
)

// Report — generated artifact. Each generation run inserts new rows; an
// existing report is never regenerated in place.
type Report struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubmissionID primitive.ObjectID `bson:"submissionId" json:"submissionId"`
	Title        string             `bson:"title" json:"title"`
	Kind         ReportKind         `bson:"kind" json:"kind"`
	Content      string             `bson:"content" json:"content"`
	GeneratedAt  time.Time          `bson:"generatedAt" json:"generatedAt"`
}

// GenerateReportRequest payload for POST /reports/generate
type GenerateReportRequest struct {
	SubmissionID string `json:"submissionId" validate:"required,len=24,hexadecimal"`
	Model        string `json:"model" validate:"omitempty,max=100"`
}

// EmailResult reports one branch of the report email fan-out.
type EmailResult struct {
	Recipient string `json:"recipient"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// GenerateReportResult is the response body for POST /reports/generate.
type GenerateReportResult struct {
	Message            string      `json:"message"`
	Reports            []Report    `json:"reports"`
	PartnerEmailResult EmailResult `json:"partnerEmailResult"`
	AgencyEmailResult  EmailResult `json:"agencyEmailResult"`
}
