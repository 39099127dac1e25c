package email

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"
)

//go:embed email_submission_received.html
var submissionReceivedHTML string

var submissionReceivedTmpl = template.Must(
	template.New("submission_received").
		Funcs(template.FuncMap{
			"formatDate": func(t time.Time) string {
				return t.Format("02/01/2006 15:04")
			},
		}).
		Parse(submissionReceivedHTML),
)

type SubmissionReceivedData struct {
	CompanyName  string
	SubmissionID string
	ReceivedAt   time.Time
}

func RenderSubmissionReceivedHTML(data SubmissionReceivedData) (string, error) {
	var buf bytes.Buffer
	if err := submissionReceivedTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

//go:embed email_report_ready.html
var reportReadyHTML string

var reportReadyTmpl = template.Must(
	template.New("report_ready").
		Funcs(template.FuncMap{
			"formatDate": func(t time.Time) string {
				return t.Format("02/01/2006")
			},
		}).
		Parse(reportReadyHTML),
)

type ReportReadyData struct {
	CompanyName string
	ReportTitle string
	GeneratedAt time.Time
	Internal    bool
}

func RenderReportReadyHTML(data ReportReadyData) (string, error) {
	var buf bytes.Buffer
	if err := reportReadyTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
