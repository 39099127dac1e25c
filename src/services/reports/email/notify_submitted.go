package email

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/hibiken/asynq"

	DB "Backend-AuditHub/src/database"
)

const TypeSubmissionReceived = "submission:received"

type SubmissionReceivedPayload struct {
	SubmissionID string `json:"submission_id"`
	CompanyName  string `json:"company_name"`
}

func NewSubmissionReceivedTask(submissionID, companyName string) (*asynq.Task, error) {
	payload, err := json.Marshal(SubmissionReceivedPayload{
		SubmissionID: submissionID,
		CompanyName:  companyName,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSubmissionReceived, payload), nil
}

// HandleSubmissionReceived notifies the agency inbox that a company finished
// its questionnaire.
func HandleSubmissionReceived(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p SubmissionReceivedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		to := os.Getenv("AGENCY_EMAIL")
		if to == "" {
			return errors.New("AGENCY_EMAIL not set")
		}

		html, err := RenderSubmissionReceivedHTML(SubmissionReceivedData{
			CompanyName:  p.CompanyName,
			SubmissionID: p.SubmissionID,
			ReceivedAt:   time.Now(),
		})
		if err != nil {
			return err
		}

		return sender.Send(to, "New audit submission: "+p.CompanyName, html)
	}
}

// NotifySubmissionReceived queues the notification when Redis is available
// and falls back to a synchronous send when it is not. Failures are logged,
// never surfaced — the submission itself is already committed.
func NotifySubmissionReceived(submissionID, companyName string) {
	task, err := NewSubmissionReceivedTask(submissionID, companyName)
	if err != nil {
		log.Println("❌ build submission-received task:", err)
		return
	}

	if DB.AsynqClient != nil {
		if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("submission-received-"+submissionID), asynq.MaxRetry(3)); err != nil {
			log.Println("❌ enqueue submission-received task:", err)
		} else {
			log.Println("✅ Enqueued submission-received task:", submissionID)
		}
		return
	}

	log.Println("⚠️ Redis not available → sending submission notification synchronously")
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("❌ init mail sender:", err)
		return
	}

	handler := HandleSubmissionReceived(sender)
	if err := handler(context.Background(), task); err != nil {
		log.Printf("❌ send submission notification: %v", err)
	} else {
		log.Printf("✅ sent submission notification for %s", submissionID)
	}
}
