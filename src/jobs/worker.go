package jobs

import (
	"log"

	"github.com/hibiken/asynq"

	DB "Backend-AuditHub/src/database"
	"Backend-AuditHub/src/services/reports/email"
)

// RegisterEmailHandlers ผูก handler ของ email package เข้ากับ mux
func RegisterEmailHandlers(mux *asynq.ServeMux) error {
	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		return err // ถ้า SMTP env ยังไม่ครบ จะ fail ตอน start worker
	}

	mux.HandleFunc(email.TypeSubmissionReceived, email.HandleSubmissionReceived(sender))
	return nil
}

// StartWorker runs the asynq consumer. Call from a goroutine after
// InitAsynq; it returns immediately when Redis is not configured.
func StartWorker() {
	if DB.AsynqClient == nil {
		log.Println("⚠️ Asynq client not initialized → worker disabled")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	if err := RegisterEmailHandlers(mux); err != nil {
		log.Println("❌ register email handlers:", err)
		return
	}

	log.Println("✅ Asynq worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
