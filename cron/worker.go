package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/fierogr/findfarewells-sub000/config"
	"github.com/fierogr/findfarewells-sub000/database/repository"
	"github.com/fierogr/findfarewells-sub000/models"
	"github.com/fierogr/findfarewells-sub000/services/mailer"
	"github.com/fierogr/findfarewells-sub000/services/tasks"

	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async mail worker in background.
func InitMailWorker(m mailer.Mailer, settings repository.SettingsRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRegistrationEmail, handleRegistrationEmail(m, settings))

	// Start async worker with retry logic
	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// NewQueueClient returns the asynq client used to enqueue mail tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
}

func handleRegistrationEmail(m mailer.Mailer, settings repository.SettingsRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.RegistrationEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] invalid payload: %v", err)
			return err
		}

		// The notification mailbox is a runtime setting, with the configured
		// admin address as fallback.
		to, err := settings.Get(models.SettingAdminEmail)
		if err != nil || to == "" {
			to = config.AppConfig.AdminEmail
		}

		if err := m.SendRegistrationNotification(to, p); err != nil {
			log.Printf("[MailWorker] failed to deliver registration email for %s: %v", p.RequestID, err)
			return err
		}
		log.Printf("[MailWorker] delivered registration email for %s", p.RequestID)
		return nil
	}
}
