package tasks

import (
	"encoding/json"
	"time"

	"github.com/fierogr/findfarewells-sub000/models"

	"github.com/hibiken/asynq"
)

const TypeRegistrationEmail = "email:registration"

// NewRegistrationEmailTask builds the queued notification for a freshly
// recorded registration request.
func NewRegistrationEmailTask(payload models.RegistrationEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeRegistrationEmail, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}
