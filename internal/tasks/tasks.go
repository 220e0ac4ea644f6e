package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// TypeCategorizeRepository is the task type for categorizing every
	// pending commit of one repository.
	TypeCategorizeRepository = "categorize:repository"
)

// CategorizeRepositoryPayload is the payload of a TypeCategorizeRepository task.
type CategorizeRepositoryPayload struct {
	RepositoryID int64 `json:"repository_id"`
	BatchSize    int   `json:"batch_size"`
	Limit        int   `json:"limit"`
}

// NewCategorizeRepositoryTask builds the asynq task for a repository run.
func NewCategorizeRepositoryTask(repositoryID int64, batchSize, limit int) (*asynq.Task, error) {
	payload, err := json.Marshal(CategorizeRepositoryPayload{
		RepositoryID: repositoryID,
		BatchSize:    batchSize,
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal categorize payload: %w", err)
	}
	return asynq.NewTask(TypeCategorizeRepository, payload), nil
}
