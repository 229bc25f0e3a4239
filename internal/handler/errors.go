package handler

import (
	"errors"
	"fmt"

	"quizforge/internal/domain"
)

// pipelineError turns a pipeline failure into a 500 carrying the cause in its
// message. Validation failures pass through unchanged.
func pipelineError(action string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) && domainErr.IsValidation() {
		return err
	}
	return domain.NewInternalError(fmt.Sprintf("Error %s: %v", action, err), err)
}
