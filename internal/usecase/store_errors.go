package usecase

import (
	"errors"
	"fmt"
	"repairdesk/internal/domain/errs"
	"repairdesk/internal/usecase/interfaces"
)

// storeErr maps a repository failure to the error callers branch on. Lost
// compare-and-set races become Conflict; anything else is wrapped as is.
func storeErr(entity, id string, err error) error {
	if errors.Is(err, interfaces.ErrVersionConflict) || errors.Is(err, interfaces.ErrItemExists) {
		return errs.Conflict(entity, id, err)
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func requireID(entity, id string) error {
	if id == "" {
		return errs.Validation(entity, "id is required")
	}
	return nil
}
