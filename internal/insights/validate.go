package insights

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JaimeStill/unmask/internal/collaborator"
	"github.com/JaimeStill/unmask/internal/workflow"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// assessment carries the constraints every stored insight satisfies. The
// range check also rejects NaN, which compares false against both bounds.
type assessment struct {
	Category string  `validate:"required"`
	Score    float64 `validate:"gte=0,lte=1"`
}

// Validate checks collaborator output before anything is stored. An empty
// list fails with workflow.ErrEmptyResult; a missing category or a score
// outside [0, 1] fails with workflow.ErrSchemaViolation. Scores are never
// clamped.
func Validate(items []collaborator.BiasItem) error {
	if len(items) == 0 {
		return workflow.ErrEmptyResult
	}

	for i, item := range items {
		err := validate.Struct(assessment{Category: strings.TrimSpace(item.Category), Score: item.Score})
		if err == nil {
			continue
		}

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf(
				"%w: item %d: %s failed %s (got %v)",
				workflow.ErrSchemaViolation, i, verrs[0].Field(), verrs[0].Tag(), verrs[0].Value(),
			)
		}
		return fmt.Errorf("%w: item %d: %w", workflow.ErrSchemaViolation, i, err)
	}
	return nil
}
