package bonusdeduction

import "github.com/161corp/hr-backend-go/internal/pkg/apperr"

// ErrBonusDeductionNotFound is what repository lookups and writes return
// for a missing id.
var ErrBonusDeductionNotFound = apperr.NotFound("bonus/deduction record not found")
