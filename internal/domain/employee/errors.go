package employee

import "github.com/161corp/hr-backend-go/internal/pkg/apperr"

// ErrEmployeeNotFound is what repository lookups return for a missing id.
var ErrEmployeeNotFound = apperr.NotFound("Employee not found")
