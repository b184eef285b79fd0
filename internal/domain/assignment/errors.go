package assignment

import "github.com/161corp/hr-backend-go/internal/pkg/apperr"

// ErrAssignmentNotFound is what repository lookups and writes return for a
// missing id.
var ErrAssignmentNotFound = apperr.NotFound("assignment not found")
