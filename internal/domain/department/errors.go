package department

import "github.com/161corp/hr-backend-go/internal/pkg/apperr"

// ErrDepartmentNotFound is what repository lookups return for a missing id.
var ErrDepartmentNotFound = apperr.NotFound("Department not found")
