package project

import "github.com/161corp/hr-backend-go/internal/pkg/apperr"

// ErrProjectNotFound is what repository lookups return for a missing id.
var ErrProjectNotFound = apperr.NotFound("Project not found")
