package business

import "github.com/BruksfildServices01/bizmarket/internal/httperr"

var (
	errBusinessNotFound = httperr.ErrNotFound("business_not_found", "Business not found")
	errNotOwner         = httperr.ErrForbidden("not_owner", "Only the owner or an admin can change this listing")
)
