package advertisement

import "github.com/BruksfildServices01/bizmarket/internal/httperr"

var errNotOwner = httperr.ErrForbidden("not_owner", "Only the owner or an admin can change this advertisement")
