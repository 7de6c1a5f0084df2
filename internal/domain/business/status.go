package business

import "github.com/BruksfildServices01/bizmarket/internal/domain/lifecycle"

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusRejected Status = "rejected"
	StatusSold     Status = "sold"
	StatusDraft    Status = "draft"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusRejected, StatusSold, StatusDraft:
		return true
	}
	return false
}

type Type string

const (
	TypeFranchise   Type = "franchise"
	TypeAcquisition Type = "acquisition"
	TypePartnership Type = "partnership"
)

func InitialStatus() Status {
	return StatusPending
}

var (
	Approve = lifecycle.Rule{
		Name:   "approve_business",
		Column: "status",
		From:   []string{string(StatusPending), string(StatusRejected)},
		To:     string(StatusActive),
	}

	Reject = lifecycle.Rule{
		Name:   "reject_business",
		Column: "status",
		From:   []string{string(StatusPending), string(StatusActive)},
		To:     string(StatusRejected),
	}
)

// IsPublic reports whether a listing may appear on public endpoints.
func IsPublic(status string) bool {
	return Status(status) == StatusActive
}
