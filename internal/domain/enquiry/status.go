package enquiry

import "github.com/BruksfildServices01/bizmarket/internal/domain/lifecycle"

type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

type Type string

const (
	TypeNewListing      Type = "new_listing"
	TypeBusinessEnquiry Type = "business_enquiry"
)

const (
	MinMessageLength = 10
	MinBidAmount     = 1000
)

var MarkRead = lifecycle.Rule{
	Name:   "mark_enquiry_read",
	Column: "status",
	From:   []string{string(StatusUnread)},
	To:     string(StatusRead),
}
