package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bizmarket/internal/dispatch"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/httpresp"
	"github.com/BruksfildServices01/bizmarket/internal/middleware"
	"github.com/BruksfildServices01/bizmarket/internal/models"
	ucAdmin "github.com/BruksfildServices01/bizmarket/internal/usecase/admin"
)

// AdminModeration groups the status transitions available to admins.
type AdminModeration struct {
	ApproveBusiness       *ucAdmin.Moderate[models.Business]
	RejectBusiness        *ucAdmin.Moderate[models.Business]
	MarkEnquiryRead       *ucAdmin.Moderate[models.Enquiry]
	ActivateAdvertisement *ucAdmin.Moderate[models.Advertisement]
	RejectAdvertisement   *ucAdmin.Moderate[models.Advertisement]
}

type AdminHandler struct {
	dashboard *ucAdmin.GetDashboard
	listings  *ucAdmin.Listings
	moderate  AdminModeration
}

func NewAdminHandler(
	dashboard *ucAdmin.GetDashboard,
	listings *ucAdmin.Listings,
	moderate AdminModeration,
) *AdminHandler {
	return &AdminHandler{
		dashboard: dashboard,
		listings:  listings,
		moderate:  moderate,
	}
}

func (h *AdminHandler) Actions() dispatch.Table {
	m := h.moderate
	return dispatch.Table{
		"get_dashboard":       h.Dashboard,
		"get_enquiries":       h.Enquiries,
		"list_businesses":     h.Businesses,
		"list_advertisements": h.Advertisements,
		"get_audit_logs":      h.AuditLogs,

		"approve_business": moderate(m.ApproveBusiness, businessID, "Business approved successfully"),
		"reject_business":  moderate(m.RejectBusiness, businessID, "Business rejected successfully"),
		"mark_enquiry_read": moderate(m.MarkEnquiryRead,
			func(r *dto.EnquiryIDRequest) string { return r.EnquiryID },
			"Enquiry marked as read"),
		"activate_advertisement": moderate(m.ActivateAdvertisement, adID, "Advertisement activated successfully"),
		"reject_advertisement":   moderate(m.RejectAdvertisement, adID, "Advertisement rejected successfully"),
	}
}

func businessID(r *dto.BusinessIDRequest) string { return r.BusinessID }
func adID(r *dto.AdIDRequest) string             { return r.AdID }

// moderate adapts one transition use case to a dispatch entry.
func moderate[Req, T any](uc *ucAdmin.Moderate[T], id func(*Req) string, message string) dispatch.Handler {
	return func(c *gin.Context, body []byte) {
		req, err := dispatch.Bind[Req](body)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		rec, err := uc.Execute(c.Request.Context(), middleware.Principal(c), id(req))
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		httpresp.OK(c, dto.ModerationResult{Message: message, Data: rec})
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context, _ []byte) {
	out, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AdminHandler) Enquiries(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.EnquiryStatusFilter](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.listings.Enquiries(c.Request.Context(), req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AdminHandler) Businesses(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.BusinessStatusFilter](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.listings.Businesses(c.Request.Context(), req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AdminHandler) Advertisements(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.AdStatusFilter](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.listings.Advertisements(c.Request.Context(), req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AdminHandler) AuditLogs(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.AuditLogFilter](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.listings.AuditLogs(c.Request.Context(), req.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}
