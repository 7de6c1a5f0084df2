package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bizmarket/internal/dispatch"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/httpresp"
	"github.com/BruksfildServices01/bizmarket/internal/middleware"
	ucBusiness "github.com/BruksfildServices01/bizmarket/internal/usecase/business"
)

var errLoginRequired = httperr.ErrUnauthorized("missing_token", "Authorization required")

type BusinessHandler struct {
	create  *ucBusiness.CreateBusiness
	get     *ucBusiness.GetBusiness
	list    *ucBusiness.ListBusinesses
	update  *ucBusiness.UpdateBusiness
	enquiry *ucBusiness.SendEnquiry
}

func NewBusinessHandler(
	create *ucBusiness.CreateBusiness,
	get *ucBusiness.GetBusiness,
	list *ucBusiness.ListBusinesses,
	update *ucBusiness.UpdateBusiness,
	enquiry *ucBusiness.SendEnquiry,
) *BusinessHandler {
	return &BusinessHandler{
		create:  create,
		get:     get,
		list:    list,
		update:  update,
		enquiry: enquiry,
	}
}

func (h *BusinessHandler) Actions() dispatch.Table {
	return dispatch.Table{
		"create":  h.Create,
		"enquiry": h.Enquiry,
	}
}

// GET /businesses
func (h *BusinessHandler) List(c *gin.Context) {
	q, err := dispatch.BindQuery[dto.BusinessQuery](c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.list.Public(c.Request.Context(), q.Filter())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

// GET /me/businesses
func (h *BusinessHandler) Mine(c *gin.Context) {
	list, err := h.list.Mine(c.Request.Context(), middleware.Principal(c).UserID())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

// GET /businesses/:id
func (h *BusinessHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), c.Param("id"), middleware.Principal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BusinessHandler) Create(c *gin.Context, body []byte) {
	actor := middleware.Principal(c)
	if actor == nil {
		httperr.Respond(c, errLoginRequired)
		return
	}

	req, err := dispatch.Bind[dto.CreateBusinessRequest](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), actor.UserID(), *req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BusinessHandler) Enquiry(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.EnquiryRequest](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if _, err := h.enquiry.Execute(c.Request.Context(), *req, middleware.Principal(c)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, httpresp.Message{Message: "Enquiry sent successfully"})
}

// PUT /businesses/:id
func (h *BusinessHandler) Update(c *gin.Context) {
	req, err := dispatch.BindJSON[dto.UpdateBusinessRequest](c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	b, err := h.update.Execute(c.Request.Context(), c.Param("id"), req.Patch(), middleware.Principal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}
