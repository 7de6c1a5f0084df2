package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bizmarket/internal/dispatch"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/httpresp"
	"github.com/BruksfildServices01/bizmarket/internal/middleware"
	ucAd "github.com/BruksfildServices01/bizmarket/internal/usecase/advertisement"
)

type AdvertisementHandler struct {
	create  *ucAd.CreateAdvertisement
	list    *ucAd.ListAdvertisements
	update  *ucAd.UpdateAdvertisement
	confirm *ucAd.ConfirmPayment
}

func NewAdvertisementHandler(
	create *ucAd.CreateAdvertisement,
	list *ucAd.ListAdvertisements,
	update *ucAd.UpdateAdvertisement,
	confirm *ucAd.ConfirmPayment,
) *AdvertisementHandler {
	return &AdvertisementHandler{
		create:  create,
		list:    list,
		update:  update,
		confirm: confirm,
	}
}

func (h *AdvertisementHandler) Actions() dispatch.Table {
	return dispatch.Table{
		"create":          h.Create,
		"payment_success": h.PaymentSuccess,
	}
}

// GET /advertisements
func (h *AdvertisementHandler) List(c *gin.Context) {
	list, err := h.list.Public(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

// GET /me/advertisements
func (h *AdvertisementHandler) Mine(c *gin.Context) {
	list, err := h.list.Mine(c.Request.Context(), middleware.Principal(c).UserID())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AdvertisementHandler) Create(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.CreateAdvertisementRequest](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ad, err := h.create.Execute(c.Request.Context(), middleware.Principal(c).UserID(), *req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ad)
}

// PaymentSuccess is the client's return from checkout. The payment is
// checked with the provider before the ad is marked paid.
func (h *AdvertisementHandler) PaymentSuccess(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.PaymentSuccessRequest](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.confirm.Execute(c.Request.Context(), middleware.Principal(c), *req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	message := "Payment recorded"
	if !res.Applied {
		message = "Payment already recorded"
	}
	httpresp.OK(c, dto.PaymentResult{
		Message:       message,
		Applied:       res.Applied,
		Advertisement: res.Advertisement,
	})
}

// PUT /advertisements/:id
func (h *AdvertisementHandler) Update(c *gin.Context) {
	req, err := dispatch.BindJSON[dto.UpdateAdvertisementRequest](c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ad, err := h.update.Execute(c.Request.Context(), c.Param("id"), req.Patch(), middleware.Principal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ad)
}
