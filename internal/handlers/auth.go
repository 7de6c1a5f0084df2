package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bizmarket/internal/dispatch"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/httpresp"
	ucAuth "github.com/BruksfildServices01/bizmarket/internal/usecase/auth"
)

type AuthHandler struct {
	signUp  *ucAuth.SignUp
	signIn  *ucAuth.SignIn
	verify  *ucAuth.Verify
	signOut *ucAuth.SignOut
}

func NewAuthHandler(
	signUp *ucAuth.SignUp,
	signIn *ucAuth.SignIn,
	verify *ucAuth.Verify,
	signOut *ucAuth.SignOut,
) *AuthHandler {
	return &AuthHandler{
		signUp:  signUp,
		signIn:  signIn,
		verify:  verify,
		signOut: signOut,
	}
}

// Actions is the POST /auth dispatch table.
func (h *AuthHandler) Actions() dispatch.Table {
	return dispatch.Table{
		"signup":  h.SignUp,
		"signin":  h.SignIn,
		"verify":  h.Verify,
		"signout": h.SignOut,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.SignUpRequest](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.signUp.Execute(c.Request.Context(), *req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, res)
}

func (h *AuthHandler) SignIn(c *gin.Context, body []byte) {
	req, err := dispatch.Bind[dto.SignInRequest](body)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.signIn.Execute(c.Request.Context(), *req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AuthHandler) Verify(c *gin.Context, _ []byte) {
	res, err := h.verify.Execute(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AuthHandler) SignOut(c *gin.Context, _ []byte) {
	if err := h.signOut.Execute(c.Request.Context(), c.GetHeader("Authorization")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Ack(c, "Signed out successfully")
}
