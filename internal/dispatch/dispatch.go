// Package dispatch routes POST bodies carrying an "action" discriminator to
// a typed handler.
package dispatch

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/logger"
)

const maxBodyBytes = 1 << 20

type Action string

// Handler receives the raw body so it can decode its own request type.
type Handler func(c *gin.Context, body []byte)

type Table map[Action]Handler

type envelope struct {
	Action string `json:"action"`
}

// Serve reads the body once and hands it to the entry named by its
// action field.
func (t Table) Serve(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		httperr.Respond(c, httperr.ErrBadRequest("invalid_body", "Could not read request body"))
		return
	}

	var env envelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil {
			httperr.Respond(c, httperr.ErrBadRequest("invalid_json", "Request body must be a JSON object"))
			return
		}
	}

	h, ok := t[Action(env.Action)]
	if !ok {
		httperr.Respond(c, httperr.ErrBadRequest("invalid_action", "Invalid action"))
		return
	}

	c.Set(logger.ContextAction, env.Action)
	h(c, body)
}

// Bind decodes body into a T and runs its binding tags.
func Bind[T any](body []byte) (*T, error) {
	var req T
	if len(body) == 0 {
		body = []byte("{}")
	}

	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, httperr.ErrValidation(map[string]string{
				typeErr.Field: "must be a " + typeErr.Type.String(),
			})
		}
		return nil, httperr.ErrBadRequest("invalid_json", "Request body must be a JSON object")
	}

	if err := Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BindJSON is Bind for routes that are not action dispatched.
func BindJSON[T any](c *gin.Context) (*T, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, httperr.ErrBadRequest("invalid_body", "Could not read request body")
	}
	return Bind[T](body)
}

// BindQuery maps the URL query onto the form tags of a T and validates it.
func BindQuery[T any](c *gin.Context) (*T, error) {
	var req T
	if err := binding.MapFormWithTag(&req, c.Request.URL.Query(), "form"); err != nil {
		return nil, httperr.ErrBadRequest("invalid_query", "Invalid query parameters")
	}
	if err := Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
