package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/bizmarket/internal/logger"
)

const internalMessage = "Internal server error"

type HTTPError struct {
	Message string            `json:"error"`
	Code    string            `json:"error_code"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Message: message,
		Code:    code,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "internal_error", internalMessage)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Status(k Kind) int {
	switch k {
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Respond maps err onto the error envelope. Internal and upstream causes
// are logged on the request logger, which already carries the request id;
// the client only ever sees the stable message.
func Respond(c *gin.Context, err error) {
	e := As(err)

	log := logger.FromContext(c).With(
		zap.String("action", logger.Action(c)),
		zap.String("error_code", e.Code),
	)

	switch e.Kind {
	case KindInternal, KindUpstream:
		log.Error("request failed", zap.String("kind", e.Kind.String()), zap.Error(e.Err))
	default:
		log.Debug("request rejected", zap.String("kind", e.Kind.String()))
	}

	message := e.Message
	if e.Kind == KindInternal {
		message = internalMessage
	}

	c.AbortWithStatusJSON(Status(e.Kind), HTTPError{
		Message: message,
		Code:    e.Code,
		Fields:  e.Fields,
	})
}
