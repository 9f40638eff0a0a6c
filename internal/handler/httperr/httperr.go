package httperr

import (
	"net/http"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:           http.StatusBadRequest,
	errs.KindAvailabilityConflict: http.StatusConflict,
	errs.KindNotFound:             http.StatusNotFound,
	errs.KindStateConflict:        http.StatusConflict,
	errs.KindPayment:              http.StatusUnprocessableEntity,
	errs.KindAuthorization:        http.StatusUnauthorized,
	errs.KindServer:               http.StatusInternalServerError,
}

// StatusOf maps an error's taxonomy kind to the HTTP status it is served with.
func StatusOf(err error) (int, errs.Kind) {
	kind := errs.KindOf(err)
	return kindStatus[kind], kind
}

// Abort answers with the status and code derived from err. Server errors never
// leak their message.
func Abort(c *gin.Context, err error) {
	status, kind := StatusOf(err)
	msg := err.Error()
	if kind == errs.KindServer {
		msg = "Internal server error"
	}
	abort(c, status, kind, err, msg, nil)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	abort(c, status, kindForStatus(status), err, msg, detail)
}

func abort(c *gin.Context, status int, kind errs.Kind, err error, msg string, detail any) {
	resp := Response{Status: status}
	resp.Error.Code = string(kind)
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func kindForStatus(status int) errs.Kind {
	switch status {
	case http.StatusBadRequest:
		return errs.KindValidation
	case http.StatusNotFound:
		return errs.KindNotFound
	case http.StatusConflict:
		return errs.KindStateConflict
	case http.StatusUnprocessableEntity:
		return errs.KindPayment
	case http.StatusUnauthorized, http.StatusForbidden:
		return errs.KindAuthorization
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return errs.KindServer
	}
}

// Internal is the body served for failures nobody mapped.
func Internal() Response {
	resp := Response{Status: http.StatusInternalServerError}
	resp.Error.Code = string(errs.KindServer)
	resp.Error.Message = "Internal server error"
	return resp
}
