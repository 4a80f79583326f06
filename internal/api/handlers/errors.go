package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/tracker-go/internal/application"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/pkg/response"
	"github.com/linskybing/tracker-go/pkg/utils"
	"github.com/rs/zerolog/log"
)

var kindStatus = map[string]int{
	"validation_error": http.StatusUnprocessableEntity,
	"not_found":        http.StatusNotFound,
	"forbidden":        http.StatusForbidden,
	"unauthorized":     http.StatusUnauthorized,
	"conflict":         http.StatusConflict,
	"bad_request":      http.StatusBadRequest,
	"unavailable":      http.StatusServiceUnavailable,
}

// respondError maps a service error to its HTTP status. Unknown errors are
// logged and reported as 500 without leaking details.
func respondError(c *gin.Context, err error) {
	kind := application.Kind(err)
	status, ok := kindStatus[kind]
	if !ok {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error", Kind: kind})
		return
	}

	body := response.ErrorResponse{Error: err.Error(), Kind: kind}
	var ve *application.ValidationError
	if errors.As(err, &ve) {
		body.Fields = ve.Fields
	}
	c.JSON(status, body)
}

// bindError reports a request that could not be bound. Validator failures
// become per-field messages.
func bindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error(), Kind: "bad_request"})
		return
	}

	fields := make(map[string]string, len(verr))
	for _, fe := range verr {
		fields[fieldLabel(fe)] = fieldMessage(fe)
	}
	respondError(c, &application.ValidationError{Fields: fields})
}

func fieldLabel(fe validator.FieldError) string {
	var b strings.Builder
	for i, r := range fe.StructField() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return strings.ReplaceAll(b.String(), "i_d", "id")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return "is invalid"
	}
}

// currentUser aborts with 401 when the auth middleware did not run.
func currentUser(c *gin.Context) (*user.User, bool) {
	u, err := utils.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized", Kind: "unauthorized"})
		return nil, false
	}
	return u, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseIDParam(c, name)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + name, Kind: "bad_request"})
		return 0, false
	}
	return id, true
}
