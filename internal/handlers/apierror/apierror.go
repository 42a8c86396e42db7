// Package apierror renders service errors as JSON responses.
package apierror

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/pkg/utils"
)

var statuses = map[string]int{
	"validation_error":  http.StatusBadRequest,
	"not_found":         http.StatusNotFound,
	"forbidden":         http.StatusForbidden,
	"conflict":          http.StatusConflict,
	"upstream_failure":  http.StatusBadGateway,
	"suspended_account": http.StatusForbidden,
}

// Status returns the HTTP status for the kind wrapped by err.
func Status(err error) int {
	if status, ok := statuses[domain.Kind(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func Respond(w http.ResponseWriter, err error) {
	kind := domain.Kind(err)
	status, ok := statuses[kind]
	if !ok {
		zap.L().Error("unexpected error", zap.Error(err))
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.Response{
			Error:   kind,
			Message: "Internal server error",
		})
		return
	}

	resp := utils.Response{
		Error:   kind,
		Message: err.Error(),
	}
	var suspended *domain.AccountSuspendedError
	if errors.As(err, &suspended) {
		until := suspended.Until.UTC()
		resp.SuspendedUntil = &until
	}
	utils.RespondWithJSON(w, status, resp)
}
