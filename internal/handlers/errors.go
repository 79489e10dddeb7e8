package handlers

import (
	"errors"
	"net/http"

	"github.com/SAQIB-dev7447/SmartCampus/internal/service"
	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

// writeServiceError maps the service error kinds onto status codes. Anything
// unrecognized is an internal failure and stays opaque to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrPermissionDenied):
		utils.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrValidation):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, "internal error")
	}
}
