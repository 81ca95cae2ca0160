package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/utils"
)

// writeServiceError maps a service error onto the response. AppErrors
// pass through with their status; anything else becomes a 500.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, fallback string) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	log.ErrorWithErr(err, fallback)
	utils.WriteError(w, errors.Internal(fallback, err))
}

// idParam parses a numeric chi URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.BadRequest("Invalid " + name)
	}
	return id, nil
}
