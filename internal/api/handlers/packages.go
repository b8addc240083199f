package handlers

import (
	"dispatch-simulation-service/internal/api/dto"
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/platform/obs"
	"dispatch-simulation-service/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PackageHandler exposes package status endpoints. Without ?at= the
// end-of-day report is returned, with it the projection at that time.
type PackageHandler struct {
	Dispatcher Dispatcher
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	at, ok, err := queryTime(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var statuses []services.PackageStatus
	if ok {
		statuses, err = h.Dispatcher.StatusAt(r.Context(), at)
	} else {
		var report *services.Report
		report, err = h.Dispatcher.Report(r.Context())
		if report != nil {
			statuses = report.Packages
		}
	}
	if err != nil {
		obs.Logger(r.Context()).Error().Err(err).Msg("list packages failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPackagesResponse{
		Packages: make([]dto.PackageResponse, 0, len(statuses)),
	}
	if ok {
		res.At = at.String()
	}
	for _, s := range statuses {
		res.Packages = append(res.Packages, packageResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "package id must be a positive integer")
		return
	}

	at, ok, err := queryTime(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var status services.PackageStatus
	if ok {
		status, err = h.Dispatcher.PackageAt(r.Context(), id, at)
	} else {
		status, err = h.Dispatcher.PackageFinal(r.Context(), id)
	}
	switch {
	case errors.Is(err, domain.ErrPackageNotFound):
		writeError(w, r, http.StatusNotFound, "package not found")
		return
	case err != nil:
		obs.Logger(r.Context()).Error().Err(err).Int("package_id", id).Msg("get package failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, packageResponse(status))
}

func packageResponse(s services.PackageStatus) dto.PackageResponse {
	res := dto.PackageResponse{
		PackageID: s.PackageID,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		Zipcode:   s.Zipcode,
		Deadline:  s.Deadline,
		WeightKg:  s.WeightKg,
		Notes:     s.Notes,
		TruckID:   s.TruckID,
		Status:    s.Status.String(),
		Detail:    s.Describe(),
		LoadedAt:  s.LoadedAt.String(),
	}
	if s.Status == domain.StatusDelivered {
		res.DeliveredAt = s.DeliveredAt.String()
	}
	return res
}
