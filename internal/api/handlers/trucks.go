package handlers

import (
	"dispatch-simulation-service/internal/api/dto"
	"dispatch-simulation-service/internal/platform/obs"
	"net/http"
)

// TruckHandler reports the trip of every truck in the end-of-day run.
type TruckHandler struct {
	Dispatcher Dispatcher
}

func (h *TruckHandler) List(w http.ResponseWriter, r *http.Request) {
	report, err := h.Dispatcher.Report(r.Context())
	if err != nil {
		obs.Logger(r.Context()).Error().Err(err).Msg("truck report failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTrucksResponse{
		RunID:              report.RunID.String(),
		Trucks:             make([]dto.TruckResponse, 0, len(report.Trucks)),
		TotalDistanceMiles: report.TotalDistance,
	}
	for _, t := range report.Trucks {
		res.Trucks = append(res.Trucks, dto.TruckResponse{
			TruckID:        t.TruckID,
			DepartAt:       t.DepartAt.String(),
			ReturnAt:       t.ReturnAt.String(),
			ElapsedMinutes: t.Elapsed.Minutes(),
			DistanceMiles:  t.Distance,
			PackageIDs:     t.PackageIDs,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
