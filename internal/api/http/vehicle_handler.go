package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type VehicleHandler struct {
	svc service.VehicleService
}

func NewVehicleHandler(svc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

type addVehicleRequest struct {
	Make              string `json:"make"`
	Model             string `json:"model"`
	Year              int32  `json:"year"`
	DailyRateCents    int32  `json:"daily_rate_cents"`
	PassengerCapacity int32  `json:"passenger_capacity"`
	EngineSpec        string `json:"engine_spec"`
}

func (h *VehicleHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var req addVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	vehicle, err := h.svc.AddVehicle(r.Context(), &domain.Vehicle{
		Make:              req.Make,
		Model:             req.Model,
		Year:              req.Year,
		DailyRateCents:    req.DailyRateCents,
		PassengerCapacity: req.PassengerCapacity,
		EngineSpec:        req.EngineSpec,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	vehicle, err := h.svc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.svc.ListAvailableVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) ListRented(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.svc.ListRentedVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveVehicle(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// pathID extracts the numeric {id} path variable; the route pattern
// guarantees it parses.
func pathID(r *http.Request) int32 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id)
}
