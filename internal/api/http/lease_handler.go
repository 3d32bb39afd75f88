package http

import (
	"encoding/json"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
	"carrental-backend/internal/utils"
)

type LeaseHandler struct {
	svc service.LeaseService
}

func NewLeaseHandler(svc service.LeaseService) *LeaseHandler {
	return &LeaseHandler{svc: svc}
}

type createLeaseRequest struct {
	CustomerID int32  `json:"customer_id"`
	VehicleID  int32  `json:"vehicle_id"`
	StartDate  string `json:"start_date"` // yyyy-mm-dd
	EndDate    string `json:"end_date"`   // yyyy-mm-dd
	LeaseType  string `json:"lease_type"`
	// Optional first payment recorded atomically with the lease.
	PaymentCents  int32  `json:"payment_cents,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type leaseResponse struct {
	domain.Lease
	TotalCents int32 `json:"total_cents"`
}

func (h *LeaseHandler) CreateLease(w http.ResponseWriter, r *http.Request) {
	var req createLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid start_date, expected yyyy-mm-dd"})
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid end_date, expected yyyy-mm-dd"})
		return
	}

	if req.PaymentCents > 0 {
		lease, payment, err := h.svc.CreateLeaseWithPayment(r.Context(), req.CustomerID, req.VehicleID, start, end, req.LeaseType, req.PaymentCents, req.PaymentMethod)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, struct {
			Lease   *domain.Lease   `json:"lease"`
			Payment *domain.Payment `json:"payment"`
		}{lease, payment})
		return
	}

	lease, err := h.svc.CreateLease(r.Context(), req.CustomerID, req.VehicleID, start, end, req.LeaseType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lease)
}

func (h *LeaseHandler) GetLease(w http.ResponseWriter, r *http.Request) {
	lease, err := h.svc.GetLease(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	total, err := h.svc.LeaseTotalCents(lease)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leaseResponse{Lease: *lease, TotalCents: total})
}

func (h *LeaseHandler) ReturnCar(w http.ResponseWriter, r *http.Request) {
	lease, err := h.svc.ReturnCar(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lease)
}

func (h *LeaseHandler) ListLeaseHistory(w http.ResponseWriter, r *http.Request) {
	leases, err := h.svc.ListLeaseHistory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leases)
}

func (h *LeaseHandler) ListActiveLeases(w http.ResponseWriter, r *http.Request) {
	leases, err := h.svc.ListActiveLeases(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leases)
}
