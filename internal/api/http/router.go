package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/service"
)

// NewRouter wires all handlers onto a mux router. Authentication is out of
// scope; this surface plays the role of the interactive front end.
func NewRouter(
	vehicleSvc service.VehicleService,
	customerSvc service.CustomerService,
	leaseSvc service.LeaseService,
	paymentSvc service.PaymentService,
) *mux.Router {
	r := mux.NewRouter()

	vh := NewVehicleHandler(vehicleSvc)
	r.HandleFunc("/vehicles", vh.AddVehicle).Methods(http.MethodPost)
	r.HandleFunc("/vehicles/available", vh.ListAvailable).Methods(http.MethodGet)
	r.HandleFunc("/vehicles/rented", vh.ListRented).Methods(http.MethodGet)
	r.HandleFunc("/vehicles/{id:[0-9]+}", vh.GetVehicle).Methods(http.MethodGet)
	r.HandleFunc("/vehicles/{id:[0-9]+}", vh.RemoveVehicle).Methods(http.MethodDelete)

	ch := NewCustomerHandler(customerSvc)
	r.HandleFunc("/customers", ch.AddCustomer).Methods(http.MethodPost)
	r.HandleFunc("/customers", ch.ListCustomers).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id:[0-9]+}", ch.GetCustomer).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id:[0-9]+}", ch.RemoveCustomer).Methods(http.MethodDelete)

	lh := NewLeaseHandler(leaseSvc)
	r.HandleFunc("/leases", lh.CreateLease).Methods(http.MethodPost)
	r.HandleFunc("/leases", lh.ListLeaseHistory).Methods(http.MethodGet)
	r.HandleFunc("/leases/active", lh.ListActiveLeases).Methods(http.MethodGet)
	r.HandleFunc("/leases/{id:[0-9]+}", lh.GetLease).Methods(http.MethodGet)
	r.HandleFunc("/leases/{id:[0-9]+}/return", lh.ReturnCar).Methods(http.MethodPost)

	ph := NewPaymentHandler(paymentSvc)
	r.HandleFunc("/leases/{id:[0-9]+}/payments", ph.RecordPayment).Methods(http.MethodPost)
	r.HandleFunc("/leases/{id:[0-9]+}/payments", ph.ListPayments).Methods(http.MethodGet)

	return r
}
