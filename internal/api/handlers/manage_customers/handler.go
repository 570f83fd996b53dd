package manage_customers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vialibre/dispatch-service/internal/api/handlers"
	"github.com/vialibre/dispatch-service/internal/service/directory"
	"github.com/vialibre/dispatch-service/internal/service/directory/models"
)

const (
	msgInvalidCustomerID  = "ID de cliente inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgCustomerNotFound   = "cliente no encontrado"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/customers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /customers", err)
		return
	}

	h.logger.Info("POST /customers - Customer created: customer_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/customers/{customerId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, "GET /customers/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		h.respondError(w, "GET /customers/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/customers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCustomers(r.Context())
	if err != nil {
		h.respondError(w, "GET /customers", err)
		return
	}

	h.logger.Info("GET /customers - Customers listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/customers/{customerId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, "PUT /customers/{id}")
	if !ok {
		return
	}

	var req models.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /customers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCustomer(r.Context(), customerID, &req)
	if err != nil {
		h.respondError(w, "PUT /customers/{id}", err)
		return
	}

	h.logger.Info("PUT /customers/{id} - Customer updated: customer_id=%d", customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/customers/{customerId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, "DELETE /customers/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		h.respondError(w, "DELETE /customers/{id}", err)
		return
	}

	h.logger.Info("DELETE /customers/{id} - Customer deleted: customer_id=%d", customerID)
	handlers.RespondNoContent(w)
}

func (h *Handler) customerID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	customerID, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid customer ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return 0, false
	}
	return customerID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, directory.ErrCustomerNotFound):
		h.logger.Warn("%s - Customer not found", op)
		handlers.RespondNotFound(w, msgCustomerNotFound)

	case errors.Is(err, directory.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
