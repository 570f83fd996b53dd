package manage_tariffs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vialibre/dispatch-service/internal/api/handlers"
	"github.com/vialibre/dispatch-service/internal/service/tariffs"
	"github.com/vialibre/dispatch-service/internal/service/tariffs/models"
)

const (
	msgInvalidRuleID      = "ID de regla tarifaria inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidQuery       = "parámetros de consulta inválidos"
	msgRuleNotFound       = "regla tarifaria no encontrada"
)

type Handler struct {
	service TariffsService
	logger  Logger
}

func NewHandler(service TariffsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/tariff-rules
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TariffRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tariff-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRule(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /tariff-rules", err)
		return
	}

	h.logger.Info("POST /tariff-rules - Rule created: rule_id=%d, mode=%s", result.ID, result.PricingMode)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/tariff-rules/{ruleId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ruleID, ok := h.ruleID(w, r, "GET /tariff-rules/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetRule(r.Context(), ruleID)
	if err != nil {
		h.respondError(w, "GET /tariff-rules/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/tariff-rules
// Query params: onlyActive
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := false
	if raw := r.URL.Query().Get("onlyActive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /tariff-rules - Invalid onlyActive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		onlyActive = parsed
	}

	result, err := h.service.ListRules(r.Context(), onlyActive)
	if err != nil {
		h.respondError(w, "GET /tariff-rules", err)
		return
	}

	h.logger.Info("GET /tariff-rules - Rules listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/tariff-rules/{ruleId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ruleID, ok := h.ruleID(w, r, "PUT /tariff-rules/{id}")
	if !ok {
		return
	}

	var req models.TariffRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tariff-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateRule(r.Context(), ruleID, &req)
	if err != nil {
		h.respondError(w, "PUT /tariff-rules/{id}", err)
		return
	}

	h.logger.Info("PUT /tariff-rules/{id} - Rule updated: rule_id=%d", ruleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/tariff-rules/{ruleId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ruleID, ok := h.ruleID(w, r, "DELETE /tariff-rules/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteRule(r.Context(), ruleID); err != nil {
		h.respondError(w, "DELETE /tariff-rules/{id}", err)
		return
	}

	h.logger.Info("DELETE /tariff-rules/{id} - Rule deleted: rule_id=%d", ruleID)
	handlers.RespondNoContent(w)
}

func (h *Handler) ruleID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	ruleID, err := strconv.ParseInt(mux.Vars(r)["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid rule ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return 0, false
	}
	return ruleID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, tariffs.ErrRuleNotFound):
		h.logger.Warn("%s - Rule not found", op)
		handlers.RespondNotFound(w, msgRuleNotFound)

	case errors.Is(err, tariffs.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
