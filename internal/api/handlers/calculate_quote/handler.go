package calculate_quote

import (
	"errors"
	"net/http"

	"github.com/vialibre/dispatch-service/internal/api/handlers"
	calculateQuote "github.com/vialibre/dispatch-service/internal/usecase/calculate_quote"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgInvalidScheduledAt  = "formato de fecha inválido, se espera RFC 3339"
	msgServiceNotFound     = "servicio no encontrado"
	msgDistanceUnavailable = "no se pudo calcular la distancia del recorrido"
)

type Handler struct {
	useCase CalculateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CalculateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduledAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculateQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, calculateQuote.ErrServiceNotFound):
			h.logger.Warn("POST /quotes - Service not found: service_id=%v", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, calculateQuote.ErrDistanceUnavailable):
			h.logger.Warn("POST /quotes - Distance unavailable: origin=%q destination=%q",
				req.OriginAddress, req.DestinationAddress)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgDistanceUnavailable)

		default:
			h.logger.Error("POST /quotes - Failed to calculate quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote calculated: total=%.0f", result.Quote.Pricing.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
