/*
handlers.go - HTTP API handlers for the leave calculator

PURPOSE:
  Exposes the calculation engine via a JSON API. Handles HTTP
  request/response, input validation, and delegates to the leave package.

ENDPOINTS:
  Calculations:
    POST   /api/calculations     Calculate from a JSON body
    GET    /api/calculations     Calculate from query parameters
                                 (?start_date=&end_date=&salary=)

  Agreement:
    GET    /api/agreement        Constants the calculator applies

  Health:
    GET    /healthz              Liveness probe

REQUEST FLOW:
  1. Parse HTTP request into a validate.ContractForm
  2. Validate input (first failing check wins)
  3. Run the calculation
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body or one of the validation failures, with its code
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/warp/paid-leave/generic"
	"github.com/warp/paid-leave/leave"
	"github.com/warp/paid-leave/validate"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Calculator *leave.Calculator
	Validator  *validate.Validator
	Logger     logrus.FieldLogger
}

// NewHandler creates a handler applying the given agreement.
func NewHandler(agreement leave.Agreement, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		Calculator: leave.NewCalculator(agreement),
		Validator:  validate.New(agreement),
		Logger:     logger,
	}
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// CreateCalculation runs a calculation from a JSON body.
// POST /api/calculations
func (h *Handler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.calculate(w, r, req)
}

// GetCalculation runs a calculation from query parameters.
// GET /api/calculations
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.calculate(w, r, CalculationRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Salary:    q.Get("salary"),
	})
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request, req CalculationRequest) {
	contract, err := h.Validator.Contract(req)
	if err != nil {
		status, resp := errorResponse(err)
		if status == http.StatusBadRequest {
			h.Logger.WithFields(logrus.Fields{
				"request_id": requestID(r),
				"code":       resp.Code,
				"field":      resp.Field,
			}).Debug("calculation rejected")
		}
		writeJSON(w, status, resp)
		return
	}

	result := h.Calculator.Calculate(contract)
	writeJSON(w, http.StatusOK, ToCalculationDTO(contract, result))
}

// =============================================================================
// AGREEMENT / HEALTH
// =============================================================================

// GetAgreement returns the agreement constants.
// GET /api/agreement
func (h *Handler) GetAgreement(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ToAgreementDTO(h.Calculator.Agreement()))
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorResponse maps a validation failure to 400 with its code, anything else to 500.
func errorResponse(err error) (int, ErrorResponse) {
	if !generic.IsClientError(err) {
		return http.StatusInternalServerError, ErrorResponse{Error: "Failed to validate request", Details: err.Error()}
	}

	resp := ErrorResponse{Error: err.Error()}
	var verr *generic.ValidationError
	if errors.As(err, &verr) {
		resp = ErrorResponse{Error: verr.Message, Code: verr.Code, Field: verr.Field}
	}
	return http.StatusBadRequest, resp
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
