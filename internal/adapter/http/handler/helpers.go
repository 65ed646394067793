package handler

import (
	"encoding/json"
	"net/http"

	"github.com/acmattos/bankslip/internal/adapter/http/dto"
	"github.com/acmattos/bankslip/internal/outcome"
	"github.com/acmattos/bankslip/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeText writes a plain text response.
func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// statusCode maps an outcome classification to an HTTP status code.
func statusCode(c outcome.Classification) int {
	switch c {
	case outcome.Found:
		return http.StatusOK
	case outcome.Created:
		return http.StatusCreated
	case outcome.BadRequest:
		return http.StatusBadRequest
	case outcome.NotFound:
		return http.StatusNotFound
	case outcome.Unprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeOutcome encodes out as an HTTP response.
func writeOutcome(w http.ResponseWriter, out outcome.Outcome) {
	for key, values := range out.Headers {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}

	status := statusCode(out.Classification)

	switch body := out.Body.(type) {
	case nil:
		w.WriteHeader(status)
	case string:
		writeText(w, status, body)
	case []usecase.BankSlipSummary:
		writeJSON(w, status, dto.SavedFromSummaries(body))
	case usecase.BankSlipDetail:
		writeJSON(w, status, dto.DetailedFromDetail(body))
	default:
		writeJSON(w, status, body)
	}
}
