// Package httpx reúne los helpers de request/response que antes estaban duplicados
// en cada handler (writeJSON). Con ocho módulos ya convenía extraerlos.
package httpx

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"shelter-admin/internal/platform/apperr"
	"shelter-admin/internal/platform/logger"
)

const maxBodyBytes = 1 << 20

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RowsResponse es el sobre {rows: [...]} que consume la tabla del frontend.
type RowsResponse[T any] struct {
	Rows []T `json:"rows"`
}

func WriteRows[T any](w http.ResponseWriter, rows []T) {
	if rows == nil {
		rows = []T{}
	}
	WriteJSON(w, http.StatusOK, RowsResponse[T]{Rows: rows})
}

// SuccessResponse es la respuesta de las mutaciones.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func WriteSuccess(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// WriteError mapea err a status y escribe {success:false, error}.
// Los 5xx se loguean con la causa; el cliente solo ve el mensaje público.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context(), log).Error("request failed", map[string]any{
			"err":        err,
			"status":     status,
			"path":       r.URL.Path,
			"request_id": middleware.GetReqID(r.Context()),
		})
	}
	WriteJSON(w, status, SuccessResponse{Success: false, Error: apperr.PublicMessage(err)})
}

// DecodeJSON lee el body (limitado) y lo decodifica en dst.
// Body vacío o JSON inválido => apperr.Validation.
func DecodeJSON(r *http.Request, dst any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apperr.Validation("invalid json")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return apperr.Validation("request body is required")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperr.Validation("invalid json")
	}
	return nil
}

// Int acepta tanto un número JSON como un string numérico (los inputs de formularios HTML
// llegan como string).
type Int int64

func (i *Int) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*i = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = strings.TrimSpace(unq)
		if s == "" {
			*i = 0
			return nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return apperr.Validation("expected an integer")
	}
	*i = Int(n)
	return nil
}

func (i Int) Int64() int64 { return int64(i) }
