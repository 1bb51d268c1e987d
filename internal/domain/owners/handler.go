package owners

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc, log))
		or.Get("/", searchOwnersHandler(svc, log))
		or.Get("/{ownerID}", getOwnerHandler(svc, log))
	})
}

// createOwnerRequest es el cuerpo para registrar un owner.
type createOwnerRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email"`
}

// Response representa un owner devuelto por la API.
type Response struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email,omitempty"`
}

// createOwnerHandler godoc
// @Summary Crear owner
// @Description Registra un nuevo owner. Nombre y apellido obligatorios (máx. 255), email opcional pero bien formado.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del owner"
// @Success 201 {object} Response
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} apperr.ValidationError
// @Router /owners [post]
func createOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
		})
		if err != nil {
			apperr.WriteHTTP(w, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(o))
	}
}

// searchOwnersHandler godoc
// @Summary Buscar owners
// @Description Busca owners cuyo "nombre apellido" contiene `name` (sin distinguir mayúsculas). Devuelve a lo sumo `limit` resultados (por defecto 10).
// @Tags owners
// @Produce json
// @Param name query string false "Substring del nombre completo"
// @Param limit query int false "Máximo de resultados"
// @Success 200 {array} Response
// @Failure 400 {string} string "limit inválido"
// @Router /owners [get]
func searchOwnersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := SearchFilter{Name: r.URL.Query().Get("name")}
		if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		items, err := svc.Search(r.Context(), filter)
		if err != nil {
			apperr.WriteHTTP(w, log, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, o := range items {
			out = append(out, ToResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getOwnerHandler godoc
// @Summary Obtener owner
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Success 200 {object} Response
// @Failure 404 {string} string "owner not found"
// @Router /owners/{ownerID} [get]
func getOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}

		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			apperr.WriteHTTP(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(o))
	}
}

// ToResponse también lo usa el módulo horses para embeber el owner en sus vistas.
func ToResponse(o Owner) Response {
	return Response{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
