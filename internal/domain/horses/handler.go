package horses

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/owners"
	"horse-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/horses", func(hr chi.Router) {
		hr.Get("/", searchHorsesHandler(svc, log))
		hr.Post("/", createHorseHandler(svc, log))

		hr.Get("/{horseID}", getHorseHandler(svc, log))
		hr.Put("/{horseID}", updateHorseHandler(svc, log))
		hr.Delete("/{horseID}", deleteHorseHandler(svc, log))

		// Ancestros hasta N generaciones (la raíz cuenta como la primera)
		hr.Get("/{horseID}/familytree", familyTreeHandler(svc, log))
	})
}

// horseRequest se usa para POST y PUT. PUT reemplaza todo: lo que no se manda queda en null.
type horseRequest struct {
	ID          *int64  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	DateOfBirth string  `json:"dateOfBirth"` // YYYY-MM-DD
	Sex         string  `json:"sex"`
	OwnerID     *int64  `json:"ownerId"`
	MotherID    *int64  `json:"motherId"`
	FatherID    *int64  `json:"fatherId"`
}

type parentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	DateOfBirth string  `json:"dateOfBirth"`
	Sex         Sex     `json:"sex"`
}

type horseDetailResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	DateOfBirth string           `json:"dateOfBirth"`
	Sex         Sex              `json:"sex"`
	Owner       *owners.Response `json:"owner"`
	Mother      *parentResponse  `json:"mother"`
	Father      *parentResponse  `json:"father"`
}

type horseListItemResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	DateOfBirth string           `json:"dateOfBirth"`
	Sex         Sex              `json:"sex"`
	Owner       *owners.Response `json:"owner"`
}

type familyTreeResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	DateOfBirth string              `json:"dateOfBirth"`
	Mother      *familyTreeResponse `json:"mother"`
	Father      *familyTreeResponse `json:"father"`
}

// searchHorsesHandler godoc
// @Summary Buscar caballos
// @Description Sin parámetros devuelve todos. Los filtros presentes se combinan con AND; name, description y ownerName son substrings sin distinguir mayúsculas.
// @Tags horses
// @Produce json
// @Param name query string false "Substring del nombre"
// @Param description query string false "Substring de la descripción"
// @Param sex query string false "MALE o FEMALE"
// @Param bornBefore query string false "Nacidos antes de esta fecha (YYYY-MM-DD, exclusivo)"
// @Param ownerName query string false "Substring de 'nombre apellido' del owner"
// @Param limit query int false "Máximo de resultados"
// @Success 200 {array} horseListItemResponse
// @Failure 400 {string} string "query inválida"
// @Router /horses [get]
func searchHorsesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, msg := parseSearchFilter(r)
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		items, err := svc.Search(r.Context(), filter)
		if err != nil {
			apperr.WriteHTTP(w, log, err)
			return
		}

		out := make([]horseListItemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, horseListItemResponse{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				DateOfBirth: formatDate(it.DateOfBirth),
				Sex:         it.Sex,
				Owner:       toOwnerResponse(it.Owner),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createHorseHandler godoc
// @Summary Crear caballo
// @Description Valida campos y pedigree (sexo y edad de madre/padre) antes de guardar.
// @Tags horses
// @Accept json
// @Produce json
// @Param payload body horseRequest true "Datos del caballo"
// @Success 201 {object} horseDetailResponse
// @Failure 400 {string} string "invalid json"
// @Failure 409 {object} apperr.ConflictError
// @Failure 422 {object} apperr.ValidationError
// @Router /horses [post]
func createHorseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, msg := decodeDraft(r)
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		d.ID = nil

		h, err := svc.Create(r.Context(), d)
		if err != nil {
			apperr.WriteHTTP(w, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toDetailResponse(h))
	}
}

// getHorseHandler godoc
// @Summary Obtener caballo
// @Tags horses
// @Produce json
// @Param horseID path int true "ID del caballo"
// @Success 200 {object} horseDetailResponse
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID} [get]
func getHorseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := horseIDParam(w, r)
		if !ok {
			return
		}

		h, err := svc.GetByID(r.Context(), id)
		if err != nil {
			apperr.WriteHTTP(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toDetailResponse(h))
	}
}

// updateHorseHandler godoc
// @Summary Actualizar caballo
// @Description Reemplaza el registro completo. Si el caballo ya es padre, no puede cambiar de sexo ni nacer después de su hijo más viejo.
// @Tags horses
// @Accept json
// @Produce json
// @Param horseID path int true "ID del caballo"
// @Param payload body horseRequest true "Datos del caballo"
// @Success 200 {object} horseDetailResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "horse not found"
// @Failure 409 {object} apperr.ConflictError
// @Failure 422 {object} apperr.ValidationError
// @Router /horses/{horseID} [put]
func updateHorseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := horseIDParam(w, r)
		if !ok {
			return
		}
		d, msg := decodeDraft(r)
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		// El id del path manda sobre el del body.
		d.ID = &id

		h, err := svc.Update(r.Context(), d)
		if err != nil {
			apperr.WriteHTTP(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toDetailResponse(h))
	}
}

// deleteHorseHandler godoc
// @Summary Borrar caballo
// @Description Los hijos del caballo quedan sin madre/padre, el resto de sus datos no cambia.
// @Tags horses
// @Param horseID path int true "ID del caballo"
// @Success 204
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID} [delete]
func deleteHorseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := horseIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			apperr.WriteHTTP(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// familyTreeHandler godoc
// @Summary Árbol genealógico
// @Description Devuelve los ancestros del caballo hasta `generations` generaciones (default 5, se ajusta a [0, 100]). Con 0 devuelve null.
// @Tags horses
// @Produce json
// @Param horseID path int true "ID del caballo"
// @Param generations query int false "Generaciones a incluir"
// @Success 200 {object} familyTreeResponse
// @Failure 400 {string} string "generations inválido"
// @Failure 404 {string} string "horse not found"
// @Router /horses/{horseID}/familytree [get]
func familyTreeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := horseIDParam(w, r)
		if !ok {
			return
		}

		generations := DefaultFamilyTreeGenerations
		if v := strings.TrimSpace(r.URL.Query().Get("generations")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "generations must be an integer", http.StatusBadRequest)
				return
			}
			generations = n
		}

		tree, err := svc.GetFamilyTree(r.Context(), id, generations)
		if err != nil {
			apperr.WriteHTTP(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toFamilyTreeResponse(tree))
	}
}

func horseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "horseID"), 10, 64)
	if err != nil {
		http.Error(w, "horse not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// decodeDraft devuelve un mensaje no vacío si el body no se puede interpretar.
// Las reglas de negocio (campos vacíos, sexo inválido) las reporta el validador.
func decodeDraft(r *http.Request) (Draft, string) {
	var req horseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return Draft{}, "invalid json"
	}

	d := Draft{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		MotherID:    req.MotherID,
		FatherID:    req.FatherID,
	}
	if strings.TrimSpace(req.Sex) != "" {
		d.Sex, _ = ParseSex(req.Sex)
	}
	if strings.TrimSpace(req.DateOfBirth) != "" {
		t, err := time.Parse(time.DateOnly, strings.TrimSpace(req.DateOfBirth))
		if err != nil {
			return Draft{}, "dateOfBirth must be YYYY-MM-DD"
		}
		d.DateOfBirth = &t
	}
	return d, ""
}

func parseSearchFilter(r *http.Request) (SearchFilter, string) {
	q := r.URL.Query()
	var f SearchFilter

	if v := q.Get("name"); v != "" {
		f.Name = &v
	}
	if v := q.Get("description"); v != "" {
		f.Description = &v
	}
	if v := q.Get("ownerName"); v != "" {
		f.OwnerName = &v
	}
	if v := strings.TrimSpace(q.Get("sex")); v != "" {
		s, ok := ParseSex(v)
		if !ok {
			return SearchFilter{}, "sex must be MALE or FEMALE"
		}
		f.Sex = &s
	}
	if v := strings.TrimSpace(q.Get("bornBefore")); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return SearchFilter{}, "bornBefore must be YYYY-MM-DD"
		}
		f.BornBefore = &t
	}
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return SearchFilter{}, "limit must be a non-negative integer"
		}
		f.Limit = &n
	}
	return f, ""
}

func toDetailResponse(d Detail) horseDetailResponse {
	return horseDetailResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		DateOfBirth: formatDate(d.DateOfBirth),
		Sex:         d.Sex,
		Owner:       toOwnerResponse(d.Owner),
		Mother:      toParentResponse(d.Mother),
		Father:      toParentResponse(d.Father),
	}
}

func toParentResponse(p *Parent) *parentResponse {
	if p == nil {
		return nil
	}
	return &parentResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		DateOfBirth: formatDate(p.DateOfBirth),
		Sex:         p.Sex,
	}
}

func toOwnerResponse(o *owners.Owner) *owners.Response {
	if o == nil {
		return nil
	}
	resp := owners.ToResponse(*o)
	return &resp
}

func toFamilyTreeResponse(n *FamilyTreeNode) *familyTreeResponse {
	if n == nil {
		return nil
	}
	return &familyTreeResponse{
		ID:          n.ID,
		Name:        n.Name,
		DateOfBirth: formatDate(n.DateOfBirth),
		Mother:      toFamilyTreeResponse(n.Mother),
		Father:      toFamilyTreeResponse(n.Father),
	}
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
