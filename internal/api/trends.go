package api

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/trends/trends_api/internal/api/dto"
	"github.com/trends/trends_api/internal/errlocal"
	"github.com/trends/trends_api/internal/models"
	"github.com/trends/trends_api/internal/utils"
)

func trendIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := mux.Vars(r)[trendIDTag]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errlocal.NewErrBadRequest("invalid trend id", "path",
			map[string]any{trendIDTag: raw})
	}
	return id, nil
}

// The router matches on the escaped path, so the name is still encoded.
func trendNameFromPath(r *http.Request) (string, error) {
	raw := mux.Vars(r)[trendNameTag]
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", errlocal.NewErrBadRequest("invalid trend name", "path",
			map[string]any{trendNameTag: raw})
	}
	return name, nil
}

// ListTrends godoc
// @Summary List trends
// @Description List trends ordered by score, highest first
// @Tags trends
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.TrendListResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /trends [get]
func (s *Server) listTrends(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.GetPagination(r, defaultLimit, maxQueryLimit)

	trends, err := s.store.ListTrends(r.Context(), limit, offset)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.TrendListResponse{
		Trends: trends,
		Limit:  limit,
		Offset: offset,
	})
}

// CreateTrend godoc
// @Summary Create trend
// @Tags trends
// @Accept json
// @Produce json
// @Param request body dto.CreateTrendRequest true "Trend"
// @Success 201 {object} dto.TrendResponse
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /trends [post]
func (s *Server) createTrend(w http.ResponseWriter, r *http.Request) {
	req, err := dto.GetRequestBody[dto.CreateTrendRequest](r)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	trend := req.Model()
	if err := s.store.CreateTrend(r.Context(), trend); err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusCreated, dto.TrendResponse(*trend))
}

// GetTrend godoc
// @Summary Get trend
// @Tags trends
// @Produce json
// @Param trend_id path string true "Trend ID"
// @Success 200 {object} dto.TrendResponse
// @Failure 400 {object} ErrorResponse "Invalid trend id"
// @Failure 404 {object} ErrorResponse "Trend not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /trends/{trend_id} [get]
func (s *Server) getTrend(w http.ResponseWriter, r *http.Request) {
	id, err := trendIDFromPath(r)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	trend, err := s.store.GetTrend(r.Context(), id)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.TrendResponse(*trend))
}

// GetTrendByName godoc
// @Summary Get trend by name
// @Tags trends
// @Produce json
// @Param name path string true "Trend name"
// @Success 200 {object} dto.TrendResponse
// @Failure 400 {object} ErrorResponse "Invalid trend name"
// @Failure 404 {object} ErrorResponse "Trend not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /trends/by-name/{name} [get]
func (s *Server) getTrendByName(w http.ResponseWriter, r *http.Request) {
	name, err := trendNameFromPath(r)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	trend, err := s.store.GetTrendByName(r.Context(), name)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.TrendResponse(*trend))
}

// UpdateTrendScore godoc
// @Summary Update trend score
// @Tags trends
// @Accept json
// @Param trend_id path string true "Trend ID"
// @Param request body dto.UpdateScoreRequest true "New score"
// @Success 204 "Score updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Trend not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /trends/{trend_id}/score [patch]
func (s *Server) updateTrendScore(w http.ResponseWriter, r *http.Request) {
	id, err := trendIDFromPath(r)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	req, err := dto.GetRequestBody[dto.UpdateScoreRequest](r)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	if err := s.store.UpdateTrendScore(r.Context(), id, *req.Score); err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusNoContent, nil)
}

// DeleteTrend godoc
// @Summary Delete trend
// @Tags trends
// @Param trend_id path string true "Trend ID"
// @Success 204 "Trend deleted"
// @Failure 400 {object} ErrorResponse "Invalid trend id"
// @Failure 404 {object} ErrorResponse "Trend not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /trends/{trend_id} [delete]
func (s *Server) deleteTrend(w http.ResponseWriter, r *http.Request) {
	id, err := trendIDFromPath(r)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	if err := s.store.DeleteTrend(r.Context(), id); err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusNoContent, nil)
}

// ImportTrends godoc
// @Summary Import trends
// @Description Create a batch of trends in one transaction. Every record is validated first; nothing is written if any record is invalid or already exists.
// @Tags trends
// @Accept json
// @Produce json
// @Param request body dto.ImportTrendsRequest true "Trends to import"
// @Success 201 {object} dto.ImportTrendsResponse
// @Failure 400 {object} ErrorResponse "Invalid record"
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /trends/import [post]
func (s *Server) importTrends(w http.ResponseWriter, r *http.Request) {
	req, err := dto.GetRequestBody[dto.ImportTrendsRequest](r)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	trends := req.Models()
	if err := s.store.ImportTrends(r.Context(), trends); err != nil {
		s.WriteError(w, r, err)
		return
	}

	resp := dto.ImportTrendsResponse{
		Imported: len(trends),
		Trends:   make([]models.Trend, 0, len(trends)),
	}
	for _, trend := range trends {
		resp.Trends = append(resp.Trends, *trend)
	}

	s.logger.WithContext(r.Context()).WithField("imported", resp.Imported).Info("trends imported")
	s.WriteResponse(w, r, http.StatusCreated, resp)
}

// PurgeTrends godoc
// @Summary Delete all trends
// @Tags trends
// @Produce json
// @Success 200 {object} dto.PurgeTrendsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /trends [delete]
func (s *Server) purgeTrends(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteAllTrends(r.Context())
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.logger.WithContext(r.Context()).WithField("deleted", deleted).Warn("trends purged")
	s.WriteResponse(w, r, http.StatusOK, dto.PurgeTrendsResponse{Deleted: deleted})
}
