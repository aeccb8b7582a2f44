package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
)

func (h *Handler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	schedulingCtx, err := h.loadSchedulingContext(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.mu.Lock()
	visible := h.roster.FilterLocations(schedulingCtx.TeamFilter)
	locations := make([]domain.Location, 0, len(visible))
	for _, loc := range visible {
		locations = append(locations, *loc)
	}
	h.mu.Unlock()

	h.successResponse(w, r, "获取地点列表成功", locations)
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string   `json:"name" validate:"required"`
		Teams []string `json:"teams"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.mu.Lock()
	loc, err := h.roster.AddLocation(req.Name, req.Teams)
	var result domain.Location
	if err == nil {
		result = *loc
	}
	h.mu.Unlock()

	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "创建地点成功", result)
}

func (h *Handler) UpdateLocationTeams(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req struct {
		Teams []string `json:"teams"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.mu.Lock()
	loc, err := h.roster.SetLocationTeams(name, req.Teams)
	var result domain.Location
	if err == nil {
		result = *loc
	}
	h.mu.Unlock()

	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "更新地点团队成功", result)
}

func (h *Handler) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	teams := make([]string, len(h.roster.Teams()))
	copy(teams, h.roster.Teams())
	h.mu.Unlock()

	h.successResponse(w, r, "获取团队列表成功", teams)
}
