package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/schedule"
)

func (h *Handler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
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
	payload := h.roster.BuildPayload()
	h.mu.Unlock()

	snapshot := &domain.ScheduleSnapshot{
		Name:    req.Name,
		Payload: payload,
	}

	if err := h.repository.CreateSnapshot(snapshot); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedule_snapshots_name_key":
				h.errorResponse(w, r, "快照名称已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "保存快照成功", snapshot)
}

func (h *Handler) GetAllSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.repository.GetAllSnapshots()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取快照列表成功", snapshots)
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := r.Context().Value(SnapshotCtx).(*domain.ScheduleSnapshot)

	h.successResponse(w, r, "获取快照成功", snapshot)
}

// RestoreSnapshot 用快照的载荷重建当前排班表，等价于导入该快照
func (h *Handler) RestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := r.Context().Value(SnapshotCtx).(*domain.ScheduleSnapshot)

	data, err := json.Marshal(snapshot.Payload)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.mu.Lock()
	roster := schedule.NewRoster()
	report, err := roster.MergeImport(data)
	if err == nil {
		h.roster = roster
	}
	h.mu.Unlock()

	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "恢复快照成功", report)
}

func (h *Handler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := r.Context().Value(SnapshotCtx).(*domain.ScheduleSnapshot)

	if err := h.repository.DeleteSnapshot(snapshot.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除快照成功", nil)
}
