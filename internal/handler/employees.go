package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/schedule"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	schedulingCtx, err := h.loadSchedulingContext(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.mu.Lock()
	visible := h.roster.FilterEmployees(schedulingCtx.TeamFilter)
	employees := make([]domain.Employee, 0, len(visible))
	for _, emp := range visible {
		employees = append(employees, *emp)
	}
	h.mu.Unlock()

	// 按是否还缺工时分成两组返回，供前端分栏展示
	if r.URL.Query().Get("categorized") == "true" {
		type categorized struct {
			NeedsMoreHours []domain.Employee `json:"needsMoreHours"`
			FullyScheduled []domain.Employee `json:"fullyScheduled"`
		}
		result := categorized{
			NeedsMoreHours: make([]domain.Employee, 0),
			FullyScheduled: make([]domain.Employee, 0),
		}
		for _, emp := range employees {
			if schedule.NeedsMoreHours(&emp) {
				result.NeedsMoreHours = append(result.NeedsMoreHours, emp)
			} else {
				result.FullyScheduled = append(result.FullyScheduled, emp)
			}
		}
		h.successResponse(w, r, "获取员工列表成功", result)
		return
	}

	h.successResponse(w, r, "获取员工列表成功", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := r.Context().Value(EmployeeIDCtx).(string)

	h.mu.Lock()
	emp, exists := h.roster.Employee(employeeID)
	var result domain.Employee
	if exists {
		result = *emp
	}
	h.mu.Unlock()

	if !exists {
		h.errorResponse(w, r, "员工不存在")
		return
	}

	h.successResponse(w, r, "获取员工信息成功", result)
}

// CheckForbidden 查询员工在某天某个时间槽是否处于禁排时段，禁排时返回原因
func (h *Handler) CheckForbidden(w http.ResponseWriter, r *http.Request) {
	employeeID := r.Context().Value(EmployeeIDCtx).(string)

	day := r.URL.Query().Get("day")
	startTime := r.URL.Query().Get("startTime")
	if day == "" || startTime == "" {
		h.errorResponse(w, r, "缺少 day 或 startTime 参数")
		return
	}

	slot, err := schedule.SlotForLabel(startTime)
	if err != nil {
		var malformed *schedule.MalformedTimeError
		if errors.As(err, &malformed) {
			h.errorResponse(w, r, malformed.Error())
			return
		}
		h.errorResponse(w, r, err.Error())
		return
	}

	h.mu.Lock()
	forbidden := h.roster.IsForbidden(employeeID, day, slot)
	reason := ""
	if forbidden {
		reason, _ = h.roster.ForbiddenReason(employeeID, day, slot)
	}
	h.mu.Unlock()

	h.successResponse(w, r, "查询禁排时段成功", map[string]any{
		"forbidden": forbidden,
		"reason":    reason,
	})
}
