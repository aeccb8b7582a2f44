package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/schedule"
)

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeID" validate:"required"`
		Day        string `json:"day" validate:"required"`
		StartTime  string `json:"startTime" validate:"required"`
		Location   string `json:"location" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	slot, err := schedule.SlotForLabel(req.StartTime)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	schedulingCtx, err := h.loadSchedulingContext(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	emp, exists := h.roster.Employee(req.EmployeeID)
	if !exists {
		h.errorResponse(w, r, "员工不存在")
		return
	}

	// 单个排班依次检查禁排时段和团队资格，冲突时把原因返回给前端
	if h.roster.IsForbidden(req.EmployeeID, req.Day, slot) {
		reason, _ := h.roster.ForbiddenReason(req.EmployeeID, req.Day, slot)
		if reason == "" {
			reason = "该时间不可排班"
		}
		h.errorResponse(w, r, reason)
		return
	}

	if !h.roster.EligibleAt(req.EmployeeID, req.Location, schedulingCtx.TeamFilter) {
		h.errorResponse(w, r, "当前团队筛选下无法排到该地点")
		return
	}

	if err := h.roster.AddAssignment(req.EmployeeID, req.Day, slot, req.Location); err != nil {
		var occupied *schedule.SlotOccupiedError
		if errors.As(err, &occupied) {
			h.errorResponse(w, r, occupied.Error())
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.publishScheduleEvent("shift_changed", emp.ContactEmail(), domain.ShiftChangedEventData{
		EmployeeName: emp.Name,
		Day:          req.Day,
		Location:     req.Location,
		Added:        []string{slot.Label},
		Removed:      []string{},
	})

	h.successResponse(w, r, "排班成功", *emp)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeID" validate:"required"`
		Day        string `json:"day" validate:"required"`
		StartTime  string `json:"startTime" validate:"required"`
		Location   string `json:"location" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	slot, err := schedule.SlotForLabel(req.StartTime)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	emp, exists := h.roster.Employee(req.EmployeeID)
	if !exists {
		h.errorResponse(w, r, "员工不存在")
		return
	}

	h.roster.RemoveAssignment(req.EmployeeID, req.Day, slot, req.Location)

	h.publishScheduleEvent("shift_changed", emp.ContactEmail(), domain.ShiftChangedEventData{
		EmployeeName: emp.Name,
		Day:          req.Day,
		Location:     req.Location,
		Added:        []string{},
		Removed:      []string{slot.Label},
	})

	h.successResponse(w, r, "删除排班成功", *emp)
}

// ApplyAssignmentRange 把一段拖拽手势一次性应用到排班表。
// 起点格子的占用状态决定整段是新增还是删除，每个时间槽独立提交，
// 部分成功时已落地的变更不会回滚
func (h *Handler) ApplyAssignmentRange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeID" validate:"required"`
		StartTime  string `json:"startTime" validate:"required"`
		EndTime    string `json:"endTime" validate:"required"`
		Location   string `json:"location" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startSlot, err := schedule.SlotForLabel(req.StartTime)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	endSlot, err := schedule.SlotForLabel(req.EndTime)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	schedulingCtx, err := h.loadSchedulingContext(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.mu.Lock()

	session, err := h.roster.BeginDrag(schedulingCtx, req.EmployeeID, startSlot, req.Location)
	if err != nil {
		h.mu.Unlock()
		h.errorResponse(w, r, err.Error())
		return
	}
	session.ExtendTo(endSlot, req.Location)

	mode := session.Mode()
	applied := session.Applied()
	notice := ""
	if session.Notice() != nil {
		notice = session.Notice().Error()
	}
	session.End()

	added := make([]string, 0, len(applied))
	removed := make([]string, 0, len(applied))
	for _, change := range applied {
		if change.Removed {
			removed = append(removed, change.Slot.Label)
		} else {
			added = append(added, change.Slot.Label)
		}
	}

	var employeeName, employeeEmail string
	if emp, exists := h.roster.Employee(req.EmployeeID); exists {
		employeeName = emp.Name
		employeeEmail = emp.ContactEmail()
	}

	h.mu.Unlock()

	if len(applied) > 0 {
		h.publishScheduleEvent("shift_changed", employeeEmail, domain.ShiftChangedEventData{
			EmployeeName: employeeName,
			Day:          schedulingCtx.Day,
			Location:     req.Location,
			Added:        added,
			Removed:      removed,
		})
	}

	h.successResponse(w, r, "批量排班完成", map[string]any{
		"mode":    mode,
		"applied": applied,
		"notice":  notice,
	})
}

// GetSlotOccupants 查询某天某个时间槽在指定地点已排的员工
func (h *Handler) GetSlotOccupants(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	startTime := r.URL.Query().Get("startTime")
	location := r.URL.Query().Get("location")
	if day == "" || startTime == "" || location == "" {
		h.errorResponse(w, r, "缺少 day、startTime 或 location 参数")
		return
	}

	slot, err := schedule.SlotForLabel(startTime)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	type occupant struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	h.mu.Lock()
	ids := h.roster.Store().OccupantsOf(day, slot, location)
	occupants := make([]occupant, 0, len(ids))
	for _, id := range ids {
		name := id
		if emp, exists := h.roster.Employee(id); exists {
			name = emp.Name
		}
		occupants = append(occupants, occupant{ID: id, Name: name})
	}
	h.mu.Unlock()

	h.successResponse(w, r, "获取时间槽占用成功", occupants)
}
