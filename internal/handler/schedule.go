package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/schedule"
)

// GetTimeSlots 返回排班表的全部时间槽标签，前端用它渲染表格行
func (h *Handler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots := schedule.SlotsInDomain()
	labels := make([]string, 0, len(slots))
	for _, slot := range slots {
		labels = append(labels, slot.Label)
	}

	h.successResponse(w, r, "获取时间槽列表成功", labels)
}

func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	payload := h.roster.BuildPayload()
	h.mu.Unlock()

	h.successResponse(w, r, "导出排班数据成功", payload)
}

// ImportSchedule 接收导出的排班载荷并合并进当前排班表。
// 结构不合法时整体拒绝，合并成功时返回校验报告
func (h *Handler) ImportSchedule(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.mu.Lock()
	report, err := h.roster.MergeImport(data)
	h.mu.Unlock()

	if err != nil {
		var schemaErr *schedule.SchemaError
		switch {
		case errors.As(err, &schemaErr):
			h.errorResponse(w, r, schemaErr.Error())
		default:
			h.errorResponse(w, r, err.Error())
		}
		return
	}

	// 导入报告发给运营账号，而不是某个员工
	h.publishScheduleEvent("schedule_imported", h.config.Operator.Email, domain.ScheduleImportedEventData{
		EmployeeCount:      report.EmployeesImported,
		LocationCount:      report.LocationsImported,
		DoubleBookingCount: len(report.DoubleBookings),
		ForbiddenCount:     len(report.ForbiddenConflicts),
	})

	h.successResponse(w, r, "导入排班数据成功", report)
}
