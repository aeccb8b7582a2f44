package schedule

import "github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"

// AssignedHours 由排班表推导员工的已排工时，每个时间槽半小时。
// 工时永远重新计算，不单独存储，避免和排班表产生偏差
func AssignedHours(store *AssignmentStore, employeeID string) float64 {
	return float64(store.Count(employeeID)) * 0.5
}

// NeedsMoreHours 只用于员工列表的分类展示，不参与权限判断
func NeedsMoreHours(emp *domain.Employee) bool {
	return emp.AssignedHours < emp.ExpectedHours
}
