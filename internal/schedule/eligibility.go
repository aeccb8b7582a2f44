package schedule

import "github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"

// IsEligible 判断在当前团队筛选下员工能否被排到指定地点。
// 规则是 EitherTeamMatches：筛选为空时始终可排；否则只要员工自己的团队
// 或地点的团队与筛选有交集即可。注意这是"或"而不是"与"：
// 共享地点（比如挂了 "All Teams" 标签的休息室）对筛选之外的员工同样开放，
// 不要把它"简化"成交集逻辑
func IsEligible(emp *domain.Employee, loc *domain.Location, filter TeamFilter) bool {
	if filter.Empty() {
		return true
	}

	if emp != nil && filter.IntersectsAny(emp.Teams) {
		return true
	}
	if loc != nil && filter.IntersectsAny(loc.Teams) {
		return true
	}
	return false
}
