package schedule

import "slices"

// TeamFilter 是当前会话启用的团队标签集合，空集合表示不做任何过滤
type TeamFilter []string

func (f TeamFilter) Empty() bool {
	return len(f) == 0
}

func (f TeamFilter) IntersectsAny(teams []string) bool {
	for _, team := range teams {
		if slices.Contains(f, team) {
			return true
		}
	}
	return false
}

// SchedulingContext 把原来隐式共享的会话状态（团队筛选、当前排班日）
// 显式地传进每一次引擎调用
type SchedulingContext struct {
	TeamFilter TeamFilter `json:"teamFilter"`
	Day        string     `json:"day"`
}
