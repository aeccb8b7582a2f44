package domain

// Location 的 teams 决定了在启用团队筛选时谁可以被排到这个地点，
// 没有任何团队的地点在启用筛选时对所有人都不可用
type Location struct {
	Name  string   `json:"name"`
	Teams []string `json:"teams"`
}
