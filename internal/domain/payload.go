package domain

// SchedulePayload 是导入导出使用的载荷，字段与历史导出文件严格保持一致
type SchedulePayload struct {
	Locations []Location `json:"locations"`
	Teams     []string   `json:"teams"`
	Employees []Employee `json:"employees"`
}
