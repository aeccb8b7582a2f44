package domain

type ScheduleEventMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ShiftChangedEventData struct {
	EmployeeName string   `json:"employeeName"`
	Day          string   `json:"day"`
	Location     string   `json:"location"`
	Added        []string `json:"added"`   // 新增班次的开始时间列表
	Removed      []string `json:"removed"` // 移除班次的开始时间列表
}

type ScheduleImportedEventData struct {
	EmployeeCount      int `json:"employeeCount"`
	LocationCount      int `json:"locationCount"`
	DoubleBookingCount int `json:"doubleBookingCount"`
	ForbiddenCount     int `json:"forbiddenCount"`
}
