package domain

// Shift 是班次的导出形式，startTime 为 "HH:MM"，day 为排班日序号（"1"、"2"、"3"）
type Shift struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	Location  string `json:"location"`
}

// ForbiddenHour 表示员工在某一天的禁排时段，区间为左闭右开 [startTime, endTime)
type ForbiddenHour struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason,omitempty"`
}

// EmployeeDetails 中的字段对引擎来说是不透明的，只在导入导出时原样保留
type EmployeeDetails struct {
	Department  []string `json:"department"`
	Role        []string `json:"role"`
	ContactInfo []string `json:"contactInfo"`
	Preferences []string `json:"preferences"`
	Other       []string `json:"other"`
}

type Employee struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ExpectedHours  float64         `json:"expectedHours"`
	AssignedHours  float64         `json:"assignedHours"` // 始终由排班表重新计算，不允许外部修改
	Teams          []string        `json:"teams"`
	Shifts         []Shift         `json:"shifts"`
	ForbiddenHours []ForbiddenHour `json:"forbiddenHours"`
	Details        EmployeeDetails `json:"details"`
}

// ContactEmail 返回员工的第一个联系方式，用于变更通知
func (e *Employee) ContactEmail() string {
	if len(e.Details.ContactInfo) == 0 {
		return ""
	}
	return e.Details.ContactInfo[0]
}
