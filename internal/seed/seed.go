package seed

import (
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/utils"
)

// DemoLocations 是演示环境的地点布局，来自交接下来的第一版排班表
var DemoLocations = []domain.Location{
	{Name: "Main Hall", Teams: []string{"Main Hall", "Service"}},
	{Name: "Kitchen", Teams: []string{"Kitchen", "Service"}},
	{Name: "Reception", Teams: []string{"Reception", "Management"}},
	{Name: "Warehouse", Teams: []string{"Warehouse", "Logistics"}},
	{Name: "Conference Room A", Teams: []string{"Management", "Sales"}},
	{Name: "Conference Room B", Teams: []string{"Management", "Sales"}},
	{Name: "Outdoor Patio", Teams: []string{"Service", "Main Hall"}},
	{Name: "Storage Room", Teams: []string{"Logistics", "Warehouse"}},
	{Name: "Break Room", Teams: []string{"Service", "All Teams"}},
	{Name: "Loading Dock", Teams: []string{"Logistics", "Warehouse"}},
}

var DemoTeams = []string{
	"Sales",
	"Management",
	"Kitchen",
	"Service",
	"Reception",
	"Warehouse",
	"Logistics",
	"Main Hall",
}

// DemoPayload 返回演示用的完整排班载荷，格式与导出文件一致
func DemoPayload() *domain.SchedulePayload {
	return &domain.SchedulePayload{
		Locations: DemoLocations,
		Teams:     DemoTeams,
		Employees: []domain.Employee{
			{
				ID:            "1",
				Name:          "John Doe",
				ExpectedHours: 40,
				Teams:         []string{"Sales", "Management"},
				Shifts: []domain.Shift{
					{Day: "1", StartTime: "09:00", Location: "Conference Room A"},
				},
				ForbiddenHours: []domain.ForbiddenHour{
					{Day: "1", StartTime: "12:00", EndTime: "13:00", Reason: "Lunch Break"},
				},
				Details: domain.EmployeeDetails{
					Department:  []string{"Sales", "Management"},
					Role:        []string{"Manager"},
					ContactInfo: []string{"john.doe@company.com"},
					Preferences: []string{"Prefers morning shifts and team meetings"},
					Other:       []string{"Excellent communication skills, leadership potential"},
				},
			},
			{
				ID:            "2",
				Name:          "Jane Smith",
				ExpectedHours: 35,
				Teams:         []string{"Kitchen", "Service"},
				Shifts: []domain.Shift{
					{Day: "1", StartTime: "10:00", Location: "Kitchen"},
				},
				ForbiddenHours: []domain.ForbiddenHour{
					{Day: "1", StartTime: "15:00", EndTime: "16:00", Reason: "School Pickup"},
				},
				Details: domain.EmployeeDetails{
					Department:  []string{"Kitchen"},
					Role:        []string{"Chef"},
					ContactInfo: []string{"jane.smith@company.com"},
					Preferences: []string{"Enjoys creative cooking stations, flexible hours"},
					Other:       []string{"Certified in food safety, multilingual"},
				},
			},
			{
				ID:            "3",
				Name:          "Mike Johnson",
				ExpectedHours: 30,
				Teams:         []string{"Reception", "Management"},
				Shifts: []domain.Shift{
					{Day: "1", StartTime: "10:00", Location: "Reception"},
					{Day: "1", StartTime: "15:30", Location: "Break Room"},
				},
				ForbiddenHours: []domain.ForbiddenHour{
					{Day: "1", StartTime: "08:00", EndTime: "10:00", Reason: "Medical Appointment"},
					{Day: "1", StartTime: "20:00", EndTime: "23:00", Reason: "Personal Time"},
				},
				Details: domain.EmployeeDetails{
					Department:  []string{"Reception"},
					Role:        []string{"Receptionist"},
					ContactInfo: []string{"mike.j@company.com"},
					Preferences: []string{"Prefers afternoon shifts, enjoys customer interaction"},
					Other:       []string{"Strong organizational skills, tech-savvy"},
				},
			},
			{
				ID:            "4",
				Name:          "Emily Brown",
				ExpectedHours: 40,
				Teams:         []string{"Warehouse", "Logistics"},
				Shifts: []domain.Shift{
					{Day: "1", StartTime: "09:00", Location: "Warehouse"},
				},
				ForbiddenHours: []domain.ForbiddenHour{
					{Day: "1", StartTime: "12:00", EndTime: "13:00", Reason: "Lunch Break"},
				},
				Details: domain.EmployeeDetails{
					Department:  []string{"Warehouse"},
					Role:        []string{"Supervisor"},
					ContactInfo: []string{"emily.b@company.com"},
					Preferences: []string{"Prefers structured schedules, early morning shifts"},
					Other:       []string{"Experienced in inventory management, safety certified"},
				},
			},
			{
				ID:            "5",
				Name:          "David Wilson",
				ExpectedHours: 25,
				Teams:         []string{"Main Hall", "Service"},
				Shifts: []domain.Shift{
					{Day: "1", StartTime: "18:00", Location: "Outdoor Patio"},
				},
				ForbiddenHours: []domain.ForbiddenHour{
					{Day: "1", StartTime: "18:00", EndTime: "20:00", Reason: "Personal Time"},
				},
				Details: domain.EmployeeDetails{
					Department:  []string{"Main Hall"},
					Role:        []string{"Server"},
					ContactInfo: []string{"david.w@company.com"},
					Preferences: []string{"Flexible with evening shifts, enjoys social interactions"},
					Other:       []string{"Strong teamwork skills, adaptable to different roles"},
				},
			},
			{
				ID:            "6",
				Name:          "Lisa Chen",
				ExpectedHours: 35,
				Teams:         []string{"Kitchen", "Service"},
				Shifts: []domain.Shift{
					{Day: "1", StartTime: "08:00", Location: "Conference Room B"},
				},
				ForbiddenHours: []domain.ForbiddenHour{
					{Day: "1", StartTime: "15:00", EndTime: "16:00", Reason: "School Pickup"},
				},
				Details: domain.EmployeeDetails{
					Department:  []string{"Kitchen"},
					Role:        []string{"Sous Chef"},
					ContactInfo: []string{"lisa.c@company.com"},
					Preferences: []string{"Prefers morning shifts, enjoys cooking with team"},
					Other:       []string{"Certified in food safety, multilingual"},
				},
			},
			{
				ID:            "7",
				Name:          "Tom Anderson",
				ExpectedHours: 30,
				Teams:         []string{"Warehouse", "Logistics"},
				Shifts: []domain.Shift{
					{Day: "1", StartTime: "10:00", Location: "Storage Room"},
					{Day: "1", StartTime: "15:30", Location: "Loading Dock"},
				},
				ForbiddenHours: []domain.ForbiddenHour{
					{Day: "1", StartTime: "08:00", EndTime: "10:00", Reason: "Medical Appointment"},
					{Day: "1", StartTime: "20:00", EndTime: "23:00", Reason: "Personal Time"},
				},
				Details: domain.EmployeeDetails{
					Department:  []string{"Warehouse"},
					Role:        []string{"Staff"},
					ContactInfo: []string{"tom.a@company.com"},
					Preferences: []string{"Prefers afternoon shifts, enjoys working independently"},
					Other:       []string{"Experienced in inventory management, safety certified"},
				},
			},
			{
				ID:            "8",
				Name:          "Rachel Garcia",
				ExpectedHours: 35,
				Teams:         []string{"Reception", "Management"},
				Shifts: []domain.Shift{
					{Day: "1", StartTime: "08:00", Location: "Reception"},
				},
				ForbiddenHours: []domain.ForbiddenHour{
					{Day: "1", StartTime: "12:00", EndTime: "13:00", Reason: "Lunch Break"},
				},
				Details: domain.EmployeeDetails{
					Department:  []string{"Reception"},
					Role:        []string{"Lead Host"},
					ContactInfo: []string{"rachel.g@company.com"},
					Preferences: []string{"Prefers morning shifts, enjoys customer interaction"},
					Other:       []string{"Strong organizational skills, tech-savvy"},
				},
			},
		},
	}
}

// RandomPayload 生成一份随机员工的排班载荷，地点和团队沿用演示数据
func RandomPayload(employeeCount int, planningDays int) *domain.SchedulePayload {
	employees := make([]domain.Employee, 0, employeeCount)
	for i := 1; i <= employeeCount; i++ {
		employees = append(employees, utils.GenerateRandomEmployee(i, planningDays))
	}

	return &domain.SchedulePayload{
		Locations: DemoLocations,
		Teams:     DemoTeams,
		Employees: employees,
	}
}
