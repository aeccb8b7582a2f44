package schedule

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
)

// Interval 是预先解析好的禁排时段，Start/End 为分钟数，区间左闭右开。
// 同一员工同一天的多个区间允许重叠，命中任意一个即为禁排（并集语义）
type Interval struct {
	Day    string
	Start  int
	End    int
	Reason string
}

// Roster 聚合了引擎的全部状态：员工记录、地点集合、团队词表、
// 解析后的禁排时段以及作为唯一权威来源的排班表
type Roster struct {
	employees map[string]*domain.Employee
	order     []string // 员工的声明顺序，导出时保持稳定
	locations []*domain.Location
	teams     []string
	intervals map[string][]Interval
	store     *AssignmentStore
}

func NewRoster() *Roster {
	return &Roster{
		employees: make(map[string]*domain.Employee),
		order:     make([]string, 0),
		locations: make([]*domain.Location, 0),
		teams:     make([]string, 0),
		intervals: make(map[string][]Interval),
		store:     NewAssignmentStore(),
	}
}

func (r *Roster) Store() *AssignmentStore {
	return r.store
}

func (r *Roster) Employee(id string) (*domain.Employee, bool) {
	emp, ok := r.employees[id]
	return emp, ok
}

func (r *Roster) Employees() []*domain.Employee {
	employees := make([]*domain.Employee, 0, len(r.order))
	for _, id := range r.order {
		employees = append(employees, r.employees[id])
	}
	return employees
}

func (r *Roster) Location(name string) (*domain.Location, bool) {
	for _, loc := range r.locations {
		if loc.Name == name {
			return loc, true
		}
	}
	return nil, false
}

func (r *Roster) Locations() []*domain.Location {
	return r.locations
}

func (r *Roster) Teams() []string {
	return r.teams
}

// AddLocation 新增一个地点，名称去除首尾空白后必须非空且不与现有地点重名
// （忽略大小写），新地点的团队会并入全局团队词表
func (r *Roster) AddLocation(name string, teams []string) (*domain.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("地点名称不能为空")
	}

	for _, loc := range r.locations {
		if strings.EqualFold(loc.Name, name) {
			return nil, fmt.Errorf("地点名称已存在")
		}
	}

	loc := &domain.Location{Name: name, Teams: teams}
	r.locations = append(r.locations, loc)

	for _, team := range teams {
		if !slices.Contains(r.teams, team) {
			r.teams = append(r.teams, team)
		}
	}

	return loc, nil
}

// SetLocationTeams 更新一个地点的团队集合，并用所有地点团队的并集
// 重新计算全局团队词表
func (r *Roster) SetLocationTeams(name string, teams []string) (*domain.Location, error) {
	loc, ok := r.Location(name)
	if !ok {
		return nil, fmt.Errorf("地点不存在")
	}

	loc.Teams = teams
	r.teams = r.unionOfLocationTeams()
	return loc, nil
}

func (r *Roster) unionOfLocationTeams() []string {
	teams := make([]string, 0)
	for _, loc := range r.locations {
		for _, team := range loc.Teams {
			if !slices.Contains(teams, team) {
				teams = append(teams, team)
			}
		}
	}
	return teams
}

// IsForbidden 判断员工在某天的某个时间槽是否处于禁排时段，
// 线性扫描该员工的区间，命中任意一个即为禁排。这个检查不改变任何状态
func (r *Roster) IsForbidden(employeeID, day string, slot Slot) bool {
	for _, interval := range r.intervals[employeeID] {
		if interval.Day == day && slot.Index >= interval.Start && slot.Index < interval.End {
			return true
		}
	}
	return false
}

// ForbiddenReason 返回命中的禁排原因。多个区间重叠时按声明顺序取第一个命中的，
// 重叠区间之间没有优先级规定，调用方不应依赖具体返回哪一个
func (r *Roster) ForbiddenReason(employeeID, day string, slot Slot) (string, bool) {
	for _, interval := range r.intervals[employeeID] {
		if interval.Day == day && slot.Index >= interval.Start && slot.Index < interval.End {
			return interval.Reason, true
		}
	}
	return "", false
}

// EligibleAt 按 EitherTeamMatches 规则判断员工能否被排到指定地点，
// 未知的地点只能依靠员工自己的团队匹配
func (r *Roster) EligibleAt(employeeID, locationName string, filter TeamFilter) bool {
	emp := r.employees[employeeID]
	loc, _ := r.Location(locationName)
	return IsEligible(emp, loc, filter)
}

// AddAssignment 插入一条排班记录并同步员工的派生字段。
// 禁排时段和团队资格由调用方先行检查
func (r *Roster) AddAssignment(employeeID, day string, slot Slot, location string) error {
	if err := r.store.Add(employeeID, day, slot, location); err != nil {
		var occupied *SlotOccupiedError
		if errors.As(err, &occupied) {
			if emp, exists := r.employees[employeeID]; exists {
				occupied.EmployeeName = emp.Name
			}
		}
		return err
	}

	r.syncEmployee(employeeID)
	return nil
}

// RemoveAssignment 删除完全匹配的排班记录并同步员工的派生字段
func (r *Roster) RemoveAssignment(employeeID, day string, slot Slot, location string) {
	r.store.Remove(employeeID, day, slot, location)
	r.syncEmployee(employeeID)
}

// syncEmployee 从排班表重新推导员工的班次列表和已排工时
func (r *Roster) syncEmployee(employeeID string) {
	emp, ok := r.employees[employeeID]
	if !ok {
		return
	}

	emp.Shifts = r.wireShifts(employeeID)
	emp.AssignedHours = AssignedHours(r.store, employeeID)
}

func (r *Roster) wireShifts(employeeID string) []domain.Shift {
	assignments := r.store.AllAssignmentsFor(employeeID)
	shifts := make([]domain.Shift, 0, len(assignments))
	for _, a := range assignments {
		shifts = append(shifts, domain.Shift{
			Day:       a.Day,
			StartTime: a.Slot.Label,
			Location:  a.Location,
		})
	}
	return shifts
}

// FilterEmployees 返回在当前团队筛选下可见的员工。
// 与资格规则同样是"或"的关系：员工自己的团队命中，或者员工任意一个
// 班次所在地点的团队命中，都会被保留
func (r *Roster) FilterEmployees(filter TeamFilter) []*domain.Employee {
	if filter.Empty() {
		return r.Employees()
	}

	employees := make([]*domain.Employee, 0)
	for _, id := range r.order {
		emp := r.employees[id]
		if filter.IntersectsAny(emp.Teams) {
			employees = append(employees, emp)
			continue
		}

		for _, a := range r.store.AllAssignmentsFor(id) {
			if loc, ok := r.Location(a.Location); ok && filter.IntersectsAny(loc.Teams) {
				employees = append(employees, emp)
				break
			}
		}
	}
	return employees
}

// FilterLocations 返回团队与当前筛选有交集的地点，筛选为空时返回全部地点
func (r *Roster) FilterLocations(filter TeamFilter) []*domain.Location {
	if filter.Empty() {
		return r.locations
	}

	locations := make([]*domain.Location, 0)
	for _, loc := range r.locations {
		if filter.IntersectsAny(loc.Teams) {
			locations = append(locations, loc)
		}
	}
	return locations
}

// BuildPayload 把引擎状态序列化为导出载荷，班次从排班表推导并按
// (天, 时间槽) 排序，已排工时重新计算
func (r *Roster) BuildPayload() *domain.SchedulePayload {
	payload := &domain.SchedulePayload{
		Locations: make([]domain.Location, 0, len(r.locations)),
		Teams:     slices.Clone(r.teams),
		Employees: make([]domain.Employee, 0, len(r.order)),
	}

	for _, loc := range r.locations {
		payload.Locations = append(payload.Locations, *loc)
	}

	for _, id := range r.order {
		r.syncEmployee(id)
		payload.Employees = append(payload.Employees, *r.employees[id])
	}

	return payload
}
