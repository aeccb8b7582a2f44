package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
)

// ImportConflict 描述导入载荷中发现的一处不合法排班
type ImportConflict struct {
	EmployeeID       string `json:"employeeID"`
	EmployeeName     string `json:"employeeName"`
	Day              string `json:"day"`
	StartTime        string `json:"startTime"`
	Location         string `json:"location"`
	ExistingLocation string `json:"existingLocation,omitempty"` // 重复排班时已占用的地点
	Reason           string `json:"reason,omitempty"`           // 禁排时段的原因
}

// ImportReport 是导入的校验报告。导入数据被视为已预先校验过的可信数据，
// 但这里仍然重新校验并把发现的问题显式地报告出来，而不是默默接受：
// 重复排班会被丢弃（排班表的不变量永远成立），与禁排时段重叠的排班
// 会被保留但记录为警告
type ImportReport struct {
	EmployeesImported  int              `json:"employeesImported"`
	LocationsImported  int              `json:"locationsImported"`
	LocationsReplaced  bool             `json:"locationsReplaced"`
	DoubleBookings     []ImportConflict `json:"doubleBookings"`
	ForbiddenConflicts []ImportConflict `json:"forbiddenConflicts"`
}

// MergeImport 把外部载荷合并进引擎。合并策略：
//   - 员工按 id 浅合并：载荷中出现的字段覆盖现有值，未出现的字段保留原值，
//     合并后的员工集合以载荷为准
//   - 地点列表如果出现则整体替换（不合并），全局团队词表随后重新计算为
//     所有地点团队的并集。这种不对称是有意为之：地点和团队的拓扑
//     以最后一次导入为权威
//
// 结构校验失败返回 SchemaError，时间字符串非法同样在这里整体拒绝，
// 两种情况下引擎状态都不会有任何变化
func (r *Roster) MergeImport(data []byte) (*ImportReport, error) {
	var probe struct {
		Locations json.RawMessage `json:"locations"`
		Teams     json.RawMessage `json:"teams"`
		Employees json.RawMessage `json:"employees"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &SchemaError{Reason: "载荷不是合法的 JSON 对象"}
	}

	if len(probe.Employees) == 0 || bytes.Equal(probe.Employees, []byte("null")) {
		return nil, &SchemaError{Reason: "缺少 employees 字段"}
	}

	var rawEmployees []json.RawMessage
	if err := json.Unmarshal(probe.Employees, &rawEmployees); err != nil {
		return nil, &SchemaError{Reason: "employees 必须是数组"}
	}

	locationsPresent := len(probe.Locations) > 0 && !bytes.Equal(probe.Locations, []byte("null"))
	var locations []domain.Location
	if locationsPresent {
		if err := json.Unmarshal(probe.Locations, &locations); err != nil {
			return nil, &SchemaError{Reason: "locations 必须是数组"}
		}
	}

	// 第一阶段：合并并校验所有员工记录，这一步不触碰引擎状态，
	// 保证校验失败时导入是全有或全无的
	merged := make([]*domain.Employee, 0, len(rawEmployees))
	for i, raw := range rawEmployees {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return nil, &SchemaError{Reason: fmt.Sprintf("第 %d 个员工记录无法解析", i+1)}
		}
		if head.ID == "" {
			return nil, &SchemaError{Reason: fmt.Sprintf("第 %d 个员工记录缺少 id", i+1)}
		}

		emp := &domain.Employee{}
		if existing, ok := r.employees[head.ID]; ok {
			// 以现有记录为底，把班次物化为导出形式后让载荷字段逐个覆盖，
			// 载荷中未出现的字段自然保留原值
			base := *existing
			base.Shifts = r.wireShifts(existing.ID)
			emp = &base
		}
		if err := json.Unmarshal(raw, emp); err != nil {
			return nil, &SchemaError{Reason: fmt.Sprintf("员工 %s 的记录无法解析", head.ID)}
		}

		for _, shift := range emp.Shifts {
			if _, err := SlotForLabel(shift.StartTime); err != nil {
				return nil, fmt.Errorf("员工 %s 的班次时间非法: %w", emp.ID, err)
			}
		}
		for _, fh := range emp.ForbiddenHours {
			start, err := ToIndex(fh.StartTime)
			if err != nil {
				return nil, fmt.Errorf("员工 %s 的禁排时段非法: %w", emp.ID, err)
			}
			end, err := ToIndex(fh.EndTime)
			if err != nil {
				return nil, fmt.Errorf("员工 %s 的禁排时段非法: %w", emp.ID, err)
			}
			if start >= end {
				return nil, fmt.Errorf("员工 %s 的禁排时段开始时间必须早于结束时间", emp.ID)
			}
		}

		merged = append(merged, emp)
	}

	// 第二阶段：校验通过后急切地应用合并结果
	r.employees = make(map[string]*domain.Employee, len(merged))
	r.order = make([]string, 0, len(merged))
	for _, emp := range merged {
		if _, ok := r.employees[emp.ID]; ok {
			continue // 载荷中同 id 的后续记录不覆盖第一条，以第一条为准
		}
		r.employees[emp.ID] = emp
		r.order = append(r.order, emp.ID)
	}

	if locationsPresent {
		r.locations = make([]*domain.Location, 0, len(locations))
		for i := range locations {
			r.locations = append(r.locations, &locations[i])
		}
		r.teams = r.unionOfLocationTeams()
	}

	r.intervals = make(map[string][]Interval)
	for _, id := range r.order {
		emp := r.employees[id]
		intervals := make([]Interval, 0, len(emp.ForbiddenHours))
		for _, fh := range emp.ForbiddenHours {
			start, _ := ToIndex(fh.StartTime)
			end, _ := ToIndex(fh.EndTime)
			intervals = append(intervals, Interval{
				Day:    fh.Day,
				Start:  start,
				End:    end,
				Reason: fh.Reason,
			})
		}
		r.intervals[id] = intervals
	}

	report := &ImportReport{
		EmployeesImported:  len(r.order),
		LocationsImported:  len(locations),
		LocationsReplaced:  locationsPresent,
		DoubleBookings:     make([]ImportConflict, 0),
		ForbiddenConflicts: make([]ImportConflict, 0),
	}

	r.store = NewAssignmentStore()
	for _, id := range r.order {
		emp := r.employees[id]
		for _, shift := range emp.Shifts {
			slot, _ := SlotForLabel(shift.StartTime)

			if err := r.store.Add(id, shift.Day, slot, shift.Location); err != nil {
				existing, _ := r.store.LocationAt(id, shift.Day, slot)
				report.DoubleBookings = append(report.DoubleBookings, ImportConflict{
					EmployeeID:       id,
					EmployeeName:     emp.Name,
					Day:              shift.Day,
					StartTime:        shift.StartTime,
					Location:         shift.Location,
					ExistingLocation: existing,
				})
				continue
			}

			if r.IsForbidden(id, shift.Day, slot) {
				reason, _ := r.ForbiddenReason(id, shift.Day, slot)
				report.ForbiddenConflicts = append(report.ForbiddenConflicts, ImportConflict{
					EmployeeID:   id,
					EmployeeName: emp.Name,
					Day:          shift.Day,
					StartTime:    shift.StartTime,
					Location:     shift.Location,
					Reason:       reason,
				})
			}
		}
	}

	for _, id := range r.order {
		r.syncEmployee(id)
	}

	return report, nil
}
