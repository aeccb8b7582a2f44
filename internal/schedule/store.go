package schedule

import "sort"

// Assignment 是排班的原子单位：一名员工在某一天的某个时间槽于某个地点工作
type Assignment struct {
	EmployeeID string `json:"employeeID"`
	Day        string `json:"day"`
	Slot       Slot   `json:"slot"`
	Location   string `json:"location"`
}

type assignmentKey struct {
	employeeID string
	day        string
	slotIndex  int
}

// AssignmentStore 是排班的唯一权威来源。
// 不变量：不会同时存在 (employeeID, day, slot) 相同而地点不同的两条记录，
// 这就是"不允许重复排班"的核心保证
type AssignmentStore struct {
	byKey map[assignmentKey]string // -> 地点
}

func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{
		byKey: make(map[assignmentKey]string),
	}
}

// Add 插入一条排班记录。同一 (员工, 天, 时间槽) 已存在不同地点的记录时
// 返回 SlotOccupiedError；完全相同的记录重复插入是幂等的。
// 禁排时段和团队资格是调用方的前置检查，这里不再重复
func (s *AssignmentStore) Add(employeeID, day string, slot Slot, location string) error {
	key := assignmentKey{employeeID: employeeID, day: day, slotIndex: slot.Index}
	if existing, ok := s.byKey[key]; ok {
		if existing == location {
			return nil
		}
		return &SlotOccupiedError{
			EmployeeID: employeeID,
			Day:        day,
			Slot:       slot,
			Location:   existing,
		}
	}

	s.byKey[key] = location
	return nil
}

// Remove 删除完全匹配的记录，记录不存在时什么都不做
func (s *AssignmentStore) Remove(employeeID, day string, slot Slot, location string) {
	key := assignmentKey{employeeID: employeeID, day: day, slotIndex: slot.Index}
	if existing, ok := s.byKey[key]; ok && existing == location {
		delete(s.byKey, key)
	}
}

// LocationAt 返回员工在某天某个时间槽被排到的地点（不限地点的占用检查）
func (s *AssignmentStore) LocationAt(employeeID, day string, slot Slot) (string, bool) {
	location, ok := s.byKey[assignmentKey{employeeID: employeeID, day: day, slotIndex: slot.Index}]
	return location, ok
}

// AssignmentsFor 返回员工在某一天的全部排班，按时间槽升序
func (s *AssignmentStore) AssignmentsFor(employeeID, day string) []Assignment {
	assignments := make([]Assignment, 0)
	for key, location := range s.byKey {
		if key.employeeID != employeeID || key.day != day {
			continue
		}
		slot, _ := SlotForIndex(key.slotIndex)
		assignments = append(assignments, Assignment{
			EmployeeID: employeeID,
			Day:        day,
			Slot:       slot,
			Location:   location,
		})
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].Slot.Index < assignments[j].Slot.Index
	})
	return assignments
}

// AllAssignmentsFor 返回员工在所有天的排班，按 (天, 时间槽) 升序
func (s *AssignmentStore) AllAssignmentsFor(employeeID string) []Assignment {
	assignments := make([]Assignment, 0)
	for key, location := range s.byKey {
		if key.employeeID != employeeID {
			continue
		}
		slot, _ := SlotForIndex(key.slotIndex)
		assignments = append(assignments, Assignment{
			EmployeeID: employeeID,
			Day:        key.day,
			Slot:       slot,
			Location:   location,
		})
	}

	sortAssignments(assignments)
	return assignments
}

// OccupantsOf 返回某天某个时间槽在指定地点工作的员工 ID 列表，
// 用于展示同一时段的同事，不要求这些员工处于选中状态
func (s *AssignmentStore) OccupantsOf(day string, slot Slot, location string) []string {
	occupants := make([]string, 0)
	for key, loc := range s.byKey {
		if key.day == day && key.slotIndex == slot.Index && loc == location {
			occupants = append(occupants, key.employeeID)
		}
	}

	sort.Strings(occupants)
	return occupants
}

// Count 返回员工在所有天的排班条数
func (s *AssignmentStore) Count(employeeID string) int {
	n := 0
	for key := range s.byKey {
		if key.employeeID == employeeID {
			n++
		}
	}
	return n
}

// Len 返回整个排班表的记录总数
func (s *AssignmentStore) Len() int {
	return len(s.byKey)
}

// All 返回全部排班记录，按 (员工, 天, 时间槽) 升序，导出和测试比较时使用
func (s *AssignmentStore) All() []Assignment {
	assignments := make([]Assignment, 0, len(s.byKey))
	for key, location := range s.byKey {
		slot, _ := SlotForIndex(key.slotIndex)
		assignments = append(assignments, Assignment{
			EmployeeID: key.employeeID,
			Day:        key.day,
			Slot:       slot,
			Location:   location,
		})
	}

	sortAssignments(assignments)
	return assignments
}

func sortAssignments(assignments []Assignment) {
	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].EmployeeID != assignments[j].EmployeeID {
			return assignments[i].EmployeeID < assignments[j].EmployeeID
		}
		if assignments[i].Day != assignments[j].Day {
			return assignments[i].Day < assignments[j].Day
		}
		return assignments[i].Slot.Index < assignments[j].Slot.Index
	})
}
