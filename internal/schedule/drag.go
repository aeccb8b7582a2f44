package schedule

import (
	"fmt"

	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
)

type DragMode string

const (
	DragModeAdd    DragMode = "add"
	DragModeRemove DragMode = "remove"
)

type dragCell struct {
	slotIndex int
	location  string
}

// Change 记录一次手势中实际落地的单槽变更
type Change struct {
	Assignment
	Removed bool `json:"removed"`
}

// DragSession 把一次拖拽手势翻译成一串单槽的增删操作。
// 模式在手势开始的瞬间由起点格子的占用状态取反决定，整个手势期间不变。
// 每个槽的变更立即独立提交，手势不是事务：拖进非法区域时，
// 已经落地的合法前缀会保留下来，部分成功是正常情况而不是错误
type DragSession struct {
	roster   *Roster
	ctx      SchedulingContext
	employee *domain.Employee
	mode     DragMode
	origin   Slot
	endpoint Slot
	location string
	active   bool

	processed map[dragCell]bool
	applied   []Change
	notice    *SlotOccupiedError // 本次手势遇到的第一个冲突，手势结束时消失
}

// BeginDrag 在指定格子上开始一次手势并立即处理起点槽
func (r *Roster) BeginDrag(ctx SchedulingContext, employeeID string, slot Slot, location string) (*DragSession, error) {
	emp, ok := r.employees[employeeID]
	if !ok {
		return nil, fmt.Errorf("员工 %s 不存在", employeeID)
	}

	mode := DragModeAdd
	if existing, occupied := r.store.LocationAt(employeeID, ctx.Day, slot); occupied && existing == location {
		mode = DragModeRemove
	}

	session := &DragSession{
		roster:    r,
		ctx:       ctx,
		employee:  emp,
		mode:      mode,
		origin:    slot,
		endpoint:  slot,
		location:  location,
		active:    true,
		processed: make(map[dragCell]bool),
		applied:   make([]Change, 0),
	}

	session.step(slot)
	return session, nil
}

func (s *DragSession) Mode() DragMode {
	return s.mode
}

func (s *DragSession) Active() bool {
	return s.active
}

// Notice 返回本次手势中第一个冲突的提示，没有冲突时为 nil
func (s *DragSession) Notice() *SlotOccupiedError {
	return s.notice
}

// Applied 返回本次手势已经落地的变更，按指针经过的顺序排列
func (s *DragSession) Applied() []Change {
	return s.applied
}

// ExtendTo 把手势移动到新的格子。地点跟随当前所在的列，
// 但行的范围始终以手势开始的槽为基准计算。范围内每个尚未在
// 本次手势中处理过的槽按模式逐个处理，处理顺序与指针移动方向一致
func (s *DragSession) ExtendTo(slot Slot, location string) {
	if !s.active {
		return
	}

	s.endpoint = slot
	s.location = location

	span := RangeBetween(s.origin, s.endpoint)
	if slotPosition(s.endpoint) < slotPosition(s.origin) {
		for i := len(span) - 1; i >= 0; i-- {
			s.step(span[i])
		}
		return
	}
	for _, cur := range span {
		s.step(cur)
	}
}

// End 结束手势并清空全部手势状态，已经提交的变更不会回滚
func (s *DragSession) End() {
	s.active = false
	s.processed = make(map[dragCell]bool)
	s.applied = nil
	s.notice = nil
}

func (s *DragSession) step(slot Slot) {
	cell := dragCell{slotIndex: slot.Index, location: s.location}
	if s.processed[cell] {
		return
	}
	s.processed[cell] = true

	switch s.mode {
	case DragModeAdd:
		s.stepAdd(slot)
	case DragModeRemove:
		s.stepRemove(slot)
	}
}

func (s *DragSession) stepAdd(slot Slot) {
	day := s.ctx.Day

	// 禁排时段和不符合团队资格的槽静默跳过，这是拖拽容忍部分成功的设计
	if s.roster.IsForbidden(s.employee.ID, day, slot) {
		return
	}
	if !s.roster.EligibleAt(s.employee.ID, s.location, s.ctx.TeamFilter) {
		return
	}

	// 同一时间已有任何地点的班次时跳过并记录冲突提示（只保留第一个）
	if existing, occupied := s.roster.store.LocationAt(s.employee.ID, day, slot); occupied {
		if s.notice == nil {
			s.notice = &SlotOccupiedError{
				EmployeeID:   s.employee.ID,
				EmployeeName: s.employee.Name,
				Day:          day,
				Slot:         slot,
				Location:     existing,
			}
		}
		return
	}

	if err := s.roster.AddAssignment(s.employee.ID, day, slot, s.location); err != nil {
		return
	}
	s.applied = append(s.applied, Change{
		Assignment: Assignment{
			EmployeeID: s.employee.ID,
			Day:        day,
			Slot:       slot,
			Location:   s.location,
		},
	})
}

func (s *DragSession) stepRemove(slot Slot) {
	day := s.ctx.Day

	if existing, occupied := s.roster.store.LocationAt(s.employee.ID, day, slot); !occupied || existing != s.location {
		return
	}

	s.roster.RemoveAssignment(s.employee.ID, day, slot, s.location)
	s.applied = append(s.applied, Change{
		Assignment: Assignment{
			EmployeeID: s.employee.ID,
			Day:        day,
			Slot:       slot,
			Location:   s.location,
		},
		Removed: true,
	})
}
