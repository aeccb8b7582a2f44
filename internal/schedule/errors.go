package schedule

import "fmt"

// MalformedTimeError 表示时间字符串无法解析，调用方必须拒绝对应的输入
type MalformedTimeError struct {
	Input string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("时间格式错误: %q", e.Input)
}

// SlotOccupiedError 表示员工在同一天的同一时间槽已经被排到了另一个地点。
// 错误信息中包含员工、时间和已占用的地点，用于冲突提示
type SlotOccupiedError struct {
	EmployeeID   string
	EmployeeName string
	Day          string
	Slot         Slot
	Location     string // 已占用该时间槽的地点
}

func (e *SlotOccupiedError) Error() string {
	name := e.EmployeeName
	if name == "" {
		name = e.EmployeeID
	}
	return fmt.Sprintf("%s 在第 %s 天 %s 已有班次（地点：%s）", name, e.Day, e.Slot.Label, e.Location)
}

// SchemaError 表示导入载荷不符合要求的结构，整个导入在任何状态变更之前被拒绝
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("导入数据格式错误: %s", e.Reason)
}
