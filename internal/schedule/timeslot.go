package schedule

import (
	"fmt"
	"time"
)

// 可排班时段固定为每天 08:00 到 23:30，步长 30 分钟，共 32 个时间槽
const (
	domainStartIndex = 8 * 60
	domainEndIndex   = 23*60 + 30
	slotStepMinutes  = 30
)

// Slot 是一个半小时的时间槽，Index 为 hour*60+minute，Label 为 "HH:MM"
type Slot struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

var domainSlots = buildDomainSlots()

func buildDomainSlots() []Slot {
	slots := make([]Slot, 0, (domainEndIndex-domainStartIndex)/slotStepMinutes+1)
	for index := domainStartIndex; index <= domainEndIndex; index += slotStepMinutes {
		slots = append(slots, Slot{
			Index: index,
			Label: fmt.Sprintf("%02d:%02d", index/60, index%60),
		})
	}
	return slots
}

// SlotsInDomain 返回固定的时间槽序列，调用方不得修改返回的切片
func SlotsInDomain() []Slot {
	return domainSlots
}

// ToIndex 把 "HH:MM" 解析为分钟数，解析失败时返回 MalformedTimeError
func ToIndex(timeString string) (int, error) {
	t, err := time.Parse("15:04", timeString)
	if err != nil {
		return 0, &MalformedTimeError{Input: timeString}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// SlotForIndex 按分钟数查找时间槽，不在可排班时段内或未对齐步长时返回 false
func SlotForIndex(index int) (Slot, bool) {
	if index < domainStartIndex || index > domainEndIndex || index%slotStepMinutes != 0 {
		return Slot{}, false
	}
	return domainSlots[(index-domainStartIndex)/slotStepMinutes], true
}

// SlotForLabel 把 "HH:MM" 解析为时间槽，超出可排班时段的值在这里被拒绝，
// 引擎内部不再做这个检查
func SlotForLabel(label string) (Slot, error) {
	index, err := ToIndex(label)
	if err != nil {
		return Slot{}, err
	}

	slot, ok := SlotForIndex(index)
	if !ok {
		return Slot{}, fmt.Errorf("时间 %s 不在可排班时段内", label)
	}
	return slot, nil
}

func slotPosition(s Slot) int {
	return (s.Index - domainStartIndex) / slotStepMinutes
}

// RangeBetween 返回两个时间槽之间（含两端）的时间槽序列，
// 与参数的先后顺序无关，拖拽选择依赖这个性质
func RangeBetween(a, b Slot) []Slot {
	lo, hi := slotPosition(a), slotPosition(b)
	if lo > hi {
		lo, hi = hi, lo
	}
	return domainSlots[lo : hi+1]
}
