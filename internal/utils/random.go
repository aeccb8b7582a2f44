package utils

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "庆",
	"建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣", "雪",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

// GenerateEmailFromChineseName 用姓名的拼音加随机数字生成一个邮箱地址
func GenerateEmailFromChineseName(chineseName string, emailDomain string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	local := ""

	for _, p := range pinyinArray {
		length := rand.Intn(len(p)) + 1
		local += p[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomain
}

var demoTeamPairs = [][]string{
	{"Main Hall", "Service"},
	{"Kitchen", "Service"},
	{"Reception", "Management"},
	{"Warehouse", "Logistics"},
	{"Management", "Sales"},
}

var demoForbiddenReasons = []string{"Lunch Break", "School Pickup", "Medical Appointment", "Personal Time"}

// GenerateRandomEmployee 生成一个随机的员工记录，id 由调用方分配
func GenerateRandomEmployee(id int, planningDays int) domain.Employee {
	name := GenerateRandomChineseName()
	teams := demoTeamPairs[rand.Intn(len(demoTeamPairs))]

	day := strconv.Itoa(rand.Intn(planningDays) + 1)
	startHour := rand.Intn(4) + 10 // 10 点到 13 点之间的某个整点

	return domain.Employee{
		ID:            strconv.Itoa(id),
		Name:          name,
		ExpectedHours: float64(rand.Intn(4)*5 + 25), // 25 到 40
		Teams:         teams,
		Shifts:        []domain.Shift{},
		ForbiddenHours: []domain.ForbiddenHour{
			{
				Day:       day,
				StartTime: fmt.Sprintf("%02d:00", startHour),
				EndTime:   fmt.Sprintf("%02d:00", startHour+1),
				Reason:    demoForbiddenReasons[rand.Intn(len(demoForbiddenReasons))],
			},
		},
		Details: domain.EmployeeDetails{
			Department:  []string{teams[0]},
			Role:        []string{"Staff"},
			ContactInfo: []string{GenerateEmailFromChineseName(name, "example.com")},
			Preferences: []string{},
			Other:       []string{},
		},
	}
}
