package schedule

import (
	"testing"

	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
)

func TestIsEligibleEmptyFilter(t *testing.T) {
	emp := &domain.Employee{ID: "1", Teams: []string{"Sales"}}
	loc := &domain.Location{Name: "Warehouse", Teams: []string{"Logistics"}}

	if !IsEligible(emp, loc, nil) {
		t.Fatalf("empty filter must always be eligible")
	}
	if !IsEligible(nil, nil, TeamFilter{}) {
		t.Fatalf("empty filter must be eligible even without employee or location")
	}
}

func TestIsEligibleEitherTeamMatches(t *testing.T) {
	filter := TeamFilter{"Kitchen"}

	chef := &domain.Employee{ID: "2", Teams: []string{"Kitchen", "Service"}}
	warehouse := &domain.Location{Name: "Warehouse", Teams: []string{"Logistics"}}
	kitchen := &domain.Location{Name: "Kitchen", Teams: []string{"Kitchen", "Service"}}
	receptionist := &domain.Employee{ID: "3", Teams: []string{"Reception"}}

	// 员工团队命中即可，地点不命中也不拦
	if !IsEligible(chef, warehouse, filter) {
		t.Fatalf("employee team match should be sufficient")
	}
	// 地点团队命中即可，员工不命中也不拦
	if !IsEligible(receptionist, kitchen, filter) {
		t.Fatalf("location team match should be sufficient")
	}
	// 两边都不命中才不可排
	if IsEligible(receptionist, warehouse, filter) {
		t.Fatalf("neither side matches, must be ineligible")
	}
}

func TestIsEligibleSharedLocationUnderFilter(t *testing.T) {
	// 两名都不属于 Kitchen 的员工，在启用 {"Kitchen"} 筛选时仍然可以
	// 被排到挂了 Kitchen 标签的休息室：资格规则是或，不是与
	breakRoom := &domain.Location{Name: "Break Room", Teams: []string{"Kitchen", "All Teams"}}
	filter := TeamFilter{"Kitchen"}

	for _, emp := range []*domain.Employee{
		{ID: "5", Teams: []string{"Main Hall", "Service"}},
		{ID: "7", Teams: []string{"Warehouse", "Logistics"}},
	} {
		if !IsEligible(emp, breakRoom, filter) {
			t.Fatalf("employee %s should be eligible at shared location", emp.ID)
		}
	}
}

func TestIsEligibleLocationWithoutTeams(t *testing.T) {
	bare := &domain.Location{Name: "Annex"}
	emp := &domain.Employee{ID: "1", Teams: []string{"Sales"}}

	// 没有团队的地点在启用筛选后对筛选之外的员工不可用
	if IsEligible(emp, bare, TeamFilter{"Kitchen"}) {
		t.Fatalf("location without teams must not match the filter")
	}
	// 但关闭筛选时对所有人可用
	if !IsEligible(emp, bare, nil) {
		t.Fatalf("location without teams is open when filtering is disabled")
	}
}
