package schedule

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func importJSON(t *testing.T, r *Roster, payload string) *ImportReport {
	t.Helper()
	report, err := r.MergeImport([]byte(payload))
	if err != nil {
		t.Fatalf("MergeImport: %v", err)
	}
	return report
}

const basePayload = `{
	"locations": [
		{"name": "Kitchen", "teams": ["Kitchen", "Service"]},
		{"name": "Break Room", "teams": ["Service", "All Teams"]}
	],
	"teams": ["Kitchen", "Service"],
	"employees": [
		{
			"id": "1",
			"name": "张伟",
			"expectedHours": 40,
			"assignedHours": 0,
			"teams": ["Kitchen"],
			"shifts": [
				{"day": "1", "startTime": "09:00", "location": "Kitchen"}
			],
			"forbiddenHours": [
				{"day": "1", "startTime": "12:00", "endTime": "13:00", "reason": "午休"},
				{"day": "1", "startTime": "12:30", "endTime": "14:00", "reason": "外出"}
			],
			"details": {
				"department": ["Kitchen"], "role": ["Chef"],
				"contactInfo": ["zhangwei@example.com"], "preferences": [], "other": []
			}
		}
	]
}`

func TestIsForbiddenHalfOpenBoundary(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)

	// 区间 [12:00, 13:00)：起点算禁排，终点不算
	if !r.IsForbidden("1", "1", mustSlot(t, "12:00")) {
		t.Fatalf("slot at interval start must be forbidden")
	}
	if !r.IsForbidden("1", "1", mustSlot(t, "12:30")) {
		t.Fatalf("slot inside interval must be forbidden")
	}
	if r.IsForbidden("1", "1", mustSlot(t, "11:30")) {
		t.Fatalf("slot before interval must not be forbidden")
	}
	// 13:00 仍落在第二个区间 [12:30, 14:00) 内
	if !r.IsForbidden("1", "1", mustSlot(t, "13:00")) {
		t.Fatalf("overlapping intervals have union semantics")
	}
	if r.IsForbidden("1", "1", mustSlot(t, "14:00")) {
		t.Fatalf("slot at interval end must not be forbidden")
	}
	// 其他天不受影响
	if r.IsForbidden("1", "2", mustSlot(t, "12:00")) {
		t.Fatalf("interval must only apply to its own day")
	}
}

func TestForbiddenReasonFirstDeclared(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)

	// 12:30 同时落在两个重叠区间内，按声明顺序返回第一个命中的
	reason, ok := r.ForbiddenReason("1", "1", mustSlot(t, "12:30"))
	if !ok {
		t.Fatalf("expected a forbidden reason")
	}
	if reason != "午休" {
		t.Fatalf("reason = %q, want first declared interval", reason)
	}

	if _, ok := r.ForbiddenReason("1", "1", mustSlot(t, "08:00")); ok {
		t.Fatalf("no interval covers 08:00")
	}
}

func TestAssignedHoursAlwaysDerived(t *testing.T) {
	r := NewRoster()
	// 载荷里谎报 assignedHours，导入后必须按排班表重新计算
	importJSON(t, r, `{
		"employees": [
			{"id": "1", "name": "A", "expectedHours": 10, "assignedHours": 99,
			 "shifts": [
				{"day": "1", "startTime": "09:00", "location": "Kitchen"},
				{"day": "2", "startTime": "10:00", "location": "Kitchen"},
				{"day": "2", "startTime": "10:30", "location": "Kitchen"}
			 ],
			 "teams": [], "forbiddenHours": [],
			 "details": {"department": [], "role": [], "contactInfo": [], "preferences": [], "other": []}}
		]
	}`)

	emp, _ := r.Employee("1")
	if emp.AssignedHours != 1.5 {
		t.Fatalf("assignedHours = %v, want 1.5", emp.AssignedHours)
	}
	if got := AssignedHours(r.Store(), "1"); got != 0.5*float64(r.Store().Count("1")) {
		t.Fatalf("aggregation rule violated: %v", got)
	}
	if !NeedsMoreHours(emp) {
		t.Fatalf("1.5 < 10 must need more hours")
	}

	slot := mustSlot(t, "11:00")
	if err := r.AddAssignment("1", "1", slot, "Kitchen"); err != nil {
		t.Fatalf("AddAssignment: %v", err)
	}
	if emp.AssignedHours != 2.0 {
		t.Fatalf("assignedHours after add = %v, want 2.0", emp.AssignedHours)
	}
	r.RemoveAssignment("1", "1", slot, "Kitchen")
	if emp.AssignedHours != 1.5 {
		t.Fatalf("assignedHours after remove = %v, want 1.5", emp.AssignedHours)
	}
}

func TestMergeImportSchemaError(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)
	before := r.Store().All()

	for _, payload := range []string{
		`{"employees": "not-an-array"}`,
		`{"locations": []}`,
		`not json`,
		`{"employees": [{"name": "缺少 id"}]}`,
	} {
		_, err := r.MergeImport([]byte(payload))
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("payload %q: expected SchemaError, got %v", payload, err)
		}
	}

	// 拒绝发生在任何状态变更之前
	after := r.Store().All()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("store changed after rejected import")
	}
}

func TestMergeImportRejectsMalformedTimes(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)
	before := r.Store().All()

	cases := []string{
		`{"employees": [{"id": "1", "shifts": [{"day": "1", "startTime": "25:00", "location": "Kitchen"}]}]}`,
		`{"employees": [{"id": "1", "shifts": [{"day": "1", "startTime": "07:00", "location": "Kitchen"}]}]}`,
		`{"employees": [{"id": "1", "forbiddenHours": [{"day": "1", "startTime": "bogus", "endTime": "13:00"}]}]}`,
		`{"employees": [{"id": "1", "forbiddenHours": [{"day": "1", "startTime": "13:00", "endTime": "12:00"}]}]}`,
	}
	for _, payload := range cases {
		if _, err := r.MergeImport([]byte(payload)); err == nil {
			t.Fatalf("payload %q: expected rejection", payload)
		}
	}

	if !reflect.DeepEqual(before, r.Store().All()) {
		t.Fatalf("store changed after rejected import")
	}
}

func TestMergeImportShallowMergeByID(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)

	// 只更新 expectedHours，未出现的字段保留原值
	importJSON(t, r, `{"employees": [{"id": "1", "expectedHours": 20}]}`)

	emp, ok := r.Employee("1")
	if !ok {
		t.Fatalf("employee 1 disappeared")
	}
	if emp.ExpectedHours != 20 {
		t.Fatalf("expectedHours = %v, want 20", emp.ExpectedHours)
	}
	if emp.Name != "张伟" {
		t.Fatalf("name should be retained, got %q", emp.Name)
	}
	if len(emp.ForbiddenHours) != 2 {
		t.Fatalf("forbiddenHours should be retained, got %d", len(emp.ForbiddenHours))
	}
	if len(emp.Shifts) != 1 || emp.Shifts[0].StartTime != "09:00" {
		t.Fatalf("shifts should be retained, got %v", emp.Shifts)
	}
	// 地点列表未出现时保持不变
	if len(r.Locations()) != 2 {
		t.Fatalf("locations should be retained, got %d", len(r.Locations()))
	}
}

func TestMergeImportDuplicateIDKeepsFirstRecord(t *testing.T) {
	r := NewRoster()

	// 同一载荷里出现重复 id 时以第一条为准，后续记录被忽略
	importJSON(t, r, `{"employees": [
		{"id": "1", "name": "张伟", "expectedHours": 40},
		{"id": "1", "name": "王芳", "expectedHours": 10}
	]}`)

	if got := len(r.Employees()); got != 1 {
		t.Fatalf("employees = %d, want 1", got)
	}
	emp, ok := r.Employee("1")
	if !ok {
		t.Fatalf("employee 1 missing")
	}
	if emp.Name != "张伟" || emp.ExpectedHours != 40 {
		t.Fatalf("first record must win, got name=%q expectedHours=%v", emp.Name, emp.ExpectedHours)
	}
}

func TestMergeImportReplacesLocations(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)

	importJSON(t, r, `{
		"locations": [{"name": "Annex", "teams": ["Night", "Service"]}],
		"employees": [{"id": "1"}]
	}`)

	locations := r.Locations()
	if len(locations) != 1 || locations[0].Name != "Annex" {
		t.Fatalf("locations must be replaced wholesale, got %v", locations)
	}
	// 团队词表重新计算为所有地点团队的并集
	if !reflect.DeepEqual(r.Teams(), []string{"Night", "Service"}) {
		t.Fatalf("teams = %v, want recomputed union", r.Teams())
	}
}

func TestMergeImportDropsDoubleBookings(t *testing.T) {
	r := NewRoster()
	report := importJSON(t, r, `{
		"employees": [
			{"id": "1", "name": "A",
			 "shifts": [
				{"day": "1", "startTime": "09:00", "location": "Kitchen"},
				{"day": "1", "startTime": "09:00", "location": "Reception"}
			 ],
			 "teams": [], "forbiddenHours": [],
			 "details": {"department": [], "role": [], "contactInfo": [], "preferences": [], "other": []}}
		]
	}`)

	if len(report.DoubleBookings) != 1 {
		t.Fatalf("doubleBookings = %v, want 1 entry", report.DoubleBookings)
	}
	conflict := report.DoubleBookings[0]
	if conflict.Location != "Reception" || conflict.ExistingLocation != "Kitchen" {
		t.Fatalf("conflict should name both locations: %+v", conflict)
	}
	// 先到者保留
	if loc, _ := r.Store().LocationAt("1", "1", mustSlot(t, "09:00")); loc != "Kitchen" {
		t.Fatalf("first assignment must win, got %q", loc)
	}
}

func TestMergeImportFlagsForbiddenConflicts(t *testing.T) {
	r := NewRoster()
	report := importJSON(t, r, `{
		"employees": [
			{"id": "1", "name": "A",
			 "shifts": [{"day": "1", "startTime": "12:00", "location": "Kitchen"}],
			 "teams": [],
			 "forbiddenHours": [{"day": "1", "startTime": "12:00", "endTime": "13:00", "reason": "午休"}],
			 "details": {"department": [], "role": [], "contactInfo": [], "preferences": [], "other": []}}
		]
	}`)

	if len(report.ForbiddenConflicts) != 1 {
		t.Fatalf("forbiddenConflicts = %v, want 1 entry", report.ForbiddenConflicts)
	}
	if report.ForbiddenConflicts[0].Reason != "午休" {
		t.Fatalf("conflict should carry the interval reason: %+v", report.ForbiddenConflicts[0])
	}
	// 可信的批量恢复：有警告但仍然落地
	if _, ok := r.Store().LocationAt("1", "1", mustSlot(t, "12:00")); !ok {
		t.Fatalf("forbidden-overlapping import must still be applied")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)
	before := r.Store().All()

	exported, err := json.Marshal(r.BuildPayload())
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	fresh := NewRoster()
	if _, err := fresh.MergeImport(exported); err != nil {
		t.Fatalf("re-import: %v", err)
	}

	if !reflect.DeepEqual(before, fresh.Store().All()) {
		t.Fatalf("round trip changed the assignment set:\nbefore %v\nafter  %v", before, fresh.Store().All())
	}
}

func TestBuildPayloadShape(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)

	payload := r.BuildPayload()
	if len(payload.Employees) != 1 || len(payload.Locations) != 2 {
		t.Fatalf("payload shape wrong: %d employees, %d locations", len(payload.Employees), len(payload.Locations))
	}
	emp := payload.Employees[0]
	if emp.AssignedHours != 0.5 {
		t.Fatalf("exported assignedHours = %v, want 0.5", emp.AssignedHours)
	}
	if len(emp.Shifts) != 1 || emp.Shifts[0].Day != "1" || emp.Shifts[0].StartTime != "09:00" {
		t.Fatalf("exported shifts wrong: %v", emp.Shifts)
	}

	var decoded map[string]json.RawMessage
	data, _ := json.Marshal(payload)
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	for _, field := range []string{"locations", "teams", "employees"} {
		if _, ok := decoded[field]; !ok {
			t.Fatalf("payload missing top-level field %q", field)
		}
	}
}

func TestAddLocation(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)

	if _, err := r.AddLocation("  ", nil); err == nil {
		t.Fatalf("blank name must be rejected")
	}
	if _, err := r.AddLocation("kitchen", nil); err == nil {
		t.Fatalf("duplicate name must be rejected case-insensitively")
	}

	loc, err := r.AddLocation("Annex", []string{"Night", "Service"})
	if err != nil {
		t.Fatalf("AddLocation: %v", err)
	}
	if loc.Name != "Annex" {
		t.Fatalf("location name = %q", loc.Name)
	}
	// 新团队并入词表，已有的不重复
	teams := r.Teams()
	count := 0
	for _, team := range teams {
		if team == "Service" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("team vocabulary has duplicates: %v", teams)
	}
	found := false
	for _, team := range teams {
		if team == "Night" {
			found = true
		}
	}
	if !found {
		t.Fatalf("new team missing from vocabulary: %v", teams)
	}
}

func TestSetLocationTeamsRecomputesVocabulary(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, basePayload)

	if _, err := r.SetLocationTeams("Nowhere", nil); err == nil {
		t.Fatalf("unknown location must be rejected")
	}

	if _, err := r.SetLocationTeams("Break Room", []string{"Night"}); err != nil {
		t.Fatalf("SetLocationTeams: %v", err)
	}
	if !reflect.DeepEqual(r.Teams(), []string{"Kitchen", "Service", "Night"}) {
		t.Fatalf("teams = %v, want union of location teams", r.Teams())
	}
}

func TestFilterEmployeesDisjunction(t *testing.T) {
	r := NewRoster()
	importJSON(t, r, `{
		"locations": [{"name": "Break Room", "teams": ["All Teams", "Kitchen"]}],
		"employees": [
			{"id": "1", "name": "厨师", "teams": ["Kitchen"], "shifts": [], "forbiddenHours": [],
			 "details": {"department": [], "role": [], "contactInfo": [], "preferences": [], "other": []}},
			{"id": "2", "name": "前台", "teams": ["Reception"],
			 "shifts": [{"day": "1", "startTime": "09:00", "location": "Break Room"}], "forbiddenHours": [],
			 "details": {"department": [], "role": [], "contactInfo": [], "preferences": [], "other": []}},
			{"id": "3", "name": "仓库", "teams": ["Warehouse"], "shifts": [], "forbiddenHours": [],
			 "details": {"department": [], "role": [], "contactInfo": [], "preferences": [], "other": []}}
		]
	}`)

	visible := r.FilterEmployees(TeamFilter{"Kitchen"})
	ids := make([]string, 0, len(visible))
	for _, emp := range visible {
		ids = append(ids, emp.ID)
	}
	// 1 靠自己的团队命中，2 靠班次所在地点的团队命中，3 两边都不命中
	if !reflect.DeepEqual(ids, []string{"1", "2"}) {
		t.Fatalf("visible employees = %v", ids)
	}

	if len(r.FilterEmployees(nil)) != 3 {
		t.Fatalf("empty filter must show everyone")
	}
}
