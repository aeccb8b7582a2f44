package domain

import "testing"

func TestContactEmailFirstEntry(t *testing.T) {
	emp := Employee{
		ID:   "1",
		Name: "张伟",
		Details: EmployeeDetails{
			ContactInfo: []string{"zhangwei@example.com", "13800000000"},
		},
	}

	if got := emp.ContactEmail(); got != "zhangwei@example.com" {
		t.Fatalf("ContactEmail() = %q, want first contactInfo entry", got)
	}
}

func TestContactEmailEmpty(t *testing.T) {
	// 没有联系方式时返回空串，由事件投递方回退到运营邮箱
	emp := Employee{ID: "2", Name: "李娜"}

	if got := emp.ContactEmail(); got != "" {
		t.Fatalf("ContactEmail() = %q, want empty string", got)
	}
}
