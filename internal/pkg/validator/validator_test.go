package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2026-02-28"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+998901234567", "998901234567", "901234567", "+998 90 123 45 67", "90-123-45-67"}
	invalid := []string{"+99890123456", "12345", "abcdefghi", "", "+1 555 123 4567"}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestIsValidBillingPeriod(t *testing.T) {
	for _, m := range []int{1, 6, 12} {
		if !IsValidBillingMonth(m) {
			t.Errorf("IsValidBillingMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1} {
		if IsValidBillingMonth(m) {
			t.Errorf("IsValidBillingMonth(%d) = true, want false", m)
		}
	}
	for _, y := range []int{2020, 2026, 2100} {
		if !IsValidBillingYear(y) {
			t.Errorf("IsValidBillingYear(%d) = false, want true", y)
		}
	}
	for _, y := range []int{2019, 2101, 0} {
		if IsValidBillingYear(y) {
			t.Errorf("IsValidBillingYear(%d) = true, want false", y)
		}
	}
}

func TestIsPositiveAmount(t *testing.T) {
	if !IsPositiveAmount(decimal.NewFromInt(1)) {
		t.Error("IsPositiveAmount(1) = false, want true")
	}
	if IsPositiveAmount(decimal.Zero) {
		t.Error("IsPositiveAmount(0) = true, want false")
	}
	if IsPositiveAmount(decimal.NewFromInt(-5)) {
		t.Error("IsPositiveAmount(-5) = true, want false")
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin", "john.doe", "user_42", "a-b-c"}
	invalid := []string{"ab", "", "user name", "user@name", "x"}
	for _, s := range valid {
		if !IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "must be positive"},
		{Field: "month", Message: "must be between 1 and 12"},
	}
	m := errs.ToMap()
	if m["amount"] != "must be positive" || m["month"] != "must be between 1 and 12" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
