package normalize

import (
	"testing"
	"time"

	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/shopspring/decimal"
)

func TestParseDisplayDate(t *testing.T) {
	valid := map[string]time.Time{
		"25/12/2024":   time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		"01/01/2000":   time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		"29/02/2024":   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		"25-12-2024":   time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		" 25/12/2024 ": time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
	}
	for input, want := range valid {
		got, err := ParseDisplayDate(input)
		if err != nil {
			t.Errorf("ParseDisplayDate(%q) unexpected error: %v", input, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDisplayDate(%q) = %v, want %v", input, got, want)
		}
	}

	invalid := []string{"", "   ", "31/02/2024", "29/02/2023", "2024/12/25", "12/25/2024", "25/12/24", "abc"}
	for _, input := range invalid {
		if _, err := ParseDisplayDate(input); !apperr.IsValidation(err) {
			t.Errorf("ParseDisplayDate(%q) = %v, want validation error", input, err)
		}
	}
}

func TestDisplayDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		got, err := ParseDisplayDate(FormatDisplayDate(&d))
		if err != nil {
			t.Fatalf("round trip of %v failed: %v", d, err)
		}
		if !got.Equal(d) {
			t.Errorf("round trip of %v = %v", d, got)
		}
	}
	if s := FormatDisplayDate(nil); s != "" {
		t.Errorf("FormatDisplayDate(nil) = %q, want empty", s)
	}
}

func TestParseDisplayTime(t *testing.T) {
	cases := []struct {
		input   string
		hour    int
		minute  int
		second  int
		wantErr bool
	}{
		{"08:30", 8, 30, 0, false},
		{"17:45:30", 17, 45, 30, false},
		{"00:00", 0, 0, 0, false},
		{"", 0, 0, 0, true},
		{"25:00", 0, 0, 0, true},
		{"8h30", 0, 0, 0, true},
	}
	for _, c := range cases {
		got, err := ParseDisplayTime(c.input)
		if c.wantErr {
			if !apperr.IsValidation(err) {
				t.Errorf("ParseDisplayTime(%q) = %v, want validation error", c.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDisplayTime(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got.Hour() != c.hour || got.Minute() != c.minute || got.Second() != c.second {
			t.Errorf("ParseDisplayTime(%q) = %v", c.input, got)
		}
	}
}

func TestFormatDisplayTime(t *testing.T) {
	withSeconds := time.Date(0, 1, 1, 17, 45, 30, 0, time.UTC)
	if s := FormatDisplayTime(&withSeconds); s != "17:45:30" {
		t.Errorf("FormatDisplayTime = %q, want 17:45:30", s)
	}
	noSeconds := time.Date(0, 1, 1, 8, 30, 0, 0, time.UTC)
	if s := FormatDisplayTime(&noSeconds); s != "08:30" {
		t.Errorf("FormatDisplayTime = %q, want 08:30", s)
	}
	if s := FormatDisplayTime(nil); s != "" {
		t.Errorf("FormatDisplayTime(nil) = %q, want empty", s)
	}
}

func TestParseCurrencyInput(t *testing.T) {
	cases := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"10tr", 10_000_000, false},
		{"10 triệu", 10_000_000, false},
		{"1.5tr", 1_500_000, false},
		{"10,000,000", 10_000_000, false},
		{"5000000", 5_000_000, false},
		{"", 0, false},
		{"abc", 0, true},
		{"-500", 0, true},
		{"10.5", 0, true},
	}
	for _, c := range cases {
		got, err := ParseCurrencyInput(c.input)
		if c.wantErr {
			if !apperr.IsValidation(err) {
				t.Errorf("ParseCurrencyInput(%q) err = %v, want validation error", c.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCurrencyInput(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCurrencyInput(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	amounts := []int64{0, 10_000, 50_000, 5_000_000, 15_000_000, 123_450_000}
	for _, vnd := range amounts {
		stored := ToStorageMoney(vnd)
		if got := ToDisplayMoney(&stored); got != vnd {
			t.Errorf("round trip of %d VND = %d (stored %s)", vnd, got, stored)
		}
	}

	// Seed convention: stored 1500 displays as 15,000,000 VND.
	stored := decimal.NewFromInt(1500)
	if got := ToDisplayMoney(&stored); got != 15_000_000 {
		t.Errorf("ToDisplayMoney(1500) = %d, want 15000000", got)
	}
	if got := ToDisplayMoney(nil); got != 0 {
		t.Errorf("ToDisplayMoney(nil) = %d, want 0", got)
	}
}

func TestValidatePhone(t *testing.T) {
	if err := ValidatePhone("0987654321"); err != nil {
		t.Errorf("ValidatePhone(0987654321) = %v, want nil", err)
	}
	for _, phone := range []string{"123", "1987654321", "098765432", "09876543210", "098765432a", ""} {
		if err := ValidatePhone(phone); !apperr.IsValidation(err) {
			t.Errorf("ValidatePhone(%q) = %v, want validation error", phone, err)
		}
	}
}

func TestValidateHireDate(t *testing.T) {
	past := time.Now().AddDate(0, 0, -1)
	if err := ValidateHireDate(past); err != nil {
		t.Errorf("ValidateHireDate(yesterday) = %v, want nil", err)
	}
	future := time.Now().AddDate(0, 0, 2)
	if err := ValidateHireDate(future); !apperr.IsValidation(err) {
		t.Errorf("ValidateHireDate(future) = %v, want validation error", err)
	}
}

func TestValidateAttendanceDate(t *testing.T) {
	// Parsed display dates are midnight-based, so today itself is allowed.
	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	if err := ValidateAttendanceDate(today); err != nil {
		t.Errorf("ValidateAttendanceDate(today) = %v, want nil", err)
	}
	future := time.Now().AddDate(0, 0, 7)
	if err := ValidateAttendanceDate(future); !apperr.IsValidation(err) {
		t.Errorf("ValidateAttendanceDate(future) = %v, want validation error", err)
	}
}

func TestValidateSalary(t *testing.T) {
	if err := ValidateSalary(1); err != nil {
		t.Errorf("ValidateSalary(1) = %v, want nil", err)
	}
	for _, vnd := range []int64{0, -100} {
		if err := ValidateSalary(vnd); !apperr.IsValidation(err) {
			t.Errorf("ValidateSalary(%d) = %v, want validation error", vnd, err)
		}
	}
	if err := ValidateMinimumSalary(5_000_000); err != nil {
		t.Errorf("ValidateMinimumSalary(5000000) = %v, want nil", err)
	}
	if err := ValidateMinimumSalary(4_999_999); !apperr.IsValidation(err) {
		t.Errorf("ValidateMinimumSalary(4999999) = %v, want validation error", err)
	}
}

func TestEnsureEmailDomain(t *testing.T) {
	got, err := EnsureEmailDomain("alice")
	if err != nil || got != "alice"+DefaultEmailDomain {
		t.Errorf("EnsureEmailDomain(alice) = %q, %v", got, err)
	}
	got, err = EnsureEmailDomain(" bob@example.com ")
	if err != nil || got != "bob@example.com" {
		t.Errorf("EnsureEmailDomain(bob@example.com) = %q, %v", got, err)
	}
	for _, email := range []string{"", "   ", "bad@@x", "a@b", "a @b.com"} {
		if _, err := EnsureEmailDomain(email); !apperr.IsValidation(err) {
			t.Errorf("EnsureEmailDomain(%q) = %v, want validation error", email, err)
		}
	}
}

func TestMonthNames(t *testing.T) {
	if MonthName(1) != "January" || MonthName(12) != "December" {
		t.Error("MonthName boundaries wrong")
	}
	if MonthName(0) != "" || MonthName(13) != "" {
		t.Error("MonthName out of range should be empty")
	}
	if MonthNumber("December") != 12 || MonthNumber("January") != 1 {
		t.Error("MonthNumber boundaries wrong")
	}
	if MonthNumber("Nope") != 0 {
		t.Error("MonthNumber unknown should be 0")
	}
	for m := 1; m <= 12; m++ {
		if MonthNumber(MonthName(m)) != m {
			t.Errorf("month %d does not round trip", m)
		}
	}
}

func TestFormatCurrencyVND(t *testing.T) {
	cases := map[int64]string{
		0:          "0 VNĐ",
		1500:       "1,500 VNĐ",
		15_000_000: "15,000,000 VNĐ",
	}
	for vnd, want := range cases {
		if got := FormatCurrencyVND(vnd); got != want {
			t.Errorf("FormatCurrencyVND(%d) = %q, want %q", vnd, got, want)
		}
	}
}
