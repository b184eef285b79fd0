package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/shopspring/decimal"
)

// MoneyScale is the storage convention for money columns: the persisted
// value times 10,000 equals the displayed VND amount. Seed data keeps 1500
// for a 15,000,000 VND salary.
const MoneyScale = 10_000

// DefaultEmailDomain is appended when an email is entered without a domain.
const DefaultEmailDomain = "@161Corp.com"

// MinimumMonthlySalary is the lowest base salary accepted at hire, in VND.
const MinimumMonthlySalary = 5_000_000

const (
	displayDateLayout = "02/01/2006"
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
)

var (
	phoneRe       = regexp.MustCompile(`^0\d{9}$`)
	emailRe       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	plainAmountRe = regexp.MustCompile(`^\d+$`)
	nonNumericRe  = regexp.MustCompile(`[^\d.]`)
)

// ParseDisplayDate parses a user-entered DD/MM/YYYY date. Hyphen separators
// are normalized to slashes; calendar validity is enforced.
func ParseDisplayDate(s string) (time.Time, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "/")
	if s == "" {
		return time.Time{}, apperr.Validation("date must not be empty")
	}
	d, err := time.Parse(displayDateLayout, s)
	if err != nil {
		return time.Time{}, apperr.Validation("date must be DD/MM/YYYY (e.g. 25/12/2024)")
	}
	return d, nil
}

// FormatDisplayDate renders a date as DD/MM/YYYY, or "" for nil.
func FormatDisplayDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(displayDateLayout)
}

// ParseDisplayTime parses HH:MM or HH:MM:SS.
func ParseDisplayTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperr.Validation("time must not be empty")
	}
	for _, layout := range []string{timeLayout, timeLayoutSeconds} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation("time must be HH:MM or HH:MM:SS")
}

// FormatDisplayTime renders a time of day, omitting seconds when zero.
// Returns "" for nil.
func FormatDisplayTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	if t.Second() > 0 {
		return t.Format(timeLayoutSeconds)
	}
	return t.Format(timeLayout)
}

// ParseCurrencyInput converts user-entered currency text to a VND amount.
// Accepts "10,000,000", "10tr" and "10 triệu" (the tr suffix means millions).
// Empty input is zero.
func ParseCurrencyInput(s string) (int64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return 0, nil
	}

	if strings.Contains(v, "tr") {
		num := nonNumericRe.ReplaceAllString(v, "")
		millions, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, apperr.Validation("invalid currency amount")
		}
		return int64(millions * 1_000_000), nil
	}

	if !plainAmountRe.MatchString(v) {
		return 0, apperr.Validation("invalid currency amount")
	}
	amount, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid currency amount")
	}
	return amount, nil
}

// ToStorageMoney converts a display VND amount to the scaled storage value.
func ToStorageMoney(vnd int64) decimal.Decimal {
	return decimal.NewFromInt(vnd).Div(decimal.NewFromInt(MoneyScale))
}

// ToDisplayMoney converts a scaled storage value back to display VND.
// A nil amount is zero.
func ToDisplayMoney(amount *decimal.Decimal) int64 {
	if amount == nil {
		return 0
	}
	return amount.Mul(decimal.NewFromInt(MoneyScale)).IntPart()
}

// FormatCurrencyVND renders a VND amount with thousands separators.
func FormatCurrencyVND(vnd int64) string {
	s := strconv.FormatInt(vnd, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	return out + " VNĐ"
}

// ValidatePhone checks the local phone convention: exactly 10 digits with a
// leading zero.
func ValidatePhone(phone string) error {
	if !phoneRe.MatchString(strings.TrimSpace(phone)) {
		return apperr.Validation("phone number must be 10 digits starting with 0 (e.g. 0987654321)")
	}
	return nil
}

// ValidateHireDate rejects hire dates in the future.
func ValidateHireDate(hireDate time.Time) error {
	return validateNotAfterToday(hireDate, "hire date cannot be later than today")
}

// ValidateAttendanceDate rejects attendance dates in the future.
func ValidateAttendanceDate(date time.Time) error {
	return validateNotAfterToday(date, "attendance date cannot be later than today")
}

func validateNotAfterToday(date time.Time, message string) error {
	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	if date.After(today) {
		return apperr.Validation(message)
	}
	return nil
}

// ValidateSalary requires a strictly positive VND amount.
func ValidateSalary(vnd int64) error {
	if vnd <= 0 {
		return apperr.Validation("salary must be greater than 0")
	}
	return nil
}

// ValidateMinimumSalary enforces the hiring floor.
func ValidateMinimumSalary(vnd int64) error {
	if vnd < MinimumMonthlySalary {
		return apperr.Validation(fmt.Sprintf("salary must be at least %s", FormatCurrencyVND(MinimumMonthlySalary)))
	}
	return nil
}

// EnsureEmailDomain trims the input and appends the company domain when no
// "@" is present; otherwise the address must have a local@domain.tld shape.
func EnsureEmailDomain(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperr.Validation("email must not be empty")
	}
	if !strings.Contains(email, "@") {
		return email + DefaultEmailDomain, nil
	}
	if !emailRe.MatchString(email) {
		return "", apperr.Validation("invalid email address")
	}
	return email, nil
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English month name for 1..12, or "".
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthNumber returns 1..12 for an English month name, or 0.
func MonthNumber(name string) int {
	for i, m := range monthNames {
		if m == name {
			return i + 1
		}
	}
	return 0
}
