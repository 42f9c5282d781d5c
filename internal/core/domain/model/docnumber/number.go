package docnumber

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mes/internal/pkg/errs"
)

// DayLayout is the calendar-day format embedded in document numbers.
const DayLayout = "20060102"

// DocumentNumber is a value object representing an issued document number.
// It is immutable once constructed and formats as "PREFIX-YYYYMMDD-NNN".
//
// The sequence value is zero-padded to three digits. The 1000th document of a
// day simply prints four digits; the number stays unique, only the fixed-width
// assumption breaks. Values are never truncated.
//
// Example:
//
//	n, err := docnumber.New(docnumber.WorkOrder, "20260221", 3)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(n.String()) // "WO-20260221-003"
type DocumentNumber struct {
	prefix Prefix
	day    string
	value  int
}

// New creates a DocumentNumber from a numbering stream, a calendar day in
// DayLayout form, and a sequence value allocated by the sequence repository.
//
// Returns an error if the prefix is unknown, the day is not a valid YYYYMMDD
// date, or the value is below 1.
func New(prefix Prefix, day string, value int) (DocumentNumber, error) {
	if err := prefix.Validate(); err != nil {
		return DocumentNumber{}, err
	}

	if _, err := time.Parse(DayLayout, day); err != nil {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("day", err)
	}

	if value < 1 {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("value",
			fmt.Errorf("%d is not a positive sequence value", value))
	}

	return DocumentNumber{
		prefix: prefix,
		day:    day,
		value:  value,
	}, nil
}

// Parse reconstructs a DocumentNumber from its "PREFIX-YYYYMMDD-NNN" string
// form, validating each part. Used when loading persisted documents.
func Parse(s string) (DocumentNumber, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%q is not of the form PREFIX-YYYYMMDD-NNN", s))
	}

	prefix, err := PrefixFromString(parts[0])
	if err != nil {
		return DocumentNumber{}, err
	}

	value, err := strconv.Atoi(parts[2])
	if err != nil {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("number", err)
	}

	return New(prefix, parts[1], value)
}

// NewForDate creates a DocumentNumber for the calendar day of t.
func NewForDate(prefix Prefix, t time.Time, value int) (DocumentNumber, error) {
	return New(prefix, t.Format(DayLayout), value)
}

// Prefix returns the numbering stream the number belongs to.
func (n DocumentNumber) Prefix() Prefix {
	return n.prefix
}

// Day returns the issue day in YYYYMMDD form.
func (n DocumentNumber) Day() string {
	return n.day
}

// Value returns the raw sequence value within the day.
func (n DocumentNumber) Value() int {
	return n.value
}

// String formats the number as "PREFIX-YYYYMMDD-NNN".
// Implements fmt.Stringer.
func (n DocumentNumber) String() string {
	return fmt.Sprintf("%s-%s-%03d", n.prefix, n.day, n.value)
}

// Validate checks that the number was created via New.
// The zero value fails validation.
func (n DocumentNumber) Validate() error {
	if n.prefix == "" || n.day == "" || n.value == 0 {
		return errs.NewValueIsRequiredError("document number must be created via New")
	}
	return nil
}
