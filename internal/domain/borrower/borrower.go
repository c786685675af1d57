package borrower

import (
	"fmt"
	"lending-admin/internal/pkg/apperrors"
	"regexp"
	"strings"
)

// NoEmail is the sentinel stored when a borrower has no email address.
const NoEmail = "N/A"

var (
	contactNoPattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Borrower is one loan applicant record. IsRepeatCustomer and LoanCount are
// derived by the record store from the number of borrowers sharing
// CustomerID; they are consumed as delivered.
type Borrower struct {
	BorrowerID       int64  `json:"borrowerId"`
	CustomerID       string `json:"customerId"`
	RefNo            string `json:"refNo"`
	FullName         string `json:"fullName"`
	ContactNo        string `json:"contactNo"`
	Address          string `json:"address"`
	Email            string `json:"email"`
	IsRepeatCustomer bool   `json:"isRepeatCustomer"`
	LoanCount        int    `json:"loanCount"`
}

// Normalize trims every text field in place and replaces a blank email with
// NoEmail. It runs once when records enter the snapshot so that downstream
// matching never sees untrimmed or missing values.
func (b *Borrower) Normalize() {
	b.CustomerID = strings.TrimSpace(b.CustomerID)
	b.RefNo = strings.TrimSpace(b.RefNo)
	b.FullName = strings.TrimSpace(b.FullName)
	b.ContactNo = strings.TrimSpace(b.ContactNo)
	b.Address = strings.TrimSpace(b.Address)
	b.Email = strings.TrimSpace(b.Email)
	if b.Email == "" {
		b.Email = NoEmail
	}
}

// RepeatLabel is the badge text shown next to repeat customers, or "" for
// first-time borrowers.
func (b *Borrower) RepeatLabel() string {
	if !b.IsRepeatCustomer {
		return ""
	}
	return fmt.Sprintf("Repeat Customer (%d borrowers)", b.LoanCount)
}

// Fields is the editable part of a borrower submitted by the create and
// edit forms.
type Fields struct {
	CustomerID string `json:"customerId"`
	FullName   string `json:"fullName"`
	ContactNo  string `json:"contactNo"`
	Address    string `json:"address"`
	Email      string `json:"email"`
}

func (f Fields) normalized() Fields {
	f.CustomerID = strings.TrimSpace(f.CustomerID)
	f.FullName = strings.TrimSpace(f.FullName)
	f.ContactNo = strings.TrimSpace(f.ContactNo)
	f.Address = strings.TrimSpace(f.Address)
	f.Email = strings.TrimSpace(f.Email)
	if f.Email == "" {
		f.Email = NoEmail
	}
	return f
}

// Validate checks every field and reports all failures together.
func (f Fields) Validate() error {
	var errs apperrors.FieldErrors
	if f.CustomerID == "" {
		errs = errs.Add("customerId", "customer must be selected")
	}
	if f.FullName == "" {
		errs = errs.Add("fullName", "full name is required")
	}
	if !contactNoPattern.MatchString(f.ContactNo) {
		errs = errs.Add("contactNo", "contact number must be exactly 10 digits")
	}
	if f.Address == "" {
		errs = errs.Add("address", "address is required")
	}
	if f.Email != "" && f.Email != NoEmail && !emailPattern.MatchString(f.Email) {
		errs = errs.Add("email", "email address is invalid")
	}
	return errs.Err()
}
