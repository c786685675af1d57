package borrower_test

import (
	"errors"
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/pkg/apperrors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrower_Normalize(t *testing.T) {
	b := &borrower.Borrower{
		CustomerID: " CUST-7 ",
		RefNo:      "BRW-1 ",
		FullName:   " Jose Rizal ",
		ContactNo:  " 0917123456",
		Address:    " Calamba ",
		Email:      "   ",
	}

	b.Normalize()

	assert.Equal(t, "CUST-7", b.CustomerID)
	assert.Equal(t, "BRW-1", b.RefNo)
	assert.Equal(t, "Jose Rizal", b.FullName)
	assert.Equal(t, "0917123456", b.ContactNo)
	assert.Equal(t, "Calamba", b.Address)
	assert.Equal(t, borrower.NoEmail, b.Email)
}

func TestBorrower_RepeatLabel(t *testing.T) {
	assert.Equal(t, "", (&borrower.Borrower{LoanCount: 1}).RepeatLabel())
	assert.Equal(t, "Repeat Customer (3 borrowers)", (&borrower.Borrower{IsRepeatCustomer: true, LoanCount: 3}).RepeatLabel())
}

func validFields() borrower.Fields {
	return borrower.Fields{
		CustomerID: "CUST-1",
		FullName:   "Andres Bonifacio",
		ContactNo:  "0917123456",
		Address:    "Tondo, Manila",
		Email:      "andres@example.com",
	}
}

func TestFields_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validFields().Validate())
	})

	t.Run("email sentinel and blank are accepted", func(t *testing.T) {
		f := validFields()
		f.Email = borrower.NoEmail
		assert.NoError(t, f.Validate())
		f.Email = ""
		assert.NoError(t, f.Validate())
	})

	cases := []struct {
		name   string
		mutate func(*borrower.Fields)
		field  string
	}{
		{"missing customer", func(f *borrower.Fields) { f.CustomerID = "" }, "customerId"},
		{"missing name", func(f *borrower.Fields) { f.FullName = "" }, "fullName"},
		{"short contact", func(f *borrower.Fields) { f.ContactNo = "091712345" }, "contactNo"},
		{"long contact", func(f *borrower.Fields) { f.ContactNo = "09171234567" }, "contactNo"},
		{"non digit contact", func(f *borrower.Fields) { f.ContactNo = "09171234a6" }, "contactNo"},
		{"missing address", func(f *borrower.Fields) { f.Address = "" }, "address"},
		{"bad email", func(f *borrower.Fields) { f.Email = "not-an-email" }, "email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFields()
			tc.mutate(&f)

			err := f.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))

			var fe apperrors.FieldErrors
			require.True(t, errors.As(err, &fe))
			require.Len(t, fe, 1)
			assert.Equal(t, tc.field, fe[0].Field)
		})
	}

	t.Run("reports every failing field", func(t *testing.T) {
		err := borrower.Fields{}.Validate()

		var fe apperrors.FieldErrors
		require.True(t, errors.As(err, &fe))
		fields := make([]string, 0, len(fe))
		for _, e := range fe {
			fields = append(fields, e.Field)
		}
		assert.Equal(t, []string{"customerId", "fullName", "contactNo", "address"}, fields)
	})
}
