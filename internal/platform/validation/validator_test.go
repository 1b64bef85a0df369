package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-admin/internal/platform/apperr"
)

type sample struct {
	Date    string `json:"applicationDate" validate:"isodate"`
	Status  string `json:"applicationStatus" validate:"appstatus"`
	Phone   string `json:"phoneNum" validate:"phone10"`
	Address string `json:"shelterAddress" validate:"shelteraddr"`
	Filter  string `json:"value" validate:"denylist"`
	ID      int    `json:"branchID" validate:"gt=0"`
}

func valid() sample {
	return sample{
		Date:    "2024-01-15",
		Status:  "Pending",
		Phone:   "6045551234",
		Address: "123 Main St, Vancouver, BC",
		Filter:  "Adoption Fair",
		ID:      1,
	}
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, Struct(valid()))
}

func TestStruct_MessagesUseJSONNames(t *testing.T) {
	cases := []struct {
		mutate func(*sample)
		want   string
	}{
		{func(s *sample) { s.Date = "15/01/2024" }, "applicationDate must be YYYY-MM-DD"},
		{func(s *sample) { s.Date = "2024-02-30" }, "applicationDate must be YYYY-MM-DD"},
		{func(s *sample) { s.Date = "2024-1-15" }, "applicationDate must be YYYY-MM-DD"},
		{func(s *sample) { s.Status = "approved" }, "applicationStatus must be one of accepted, rejected, pending"},
		{func(s *sample) { s.Phone = "604555123" }, "phoneNum must be exactly 10 digits"},
		{func(s *sample) { s.Phone = "604-555-1234" }, "phoneNum must be exactly 10 digits"},
		{func(s *sample) { s.Address = "Main St" }, "shelterAddress must look like '123 Main St, City'"},
		{func(s *sample) { s.Filter = "x'; DROP TABLE Events" }, "value contains a forbidden character or keyword"},
		{func(s *sample) { s.ID = 0 }, "branchID must be greater than 0"},
	}
	for _, tc := range cases {
		s := valid()
		tc.mutate(&s)
		err := Struct(s)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Equal(t, tc.want, apperr.PublicMessage(err))
	}
}

func TestNormalizeStatus(t *testing.T) {
	for in, want := range map[string]string{"PENDING": "Pending", " accepted ": "Accepted", "Rejected": "Rejected"} {
		got, ok := NormalizeStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	_, ok := NormalizeStatus("withdrawn")
	assert.False(t, ok)
}

func TestContainsDenied(t *testing.T) {
	for _, bad := range []string{"a;b", "drop table x", "insert", "50%", "f(x)", "me@x", "a&b", "#1", "$5", "^"} {
		assert.True(t, ContainsDenied(bad), bad)
	}
	for _, ok := range []string{"Adoption Fair", "2024-05-01", "Park Ave.", "Drop-in clinic"} {
		assert.False(t, ContainsDenied(ok), ok)
	}
}
