package employee

import (
	"testing"
	"time"

	employeeerrors "go-hris-graphql/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestEmployeePatch_Apply(t *testing.T) {
	base := func() Employee {
		return Employee{
			FirstName:     "Ada",
			LastName:      "Lovelace",
			Email:         strPtr("ada@example.com"),
			Designation:   "Engineer",
			Salary:        5000,
			DateOfJoining: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Department:    "R&D",
		}
	}

	t.Run("empty patch leaves record unchanged", func(t *testing.T) {
		e := base()
		EmployeePatch{}.Apply(&e)
		assert.Equal(t, base(), e)
	})

	t.Run("present fields override", func(t *testing.T) {
		e := base()
		salary := 7500.0
		EmployeePatch{
			LastName:      strPtr("King"),
			Gender:        strPtr("female"),
			Salary:        &salary,
			EmployeePhoto: strPtr("https://cdn.example.com/ada.png"),
		}.Apply(&e)

		assert.Equal(t, "Ada", e.FirstName)
		assert.Equal(t, "King", e.LastName)
		assert.Equal(t, "female", *e.Gender)
		assert.Equal(t, 7500.0, e.Salary)
		assert.Equal(t, "ada@example.com", *e.Email)
		assert.Equal(t, "https://cdn.example.com/ada.png", *e.EmployeePhoto)
	})

	t.Run("empty string still overrides", func(t *testing.T) {
		e := base()
		EmployeePatch{Department: strPtr("")}.Apply(&e)
		assert.Equal(t, "", e.Department)
	})
}

func TestUpdateEmployeeRequest_toPatch(t *testing.T) {
	t.Run("parses calendar date", func(t *testing.T) {
		p, err := UpdateEmployeeRequest{DateOfJoining: strPtr("2023-12-31")}.toPatch()
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), *p.DateOfJoining)
	})

	t.Run("parses rfc3339 timestamp", func(t *testing.T) {
		p, err := UpdateEmployeeRequest{DateOfJoining: strPtr("2023-12-31T10:00:00+02:00")}.toPatch()
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC), *p.DateOfJoining)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := UpdateEmployeeRequest{DateOfJoining: strPtr("31-12-2023")}.toPatch()
		assert.Equal(t, employeeerrors.ErrInvalidDateOfJoining, err)
	})

	t.Run("absent date stays nil", func(t *testing.T) {
		p, err := UpdateEmployeeRequest{FirstName: strPtr("Grace")}.toPatch()
		assert.NoError(t, err)
		assert.Nil(t, p.DateOfJoining)
		assert.Equal(t, "Grace", *p.FirstName)
	})
}
