package employee

import (
	"time"

	employeeerrors "go-hris-graphql/internal/employee/errors"
)

// EmployeePatch is a partial update. Only non-nil fields override the stored
// record.
type EmployeePatch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Gender        *string
	Designation   *string
	Salary        *float64
	DateOfJoining *time.Time
	Department    *string
	EmployeePhoto *string
}

func (r UpdateEmployeeRequest) toPatch() (EmployeePatch, error) {
	patch := EmployeePatch{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Gender:        r.Gender,
		Designation:   r.Designation,
		Salary:        r.Salary,
		Department:    r.Department,
		EmployeePhoto: r.EmployeePhoto,
	}
	if r.DateOfJoining != nil {
		d, err := parseDate(*r.DateOfJoining)
		if err != nil {
			return EmployeePatch{}, employeeerrors.ErrInvalidDateOfJoining
		}
		patch.DateOfJoining = &d
	}
	return patch, nil
}

func (p EmployeePatch) Apply(e *Employee) {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.Email != nil {
		e.Email = p.Email
	}
	if p.Gender != nil {
		e.Gender = p.Gender
	}
	if p.Designation != nil {
		e.Designation = *p.Designation
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.DateOfJoining != nil {
		e.DateOfJoining = *p.DateOfJoining
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.EmployeePhoto != nil {
		e.EmployeePhoto = p.EmployeePhoto
	}
}

// parseDate accepts a calendar date or a full RFC3339 timestamp.
func parseDate(v string) (time.Time, error) {
	if d, err := time.Parse(dateLayout, v); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
