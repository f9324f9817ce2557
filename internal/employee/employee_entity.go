package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100);not null"`
	Email         *string   `gorm:"type:varchar(255)"`
	Gender        *string   `gorm:"type:varchar(20)"`
	Designation   string    `gorm:"type:varchar(100);not null;index"`
	Salary        float64   `gorm:"type:numeric(12,2);not null;check:chk_employees_salary,salary >= 1000"`
	DateOfJoining time.Time `gorm:"type:date;not null"`
	Department    string    `gorm:"type:varchar(100);not null;index"`
	EmployeePhoto *string   `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
