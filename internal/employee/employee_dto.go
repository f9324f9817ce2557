package employee

// MinSalary is the lowest salary accepted on create and update.
const MinSalary = 1000

const dateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	Email         *string `json:"email"`
	Gender        *string `json:"gender"`
	Designation   string  `json:"designation" binding:"required"`
	Salary        float64 `json:"salary" binding:"gte=1000"`
	DateOfJoining string  `json:"date_of_joining" binding:"required"`
	Department    string  `json:"department" binding:"required"`
	EmployeePhoto *string `json:"employee_photo"`
}

// UpdateEmployeeRequest holds the fields supplied by the caller; nil means
// "leave unchanged".
type UpdateEmployeeRequest struct {
	FirstName     *string  `json:"first_name"`
	LastName      *string  `json:"last_name"`
	Email         *string  `json:"email"`
	Gender        *string  `json:"gender"`
	Designation   *string  `json:"designation"`
	Salary        *float64 `json:"salary" binding:"omitempty,gte=1000"`
	DateOfJoining *string  `json:"date_of_joining"`
	Department    *string  `json:"department"`
	EmployeePhoto *string  `json:"employee_photo"`
}

type SearchEmployeesRequest struct {
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

func (r SearchEmployeesRequest) IsEmpty() bool {
	return r.Designation == "" && r.Department == ""
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         *string `json:"email"`
	Gender        *string `json:"gender"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Department    string  `json:"department"`
	EmployeePhoto *string `json:"employee_photo"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
