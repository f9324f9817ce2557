package employee

import (
	"errors"

	employeeerrors "go-hris-graphql/internal/employee/errors"
	"go-hris-graphql/internal/shared/gqltype"
	"go-hris-graphql/internal/shared/response"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

const (
	msgCreated = "Employee created successfully"
	msgUpdated = "Employee updated successfully"
	msgDeleted = "Employee deleted successfully"
)

type Resolver struct {
	service Service
	logger  *zap.Logger
}

func NewResolver(service Service, logger ...*zap.Logger) *Resolver {
	l := zap.L().Named("employee.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.resolver")
	}
	return &Resolver{service: service, logger: l}
}

func (r *Resolver) GetAllEmployees(p graphql.ResolveParams) (interface{}, error) {
	return r.service.GetAll(p.Context)
}

// GetEmployeeByID resolves to null for both a malformed id and a missing record.
func (r *Resolver) GetEmployeeByID(p graphql.ResolveParams) (interface{}, error) {
	resp, err := r.service.GetByID(p.Context, gqltype.String(p.Args, "eid"))
	if err != nil {
		if errors.Is(err, employeeerrors.ErrInvalidEmployeeID) || errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return resp, nil
}

func (r *Resolver) SearchEmployees(p graphql.ResolveParams) (interface{}, error) {
	return r.service.Search(p.Context, SearchEmployeesRequest{
		Designation: gqltype.String(p.Args, "designation"),
		Department:  gqltype.String(p.Args, "department"),
	})
}

func (r *Resolver) AddNewEmployee(p graphql.ResolveParams) (interface{}, error) {
	req := CreateEmployeeRequest{
		FirstName:     gqltype.String(p.Args, "first_name"),
		LastName:      gqltype.String(p.Args, "last_name"),
		Email:         gqltype.OptionalString(p.Args, "email"),
		Gender:        gqltype.OptionalString(p.Args, "gender"),
		Designation:   gqltype.String(p.Args, "designation"),
		Salary:        gqltype.Float(p.Args, "salary"),
		DateOfJoining: gqltype.String(p.Args, "date_of_joining"),
		Department:    gqltype.String(p.Args, "department"),
		EmployeePhoto: gqltype.OptionalString(p.Args, "employee_photo"),
	}

	resp, err := r.service.Create(p.Context, req)
	if err != nil {
		return r.fail("addNewEmployee", err)
	}
	return response.Ok(resp, msgCreated), nil
}

func (r *Resolver) UpdateEmployeeByID(p graphql.ResolveParams) (interface{}, error) {
	req := UpdateEmployeeRequest{
		FirstName:     gqltype.OptionalString(p.Args, "first_name"),
		LastName:      gqltype.OptionalString(p.Args, "last_name"),
		Email:         gqltype.OptionalString(p.Args, "email"),
		Gender:        gqltype.OptionalString(p.Args, "gender"),
		Designation:   gqltype.OptionalString(p.Args, "designation"),
		Salary:        gqltype.OptionalFloat(p.Args, "salary"),
		DateOfJoining: gqltype.OptionalString(p.Args, "date_of_joining"),
		Department:    gqltype.OptionalString(p.Args, "department"),
		EmployeePhoto: gqltype.OptionalString(p.Args, "employee_photo"),
	}

	resp, err := r.service.Update(p.Context, gqltype.String(p.Args, "eid"), req)
	if err != nil {
		return r.fail("updateEmployeeById", err)
	}
	return response.Ok(resp, msgUpdated), nil
}

func (r *Resolver) DeleteEmployeeByID(p graphql.ResolveParams) (interface{}, error) {
	resp, err := r.service.Delete(p.Context, gqltype.String(p.Args, "eid"))
	if err != nil {
		return r.fail("deleteEmployeeById", err)
	}
	return response.Ok(resp, msgDeleted), nil
}

func (r *Resolver) fail(op string, err error) (interface{}, error) {
	res, err := response.FromError[EmployeeResponse](err)
	if err != nil {
		r.logger.Error("graphql employee operation failed", zap.String("operation", op), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("graphql employee operation rejected",
		zap.String("operation", op),
		zap.String("message", res.Message),
	)
	return res, nil
}
