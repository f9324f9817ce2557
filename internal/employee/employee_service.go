package employee

import (
	"context"
	"time"

	employeeerrors "go-hris-graphql/internal/employee/errors"
	"go-hris-graphql/internal/events"
	"go-hris-graphql/internal/messaging/kafka"
	"go-hris-graphql/internal/shared/apperror"
	"go-hris-graphql/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Search(ctx context.Context, req SearchEmployeesRequest) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("designation", req.Designation),
		zap.String("department", req.Department),
	)

	if err := apperror.Validate(req); err != nil {
		log.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, mapValidationError(err)
	}

	dateOfJoining, err := parseDate(req.DateOfJoining)
	if err != nil {
		log.Warn("create employee invalid date_of_joining",
			zap.String("date_of_joining", req.DateOfJoining),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfJoining
	}

	empl := &Employee{
		ID:            uuid.New(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Gender:        req.Gender,
		Designation:   req.Designation,
		Salary:        req.Salary,
		DateOfJoining: dateOfJoining,
		Department:    req.Department,
		EmployeePhoto: req.EmployeePhoto,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}
		return s.enqueueLifecycleEvent(ctx, tx, events.EmployeeCreated, *empl)
	})
	if err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success", zap.String("employee_id", empl.ID.String()))
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

// Search returns an empty list without querying when no filter is set.
func (s *service) Search(ctx context.Context, req SearchEmployeesRequest) ([]EmployeeResponse, error) {
	if req.IsEmpty() {
		return []EmployeeResponse{}, nil
	}

	empls, err := s.repo.Search(ctx, req)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("search employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.String("employee_id", id))

	// 1. Salary floor, only when a salary was supplied
	if err := apperror.Validate(req); err != nil {
		log.Warn("update employee validation failed", zap.Error(err))
		return EmployeeResponse{}, mapValidationError(err)
	}

	// 2. Id must be well formed before touching the store
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	patch, err := req.toPatch()
	if err != nil {
		return EmployeeResponse{}, err
	}

	var updated Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, eid)
		if err != nil {
			return mapRepositoryError(err)
		}

		patch.Apply(empl)
		if err := qtx.Update(ctx, empl); err != nil {
			return mapRepositoryError(err)
		}

		updated = *empl
		return s.enqueueLifecycleEvent(ctx, tx, events.EmployeeUpdated, updated)
	})
	if err != nil {
		log.Warn("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(updated), nil
}

// Delete removes the employee and returns the record as it was before removal.
func (s *service) Delete(ctx context.Context, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.String("employee_id", id))

	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	var snapshot Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, eid)
		if err != nil {
			return mapRepositoryError(err)
		}
		snapshot = *empl

		if err := qtx.Delete(ctx, eid); err != nil {
			return mapRepositoryError(err)
		}
		return s.enqueueLifecycleEvent(ctx, tx, events.EmployeeDeleted, snapshot)
	})
	if err != nil {
		log.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("delete employee success", zap.String("employee_id", id))
	return mapToResponse(snapshot), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            empl.ID.String(),
		FirstName:     empl.FirstName,
		LastName:      empl.LastName,
		Email:         empl.Email,
		Gender:        empl.Gender,
		Designation:   empl.Designation,
		Salary:        empl.Salary,
		DateOfJoining: empl.DateOfJoining.Format(dateLayout),
		Department:    empl.Department,
		EmployeePhoto: empl.EmployeePhoto,
		CreatedAt:     formatTime(empl.CreatedAt),
		UpdatedAt:     formatTime(empl.UpdatedAt),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
