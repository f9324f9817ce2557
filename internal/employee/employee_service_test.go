package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"go-hris-graphql/internal/employee"
	employeeerrors "go-hris-graphql/internal/employee/errors"
	employeeMock "go-hris-graphql/internal/employee/mock"
	"go-hris-graphql/internal/events"
	"go-hris-graphql/internal/messaging/kafka"
	kafkaMock "go-hris-graphql/internal/messaging/kafka/mock"
	"go-hris-graphql/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	apperror.Init()
	os.Exit(m.Run())
}

type serviceDeps struct {
	service employee.Service
	repo    *employeeMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	sql     sqlmock.Sqlmock
}

func newServiceDeps(t *testing.T) serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := employeeMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	return serviceDeps{
		service: employee.NewServiceWithOutbox(gdb, repo, outbox),
		repo:    repo,
		outbox:  outbox,
		sql:     sqlMock,
	}
}

func ptr[T any](v T) *T { return &v }

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         ptr("ada@example.com"),
		Designation:   "Engineer",
		Salary:        5000,
		DateOfJoining: "2024-03-01",
		Department:    "R&D",
	}
}

func storedEmployee(id uuid.UUID) *employee.Employee {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &employee.Employee{
		ID:            id,
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         ptr("ada@example.com"),
		Designation:   "Engineer",
		Salary:        5000,
		DateOfJoining: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Department:    "R&D",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success writes employee and outbox event in one transaction", func(t *testing.T) {
		d := newServiceDeps(t)
		var created *employee.Employee

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			created = e
			return nil
		})
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.EmployeeCreated, ev.EventType)
			assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
			assert.Equal(t, "employee", ev.AggregateType)
			assert.Equal(t, kafka.OutboxStatusPending, ev.Status)

			var payload events.EmployeeLifecycleEvent
			assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, ev.AggregateID, payload.EmployeeID)
			assert.Equal(t, "Engineer", payload.Designation)
			return nil
		})
		d.sql.ExpectCommit()

		resp, err := d.service.Create(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, created.ID.String(), resp.ID)
		assert.Equal(t, "Ada", resp.FirstName)
		assert.Equal(t, "2024-03-01", resp.DateOfJoining)
		assert.Equal(t, "ada@example.com", *resp.Email)
		assert.Nil(t, resp.Gender)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("salary floor is inclusive", func(t *testing.T) {
		d := newServiceDeps(t)
		req := validCreateRequest()
		req.Salary = 999

		_, err := d.service.Create(ctx, req)
		assert.Equal(t, employeeerrors.ErrSalaryTooLow, err)
		assert.Equal(t, "Salary must be at least 1000", err.Error())

		req.Salary = employee.MinSalary
		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		d.sql.ExpectCommit()

		resp, err := d.service.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, float64(1000), resp.Salary)
	})

	t.Run("salary reported ahead of missing fields", func(t *testing.T) {
		d := newServiceDeps(t)
		_, err := d.service.Create(ctx, employee.CreateEmployeeRequest{Salary: 10})
		assert.Equal(t, employeeerrors.ErrSalaryTooLow, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		d := newServiceDeps(t)
		req := validCreateRequest()
		req.LastName = ""

		_, err := d.service.Create(ctx, req)
		assert.Error(t, err)
		assert.Equal(t, "Last Name is required", err.Error())
	})

	t.Run("invalid date of joining", func(t *testing.T) {
		d := newServiceDeps(t)
		req := validCreateRequest()
		req.DateOfJoining = "yesterday"

		_, err := d.service.Create(ctx, req)
		assert.Equal(t, employeeerrors.ErrInvalidDateOfJoining, err)
	})

	t.Run("store failure rolls back", func(t *testing.T) {
		d := newServiceDeps(t)
		dbErr := errors.New("connection reset")

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(ctx, gomock.Any()).Return(dbErr)
		d.sql.ExpectRollback()

		_, err := d.service.Create(ctx, validCreateRequest())
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		d := newServiceDeps(t)

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("outbox full"))
		d.sql.ExpectRollback()

		_, err := d.service.Create(ctx, validCreateRequest())
		assert.EqualError(t, err, "outbox full")
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})
}

func TestService_CreateThenGetByID(t *testing.T) {
	ctx := context.Background()
	d := newServiceDeps(t)
	var stored employee.Employee

	d.sql.ExpectBegin()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
		e.CreatedAt = time.Now()
		e.UpdatedAt = e.CreatedAt
		stored = *e
		return nil
	})
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.sql.ExpectCommit()

	created, err := d.service.Create(ctx, validCreateRequest())
	assert.NoError(t, err)

	d.repo.EXPECT().FindByID(ctx, stored.ID).Return(&stored, nil)
	got, err := d.service.GetByID(ctx, created.ID)
	assert.NoError(t, err)

	created.CreatedAt, created.UpdatedAt = "", ""
	got.CreatedAt, got.UpdatedAt = "", ""
	assert.Equal(t, created, got)
}

func TestService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("maps every record", func(t *testing.T) {
		d := newServiceDeps(t)
		d.repo.EXPECT().FindAll(ctx).Return([]employee.Employee{*storedEmployee(uuid.New()), *storedEmployee(uuid.New())}, nil)

		resp, err := d.service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "2026-01-02T03:04:05Z", resp[0].CreatedAt)
	})

	t.Run("empty store returns empty list", func(t *testing.T) {
		d := newServiceDeps(t)
		d.repo.EXPECT().FindAll(ctx).Return(nil, nil)

		resp, err := d.service.GetAll(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		d := newServiceDeps(t)
		_, err := d.service.GetByID(ctx, "not-a-uuid")
		assert.Equal(t, employeeerrors.ErrInvalidEmployeeID, err)
	})

	t.Run("not found", func(t *testing.T) {
		d := newServiceDeps(t)
		id := uuid.New()
		d.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := d.service.GetByID(ctx, id.String())
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
	})
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("no filter returns empty list without querying", func(t *testing.T) {
		d := newServiceDeps(t)
		resp, err := d.service.Search(ctx, employee.SearchEmployeesRequest{})
		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("filters are passed to the store", func(t *testing.T) {
		d := newServiceDeps(t)
		filter := employee.SearchEmployeesRequest{Department: "R&D"}
		d.repo.EXPECT().Search(ctx, filter).Return([]employee.Employee{*storedEmployee(uuid.New())}, nil)

		resp, err := d.service.Search(ctx, filter)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "R&D", resp[0].Department)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only supplied fields", func(t *testing.T) {
		d := newServiceDeps(t)
		id := uuid.New()
		current := storedEmployee(id)

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByID(ctx, id).Return(current, nil)
		d.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "Ada", e.FirstName)
			assert.Equal(t, "Principal Engineer", e.Designation)
			assert.Equal(t, float64(9000), e.Salary)
			assert.Equal(t, "ada@example.com", *e.Email)
			return nil
		})
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.EmployeeUpdated, ev.EventType)
			assert.Equal(t, id.String(), ev.AggregateID)
			return nil
		})
		d.sql.ExpectCommit()

		resp, err := d.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			Designation: ptr("Principal Engineer"),
			Salary:      ptr(9000.0),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Principal Engineer", resp.Designation)
		assert.Equal(t, "Lovelace", resp.LastName)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("low salary checked before id", func(t *testing.T) {
		d := newServiceDeps(t)
		_, err := d.service.Update(ctx, "garbage", employee.UpdateEmployeeRequest{Salary: ptr(500.0)})
		assert.Equal(t, employeeerrors.ErrSalaryTooLow, err)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		d := newServiceDeps(t)
		_, err := d.service.Update(ctx, "garbage", employee.UpdateEmployeeRequest{FirstName: ptr("X")})
		assert.Equal(t, employeeerrors.ErrInvalidEmployeeID, err)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("not found rolls back", func(t *testing.T) {
		d := newServiceDeps(t)
		id := uuid.New()

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
		d.sql.ExpectRollback()

		_, err := d.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{FirstName: ptr("X")})
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
		assert.Equal(t, "Employee not found", err.Error())
	})

	t.Run("invalid date in patch", func(t *testing.T) {
		d := newServiceDeps(t)
		_, err := d.service.Update(ctx, uuid.NewString(), employee.UpdateEmployeeRequest{DateOfJoining: ptr("13/45/2020")})
		assert.Equal(t, employeeerrors.ErrInvalidDateOfJoining, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns pre-deletion snapshot", func(t *testing.T) {
		d := newServiceDeps(t)
		id := uuid.New()

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByID(ctx, id).Return(storedEmployee(id), nil)
		d.repo.EXPECT().Delete(ctx, id).Return(nil)
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.EmployeeDeleted, ev.EventType)
			return nil
		})
		d.sql.ExpectCommit()

		resp, err := d.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
		assert.Equal(t, "Ada", resp.FirstName)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("malformed id", func(t *testing.T) {
		d := newServiceDeps(t)
		_, err := d.service.Delete(ctx, "123")
		assert.Equal(t, employeeerrors.ErrInvalidEmployeeID, err)
		assert.Equal(t, "Invalid employee id", err.Error())
	})

	t.Run("absent", func(t *testing.T) {
		d := newServiceDeps(t)
		id := uuid.New()

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
		d.sql.ExpectRollback()

		_, err := d.service.Delete(ctx, id.String())
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
	})
}

func TestService_WithoutOutbox(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(gdb, repo)

	sqlMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	sqlMock.ExpectCommit()

	_, err = service.Create(ctx, validCreateRequest())
	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
