package employee

import (
	"context"

	employeeerrors "go-northwind/internal/employee/errors"
	"go-northwind/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id int) (Employee, error)
	AddEmployee(ctx context.Context, empl Employee) (int, error)
	RemoveEmployee(ctx context.Context, id int) error
	UpdateEmployee(ctx context.Context, empl Employee) error
}

// service opens one session per call and closes it on every return path.
// Errors are returned to the caller as-is, except a missing row which
// becomes employeeerrors.NotFound.
type service struct {
	sessions SessionFactory
	logger   *zap.Logger
}

func NewService(sessions SessionFactory, logger ...*zap.Logger) (Service, error) {
	if sessions == nil {
		return nil, employeeerrors.ErrNilSessionFactory
	}
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{sessions: sessions, logger: l}, nil
}

func (s *service) ListEmployees(ctx context.Context) ([]Employee, error) {
	s.logger.Debug("list employees requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)

	sess, err := s.sessions.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return sess.FindAll()
}

func (s *service) GetEmployee(ctx context.Context, id int) (Employee, error) {
	s.logger.Debug("get employee requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("employee_id", id),
	)

	sess, err := s.sessions.NewSession(ctx)
	if err != nil {
		return Employee{}, err
	}
	defer sess.Close()

	empl, err := sess.FindByID(id)
	if err != nil {
		return Employee{}, mapSessionError(err, id)
	}

	return *empl, nil
}

func (s *service) AddEmployee(ctx context.Context, empl Employee) (int, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("add employee requested",
		zap.String("request_id", rid),
		zap.String("last_name", empl.LastName),
	)

	sess, err := s.sessions.NewSession(ctx)
	if err != nil {
		return 0, err
	}
	defer sess.Close()

	// storage assigns the identifier
	empl.ID = 0

	if err := sess.Insert(&empl); err != nil {
		return 0, err
	}
	if err := sess.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("add employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", empl.ID),
	)
	return empl.ID, nil
}

func (s *service) RemoveEmployee(ctx context.Context, id int) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("remove employee requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
	)

	sess, err := s.sessions.NewSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	empl, err := sess.FindByID(id)
	if err != nil {
		return mapSessionError(err, id)
	}

	if err := sess.Delete(empl); err != nil {
		return mapSessionError(err, id)
	}
	if err := sess.Commit(); err != nil {
		return err
	}

	s.logger.Info("remove employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
	)
	return nil
}

// UpdateEmployee is a full replace: every field but ID is overwritten with
// the input, including zero values.
func (s *service) UpdateEmployee(ctx context.Context, empl Employee) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int("employee_id", empl.ID),
	)

	sess, err := s.sessions.NewSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	existing, err := sess.FindByID(empl.ID)
	if err != nil {
		return mapSessionError(err, empl.ID)
	}

	existing.replaceFields(empl)

	if err := sess.Update(existing); err != nil {
		return mapSessionError(err, empl.ID)
	}
	if err := sess.Commit(); err != nil {
		return err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", empl.ID),
	)
	return nil
}
