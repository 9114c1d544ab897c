package employee

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_session.go -destination=mock/employee_session_mock.go -package=mock

// SessionFactory opens a new unit of work over the Employees table.
type SessionFactory interface {
	NewSession(ctx context.Context) (Session, error)
}

// Session is a short-lived unit of work. Writes are not durable until Commit;
// Close releases the session and discards anything uncommitted. Close must be
// safe to call after Commit and more than once. Update and Delete return
// gorm.ErrRecordNotFound when the row no longer exists.
type Session interface {
	FindAll() ([]Employee, error)
	FindByID(id int) (*Employee, error)
	Insert(empl *Employee) error
	Update(empl *Employee) error
	Delete(empl *Employee) error
	Commit() error
	Close() error
}

type gormSessionFactory struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormSessionFactory(db *gorm.DB, logger ...*zap.Logger) SessionFactory {
	l := zap.L().Named("employee.session")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.session")
	}
	return &gormSessionFactory{db: db, logger: l}
}

func (f *gormSessionFactory) NewSession(ctx context.Context) (Session, error) {
	id := uuid.New()
	f.logger.Debug("session opened", zap.String("session_id", id.String()))
	return &gormSession{
		id:     id,
		db:     f.db.WithContext(ctx),
		logger: f.logger,
	}, nil
}

// gormSession begins its transaction on the first write only, so read-only
// sessions never touch BEGIN/ROLLBACK.
type gormSession struct {
	id        uuid.UUID
	db        *gorm.DB
	tx        *gorm.DB
	committed bool
	closed    bool
	logger    *zap.Logger
}

func (s *gormSession) conn() *gorm.DB {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *gormSession) begin() (*gorm.DB, error) {
	if s.tx != nil {
		return s.tx, nil
	}
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	s.tx = tx
	return tx, nil
}

func (s *gormSession) FindAll() ([]Employee, error) {
	var empls []Employee
	err := s.conn().Find(&empls).Error
	return empls, err
}

func (s *gormSession) FindByID(id int) (*Employee, error) {
	var empl Employee
	if err := s.conn().First(&empl, id).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

func (s *gormSession) Insert(empl *Employee) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}
	return tx.Create(empl).Error
}

func (s *gormSession) Update(empl *Employee) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}
	// not Save: Save upserts when no row matched
	res := tx.Model(empl).Select("*").Updates(empl)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormSession) Delete(empl *Employee) error {
	tx, err := s.begin()
	if err != nil {
		return err
	}
	res := tx.Delete(empl)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormSession) Commit() error {
	if s.tx == nil || s.committed {
		return nil
	}
	if err := s.tx.Commit().Error; err != nil {
		return err
	}
	s.committed = true
	return nil
}

func (s *gormSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	defer s.logger.Debug("session closed", zap.String("session_id", s.id.String()))

	if s.tx == nil || s.committed {
		return nil
	}
	return s.tx.Rollback().Error
}
