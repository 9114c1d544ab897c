package app

import (
	"go-northwind/internal/config"
	"go-northwind/internal/employee"
	"go-northwind/internal/shared/connection"

	"go.uber.org/zap"
)

// App holds the wired employee service and the handle needed to release it.
type App struct {
	Employees employee.Service
	close     func() error
}

func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	// 2. Register modules
	sessions := employee.NewGormSessionFactory(gormDB, logger)
	employeeService, err := employee.NewService(sessions, logger)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &App{
		Employees: employeeService,
		close:     sqlDB.Close,
	}, nil
}
