package app

import (
	"context"
	"encoding/json"
	"strconv"

	"go-northwind/internal/employee"
	"go-northwind/internal/shared/apperror"

	"go.uber.org/zap"
)

const usage = "usage: employees list | get <id> | add <json> | update <id> <json> | remove <id>"

// Run executes one command against the employee service and logs the result.
func Run(ctx context.Context, svc employee.Service, args []string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("app.runner")

	if len(args) == 0 {
		return apperror.New(apperror.CodeInvalidInput, usage)
	}

	switch args[0] {
	case "list":
		empls, err := svc.ListEmployees(ctx)
		if err != nil {
			return err
		}
		for _, e := range empls {
			logger.Info("employee", employeeFields(e)...)
		}
		logger.Info("list employees done", zap.Int("count", len(empls)))
		return nil

	case "get":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		e, err := svc.GetEmployee(ctx, id)
		if err != nil {
			return err
		}
		logger.Info("employee", employeeFields(e)...)
		return nil

	case "add":
		if len(args) < 2 {
			return apperror.New(apperror.CodeInvalidInput, "add requires an employee JSON object")
		}
		e, err := decodeEmployee(args[1])
		if err != nil {
			return err
		}
		id, err := svc.AddEmployee(ctx, e)
		if err != nil {
			return err
		}
		logger.Info("employee added", zap.Int("employee_id", id))
		return nil

	case "update":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if len(args) < 3 {
			return apperror.New(apperror.CodeInvalidInput, "update requires an employee JSON object")
		}
		e, err := decodeEmployee(args[2])
		if err != nil {
			return err
		}
		e.ID = id
		if err := svc.UpdateEmployee(ctx, e); err != nil {
			return err
		}
		logger.Info("employee updated", zap.Int("employee_id", id))
		return nil

	case "remove":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err := svc.RemoveEmployee(ctx, id); err != nil {
			return err
		}
		logger.Info("employee removed", zap.Int("employee_id", id))
		return nil
	}

	return apperror.Newf(apperror.CodeInvalidInput, "unknown command %q; %s", args[0], usage)
}

func parseID(args []string) (int, error) {
	if len(args) < 2 {
		return 0, apperror.Newf(apperror.CodeInvalidInput, "%s requires an employee id", args[0])
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid employee ID")
	}
	return id, nil
}

// decodeEmployee reads an employee from a JSON object keyed by field name,
// e.g. {"FirstName":"Nancy","LastName":"Davolio","ReportsTo":2}.
func decodeEmployee(raw string) (employee.Employee, error) {
	var e employee.Employee
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return employee.Employee{}, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid employee JSON")
	}
	return e, nil
}

func employeeFields(e employee.Employee) []zap.Field {
	fields := []zap.Field{
		zap.Int("employee_id", e.ID),
		zap.String("first_name", e.FirstName),
		zap.String("last_name", e.LastName),
		zap.String("title", e.Title),
	}
	if e.ReportsTo != nil {
		fields = append(fields, zap.Int("reports_to", *e.ReportsTo))
	}
	if e.HireDate != nil {
		fields = append(fields, zap.Time("hire_date", *e.HireDate))
	}
	return fields
}
