package employee

import "time"

// Employee maps one row of the Northwind "Employees" table.
type Employee struct {
	ID              int        `gorm:"column:EmployeeID;primaryKey;autoIncrement"`
	LastName        string     `gorm:"column:LastName;size:20;not null"`
	FirstName       string     `gorm:"column:FirstName;size:10;not null"`
	Title           string     `gorm:"column:Title;size:30"`
	TitleOfCourtesy string     `gorm:"column:TitleOfCourtesy;size:25"`
	BirthDate       *time.Time `gorm:"column:BirthDate"`
	HireDate        *time.Time `gorm:"column:HireDate"`
	Address         string     `gorm:"column:Address;size:60"`
	City            string     `gorm:"column:City;size:15"`
	Region          string     `gorm:"column:Region;size:15"`
	PostalCode      string     `gorm:"column:PostalCode;size:10"`
	Country         string     `gorm:"column:Country;size:15"`
	HomePhone       string     `gorm:"column:HomePhone;size:24"`
	Extension       string     `gorm:"column:Extension;size:4"`
	Notes           string     `gorm:"column:Notes"`
	ReportsTo       *int       `gorm:"column:ReportsTo"`
	PhotoPath       string     `gorm:"column:PhotoPath;size:255"`
}

func (Employee) TableName() string {
	return "Employees"
}

// replaceFields overwrites every field of e except ID with the values in src.
func (e *Employee) replaceFields(src Employee) {
	id := e.ID
	*e = src
	e.ID = id
}
