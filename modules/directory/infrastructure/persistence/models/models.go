package models

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	CreatedAt time.Time
}

type Department struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Name        string
	Description string
	ManagerID   *uuid.UUID
	CreatedAt   time.Time
}

type Role struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Name         string
	Description  string
	DepartmentID *uuid.UUID
	IsActive     bool
	CreatedAt    time.Time
}

type Profile struct {
	ID       uuid.UUID
	FullName string
	Username string
	Email    string
}

type User struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Email       string
	FirstName   string
	LastName    string
	FullName    string
	Username    string
	Phone       string
	EmployeeID  string
	AccessLevel string
	ManagerID   *uuid.UUID
	CreatedAt   time.Time
}
