package persistence

import (
	directory "github.com/orgkit/orgconsole/modules/directory/domain"
	"github.com/orgkit/orgconsole/modules/directory/infrastructure/persistence/models"
)

func toDomainLocation(m models.Location) directory.Location {
	return directory.Location{
		ID:   m.ID,
		Name: m.Name,
	}
}

func toDomainDepartment(m models.Department) directory.Department {
	return directory.Department{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

func toDomainRole(m models.Role) directory.Role {
	return directory.Role{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		DepartmentID: m.DepartmentID,
		Active:       m.IsActive,
	}
}

func toDomainProfile(m models.Profile) directory.Profile {
	return directory.Profile{
		ID:       m.ID,
		FullName: m.FullName,
		Username: m.Username,
		Email:    m.Email,
	}
}
