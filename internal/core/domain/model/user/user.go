// Package user holds the user read model the workflow core needs for
// notification fan-out and approver checks. Authentication and session
// handling live outside this system.
package user

import (
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// Role is the business role a user holds.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSales      Role = "SALES"
	RolePricing    Role = "PRICING"
	RoleCSE        Role = "CSE"
	RoleSBUHead    Role = "SBU_HEAD"
	RoleManagement Role = "MANAGEMENT"
)

// Status is the account status; only ACTIVE users receive notifications.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// User is a read-only projection of an application user.
type User struct {
	id     kernel.UUID
	name   string
	email  string
	phone  string
	role   Role
	status Status
	sbuID  *kernel.UUID
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, name, email, phone string, role Role, status Status, sbuID *kernel.UUID) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if role == "" {
		return nil, errs.NewValueIsRequiredError("role")
	}

	return &User{
		id:     id,
		name:   name,
		email:  email,
		phone:  phone,
		role:   role,
		status: status,
		sbuID:  sbuID,
	}, nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address; may be empty.
func (u *User) Email() string { return u.email }

// Phone returns the user's phone number; may be empty.
func (u *User) Phone() string { return u.phone }

// Role returns the user's business role.
func (u *User) Role() Role { return u.role }

// Status returns the account status.
func (u *User) Status() Status { return u.status }

// SBU returns the user's strategic business unit, nil if unassigned.
func (u *User) SBU() *kernel.UUID { return u.sbuID }

// IsActive reports whether the user should receive notifications.
func (u *User) IsActive() bool { return u.status == StatusActive }
