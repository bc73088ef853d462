package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents routine edits to a customer's details.
// Approved customers refuse the update at the aggregate level.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	companyName   string
	contactPerson string
	email         string
	phone         string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to edit customer details.
func NewUpdateCustomerCommand(customerID kernel.UUID, companyName, contactPerson, email, phone string) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}
	if companyName == "" {
		return UpdateCustomerCommand{}, ErrCompanyNameIsRequired
	}

	return UpdateCustomerCommand{
		customerID:    customerID,
		companyName:   companyName,
		contactPerson: contactPerson,
		email:         email,
		phone:         phone,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer being edited.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// CompanyName returns the new company name.
func (c UpdateCustomerCommand) CompanyName() string { return c.companyName }

// ContactPerson returns the new contact person.
func (c UpdateCustomerCommand) ContactPerson() string { return c.contactPerson }

// Email returns the new contact email.
func (c UpdateCustomerCommand) Email() string { return c.email }

// Phone returns the new contact phone.
func (c UpdateCustomerCommand) Phone() string { return c.phone }
