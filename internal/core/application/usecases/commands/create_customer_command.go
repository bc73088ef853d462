package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCompanyNameIsRequired = errors.New("company name is required")
)

// CreateCustomerCommand represents registering a customer pending approval.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	companyName   string
	contactPerson string
	email         string
	phone         string
	createdByID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	companyName, contactPerson, email, phone string,
	createdByID kernel.UUID,
) (CreateCustomerCommand, error) {
	if err := errors.Join(customerID.Validate(), createdByID.Validate()); err != nil {
		return CreateCustomerCommand{}, err
	}
	if companyName == "" {
		return CreateCustomerCommand{}, ErrCompanyNameIsRequired
	}

	return CreateCustomerCommand{
		customerID:    customerID,
		companyName:   companyName,
		contactPerson: contactPerson,
		email:         email,
		phone:         phone,
		createdByID:   createdByID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// CompanyName returns the company name.
func (c CreateCustomerCommand) CompanyName() string { return c.companyName }

// ContactPerson returns the contact person.
func (c CreateCustomerCommand) ContactPerson() string { return c.contactPerson }

// Email returns the contact email.
func (c CreateCustomerCommand) Email() string { return c.email }

// Phone returns the contact phone.
func (c CreateCustomerCommand) Phone() string { return c.phone }

// CreatedBy returns who registers the customer.
func (c CreateCustomerCommand) CreatedBy() kernel.UUID { return c.createdByID }
