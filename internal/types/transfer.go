package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PostTransferPayload post transfer payload
//
// swagger:model postTransferPayload
type PostTransferPayload struct {

	// Amount of tokens in base units (non-negative integer)
	// Example: 50
	// Required: true
	// Pattern: ^[0-9]+$
	Amount *string `json:"amount"`

	// Recipient address
	// Example: 0x1234567890abcdef1234567890abcdef12345678
	// Required: true
	ToAddress *string `json:"toAddress"`
}

// Validate validates this post transfer payload
func (m *PostTransferPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateAmount(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateToAddress(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostTransferPayload) validateAmount(formats strfmt.Registry) error {

	if err := validate.Required("amount", "body", m.Amount); err != nil {
		return err
	}

	if err := validate.Pattern("amount", "body", *m.Amount, `^[0-9]+$`); err != nil {
		return err
	}

	return nil
}

func (m *PostTransferPayload) validateToAddress(formats strfmt.Registry) error {

	if err := validate.Required("toAddress", "body", m.ToAddress); err != nil {
		return err
	}

	return nil
}

// MarshalBinary interface implementation
func (m *PostTransferPayload) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PostTransferPayload) UnmarshalBinary(b []byte) error {
	var res PostTransferPayload
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// TransferResponse transfer response
//
// swagger:model transferResponse
type TransferResponse struct {

	// Amount transferred in base units
	// Required: true
	Amount *string `json:"amount"`

	// Message shown to the user
	// Required: true
	Message *string `json:"message"`

	// Whether the transfer was submitted
	// Required: true
	Success *bool `json:"success"`

	// Recipient address as submitted
	// Required: true
	ToAddress *string `json:"toAddress"`
}

// Validate validates this transfer response
func (m *TransferResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("amount", "body", m.Amount); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("success", "body", m.Success); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("toAddress", "body", m.ToAddress); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
