package types

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// AccountResponse account response
//
// swagger:model accountResponse
type AccountResponse struct {

	// Connected address, empty when disconnected
	Address string `json:"address,omitempty"`

	// Whether a wallet is connected
	// Required: true
	IsConnected *bool `json:"isConnected"`
}

// Validate validates this account response
func (m *AccountResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("isConnected", "body", m.IsConnected); err != nil {
		return err
	}

	return nil
}
