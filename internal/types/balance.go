package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// BalanceResponse balance response
//
// swagger:model balanceResponse
type BalanceResponse struct {

	// Account address the balance belongs to
	// Required: true
	Address *string `json:"address"`

	// Balance in base units as decimal string
	// Required: true
	Balance *string `json:"balance"`

	// Chain ID the token contract lives on
	// Required: true
	ChainID *int64 `json:"chainId"`

	// Token contract address
	// Required: true
	Contract *string `json:"contract"`

	// Token symbol
	Symbol string `json:"symbol,omitempty"`
}

// Validate validates this balance response
func (m *BalanceResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("balance", "body", m.Balance); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("chainId", "body", m.ChainID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("contract", "body", m.Contract); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
