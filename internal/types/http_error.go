package types

// PublicHTTPErrorType public Http error type
//
// swagger:model publicHttpErrorType
type PublicHTTPErrorType string

func NewPublicHTTPErrorType(value PublicHTTPErrorType) *PublicHTTPErrorType {
	return &value
}

// Pointer returns a pointer to a freshly-allocated PublicHTTPErrorType.
func (m PublicHTTPErrorType) Pointer() *PublicHTTPErrorType {
	return &m
}

const (

	// PublicHTTPErrorTypeGeneric captures enum value "generic"
	PublicHTTPErrorTypeGeneric PublicHTTPErrorType = "generic"

	// PublicHTTPErrorTypeWALLETNOTCONNECTED captures enum value "WALLET_NOT_CONNECTED"
	PublicHTTPErrorTypeWALLETNOTCONNECTED PublicHTTPErrorType = "WALLET_NOT_CONNECTED"

	// PublicHTTPErrorTypeNOKEYCONFIGURED captures enum value "NO_KEY_CONFIGURED"
	PublicHTTPErrorTypeNOKEYCONFIGURED PublicHTTPErrorType = "NO_KEY_CONFIGURED"

	// PublicHTTPErrorTypeBALANCEUNAVAILABLE captures enum value "BALANCE_UNAVAILABLE"
	PublicHTTPErrorTypeBALANCEUNAVAILABLE PublicHTTPErrorType = "BALANCE_UNAVAILABLE"

	// PublicHTTPErrorTypeTRANSFERFAILED captures enum value "TRANSFER_FAILED"
	PublicHTTPErrorTypeTRANSFERFAILED PublicHTTPErrorType = "TRANSFER_FAILED"

	// PublicHTTPErrorTypeTRANSFERINPROGRESS captures enum value "TRANSFER_IN_PROGRESS"
	PublicHTTPErrorTypeTRANSFERINPROGRESS PublicHTTPErrorType = "TRANSFER_IN_PROGRESS"
)

// HTTPValidationErrorDetail HTTP validation error detail
//
// swagger:model httpValidationErrorDetail
type HTTPValidationErrorDetail struct {

	// Error describing field validation failure
	// Required: true
	Error *string `json:"error"`

	// Indicates how the invalid field was provided
	// Required: true
	In *string `json:"in"`

	// Key of field failing validation
	// Required: true
	Key *string `json:"key"`
}
