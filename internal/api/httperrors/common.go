package httperrors

import (
	"net/http"

	"github/chapool/mht-transfers/internal/types"
)

var (
	ErrConflictTransferInProgress = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeTRANSFERINPROGRESS, "A transfer is already in progress.")
	ErrBadGatewayTransferFailed   = NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeTRANSFERFAILED, "Failed to transfer tokens")
	ErrBadGatewayBalance          = NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeBALANCEUNAVAILABLE, "Failed to read token balance")
)
