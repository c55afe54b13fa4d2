package httperrors

import (
	"net/http"

	"github/chapool/mht-transfers/internal/types"
)

var (
	ErrForbiddenNotConnected = NewHTTPError(http.StatusForbidden, types.PublicHTTPErrorTypeWALLETNOTCONNECTED, "Please connect your wallet.")
	ErrConflictNoKey         = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeNOKEYCONFIGURED, "No wallet key is configured.")
)
