package token

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// mhtABI is the subset of the MHT (ERC-20) token ABI the app calls.
//
//	balanceOf(address) -> 0x70a08231
//	transfer(address,uint256) -> 0xa9059cbb
const mhtABI = `[
	{
		"type": "function",
		"name": "balanceOf",
		"stateMutability": "view",
		"inputs": [{"name": "account", "type": "address"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "transfer",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "to", "type": "address"}, {"name": "value", "type": "uint256"}],
		"outputs": [{"name": "", "type": "bool"}]
	}
]`

const (
	methodBalanceOf = "balanceOf"
	methodTransfer  = "transfer"
)

func parseABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(mhtABI))
}
