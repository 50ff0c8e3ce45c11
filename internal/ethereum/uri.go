package ethereum

import (
	"fmt"
	"math/big"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
)

const donateFunction = "donate"

// PaymentURI builds an EIP-681 uri that calls donate(message) on target with
// value attached. An empty message is still sent as the function argument.
func PaymentURI(target common.Address, chainID *big.Int, message string, value *big.Int) string {
	uri := fmt.Sprintf("ethereum:%s", target.Hex())
	if chainID != nil && chainID.Sign() > 0 {
		uri += "@" + chainID.String()
	}
	uri += "/" + donateFunction + "?string=" + url.QueryEscape(message)
	if value != nil && value.Sign() > 0 {
		uri += "&value=" + value.String()
	}
	return uri
}
