package chain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// dropTokenABI is the minimal ERC-721 surface the minter needs.
const dropTokenABI = `[
    {
        "inputs": [{"internalType": "address", "name": "to", "type": "address"}],
        "name": "safeMint",
        "outputs": [],
        "stateMutability": "nonpayable",
        "type": "function"
    },
    {
        "inputs": [{"internalType": "address", "name": "owner", "type": "address"}],
        "name": "balanceOf",
        "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
        "stateMutability": "view",
        "type": "function"
    }
]`

// DropToken packs and unpacks calls against the drop contract ABI.
type DropToken struct {
	abi abi.ABI
}

// NewDropToken parses the embedded ABI.
func NewDropToken() (*DropToken, error) {
	parsed, err := abi.JSON(strings.NewReader(dropTokenABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse drop token ABI: %w", err)
	}
	return &DropToken{abi: parsed}, nil
}

// PackSafeMint encodes safeMint(to).
func (t *DropToken) PackSafeMint(to common.Address) ([]byte, error) {
	data, err := t.abi.Pack("safeMint", to)
	if err != nil {
		return nil, fmt.Errorf("failed to encode safeMint call: %w", err)
	}
	return data, nil
}

// PackBalanceOf encodes balanceOf(owner).
func (t *DropToken) PackBalanceOf(owner common.Address) ([]byte, error) {
	data, err := t.abi.Pack("balanceOf", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to encode balanceOf call: %w", err)
	}
	return data, nil
}

// UnpackBalanceOf decodes the balanceOf return value.
func (t *DropToken) UnpackBalanceOf(output []byte) (*big.Int, error) {
	values, err := t.abi.Unpack("balanceOf", output)
	if err != nil {
		return nil, fmt.Errorf("failed to decode balanceOf result: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected balanceOf result arity: %d", len(values))
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf result type %T", values[0])
	}
	return balance, nil
}
