package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/capitaldao/veto-cli/internal/domain"
)

// confirm waits for the transaction to be mined and rejects reverted ones
func confirm(ctx context.Context, signer Signer, hash common.Hash) (*types.Receipt, error) {
	receipt, err := signer.WaitForReceipt(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", hash.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionReverted, hash.Hex())
	}
	return receipt, nil
}
