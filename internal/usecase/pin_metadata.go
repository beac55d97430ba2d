package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/capitaldao/veto-cli/internal/domain"
)

// PinMetadata is the use case for storing a metadata document on IPFS
type PinMetadata struct {
	ipfs IPFS
	log  *slog.Logger
}

// NewPinMetadata creates a new PinMetadata use case
func NewPinMetadata(ipfs IPFS, log *slog.Logger) *PinMetadata {
	return &PinMetadata{
		ipfs: ipfs,
		log:  log.With("component", "PinMetadata"),
	}
}

// Run serializes metadata, adds and pins it, and returns its ipfs:// URI
func (uc *PinMetadata) Run(ctx context.Context, metadata any) (string, error) {
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to serialize metadata: %w", err)
	}
	if uc.ipfs == nil {
		return "", fmt.Errorf("%w: no IPFS endpoint configured", domain.ErrIpfsPinFailed)
	}

	cid, err := uc.ipfs.Add(ctx, data)
	if err != nil {
		uc.log.Debug("ipfs add failed", "err", err)
		return "", fmt.Errorf("%w: %w", domain.ErrIpfsPinFailed, err)
	}
	if err := uc.ipfs.Pin(ctx, cid); err != nil {
		uc.log.Debug("ipfs pin failed", "cid", cid, "err", err)
		return "", fmt.Errorf("%w: %w", domain.ErrIpfsPinFailed, err)
	}
	return domain.IpfsURI(cid), nil
}
