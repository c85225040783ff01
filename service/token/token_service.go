package token

import (
	"context"
	"fmt"

	"anchor/core"
	"anchor/pkg/id"
	"anchor/pkg/resthttp"

	"github.com/shopspring/decimal"
)

// Config token ledger client config
type Config struct {
	Endpoint string
	// VaultID the engine's custody account on the token ledger
	VaultID string
}

type transferRequest struct {
	AssetID string          `json:"asset_id"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Amount  decimal.Decimal `json:"amount"`
	TraceID string          `json:"trace_id"`
}

type transferResponse struct {
	Success bool `json:"success"`
}

type tokenService struct {
	config Config
}

// New new collateral token service
func New(cfg Config) core.ITokenService {
	return &tokenService{config: cfg}
}

func (s *tokenService) TransferFrom(ctx context.Context, assetID, from string, quantity decimal.Decimal) error {
	return s.transfer(ctx, assetID, from, s.config.VaultID, quantity)
}

func (s *tokenService) Transfer(ctx context.Context, assetID, to string, quantity decimal.Decimal) error {
	return s.transfer(ctx, assetID, s.config.VaultID, to, quantity)
}

// a boolean-false reply and a transport failure both surface as
// ErrTransferFailed; the engine rolls the operation back either way
func (s *tokenService) transfer(ctx context.Context, assetID, from, to string, quantity decimal.Decimal) error {
	req := transferRequest{
		AssetID: assetID,
		From:    from,
		To:      to,
		Amount:  quantity,
		TraceID: id.GenTraceID(),
	}

	url := fmt.Sprintf("%s/api/transfers", s.config.Endpoint)
	resp, err := resthttp.WithRequestID(ctx, req.TraceID).SetBody(req).Post(url)
	if err != nil {
		return core.ErrTransferFailed
	}

	var result transferResponse
	if err := resthttp.ParseResponse(resp, &result); err != nil || !result.Success {
		return core.ErrTransferFailed
	}

	return nil
}
