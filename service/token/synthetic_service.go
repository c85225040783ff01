package token

import (
	"context"
	"fmt"

	"anchor/core"
	"anchor/pkg/id"
	"anchor/pkg/resthttp"

	"github.com/shopspring/decimal"
)

// SyntheticConfig synthetic asset client config
type SyntheticConfig struct {
	Endpoint string
	// AssetID the AUSD asset on the token ledger
	AssetID string
}

type syntheticService struct {
	config SyntheticConfig
}

// NewSynthetic new AUSD mint/burn service
func NewSynthetic(cfg SyntheticConfig) core.ISyntheticService {
	return &syntheticService{config: cfg}
}

type issueRequest struct {
	AssetID string          `json:"asset_id"`
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	TraceID string          `json:"trace_id"`
}

func (s *syntheticService) Mint(ctx context.Context, to string, amount decimal.Decimal) error {
	if err := s.post(ctx, "mint", to, amount); err != nil {
		return core.ErrMintFailed
	}

	return nil
}

func (s *syntheticService) Burn(ctx context.Context, from string, amount decimal.Decimal) error {
	if err := s.post(ctx, "burn", from, amount); err != nil {
		return core.ErrTransferFailed
	}

	return nil
}

func (s *syntheticService) post(ctx context.Context, action, account string, amount decimal.Decimal) error {
	req := issueRequest{
		AssetID: s.config.AssetID,
		Account: account,
		Amount:  amount,
		TraceID: id.GenTraceID(),
	}

	url := fmt.Sprintf("%s/api/%s", s.config.Endpoint, action)
	resp, err := resthttp.WithRequestID(ctx, req.TraceID).SetBody(req).Post(url)
	if err != nil {
		return err
	}

	var result transferResponse
	if err := resthttp.ParseResponse(resp, &result); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("%s rejected", action)
	}

	return nil
}
