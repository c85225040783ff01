package oracle

import (
	"context"
	"fmt"
	"time"

	"anchor/core"
	"anchor/pkg/anchor"
	"anchor/pkg/resthttp"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
)

// Freshness the window after which an observation no longer prices
// operations. Matches the poll cadence of the price worker with headroom.
const Freshness = 15 * time.Minute

const cacheTTL = 30 * time.Second

// Config oracle service config
type Config struct {
	Endpoint string
}

type oracleService struct {
	config   Config
	registry *core.AssetRegistry
	prices   core.IPriceStore
	cache    gcache.Cache
}

// New new oracle price service
func New(cfg Config, registry *core.AssetRegistry, prices core.IPriceStore) core.IOracleService {
	return &oracleService{
		config:   cfg,
		registry: registry,
		prices:   prices,
		cache:    gcache.New(64).LRU().Build(),
	}
}

func (s *oracleService) GetPrice(ctx context.Context, assetID string) (*core.PriceData, error) {
	if _, ok := s.registry.Find(assetID); !ok {
		return nil, core.ErrOracleUnavailable
	}

	if cached, err := s.cache.Get(assetID); err == nil {
		if data, ok := cached.(*core.PriceData); ok {
			return checkFreshness(data)
		}
	}

	price, found, err := s.prices.Find(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if !found || !price.Price.IsPositive() {
		return nil, core.ErrOracleUnavailable
	}

	data := &core.PriceData{
		AssetID:    assetID,
		Price:      price.Price,
		ObservedAt: price.ObservedAt,
	}

	_ = s.cache.SetWithExpire(assetID, data, cacheTTL)

	return checkFreshness(data)
}

// staleness is re-checked on every read, cached entries included
func checkFreshness(data *core.PriceData) (*core.PriceData, error) {
	if time.Since(data.ObservedAt) > Freshness {
		return nil, core.ErrStalePrice
	}

	return data, nil
}

// PullPriceTicker fetches the raw feed ticker for an oracle id and
// normalizes the mantissa/exponent pair to the unit-of-account precision.
func (s *oracleService) PullPriceTicker(ctx context.Context, oracleID string, t time.Time) (*core.PriceTicker, error) {
	url := fmt.Sprintf("%s/api/tickers/%s?ts=%d", s.config.Endpoint, oracleID, t.UTC().Unix())
	logger.FromContext(ctx).Debugln("pull price:", url)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return nil, err
	}

	ticker.Price = ticker.Price.Shift(-ticker.Exponent).Truncate(anchor.ValuePrecision)
	ticker.Exponent = 0

	return &ticker, nil
}
