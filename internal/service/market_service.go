package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"ramp-gateway/internal/core/ports"
	"ramp-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var currencySymbol = regexp.MustCompile(`^[A-Z]{3}$`)

type marketService struct {
	fetcher ports.RateFetcher
	cache   ports.RateCache
	banks   ports.BankDirectory
	ttl     time.Duration
	log     zerolog.Logger
}

// NewMarketService creates the rate and bank lookup service. cache may be
// nil, in which case every call goes to the rate provider.
func NewMarketService(
	fetcher ports.RateFetcher,
	cache ports.RateCache,
	banks ports.BankDirectory,
	ttl time.Duration,
	log zerolog.Logger,
) ports.MarketService {
	return &marketService{
		fetcher: fetcher,
		cache:   cache,
		banks:   banks,
		ttl:     ttl,
		log:     log,
	}
}

// Rate returns how many units of symbol one USD buys.
func (s *marketService) Rate(ctx context.Context, symbol string) (decimal.Decimal, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if !currencySymbol.MatchString(symbol) {
		return decimal.Zero, apperror.Validation("symbol must be a three-letter currency code")
	}

	if s.cache != nil {
		rate, ok, err := s.cache.Get(ctx, symbol)
		if err != nil {
			s.log.Warn().Err(err).Str("symbol", symbol).Msg("rate cache read failed")
		} else if ok {
			return rate, nil
		}
	}

	rate, err := s.fetcher.Latest(ctx, symbol)
	if err != nil {
		s.log.Error().Err(err).Str("symbol", symbol).Msg("rate fetch failed")
		return decimal.Zero, apperror.ErrMarketDataUnavailable(err)
	}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.Set(ctx, symbol, rate, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("symbol", symbol).Msg("rate cache write failed")
		}
	}
	return rate, nil
}

func (s *marketService) Banks(ctx context.Context) ([]ports.Bank, error) {
	banks, err := s.banks.ListBanks(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("bank list fetch failed")
		return nil, apperror.ErrMarketDataUnavailable(err)
	}
	if banks == nil {
		banks = []ports.Bank{}
	}
	return banks, nil
}
