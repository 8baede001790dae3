package usecase

import (
	"context"
	"math"

	"commercial_agent/internal/domain/entities"
	"commercial_agent/internal/usecase/interfaces"
)

// FunnelKPIs is the read-only sales funnel aggregate. Every field defaults to
// zero on an empty store; no denominator ever divides by zero.
type FunnelKPIs struct {
	ConversionRateQuoteToWin float64 `json:"conversion_rate_quote_to_win"`
	DealsWon                 int     `json:"deals_won"`
	DealsLost                int     `json:"deals_lost"`
	AverageDealSize          float64 `json:"average_deal_size"`
	TotalQuotesSent          int     `json:"total_quotes_sent"`
	NewMQLs                  int     `json:"new_mqls"`
}

type IFunnelUseCase interface {
	GetKPIs(ctx context.Context) (FunnelKPIs, error)
}

// FunnelUseCase aggregates over the quote and lead stores. It only reads;
// the saga use case stays the sole writer of quote state.

type FunnelUseCase struct {
	quotes interfaces.IQuoteRepository
	leads  interfaces.ILeadRepository
}

var _ IFunnelUseCase = (*FunnelUseCase)(nil)

func NewFunnelUseCase(quotes interfaces.IQuoteRepository, leads interfaces.ILeadRepository) *FunnelUseCase {
	return &FunnelUseCase{quotes: quotes, leads: leads}
}

func (u *FunnelUseCase) GetKPIs(ctx context.Context) (FunnelKPIs, error) {
	quotes, err := u.quotes.ListAll(ctx)
	if err != nil {
		return FunnelKPIs{}, err
	}
	leads, err := u.leads.ListAll(ctx)
	if err != nil {
		return FunnelKPIs{}, err
	}

	var kpis FunnelKPIs
	totalWonValue := 0.0
	for _, q := range quotes {
		switch q.Status {
		case entities.QuoteStatusWon:
			kpis.DealsWon++
			if q.FinalPrice != nil {
				totalWonValue += *q.FinalPrice
			}
		case entities.QuoteStatusLost:
			kpis.DealsLost++
		}
		switch q.Status {
		case entities.QuoteStatusSent, entities.QuoteStatusWon, entities.QuoteStatusLost:
			kpis.TotalQuotesSent++
		}
	}

	if kpis.TotalQuotesSent > 0 {
		kpis.ConversionRateQuoteToWin = round2(float64(kpis.DealsWon) / float64(kpis.TotalQuotesSent))
	}
	if kpis.DealsWon > 0 {
		kpis.AverageDealSize = round2(totalWonValue / float64(kpis.DealsWon))
	}

	for _, l := range leads {
		if l.Status == entities.LeadStatusMQL {
			kpis.NewMQLs++
		}
	}
	return kpis, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
