package pricing

import "github.com/shopspring/decimal"

// Summary holds the cost figures derived from a plan.
type Summary struct {
	NeededModules   int
	PaidModules     int
	TotalCost       int             // list price of the whole demand
	CoveredCost     int             // list price of the funded modules
	RemainingCost   int             // TotalCost - CoveredCost
	AnticipatedCost int             // RemainingCost minus the free modules' list price
	Coverage        decimal.Decimal // CoveredCost / TotalCost in percent, 2 places
}

var hundred = decimal.NewFromInt(100)

// Summarize derives the report figures from in and p.
func Summarize(cat Catalog, in Input, p Plan) Summary {
	s := Summary{
		NeededModules: in.Demand.Sum(),
		PaidModules:   p.Funded.Sum(),
		TotalCost:     cat.PriceOf(in.Demand),
		CoveredCost:   cat.PriceOf(p.Funded),
		Coverage:      decimal.Zero,
	}
	s.RemainingCost = s.TotalCost - s.CoveredCost
	s.AnticipatedCost = s.RemainingCost - cat.PriceOf(p.Residual.Free)
	if s.TotalCost > 0 {
		s.Coverage = decimal.NewFromInt(int64(s.CoveredCost)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(s.TotalCost))).
			Round(2)
	}
	return s
}
