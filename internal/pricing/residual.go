package pricing

// Residual is the greedy classification of unfunded modules.
type Residual struct {
	ToBuy   Counts // bought outside the optimized balance
	Free    Counts // covered by recycled cashback
	Balance int    // cubes left after the simulation
}

// AllocateResidual walks tiers from highest to lowest. A unit is free when the
// balance covers its full price; the net cost is then deducted, so the cashback
// re-enters the pool. Otherwise the unit is bought elsewhere and only its cashback
// is credited to the balance.
//
// Every unit lands in exactly one of ToBuy or Free.
func AllocateResidual(cat Catalog, remaining Counts, balance int) Residual {
	var r Residual
	for t := NumTiers - 1; t >= 0; t-- {
		c := cat[t]
		for n := 0; n < remaining[t]; n++ {
			if balance >= c.Price {
				balance -= c.NetCost()
				r.Free[t]++
			} else {
				balance += c.Cashback
				r.ToBuy[t]++
			}
		}
	}
	r.Balance = balance
	return r
}
