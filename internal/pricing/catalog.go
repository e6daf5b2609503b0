package pricing

// Tier is the priority rank of an upgrade module, 0 (lowest) .. 4 (highest).
type Tier int

const (
	Tier0 Tier = iota
	TierI
	TierII
	TierIII
	TierIV

	NumTiers = 5
)

var tierLabels = [NumTiers]string{"Tier 0", "Tier I", "Tier II", "Tier III", "Tier IV"}

// Priority is the value a module of this tier adds to the score.
// Priorities are pairwise distinct.
func (t Tier) Priority() int { return int(t) + 1 }

// Label returns the display name, e.g. "Tier III".
func (t Tier) Label() string {
	if t < 0 || int(t) >= NumTiers {
		return "Tier ?"
	}
	return tierLabels[t]
}

func (t Tier) String() string { return t.Label() }

// TierCost is the list price of one module and the cubes refunded once it is acquired.
type TierCost struct {
	Price    int // cubes
	Cashback int // cubes refunded, 0 <= Cashback < Price
}

// NetCost is what one module effectively takes out of the balance.
func (c TierCost) NetCost() int { return c.Price - c.Cashback }

// Catalog holds the cost of every tier, indexed by Tier.
type Catalog [NumTiers]TierCost

// DefaultCatalog returns the fixed in-game price table.
func DefaultCatalog() Catalog {
	return Catalog{
		{Price: 10, Cashback: 10},
		{Price: 50, Cashback: 10},
		{Price: 100, Cashback: 20},
		{Price: 500, Cashback: 100},
		{Price: 1000, Cashback: 200},
	}
}

// Counts is a tier-indexed vector of module counts (demand, funded, to-buy, free).
type Counts [NumTiers]int

// Sum returns the total number of modules across all tiers.
func (c Counts) Sum() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Sub returns c - o per tier.
func (c Counts) Sub(o Counts) Counts {
	var out Counts
	for t := range c {
		out[t] = c[t] - o[t]
	}
	return out
}

// NetCostOf returns the balance consumed by acquiring every module in c.
func (cat Catalog) NetCostOf(c Counts) int {
	total := 0
	for t, n := range c {
		total += n * cat[t].NetCost()
	}
	return total
}

// PriceOf returns the list price of every module in c.
func (cat Catalog) PriceOf(c Counts) int {
	total := 0
	for t, n := range c {
		total += n * cat[t].Price
	}
	return total
}

// Score is the tier-weighted priority of c.
func Score(c Counts) int {
	s := 0
	for t, n := range c {
		s += n * Tier(t).Priority()
	}
	return s
}
