package pricing

// Input is one analysis request. Budget and every demand count must be
// non-negative; callers validate before calling Analyze.
type Input struct {
	Budget int
	Demand Counts
}

// Plan is the outcome of one analysis.
type Plan struct {
	Funded          Counts // modules paid for within the budget
	Path            []Tier // funded tiers in ascending processing order
	Remaining       Counts // Demand - Funded
	RemainingBudget int    // Budget - net cost of Funded
	Residual        Residual
}

// PathString renders Path, e.g. "11x Tier 0 => 1x Tier I".
func (p Plan) PathString() string { return RenderPath(p.Path) }

// Analyze runs expand → knapsack → reconstruct → residual for one input.
// It keeps no state between calls.
func Analyze(cat Catalog, in Input) Plan {
	items := Expand(cat, in.Demand)
	tbl := BuildTable(items, in.Budget)
	funded, path := Reconstruct(tbl, items, in.Budget)

	p := Plan{
		Funded:          funded,
		Path:            path,
		Remaining:       in.Demand.Sub(funded),
		RemainingBudget: in.Budget - cat.NetCostOf(funded),
	}
	p.Residual = AllocateResidual(cat, p.Remaining, p.RemainingBudget)
	return p
}

// TableCells is the number of ints BuildTable allocates for in.
func TableCells(in Input) int {
	return (in.Demand.Sum() + 1) * (in.Budget + 1)
}
