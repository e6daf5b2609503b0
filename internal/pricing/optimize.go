package pricing

// Item is one indivisible module in the 0/1 formulation.
type Item struct {
	Tier   Tier
	Weight int // net cost in cubes
	Value  int // tier priority
}

// Expand turns the bounded demand into a flat 0/1 item list: for each tier in
// ascending order, demand[tier] identical items. The order decides tie-breaks
// during reconstruction.
func Expand(cat Catalog, demand Counts) []Item {
	items := make([]Item, 0, demand.Sum())
	for t := Tier0; t < NumTiers; t++ {
		it := Item{Tier: t, Weight: cat[t].NetCost(), Value: t.Priority()}
		for n := 0; n < demand[t]; n++ {
			items = append(items, it)
		}
	}
	return items
}

// Table is the knapsack DP grid: Table[i][w] is the best total priority using
// the first i items under capacity w.
type Table [][]int

// BuildTable fills the (len(items)+1) x (budget+1) table bottom up.
// Row 0 and column 0 stay 0, so nothing is taken with a zero budget even if its
// weight is 0.
func BuildTable(items []Item, budget int) Table {
	tbl := make(Table, len(items)+1)
	for i := range tbl {
		tbl[i] = make([]int, budget+1)
	}
	for i := 1; i <= len(items); i++ {
		it := items[i-1]
		prev, row := tbl[i-1], tbl[i]
		for w := 1; w <= budget; w++ {
			row[w] = prev[w]
			if it.Weight <= w {
				if v := it.Value + prev[w-it.Weight]; v > row[w] {
					row[w] = v
				}
			}
		}
	}
	return tbl
}

// Optimum is the best attainable score for the full item list and budget.
func (t Table) Optimum() int {
	last := t[len(t)-1]
	return last[len(last)-1]
}

// Reconstruct walks the table backwards from (len(items), budget) and returns
// the funded counts and the chosen tiers in ascending processing order.
// An item counts as taken only where it strictly improves on the row above.
func Reconstruct(tbl Table, items []Item, budget int) (Counts, []Tier) {
	var funded Counts
	var back []Tier
	w := budget
	for i := len(items); i > 0; i-- {
		if tbl[i][w] == tbl[i-1][w] {
			continue
		}
		it := items[i-1]
		funded[it.Tier]++
		back = append(back, it.Tier)
		w -= it.Weight
	}

	// reverse into chronological order
	path := make([]Tier, len(back))
	for i, t := range back {
		path[len(back)-1-i] = t
	}
	return funded, path
}
