package pricing

import (
	"strconv"
	"strings"
)

const pathSep = " => "

// RenderPath compresses runs of equal tiers into "<n>x <label>" tokens joined by
// " => ". An empty path renders as "".
func RenderPath(path []Tier) string {
	var sb strings.Builder
	for i := 0; i < len(path); {
		j := i
		for j < len(path) && path[j] == path[i] {
			j++
		}
		if sb.Len() > 0 {
			sb.WriteString(pathSep)
		}
		sb.WriteString(strconv.Itoa(j - i))
		sb.WriteString("x ")
		sb.WriteString(path[i].Label())
		i = j
	}
	return sb.String()
}
