package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/cube-saver/internal/planner"
	"github.com/xtding233/cube-saver/internal/pricing"
	"github.com/xtding233/cube-saver/internal/scenario"
)

func sampleReport(t *testing.T) planner.Report {
	t.Helper()
	r, err := planner.New(nil).Run(scenario.Sample())
	require.NoError(t, err)
	return r
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), Options{NoColor: true}))
	out := buf.String()

	for _, want := range []string{
		"Current cube balance:",
		" => 11x Tier 0 => 1x Tier I",
		"12/20 (19.75%)",
		"[0, 3, 5, 0, 0]",
		" -> Modules to pay for by tier-ranks:",
		"[0, 3, 4, 0, 0]",
		"[0, 0, 1, 0, 0]",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, rule, lines[0])
	assert.Equal(t, rule, lines[len(lines)-1])
}

func TestRenderThousands(t *testing.T) {
	r, err := planner.New(nil).Run(pricing.Input{Budget: 12500, Demand: pricing.Counts{0, 0, 0, 0, 20}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, Options{NoColor: true}))
	assert.Contains(t, buf.String(), "12,500")
	assert.Contains(t, buf.String(), "20,000")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderReportsWriteError(t *testing.T) {
	err := Render(failWriter{}, sampleReport(t), Options{NoColor: true})
	assert.EqualError(t, err, "disk full")
}

func TestRenderYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderYAML(&buf, sampleReport(t)))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []int{11, 1, 0, 0, 0}, doc.Funded)
	assert.Equal(t, "11x Tier 0 => 1x Tier I", doc.Path)
	assert.Equal(t, 20, doc.RemainingBudget)
	assert.Equal(t, "19.75", doc.CoveragePct)
	assert.Contains(t, buf.String(), "remaining_budget: 20")
}
