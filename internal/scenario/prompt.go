package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xtding233/cube-saver/internal/pricing"
)

const retryMsg = "Please enter a non-negative integer."

var prompts = [pricing.NumTiers + 1]string{
	"Please enter your balance of cubes:",
	"How many Tier 0 modules are required?",
	"How many Tier I modules are required?",
	"How many Tier II modules are required?",
	"How many Tier III modules are required?",
	"How many Tier IV modules are required?",
}

// Prompter asks for the balance and each tier's demand on a line-based stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask reads all six values, re-asking until each one is a non-negative integer.
// Running out of input is an error.
func (p *Prompter) Ask() (pricing.Input, error) {
	var vals [len(prompts)]int
	for i, q := range prompts {
		v, err := p.askOne(q)
		if err != nil {
			return pricing.Input{}, err
		}
		vals[i] = v
	}
	in := pricing.Input{Budget: vals[0]}
	copy(in.Demand[:], vals[1:])
	return in, nil
}

func (p *Prompter) askOne(q string) (int, error) {
	for {
		fmt.Fprintf(p.out, "%-64s", q)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, errors.Wrap(err, "read answer")
			}
			return 0, errors.Wrap(io.ErrUnexpectedEOF, "input closed")
		}
		v, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err == nil && v >= 0 {
			return v, nil
		}
		fmt.Fprintln(p.out, retryMsg)
	}
}
