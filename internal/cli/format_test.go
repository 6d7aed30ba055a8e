package cli

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$150.00", FormatCurrency(150))
	assert.Equal(t, "$1,250.50", FormatCurrency(1250.5))
	assert.Equal(t, "$1,000,000.00", FormatCurrency(1000000))
	assert.Equal(t, "-$420.25", FormatCurrency(-420.25))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+12.50%", FormatPercent(12.5))
	assert.Equal(t, "-3.00%", FormatPercent(-3))
	assert.Equal(t, "0.00%", FormatPercent(0))
}

func TestFormatRiskReward(t *testing.T) {
	assert.Equal(t, "1:2.00", FormatRiskReward(2))
	assert.Equal(t, "1:0.75", FormatRiskReward(0.75))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "long st...", TruncateString("long string here", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

// For any reasonable amount, FormatCurrency must round-trip the value and
// group integer digits in threes.
func TestProperty_CurrencyFormatting(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("FormatCurrency groups digits and preserves value", prop.ForAll(
		func(amount float64) bool {
			if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) > 1e12 {
				return true
			}

			formatted := FormatCurrency(amount)

			numPart := strings.TrimPrefix(formatted, "-")
			if !strings.HasPrefix(numPart, "$") {
				return false
			}
			numPart = strings.TrimPrefix(numPart, "$")

			groups := strings.Split(strings.Split(numPart, ".")[0], ",")
			for i, g := range groups {
				if i == 0 {
					if len(g) < 1 || len(g) > 3 {
						return false
					}
				} else if len(g) != 3 {
					return false
				}
			}

			parsed, err := strconv.ParseFloat(strings.ReplaceAll(numPart, ",", ""), 64)
			if err != nil {
				return false
			}
			if formatted[0] == '-' {
				parsed = -parsed
			}
			return math.Abs(parsed-amount) < 0.005+math.Abs(amount)*1e-9
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.TestingRun(t)
}
