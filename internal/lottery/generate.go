package lottery

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// TimestampFormat is the layout used for DraftResult.Timestamp
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// RandomSource supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Generator draws draft orders. The zero value is ready to use and draws
// from the process-wide source, which is safe for concurrent draws.
type Generator struct {
	Source RandomSource
	Now    func() time.Time
}

// NewGenerator creates a generator using the given source, or the
// process-wide source when src is nil
func NewGenerator(src RandomSource) *Generator {
	return &Generator{Source: src}
}

// NewSeededGenerator creates a generator whose draws are reproducible.
// The returned generator must not be shared between goroutines.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

func (g *Generator) source() RandomSource {
	if g == nil || g.Source == nil {
		return globalSource{}
	}
	return g.Source
}

func (g *Generator) now() time.Time {
	if g == nil || g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

// GenerateOrder orders the lottery teams by weighted sampling without
// replacement and appends the playoff teams in their original order. The
// config is expected to have passed Validate already.
func (g *Generator) GenerateOrder(config DraftConfig) ([]Team, error) {
	lottery, playoff := splitTeams(config.Teams)
	src := g.source()

	if len(lottery) > config.LotteryTeams {
		return nil, newGenerationError(ErrPoolMismatch, 0,
			fmt.Sprintf("Found %d lottery teams but only %d lottery picks", len(lottery), config.LotteryTeams))
	}

	order := make([]Team, 0, len(config.Teams))
	for pick := 1; pick <= config.LotteryTeams; pick++ {
		if len(lottery) == 0 {
			return nil, newGenerationError(ErrPoolExhausted, pick,
				fmt.Sprintf("Lottery pool exhausted at pick %d of %d", pick, config.LotteryTeams))
		}

		idx, err := selectWeighted(lottery, src)
		if err != nil {
			return nil, newGenerationError(err, pick, errorMessage(err))
		}

		order = append(order, lottery[idx])
		lottery = removeAt(lottery, idx)
	}

	order = append(order, playoff...)
	return order, nil
}

// Draw validates the config, generates the order and stamps the result
func (g *Generator) Draw(config DraftConfig) (DraftResult, error) {
	if validation := Validate(config); !validation.IsValid {
		return DraftResult{}, &ValidationError{Errors: validation.Errors}
	}

	order, err := g.GenerateOrder(config)
	if err != nil {
		return DraftResult{}, err
	}

	return DraftResult{
		Order:     order,
		Timestamp: g.now().UTC().Format(TimestampFormat),
	}, nil
}

// selectWeighted returns the index of the first team whose cumulative weight
// covers a uniform draw from [0, totalWeight). Teams without weight are never
// selected.
func selectWeighted(pool []Team, src RandomSource) (int, error) {
	total := 0.0
	withPercentage := 0
	for _, team := range pool {
		if team.Percentage != nil {
			withPercentage++
		}
		total += team.Weight()
	}

	if withPercentage == 0 {
		return -1, ErrNoWeightedTeams
	}
	if total == 0 {
		return -1, ErrZeroTotalWeight
	}

	r := src.Float64() * total

	last := -1
	cumulative := 0.0
	for i, team := range pool {
		w := team.Weight()
		if w <= 0 {
			continue
		}
		cumulative += w
		last = i
		if cumulative >= r {
			return i, nil
		}
	}

	// rounding can leave r a hair above the final cumulative sum
	return last, nil
}

// removeAt returns a copy of pool without index i; the caller's slice is left untouched
func removeAt(pool []Team, i int) []Team {
	out := make([]Team, 0, len(pool)-1)
	out = append(out, pool[:i]...)
	return append(out, pool[i+1:]...)
}

func errorMessage(err error) string {
	switch err {
	case ErrNoWeightedTeams:
		return "No lottery teams with percentages found"
	case ErrZeroTotalWeight:
		return "Total percentage weight is 0"
	default:
		return err.Error()
	}
}
