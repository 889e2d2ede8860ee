package lottery

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"
)

// sequenceSource replays fixed values, repeating the last one when exhausted
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return v
}

func names(teams []Team) []string {
	out := make([]string, 0, len(teams))
	for _, team := range teams {
		out = append(out, team.Name)
	}
	return out
}

func TestGenerator_GenerateOrder_Selection(t *testing.T) {
	tests := []struct {
		name   string
		config DraftConfig
		draws  []float64
		want   []string
	}{
		{
			name:   "low draw picks first team",
			config: validConfig(),
			draws:  []float64{0.5, 0.3},
			want:   []string{"A", "B", "C", "D"},
		},
		{
			name:   "high draw picks second team",
			config: validConfig(),
			draws:  []float64{0.8, 0.3},
			want:   []string{"B", "A", "C", "D"},
		},
		{
			name:   "draw on a boundary goes to the earlier team",
			config: validConfig(),
			draws:  []float64{0.75, 0},
			want:   []string{"A", "B", "C", "D"},
		},
		{
			name: "weights are recomputed over the remaining pool",
			config: DraftConfig{
				TotalTeams:   4,
				LotteryTeams: 3,
				Teams: []Team{
					{ID: 1, Name: "A", Percentage: Float(50), IsLottery: true},
					{ID: 2, Name: "B", Percentage: Float(30), IsLottery: true},
					{ID: 3, Name: "C", Percentage: Float(20), IsLottery: true},
					{ID: 4, Name: "D"},
				},
			},
			// second draw: 0.61 * (30+20) = 30.5, just past B's share
			draws: []float64{0, 0.61, 0.5},
			want:  []string{"A", "C", "B", "D"},
		},
		{
			name: "playoff teams keep their input order",
			config: DraftConfig{
				TotalTeams:   4,
				LotteryTeams: 1,
				Teams: []Team{
					{ID: 4, Name: "D"},
					{ID: 1, Name: "A", Percentage: Float(10), IsLottery: true},
					{ID: 2, Name: "B"},
					{ID: 3, Name: "C"},
				},
			},
			draws: []float64{0.99},
			want:  []string{"A", "D", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(&sequenceSource{values: tt.draws})

			order, err := gen.GenerateOrder(tt.config)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if got := names(order); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected order %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGenerator_GenerateOrder_WeightedFrequency(t *testing.T) {
	config := validConfig()
	gen := NewSeededGenerator(42)

	const runs = 10000
	firstA := 0
	for i := 0; i < runs; i++ {
		order, err := gen.GenerateOrder(config)
		if err != nil {
			t.Fatalf("Unexpected error on run %d: %v", i, err)
		}
		if len(order) != 4 {
			t.Fatalf("Expected 4 teams, got %d", len(order))
		}
		if order[2].Name != "C" || order[3].Name != "D" {
			t.Fatalf("Expected C then D in positions 3 and 4, got %v", names(order))
		}
		if order[0].Name == "A" {
			firstA++
		}
	}

	rate := float64(firstA) / runs
	if rate < 0.73 || rate > 0.77 {
		t.Errorf("Expected A to pick first roughly 75%% of the time, got %.3f", rate)
	}
}

func TestGenerator_GenerateOrder_Permutation(t *testing.T) {
	config := DefaultConfig(12, 6, 12)
	gen := NewSeededGenerator(7)

	for i := 0; i < 200; i++ {
		order, err := gen.GenerateOrder(config)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(order) != config.TotalTeams {
			t.Fatalf("Expected %d teams, got %d", config.TotalTeams, len(order))
		}

		seen := make(map[int]int)
		for pos, team := range order {
			seen[team.ID]++
			if pos < config.LotteryTeams && !team.IsLottery {
				t.Errorf("Expected lottery team at position %d, got %s", pos+1, team.Name)
			}
		}
		for _, team := range config.Teams {
			if seen[team.ID] != 1 {
				t.Errorf("Expected team %d exactly once, found %d", team.ID, seen[team.ID])
			}
		}

		_, playoff := splitTeams(config.Teams)
		if !reflect.DeepEqual(order[config.LotteryTeams:], playoff) {
			t.Errorf("Expected playoff teams %v, got %v", names(playoff), names(order[config.LotteryTeams:]))
		}
	}
}

func TestSelectWeighted_ZeroWeightNeverPicked(t *testing.T) {
	pool := []Team{
		{ID: 1, Name: "Z", Percentage: Float(0), IsLottery: true},
		{ID: 2, Name: "A", Percentage: Float(50), IsLottery: true},
		{ID: 3, Name: "N", IsLottery: true},
		{ID: 4, Name: "B", Percentage: Float(50), IsLottery: true},
	}

	for _, v := range []float64{0, 0.25, 0.5, 0.75, 0.999999} {
		idx, err := selectWeighted(pool, &sequenceSource{values: []float64{v}})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if pool[idx].Weight() == 0 {
			t.Errorf("Draw %v selected zero-weight team %s", v, pool[idx].Name)
		}
	}
}

func TestGenerator_GenerateOrder_Errors(t *testing.T) {
	tests := []struct {
		name     string
		config   DraftConfig
		wantErr  error
		wantPick int
	}{
		{
			name: "all percentages missing",
			config: DraftConfig{
				TotalTeams:   3,
				LotteryTeams: 2,
				Teams: []Team{
					{ID: 1, Name: "A", IsLottery: true},
					{ID: 2, Name: "B", IsLottery: true},
					{ID: 3, Name: "C"},
				},
			},
			wantErr:  ErrNoWeightedTeams,
			wantPick: 1,
		},
		{
			name: "all percentages zero",
			config: DraftConfig{
				TotalTeams:   3,
				LotteryTeams: 2,
				Teams: []Team{
					{ID: 1, Name: "A", Percentage: Float(0), IsLottery: true},
					{ID: 2, Name: "B", Percentage: Float(0), IsLottery: true},
					{ID: 3, Name: "C"},
				},
			},
			wantErr:  ErrZeroTotalWeight,
			wantPick: 1,
		},
		{
			name: "zero weight team left after positive teams are drawn",
			config: DraftConfig{
				TotalTeams:   3,
				LotteryTeams: 2,
				Teams: []Team{
					{ID: 1, Name: "A", Percentage: Float(40), IsLottery: true},
					{ID: 2, Name: "B", Percentage: Float(0), IsLottery: true},
					{ID: 3, Name: "C"},
				},
			},
			wantErr:  ErrZeroTotalWeight,
			wantPick: 2,
		},
		{
			name: "pool shorter than lottery count",
			config: DraftConfig{
				TotalTeams:   3,
				LotteryTeams: 2,
				Teams: []Team{
					{ID: 1, Name: "A", Percentage: Float(40), IsLottery: true},
					{ID: 2, Name: "B"},
					{ID: 3, Name: "C"},
				},
			},
			wantErr:  ErrPoolExhausted,
			wantPick: 2,
		},
		{
			name: "more lottery teams than lottery picks",
			config: DraftConfig{
				TotalTeams:   3,
				LotteryTeams: 1,
				Teams: []Team{
					{ID: 1, Name: "A", Percentage: Float(50), IsLottery: true},
					{ID: 2, Name: "B", Percentage: Float(50), IsLottery: true},
					{ID: 3, Name: "C"},
				},
			},
			wantErr:  ErrPoolMismatch,
			wantPick: 0,
		},
		{
			name: "lottery teams with no lottery picks",
			config: DraftConfig{
				TotalTeams:   2,
				LotteryTeams: 0,
				Teams: []Team{
					{ID: 1, Name: "A", Percentage: Float(50), IsLottery: true},
					{ID: 2, Name: "B"},
				},
			},
			wantErr:  ErrPoolMismatch,
			wantPick: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewSeededGenerator(1)

			order, err := gen.GenerateOrder(tt.config)
			if err == nil {
				t.Fatalf("Expected error but got order %v", names(order))
			}
			if order != nil {
				t.Errorf("Expected no order on failure, got %v", names(order))
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}

			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("Expected *GenerationError, got %T", err)
			}
			if genErr.Pick != tt.wantPick {
				t.Errorf("Expected failure at pick %d, got %d", tt.wantPick, genErr.Pick)
			}
		})
	}
}

func TestGenerator_GenerateOrder_DoesNotMutateInput(t *testing.T) {
	config := validConfig()
	before := validConfig()

	gen := NewSeededGenerator(3)
	for i := 0; i < 10; i++ {
		if _, err := gen.GenerateOrder(config); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if !reflect.DeepEqual(config, before) {
		t.Errorf("Expected config to be unchanged, got %+v", config)
	}
}

func TestGenerator_SeededIsDeterministic(t *testing.T) {
	config := DefaultConfig(10, 5, 20)

	first, err := NewSeededGenerator(99).GenerateOrder(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := NewSeededGenerator(99).GenerateOrder(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(names(first), names(second)) {
		t.Errorf("Expected identical orders, got %v and %v", names(first), names(second))
	}
}

func TestGenerator_ConcurrentDraws(t *testing.T) {
	config := validConfig()
	var gen Generator

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := gen.GenerateOrder(config)
			if err != nil {
				errs <- err
				return
			}
			if len(order) != config.TotalTeams {
				errs <- errors.New("short order")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestGenerator_Draw(t *testing.T) {
	gen := NewSeededGenerator(5)
	gen.Now = func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}

	result, err := gen.Draw(validConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Timestamp != "2024-01-02T03:04:05.000Z" {
		t.Errorf("Expected timestamp 2024-01-02T03:04:05.000Z, got %s", result.Timestamp)
	}
	if len(result.LotteryPicks(2)) != 2 {
		t.Errorf("Expected 2 lottery picks, got %d", len(result.LotteryPicks(2)))
	}
	if got := names(result.PlayoffPicks(2)); !reflect.DeepEqual(got, []string{"C", "D"}) {
		t.Errorf("Expected playoff picks [C D], got %v", got)
	}
}

func TestGenerator_Draw_InvalidConfig(t *testing.T) {
	config := validConfig()
	config.Teams[1].Name = "a"

	_, err := NewSeededGenerator(5).Draw(config)

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Expected *ValidationError, got %T (%v)", err, err)
	}
	if !contains(valErr.Errors, "Team names must be unique") {
		t.Errorf("Expected uniqueness error, got %v", valErr.Errors)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig(12, 6, DefaultPercentage)

	if config.TotalTeams != 12 || config.LotteryTeams != 6 {
		t.Errorf("Expected 12/6, got %d/%d", config.TotalTeams, config.LotteryTeams)
	}
	if len(config.Teams) != 12 {
		t.Fatalf("Expected 12 teams, got %d", len(config.Teams))
	}
	if config.Teams[0].Name != "Team 1" || !config.Teams[0].IsLottery || config.Teams[0].Weight() != 12 {
		t.Errorf("Unexpected first team %+v", config.Teams[0])
	}
	if config.Teams[6].IsLottery || config.Teams[6].Percentage != nil {
		t.Errorf("Expected team 7 to be a playoff team, got %+v", config.Teams[6])
	}
	if result := Validate(config); !result.IsValid {
		t.Errorf("Expected default config to validate, got %v", result.Errors)
	}
}

func TestNegativeCounts(t *testing.T) {
	config := DefaultConfig(-1, -3, DefaultPercentage)
	if config.TotalTeams != 0 || config.LotteryTeams != 0 || len(config.Teams) != 0 {
		t.Errorf("Expected an empty config, got %+v", config)
	}

	result := DraftResult{Order: []Team{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}}
	if got := result.LotteryPicks(-1); len(got) != 0 {
		t.Errorf("Expected no lottery picks, got %v", names(got))
	}
	if got := names(result.PlayoffPicks(-1)); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Expected every team as a playoff pick, got %v", got)
	}
}
