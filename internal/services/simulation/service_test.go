package simulation

import (
	"context"
	"testing"

	"github.com/KirkDiggler/balanced-dice/internal/dice"
	diceMocks "github.com/KirkDiggler/balanced-dice/internal/dice/mocks"
	metricsMocks "github.com/KirkDiggler/balanced-dice/internal/metrics/mocks"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SimulationServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockMetrics *metricsMocks.MockRecorder
	service     Service
	ctx         context.Context
}

func (s *SimulationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMetrics = metricsMocks.NewMockRecorder(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		Seed:    1234,
		Metrics: s.mockMetrics,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SimulationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSimulationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SimulationServiceTestSuite))
}

func (s *SimulationServiceTestSuite) TestRunPreservesCallOrder() {
	roller := diceMocks.NewMockRoller(s.mockCtrl)
	gomock.InOrder(
		roller.EXPECT().Next().Return(12),
		roller.EXPECT().Next().Return(2),
		roller.EXPECT().Next().Return(7),
	)

	s.Equal([]int{12, 2, 7}, Run(roller, 3))
}

func (s *SimulationServiceTestSuite) TestRunZeroRollsDoesNotTouchRoller() {
	roller := diceMocks.NewMockRoller(s.mockCtrl)
	roller.EXPECT().Next().Times(0)

	s.Empty(Run(roller, 0))
	s.Empty(Run(roller, -3))
}

func (s *SimulationServiceTestSuite) TestRunZeroRollsLeavesQueueIntact() {
	roller := dice.NewBalanced(&dice.Config{Seed: 4})

	Run(roller, 0)
	s.Equal(dice.CycleLength, roller.Remaining())
}

func (s *SimulationServiceTestSuite) TestAggregateEmpty() {
	table := Aggregate(nil)

	s.Len(table, 11)
	for _, outcome := range models.Outcomes() {
		s.Equal(0, table[outcome])
	}
}

func (s *SimulationServiceTestSuite) TestAggregateCounts() {
	table := Aggregate([]int{7, 7, 2})

	expected := models.NewFrequencyTable()
	expected[2] = 1
	expected[7] = 2
	s.Equal(expected, table)
}

func (s *SimulationServiceTestSuite) TestAggregateIgnoresOutOfRange() {
	table := Aggregate([]int{1, 13, 0, -4, 6})

	s.Len(table, 11)
	s.Equal(1, table.Total())
	s.Equal(1, table[6])
	_, ok := table[13]
	s.False(ok)
}

func (s *SimulationServiceTestSuite) TestAggregateIsDeterministic() {
	outcomes := []int{3, 4, 4, 12, 9, 9, 9}

	s.Equal(Aggregate(outcomes), Aggregate(outcomes))
	s.Equal([]int{3, 4, 4, 12, 9, 9, 9}, outcomes)
}

func (s *SimulationServiceTestSuite) TestSimulateStandard() {
	for _, n := range []int{1, 2, 35, 36, 37, 500} {
		s.mockMetrics.EXPECT().SimulationCompleted(models.StrategyStandard, n, 0)

		output, err := s.service.Simulate(s.ctx, &SimulateInput{
			Strategy: models.StrategyStandard,
			Rolls:    n,
		})
		s.Require().NoError(err)
		s.Len(output.Outcomes, n)
		for _, outcome := range output.Outcomes {
			s.True(models.IsOutcome(outcome))
		}
		s.Equal(n, output.Frequencies.Total())
		s.Equal(0, output.CycleRebuilds)
	}
}

func (s *SimulationServiceTestSuite) TestSimulateBalanced() {
	cases := []struct {
		rolls    int
		rebuilds int
	}{
		{rolls: 1, rebuilds: 0},
		{rolls: 36, rebuilds: 0},
		{rolls: 37, rebuilds: 1},
		{rolls: 72, rebuilds: 1},
		{rolls: 73, rebuilds: 2},
		{rolls: 1000, rebuilds: 27},
	}

	for _, tc := range cases {
		s.mockMetrics.EXPECT().SimulationCompleted(models.StrategyBalanced, tc.rolls, tc.rebuilds)

		output, err := s.service.Simulate(s.ctx, &SimulateInput{
			Strategy: models.StrategyBalanced,
			Rolls:    tc.rolls,
		})
		s.Require().NoError(err)
		s.Len(output.Outcomes, tc.rolls)
		s.Equal(tc.rebuilds, output.CycleRebuilds, "rolls %d", tc.rolls)
		for _, outcome := range output.Outcomes {
			s.True(models.IsOutcome(outcome))
		}
	}
}

func (s *SimulationServiceTestSuite) TestSimulateBalancedMatchesDistributionPerCycle() {
	s.mockMetrics.EXPECT().SimulationCompleted(models.StrategyBalanced, 108, 2)

	output, err := s.service.Simulate(s.ctx, &SimulateInput{
		Strategy: models.StrategyBalanced,
		Rolls:    108,
	})
	s.Require().NoError(err)

	table := dice.Distribution()
	for start := 0; start < 108; start += dice.CycleLength {
		counts := Aggregate(output.Outcomes[start : start+dice.CycleLength])
		for _, outcome := range models.Outcomes() {
			s.Equal(table.Weight(outcome), counts[outcome], "cycle at %d outcome %d", start, outcome)
		}
	}
	s.Equal(18, output.Frequencies[7])
	s.Equal(3, output.Frequencies[2])
}

func (s *SimulationServiceTestSuite) TestSimulateRejectsInvalidInput() {
	_, err := s.service.Simulate(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.Simulate(s.ctx, &SimulateInput{Strategy: models.StrategyStandard, Rolls: 0})
	s.ErrorIs(err, ErrInvalidRollCount)

	_, err = s.service.Simulate(s.ctx, &SimulateInput{Strategy: "loaded", Rolls: 10})
	s.ErrorIs(err, models.ErrInvalidStrategy)
}

func (s *SimulationServiceTestSuite) TestSeededServicesRepeat() {
	a, err := New(&Config{Seed: 77})
	s.Require().NoError(err)
	b, err := New(&Config{Seed: 77})
	s.Require().NoError(err)

	input := &SimulateInput{Strategy: models.StrategyStandard, Rolls: 50}
	first, err := a.Simulate(s.ctx, input)
	s.Require().NoError(err)
	second, err := b.Simulate(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(first.Outcomes, second.Outcomes)
}
