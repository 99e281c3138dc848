package gui

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/KirkDiggler/balanced-dice/internal/common/clock"
	"github.com/KirkDiggler/balanced-dice/internal/common/uuid"
	"github.com/KirkDiggler/balanced-dice/internal/handlers/gui/mocks"
	"github.com/KirkDiggler/balanced-dice/internal/models"
	sessionRepo "github.com/KirkDiggler/balanced-dice/internal/repositories/session"
	"github.com/KirkDiggler/balanced-dice/internal/services/messaging"
	"github.com/KirkDiggler/balanced-dice/internal/services/overlay"
	overlayMocks "github.com/KirkDiggler/balanced-dice/internal/services/overlay/mocks"
	"github.com/KirkDiggler/balanced-dice/internal/services/simulation"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ControllerTestSuite struct {
	suite.Suite

	ctx        context.Context
	ctrl       *gomock.Controller
	view       *mocks.MockView
	repo       sessionRepo.Repository
	overlay    overlay.Service
	controller *Controller
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.view = mocks.NewMockView(s.ctrl)
	s.repo = sessionRepo.NewMemory()

	simulator, err := simulation.New(&simulation.Config{Seed: 3})
	s.Require().NoError(err)

	overlaySvc, err := overlay.New(&overlay.Config{
		SessionRepo:   s.repo,
		Simulator:     simulator,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)
	s.overlay = overlaySvc

	s.controller = s.newController(overlaySvc)
	s.Require().NoError(s.controller.Start(s.ctx, s.view))
}

func (s *ControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ControllerTestSuite) newController(overlaySvc overlay.Service) *Controller {
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Seed: 3})
	s.Require().NoError(err)

	controller, err := NewController(&ControllerConfig{
		OverlayService:   overlaySvc,
		MessagingService: messagingSvc,
		MaxRolls:         10_000,
	})
	s.Require().NoError(err)
	return controller
}

func (s *ControllerTestSuite) session() *models.Session {
	out, err := s.overlay.GetSession(s.ctx, &overlay.GetSessionInput{SessionID: s.controller.sessionID})
	s.Require().NoError(err)
	return out.Session
}

func (s *ControllerTestSuite) TestInvalidRollCount() {
	s.view.EXPECT().ShowWarning("Error", "Invalid input: Please input a valid number of rolls.")

	err := s.controller.Simulate(s.ctx, "twelve", "Standard", false)
	s.NoError(err)
}

func (s *ControllerTestSuite) TestInvalidStrategy() {
	s.view.EXPECT().ShowWarning("Invalid choice", "You have made an invalid choice.\nPlease choose (S)tandard or (B)alanced.")

	err := s.controller.Simulate(s.ctx, "12", "", false)
	s.NoError(err)
}

func (s *ControllerTestSuite) TestSimulateWithoutOverlayReplacesListing() {
	var listing string
	s.view.EXPECT().ShowChart(gomock.Any()).Times(2)
	s.view.EXPECT().SetFrequencies(gomock.Any()).Times(2).Do(func(text string) {
		listing = text
	})

	s.Require().NoError(s.controller.Simulate(s.ctx, "50", "Standard", false))
	s.Contains(listing, "Frequencies for Standard dice:")

	s.Require().NoError(s.controller.Simulate(s.ctx, "50", "Balanced", false))
	s.Contains(listing, "Frequencies for Balanced dice:")
	s.NotContains(listing, "Standard dice")

	session := s.session()
	s.Equal(models.SessionStateOneSeries, session.State)
	s.Equal(models.StrategyBalanced, session.Series[0].Strategy)
}

func (s *ControllerTestSuite) TestOverlayFromEmptyPlotsBoth() {
	var shown image.Image
	var appended string
	s.view.EXPECT().ShowChart(gomock.Any()).Do(func(img image.Image) {
		shown = img
	})
	s.view.EXPECT().AppendFrequencies(gomock.Any()).Do(func(text string) {
		appended = text
	})

	s.Require().NoError(s.controller.Simulate(s.ctx, "36", "Balanced", true))

	s.Require().NotNil(shown)
	s.Equal(chartWidth, shown.Bounds().Dx())
	s.Contains(appended, "Frequencies for Balanced dice:")
	s.Contains(appended, "Frequencies for Standard dice:")
	s.Equal(models.SessionStateTwoSeries, s.session().State)
}

func (s *ControllerTestSuite) TestOverlayAfterSingleAppendsOther() {
	var appended string
	s.view.EXPECT().ShowChart(gomock.Any()).Times(2)
	s.view.EXPECT().SetFrequencies(gomock.Any())
	s.view.EXPECT().AppendFrequencies(gomock.Any()).Do(func(text string) {
		appended = text
	})

	s.Require().NoError(s.controller.Simulate(s.ctx, "20", "Standard", false))
	s.Require().NoError(s.controller.Simulate(s.ctx, "20", "Standard", true))

	s.Contains(appended, "Frequencies for Balanced dice:")
	s.NotContains(appended, "Standard dice")
}

func (s *ControllerTestSuite) TestTwoSeriesRequiresClear() {
	s.view.EXPECT().ShowChart(gomock.Any())
	s.view.EXPECT().AppendFrequencies(gomock.Any())
	s.Require().NoError(s.controller.Simulate(s.ctx, "20", "Standard", true))
	before := s.session()

	s.view.EXPECT().ShowWarning("Clear required", "Please clear the graph before plotting again.").Times(2)

	s.NoError(s.controller.Simulate(s.ctx, "20", "Balanced", true))
	s.NoError(s.controller.Simulate(s.ctx, "20", "Standard", false))

	after := s.session()
	s.Equal(models.SessionStateTwoSeries, after.State)
	s.Equal(before.Series[0].ID, after.Series[0].ID)
	s.Equal(before.Series[1].ID, after.Series[1].ID)
}

func (s *ControllerTestSuite) TestClear() {
	s.view.EXPECT().ShowChart(gomock.Any())
	s.view.EXPECT().AppendFrequencies(gomock.Any())
	s.Require().NoError(s.controller.Simulate(s.ctx, "20", "Standard", true))

	gomock.InOrder(
		s.view.EXPECT().SetOverlay(false),
		s.view.EXPECT().ClearChart(),
		s.view.EXPECT().SetFrequencies(""),
		s.view.EXPECT().ShowInfo("Graphs and frequencies cleared",
			"Graphs and frequencies have been cleared. You can now plot new simulations."),
	)

	s.Require().NoError(s.controller.Clear(s.ctx))
	s.Equal(models.SessionStateEmpty, s.session().State)

	s.view.EXPECT().ShowChart(gomock.Any())
	s.view.EXPECT().SetFrequencies(gomock.Any())
	s.NoError(s.controller.Simulate(s.ctx, "20", "Balanced", false))
}

func (s *ControllerTestSuite) TestUnexpectedFailureIsShown() {
	mockOverlay := overlayMocks.NewMockService(s.ctrl)
	boom := errors.New("boom")

	mockOverlay.EXPECT().
		StartSession(s.ctx, &overlay.StartSessionInput{}).
		Return(&overlay.StartSessionOutput{Session: &models.Session{ID: "window"}}, nil)
	mockOverlay.EXPECT().
		Simulate(s.ctx, &overlay.SimulateInput{
			SessionID: "window",
			Strategy:  models.StrategyBalanced,
			Rolls:     9,
		}).
		Return(nil, boom)
	s.view.EXPECT().ShowError(boom)

	controller := s.newController(mockOverlay)
	s.Require().NoError(controller.Start(s.ctx, s.view))

	err := controller.Simulate(s.ctx, "9", "balanced", false)
	s.ErrorIs(err, boom)
}

func (s *ControllerTestSuite) TestNotStarted() {
	controller := s.newController(overlayMocks.NewMockService(s.ctrl))

	s.ErrorIs(controller.Simulate(s.ctx, "1", "Standard", false), ErrNotStarted)
	s.ErrorIs(controller.Clear(s.ctx), ErrNotStarted)
	s.ErrorIs(controller.Start(s.ctx, nil), ErrNilView)
}

func (s *ControllerTestSuite) TestNewControllerValidation() {
	testCases := []struct {
		name    string
		cfg     *ControllerConfig
		wantErr error
	}{
		{name: "nil config", cfg: nil, wantErr: ErrNilConfig},
		{name: "nil overlay", cfg: &ControllerConfig{}, wantErr: ErrNilOverlayService},
		{
			name:    "nil messaging",
			cfg:     &ControllerConfig{OverlayService: overlayMocks.NewMockService(s.ctrl)},
			wantErr: ErrNilMessagingService,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			controller, err := NewController(tc.cfg)
			s.ErrorIs(err, tc.wantErr)
			s.Nil(controller)
		})
	}
}
