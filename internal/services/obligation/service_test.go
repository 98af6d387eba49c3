package obligation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/forfeit/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/forfeit/internal/common/uuid/mocks"
	"github.com/KirkDiggler/forfeit/internal/models"
	"github.com/KirkDiggler/forfeit/internal/period"
	obligationRepo "github.com/KirkDiggler/forfeit/internal/repositories/obligation"
	obligationMocks "github.com/KirkDiggler/forfeit/internal/repositories/obligation/mocks"
	penaltyRepo "github.com/KirkDiggler/forfeit/internal/repositories/penalty"
	penaltyMocks "github.com/KirkDiggler/forfeit/internal/repositories/penalty/mocks"
	userRepo "github.com/KirkDiggler/forfeit/internal/repositories/user"
	userMocks "github.com/KirkDiggler/forfeit/internal/repositories/user/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ObligationServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockObligationRepo *obligationMocks.MockRepository
	mockPenaltyRepo    *penaltyMocks.MockRepository
	mockUserRepo       *userMocks.MockRepository
	mockClock          *clockMocks.MockClock
	mockUUID           *uuidMocks.MockUUID
	service            Service
	ctx                context.Context

	// Test data
	testTime         time.Time
	testObligationID string
	testOwnerID      string
	testFriendID     string

	// Reusable test fixtures
	dailyObligation *models.Obligation
}

func (s *ObligationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockObligationRepo = obligationMocks.NewMockRepository(s.mockCtrl)
	s.mockPenaltyRepo = penaltyMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.testObligationID = "test-obligation-id"
	s.testOwnerID = "test-owner-id"
	s.testFriendID = "test-friend-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	start := period.Date(2025, 4, 1)
	s.dailyObligation = &models.Obligation{
		ID:            s.testObligationID,
		Kind:          models.ObligationKindTask,
		OwnerID:       s.testOwnerID,
		Title:         "Run",
		Cadence:       models.CadenceDaily,
		StartDate:     &start,
		PenaltyAmount: 10,
		RecipientIDs:  []string{s.testFriendID},
		Status:        models.ObligationStatusActive,
		Completions:   []string{"2025-04-01"},
		CreatedAt:     start,
		UpdatedAt:     start,
	}

	svc, err := New(&Config{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		ObligationRepo: s.mockObligationRepo,
		PenaltyRepo:    s.mockPenaltyRepo,
		UserRepo:       s.mockUserRepo,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ObligationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestObligationServiceSuite(t *testing.T) {
	suite.Run(t, new(ObligationServiceTestSuite))
}

func cloneObligation(o *models.Obligation) *models.Obligation {
	clone := *o
	clone.Completions = append([]string(nil), o.Completions...)
	clone.RecipientIDs = append([]string(nil), o.RecipientIDs...)
	return &clone
}

func (s *ObligationServiceTestSuite) expectGetObligation(o *models.Obligation) {
	s.mockObligationRepo.EXPECT().
		GetObligation(gomock.Any(), &obligationRepo.GetObligationInput{ObligationID: o.ID}).
		Return(cloneObligation(o), nil)
}

// expectUpdate applies the update function to a copy of o, the way the repository would
func (s *ObligationServiceTestSuite) expectUpdate(o *models.Obligation) {
	s.mockObligationRepo.EXPECT().
		UpdateObligation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *obligationRepo.UpdateObligationInput) (*obligationRepo.UpdateObligationOutput, error) {
			s.Equal(o.ID, input.ObligationID)
			current := cloneObligation(o)
			changed, err := input.Update(current)
			if err != nil {
				return nil, err
			}
			return &obligationRepo.UpdateObligationOutput{Obligation: current, Changed: changed}, nil
		})
}

func (s *ObligationServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilObligationRepo, err)

	_, err = New(&Config{ObligationRepo: s.mockObligationRepo})
	s.Equal(ErrNilPenaltyRepo, err)

	_, err = New(&Config{ObligationRepo: s.mockObligationRepo, PenaltyRepo: s.mockPenaltyRepo})
	s.Equal(ErrNilUserRepo, err)

	_, err = New(&Config{ObligationRepo: s.mockObligationRepo, PenaltyRepo: s.mockPenaltyRepo, UserRepo: s.mockUserRepo})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{ObligationRepo: s.mockObligationRepo, PenaltyRepo: s.mockPenaltyRepo, UserRepo: s.mockUserRepo, Clock: s.mockClock})
	s.Equal(ErrNilUUIDGenerator, err)
}

func (s *ObligationServiceTestSuite) TestMarkComplete_HappyPathCancelsPenalties() {
	s.expectGetObligation(s.dailyObligation)
	s.expectUpdate(s.dailyObligation)

	s.mockPenaltyRepo.EXPECT().
		GetPenaltiesForObligationPeriod(gomock.Any(), &penaltyRepo.GetPenaltiesForObligationPeriodInput{
			ObligationID: s.testObligationID,
			PeriodKey:    "2025-04-03",
		}).
		Return(&penaltyRepo.GetPenaltiesForObligationPeriodOutput{
			Penalties: []*models.PenaltyRecord{{ID: "penalty-1"}},
		}, nil)
	s.mockPenaltyRepo.EXPECT().
		DeletePenalty(gomock.Any(), &penaltyRepo.DeletePenaltyInput{PenaltyID: "penalty-1"}).
		Return(nil)

	output, err := s.service.MarkComplete(s.ctx, &MarkCompleteInput{
		CallerID:     s.testOwnerID,
		ObligationID: s.testObligationID,
		Date:         "2025-04-03",
	})
	s.Require().NoError(err)
	s.True(output.Added)
	s.Equal("2025-04-03", output.PeriodKey)
	s.Equal([]string{"2025-04-01", "2025-04-03"}, output.Obligation.Completions)
	s.Equal(s.testTime, output.Obligation.UpdatedAt)
}

func (s *ObligationServiceTestSuite) TestMarkComplete_RemarkIsNoOpButStillPurges() {
	s.expectGetObligation(s.dailyObligation)
	s.expectUpdate(s.dailyObligation)
	s.mockPenaltyRepo.EXPECT().
		GetPenaltiesForObligationPeriod(gomock.Any(), gomock.Any()).
		Return(&penaltyRepo.GetPenaltiesForObligationPeriodOutput{}, nil)

	output, err := s.service.MarkComplete(s.ctx, &MarkCompleteInput{
		CallerID:     s.testOwnerID,
		ObligationID: s.testObligationID,
		Date:         "2025-04-01",
	})
	s.Require().NoError(err)
	s.False(output.Added)
	s.Equal([]string{"2025-04-01"}, output.Obligation.Completions)
}

func (s *ObligationServiceTestSuite) TestMarkComplete_WeeklyNormalizesToMonday() {
	weekly := cloneObligation(s.dailyObligation)
	weekly.Cadence = models.CadenceWeekly
	weekly.Completions = []string{}

	s.expectGetObligation(weekly)
	s.expectUpdate(weekly)
	s.mockPenaltyRepo.EXPECT().
		GetPenaltiesForObligationPeriod(gomock.Any(), &penaltyRepo.GetPenaltiesForObligationPeriodInput{
			ObligationID: s.testObligationID,
			PeriodKey:    "2025-03-31",
		}).
		Return(&penaltyRepo.GetPenaltiesForObligationPeriodOutput{}, nil)

	// Thursday
	output, err := s.service.MarkComplete(s.ctx, &MarkCompleteInput{
		CallerID:     s.testOwnerID,
		ObligationID: s.testObligationID,
		Date:         "2025-04-03T21:30:00Z",
	})
	s.Require().NoError(err)
	s.Equal("2025-03-31", output.PeriodKey)
}

func (s *ObligationServiceTestSuite) TestMarkComplete_PurgeFailureIsNotReturned() {
	s.expectGetObligation(s.dailyObligation)
	s.expectUpdate(s.dailyObligation)
	s.mockPenaltyRepo.EXPECT().
		GetPenaltiesForObligationPeriod(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	output, err := s.service.MarkComplete(s.ctx, &MarkCompleteInput{
		CallerID:     s.testOwnerID,
		ObligationID: s.testObligationID,
		Date:         "2025-04-04",
	})
	s.Require().NoError(err)
	s.True(output.Added)
}

func (s *ObligationServiceTestSuite) TestMarkComplete_NotFound() {
	s.mockObligationRepo.EXPECT().
		GetObligation(gomock.Any(), gomock.Any()).
		Return(nil, obligationRepo.ErrObligationNotFound)

	output, err := s.service.MarkComplete(s.ctx, &MarkCompleteInput{
		CallerID:     s.testOwnerID,
		ObligationID: "missing",
		Date:         "2025-04-04",
	})
	s.Equal(ErrObligationNotFound, err)
	s.Nil(output)
}

func (s *ObligationServiceTestSuite) TestMarkComplete_NotOwnerCheckedBeforeDate() {
	s.expectGetObligation(s.dailyObligation)

	_, err := s.service.MarkComplete(s.ctx, &MarkCompleteInput{
		CallerID:     s.testFriendID,
		ObligationID: s.testObligationID,
		Date:         "not a date",
	})
	s.Equal(ErrNotOwner, err)
}

func (s *ObligationServiceTestSuite) TestMarkComplete_InvalidDates() {
	testCases := []struct {
		name string
		date string
	}{
		{name: "unparsable", date: "04/03/2025"},
		{name: "future", date: "2025-04-06"},
		{name: "before start", date: "2025-03-31"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectGetObligation(s.dailyObligation)

			_, err := s.service.MarkComplete(s.ctx, &MarkCompleteInput{
				CallerID:     s.testOwnerID,
				ObligationID: s.testObligationID,
				Date:         tc.date,
			})
			s.ErrorIs(err, ErrInvalidDate)
		})
	}
}

func (s *ObligationServiceTestSuite) TestMarkComplete_AfterEndDate() {
	ended := cloneObligation(s.dailyObligation)
	end := period.Date(2025, 4, 2)
	ended.EndDate = &end
	s.expectGetObligation(ended)

	_, err := s.service.MarkComplete(s.ctx, &MarkCompleteInput{
		CallerID:     s.testOwnerID,
		ObligationID: s.testObligationID,
		Date:         "2025-04-03",
	})
	s.ErrorIs(err, ErrInvalidDate)
}

func (s *ObligationServiceTestSuite) TestMarkIncomplete() {
	s.Run("present", func() {
		s.expectGetObligation(s.dailyObligation)
		s.expectUpdate(s.dailyObligation)

		output, err := s.service.MarkIncomplete(s.ctx, &MarkIncompleteInput{
			CallerID:     s.testOwnerID,
			ObligationID: s.testObligationID,
			Date:         "2025-04-01",
		})
		s.Require().NoError(err)
		s.True(output.Removed)
	})

	s.Run("absent", func() {
		s.expectGetObligation(s.dailyObligation)
		s.expectUpdate(s.dailyObligation)

		output, err := s.service.MarkIncomplete(s.ctx, &MarkIncompleteInput{
			CallerID:     s.testOwnerID,
			ObligationID: s.testObligationID,
			Date:         "2025-04-02",
		})
		s.Require().NoError(err)
		s.False(output.Removed)
	})

	s.Run("invalid date", func() {
		s.expectGetObligation(s.dailyObligation)

		_, err := s.service.MarkIncomplete(s.ctx, &MarkIncompleteInput{
			CallerID:     s.testOwnerID,
			ObligationID: s.testObligationID,
			Date:         "yesterday",
		})
		s.ErrorIs(err, ErrInvalidDate)
	})
}

func (s *ObligationServiceTestSuite) TestIsComplete() {
	s.Run("recipient may check", func() {
		s.expectGetObligation(s.dailyObligation)

		output, err := s.service.IsComplete(s.ctx, &IsCompleteInput{
			CallerID:     s.testFriendID,
			ObligationID: s.testObligationID,
			Date:         "2025-04-01",
		})
		s.Require().NoError(err)
		s.True(output.Complete)
	})

	s.Run("stranger may not", func() {
		s.expectGetObligation(s.dailyObligation)

		_, err := s.service.IsComplete(s.ctx, &IsCompleteInput{
			CallerID:     "stranger",
			ObligationID: s.testObligationID,
			Date:         "2025-04-01",
		})
		s.Equal(ErrNotOwner, err)
	})
}

func (s *ObligationServiceTestSuite) TestCreateObligation_HappyPath() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testOwnerID}).
		Return(&models.User{ID: s.testOwnerID}, nil)
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testFriendID}).
		Return(&models.User{ID: s.testFriendID}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testObligationID)

	var saved *models.Obligation
	s.mockObligationRepo.EXPECT().
		SaveObligation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *obligationRepo.SaveObligationInput) error {
			saved = input.Obligation
			return nil
		})

	output, err := s.service.CreateObligation(s.ctx, &CreateObligationInput{
		CallerID:      s.testOwnerID,
		Title:         "Gym",
		Cadence:       models.CadenceWeekly,
		StartDate:     "2025-03-01",
		PenaltyAmount: 20,
		RecipientIDs:  []string{s.testFriendID, s.testFriendID},
		Completions:   []string{"2025-03-05", "2025-03-06", "2025-03-12"},
	})
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Same(saved, output.Obligation)

	s.Equal(s.testObligationID, saved.ID)
	s.Equal(models.ObligationKindTask, saved.Kind)
	s.Equal(models.ObligationStatusActive, saved.Status)
	s.Equal([]string{s.testFriendID}, saved.RecipientIDs)
	s.Equal([]string{"2025-03-03", "2025-03-10"}, saved.Completions)
	s.Equal(s.testTime, saved.CreatedAt)
	s.Require().NotNil(saved.StartDate)
	s.Equal(period.Date(2025, 3, 1), *saved.StartDate)
}

func (s *ObligationServiceTestSuite) TestCreateObligation_EmptyCadenceIsDaily() {
	s.mockUserRepo.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(&models.User{ID: s.testOwnerID}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testObligationID)
	s.mockObligationRepo.EXPECT().SaveObligation(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.CreateObligation(s.ctx, &CreateObligationInput{
		CallerID: s.testOwnerID,
		Title:    "Read",
	})
	s.Require().NoError(err)
	s.Equal(models.CadenceDaily, output.Obligation.Cadence)
	s.False(output.Obligation.PenaltyConfigured())
}

func (s *ObligationServiceTestSuite) TestCreateObligation_Rejections() {
	testCases := []struct {
		name      string
		input     *CreateObligationInput
		userCalls int
		expected  error
	}{
		{
			name:     "missing title",
			input:    &CreateObligationInput{CallerID: "test-owner-id"},
			expected: ErrInvalidInput,
		},
		{
			name:      "unknown cadence",
			input:     &CreateObligationInput{CallerID: "test-owner-id", Title: "Run", Cadence: "hourly"},
			userCalls: 1,
			expected:  ErrInvalidInput,
		},
		{
			name:      "recipients without amount",
			input:     &CreateObligationInput{CallerID: "test-owner-id", Title: "Run", RecipientIDs: []string{"test-friend-id"}},
			userCalls: 1,
			expected:  ErrInvalidInput,
		},
		{
			name:      "negative amount",
			input:     &CreateObligationInput{CallerID: "test-owner-id", Title: "Run", PenaltyAmount: -1},
			userCalls: 1,
			expected:  ErrInvalidInput,
		},
		{
			name:      "end before start",
			input:     &CreateObligationInput{CallerID: "test-owner-id", Title: "Run", StartDate: "2025-04-02", EndDate: "2025-04-01"},
			userCalls: 1,
			expected:  ErrInvalidInput,
		},
		{
			name:      "bad start date",
			input:     &CreateObligationInput{CallerID: "test-owner-id", Title: "Run", StartDate: "soon"},
			userCalls: 1,
			expected:  ErrInvalidDate,
		},
		{
			name:      "challenge without challenge ID",
			input:     &CreateObligationInput{CallerID: "test-owner-id", Title: "Run", Kind: models.ObligationKindChallenge},
			userCalls: 1,
			expected:  ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.userCalls > 0 {
				s.mockUserRepo.EXPECT().
					GetUser(gomock.Any(), gomock.Any()).
					Return(&models.User{ID: s.testOwnerID}, nil).
					Times(tc.userCalls)
			}

			output, err := s.service.CreateObligation(s.ctx, tc.input)
			s.ErrorIs(err, tc.expected)
			s.Nil(output)
		})
	}
}

func (s *ObligationServiceTestSuite) TestCreateObligation_UnknownRecipient() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: s.testOwnerID}).
		Return(&models.User{ID: s.testOwnerID}, nil)
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), &userRepo.GetUserInput{UserID: "ghost"}).
		Return(nil, userRepo.ErrUserNotFound)

	_, err := s.service.CreateObligation(s.ctx, &CreateObligationInput{
		CallerID:      s.testOwnerID,
		Title:         "Run",
		PenaltyAmount: 5,
		RecipientIDs:  []string{"ghost"},
	})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *ObligationServiceTestSuite) TestDeleteObligation_RemovesPenalties() {
	s.expectGetObligation(s.dailyObligation)
	s.mockPenaltyRepo.EXPECT().
		GetPenaltiesForObligation(gomock.Any(), &penaltyRepo.GetPenaltiesForObligationInput{ObligationID: s.testObligationID}).
		Return(&penaltyRepo.GetPenaltiesForObligationOutput{
			Penalties: []*models.PenaltyRecord{{ID: "penalty-1"}, {ID: "penalty-2"}},
		}, nil)

	gomock.InOrder(
		s.mockPenaltyRepo.EXPECT().DeletePenalty(gomock.Any(), &penaltyRepo.DeletePenaltyInput{PenaltyID: "penalty-1"}).Return(nil),
		s.mockPenaltyRepo.EXPECT().DeletePenalty(gomock.Any(), &penaltyRepo.DeletePenaltyInput{PenaltyID: "penalty-2"}).Return(nil),
		s.mockObligationRepo.EXPECT().
			DeleteObligation(gomock.Any(), &obligationRepo.DeleteObligationInput{ObligationID: s.testObligationID}).
			Return(nil),
	)

	output, err := s.service.DeleteObligation(s.ctx, &DeleteObligationInput{
		CallerID:     s.testOwnerID,
		ObligationID: s.testObligationID,
	})
	s.Require().NoError(err)
	s.Equal(2, output.PenaltiesRemoved)
}

func (s *ObligationServiceTestSuite) TestDeleteObligation_NotOwner() {
	s.expectGetObligation(s.dailyObligation)

	_, err := s.service.DeleteObligation(s.ctx, &DeleteObligationInput{
		CallerID:     s.testFriendID,
		ObligationID: s.testObligationID,
	})
	s.Equal(ErrNotOwner, err)
}

func (s *ObligationServiceTestSuite) TestGetStats() {
	withHistory := cloneObligation(s.dailyObligation)
	withHistory.Completions = []string{"2025-04-01", "2025-04-02", "2025-04-04", "2025-04-05"}
	s.expectGetObligation(withHistory)

	s.mockPenaltyRepo.EXPECT().
		GetPenaltiesForObligation(gomock.Any(), gomock.Any()).
		Return(&penaltyRepo.GetPenaltiesForObligationOutput{
			Penalties: []*models.PenaltyRecord{{ID: "penalty-1", Amount: 10}},
		}, nil)

	output, err := s.service.GetStats(s.ctx, &GetStatsInput{
		CallerID:     s.testOwnerID,
		ObligationID: s.testObligationID,
	})
	s.Require().NoError(err)
	s.Equal(4, output.TotalCompletions)
	s.Equal(2, output.CurrentStreak)
	s.Equal(2, output.LongestStreak)
	// 4 of 5 days since April 1st
	s.InDelta(80.0, output.CompletionRate, 1e-9)
	s.Equal(10.0, output.PenaltyAmount)
	s.Equal(1, output.TotalPenalties)
	s.Equal(10.0, output.TotalPenaltyAmount)
}
