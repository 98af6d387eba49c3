package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KirkDiggler/forfeit/internal/common/clock/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RunnerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	ctx       context.Context
	now       atomic.Value
	runs      atomic.Int32
	runner    *Runner
}

func (s *RunnerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.runs.Store(0)
	s.setNow(time.Date(2025, 4, 5, 23, 58, 0, 0, time.UTC))

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now.Load().(time.Time)
	}).AnyTimes()

	runner, err := New(&Config{
		Interval: 5 * time.Millisecond,
		Clock:    s.mockClock,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Job: func(ctx context.Context) {
			s.runs.Add(1)
		},
	})
	s.Require().NoError(err)
	s.runner = runner
}

func (s *RunnerTestSuite) TearDownTest() {
	s.runner.Stop()
	s.mockCtrl.Finish()
}

func TestRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) setNow(t time.Time) {
	s.now.Store(t)
}

func (s *RunnerTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Clock: s.mockClock})
	s.Equal(ErrNilJob, err)

	_, err = New(&Config{Job: func(context.Context) {}})
	s.Equal(ErrNilClock, err)
}

func (s *RunnerTestSuite) TestTick_RunsOncePerDay() {
	s.True(s.runner.tick(s.ctx))
	s.False(s.runner.tick(s.ctx))

	// Still the same day
	s.setNow(time.Date(2025, 4, 5, 23, 59, 59, 0, time.UTC))
	s.False(s.runner.tick(s.ctx))

	s.setNow(time.Date(2025, 4, 6, 0, 0, 1, 0, time.UTC))
	s.True(s.runner.tick(s.ctx))
	s.False(s.runner.tick(s.ctx))

	s.Equal(int32(2), s.runs.Load())
}

func (s *RunnerTestSuite) TestTick_UsesLocationForDayBoundary() {
	tokyo := time.FixedZone("JST", 9*60*60)
	runner, err := New(&Config{
		Location: tokyo,
		Clock:    s.mockClock,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Job: func(ctx context.Context) {
			s.runs.Add(1)
		},
	})
	s.Require().NoError(err)

	// 2025-04-06 08:58 in Tokyo
	s.True(runner.tick(s.ctx))

	// 2025-04-06 09:30 in Tokyo, same day there
	s.setNow(time.Date(2025, 4, 6, 0, 30, 0, 0, time.UTC))
	s.False(runner.tick(s.ctx))

	// 2025-04-07 00:30 in Tokyo
	s.setNow(time.Date(2025, 4, 6, 15, 30, 0, 0, time.UTC))
	s.True(runner.tick(s.ctx))
}

func (s *RunnerTestSuite) TestRunNow_AlwaysRuns() {
	s.runner.RunNow(s.ctx)
	s.runner.RunNow(s.ctx)
	s.Equal(int32(2), s.runs.Load())

	// The scheduled tick sees today as handled
	s.False(s.runner.tick(s.ctx))
}

func (s *RunnerTestSuite) TestStart_RunsImmediatelyAndOnDateChange() {
	s.Require().NoError(s.runner.Start(s.ctx))
	s.Equal(ErrAlreadyRunning, s.runner.Start(s.ctx))

	s.Eventually(func() bool {
		return s.runs.Load() == 1
	}, time.Second, time.Millisecond)

	s.setNow(time.Date(2025, 4, 6, 0, 0, 1, 0, time.UTC))
	s.Eventually(func() bool {
		return s.runs.Load() == 2
	}, time.Second, time.Millisecond)

	s.runner.Stop()
	s.runner.Stop()
	s.Equal(int32(2), s.runs.Load())
}

func (s *RunnerTestSuite) TestStart_StopsWhenContextIsCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	s.Require().NoError(s.runner.Start(ctx))

	s.Eventually(func() bool {
		return s.runs.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	s.runner.Stop()
}
