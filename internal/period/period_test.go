package period

import (
	"testing"
	"time"

	"github.com/KirkDiggler/forfeit/internal/models"
	"github.com/stretchr/testify/suite"
)

type PeriodTestSuite struct {
	suite.Suite
}

func TestPeriodTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodTestSuite))
}

func (s *PeriodTestSuite) TestKey_Daily() {
	s.Equal("2025-04-16", Key(Date(2025, 4, 16), models.CadenceDaily))
}

func (s *PeriodTestSuite) TestKey_UnknownCadenceDefaultsToDaily() {
	s.Equal("2025-04-16", Key(Date(2025, 4, 16), models.Cadence("fortnightly")))
	s.Equal("2025-04-16", Key(Date(2025, 4, 16), ""))
}

func (s *PeriodTestSuite) TestKey_WeeklyIsMondayOnOrBefore() {
	// 2025-04-14 is a Monday
	for day := 14; day <= 20; day++ {
		s.Equal("2025-04-14", Key(Date(2025, 4, day), models.CadenceWeekly), "day %d", day)
	}
	s.Equal("2025-04-21", Key(Date(2025, 4, 21), models.CadenceWeekly))
}

func (s *PeriodTestSuite) TestKey_WeeklyCrossesMonthAndYear() {
	// 2025-01-01 is a Wednesday, its week started on 2024-12-30
	s.Equal("2024-12-30", Key(Date(2025, 1, 1), models.CadenceWeekly))
	s.Equal("2024-12-30", Key(Date(2025, 1, 5), models.CadenceWeekly))
}

func (s *PeriodTestSuite) TestKey_MonthlyIsFirstOfMonth() {
	for day := 1; day <= 29; day++ {
		s.Equal("2024-02-01", Key(Date(2024, 2, day), models.CadenceMonthly))
	}
}

func (s *PeriodTestSuite) TestKey_IgnoresTimeOfDay() {
	d := time.Date(2025, 4, 16, 23, 59, 59, 0, time.UTC)
	s.Equal("2025-04-16", Key(d, models.CadenceDaily))
}

func (s *PeriodTestSuite) TestParseDate() {
	d, err := ParseDate("2025-04-16", time.UTC)
	s.Require().NoError(err)
	s.Equal(Date(2025, 4, 16), d)

	// Instants land on the calendar date of the configured location
	tokyo := time.FixedZone("JST", 9*60*60)
	d, err = ParseDate("2025-04-16T20:00:00Z", tokyo)
	s.Require().NoError(err)
	s.Equal(Date(2025, 4, 17), d)

	_, err = ParseDate("16/04/2025", time.UTC)
	s.ErrorIs(err, ErrInvalidDate)

	_, err = ParseDate("", time.UTC)
	s.ErrorIs(err, ErrInvalidDate)
}

func (s *PeriodTestSuite) TestParseKey_NormalizesRawDates() {
	d, err := ParseKey("2025-04-17", models.CadenceWeekly)
	s.Require().NoError(err)
	s.Equal(Date(2025, 4, 14), d)

	_, err = ParseKey("garbage", models.CadenceDaily)
	s.ErrorIs(err, ErrInvalidDate)
}

func (s *PeriodTestSuite) TestNextPrevEnd() {
	s.Equal(Date(2025, 4, 17), Next(Date(2025, 4, 16), models.CadenceDaily))
	s.Equal(Date(2025, 4, 15), Prev(Date(2025, 4, 16), models.CadenceDaily))

	s.Equal(Date(2025, 4, 21), Next(Date(2025, 4, 16), models.CadenceWeekly))
	s.Equal(Date(2025, 4, 7), Prev(Date(2025, 4, 16), models.CadenceWeekly))
	s.Equal(Date(2025, 4, 20), End(Date(2025, 4, 16), models.CadenceWeekly))

	s.Equal(Date(2025, 2, 1), Next(Date(2025, 1, 31), models.CadenceMonthly))
	s.Equal(Date(2024, 12, 1), Prev(Date(2025, 1, 31), models.CadenceMonthly))
	s.Equal(Date(2024, 2, 29), End(Date(2024, 2, 10), models.CadenceMonthly))
}

func (s *PeriodTestSuite) TestToday_UsesLocation() {
	now := time.Date(2025, 4, 16, 23, 30, 0, 0, time.UTC)
	s.Equal(Date(2025, 4, 16), Today(now, nil))

	tokyo := time.FixedZone("JST", 9*60*60)
	s.Equal(Date(2025, 4, 17), Today(now, tokyo))
}

func (s *PeriodTestSuite) TestConcluded_Daily() {
	start, ok := Concluded(Date(2025, 4, 16), models.CadenceDaily)
	s.True(ok)
	s.Equal(Date(2025, 4, 15), start)
}

func (s *PeriodTestSuite) TestConcluded_WeeklyOnlyOnMonday() {
	// Tuesday: the current week has not concluded
	_, ok := Concluded(Date(2025, 4, 15), models.CadenceWeekly)
	s.False(ok)

	// Monday: the week that started the previous Monday just ended
	start, ok := Concluded(Date(2025, 4, 21), models.CadenceWeekly)
	s.True(ok)
	s.Equal(Date(2025, 4, 14), start)
}

func (s *PeriodTestSuite) TestConcluded_MonthlyOnlyOnFirst() {
	_, ok := Concluded(Date(2025, 3, 31), models.CadenceMonthly)
	s.False(ok)

	start, ok := Concluded(Date(2025, 3, 1), models.CadenceMonthly)
	s.True(ok)
	s.Equal(Date(2025, 2, 1), start)

	start, ok = Concluded(Date(2025, 1, 1), models.CadenceMonthly)
	s.True(ok)
	s.Equal(Date(2024, 12, 1), start)
}
