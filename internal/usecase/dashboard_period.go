package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
)

const (
	DefaultPeriod = "30d"
	prevSuffix    = "_prev"
	periodYTD     = "YTD"
)

var trailingPeriods = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

// ResolvePeriod turns a period token into an inclusive window in now's
// location:
//
//	7d, 30d, 90d  trailing N calendar days including today
//	YTD           January 1 through today
//	<token>_prev  the window of equal length ending the day before <token> starts
//
// Unknown or empty tokens resolve as 30d.
func ResolvePeriod(token string, now time.Time) entities.PeriodRange {
	token = strings.TrimSpace(token)
	prev := false
	if strings.HasSuffix(token, prevSuffix) {
		prev = true
		token = strings.TrimSuffix(token, prevSuffix)
	}
	token = canonicalPeriod(token)

	var rng entities.PeriodRange
	if token == periodYTD {
		rng = entities.PeriodRange{
			Token: periodYTD,
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   endOfDay(now),
		}
	} else {
		days := trailingPeriods[token]
		rng = entities.PeriodRange{
			Token: token,
			Start: startOfDay(now.AddDate(0, 0, -(days - 1))),
			End:   endOfDay(now),
		}
	}
	if !prev {
		return rng
	}

	days := rng.Days()
	end := endOfDay(rng.Start.AddDate(0, 0, -1))
	return entities.PeriodRange{
		Token: token + prevSuffix,
		Start: startOfDay(end.AddDate(0, 0, -(days - 1))),
		End:   end,
	}
}

func canonicalPeriod(token string) string {
	if strings.EqualFold(token, periodYTD) {
		return periodYTD
	}
	token = strings.ToLower(token)
	if _, ok := trailingPeriods[token]; ok {
		return token
	}
	return DefaultPeriod
}

// PercentChange is 0 when both values are zero and 100 when only the previous
// value is zero (-100 for a negative current value, which money totals never are).
func PercentChange(current, previous float64) float64 {
	switch {
	case previous == 0 && current == 0:
		return 0
	case previous == 0:
		if current > 0 {
			return 100
		}
		return -100
	default:
		return (current - previous) / previous * 100
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// FormatRange renders a window as "YYYY-MM-DD HH:MM:SS" bounds.
func FormatRange(r entities.PeriodRange) [2]string {
	const layout = "2006-01-02 15:04:05"
	return [2]string{r.Start.Format(layout), r.End.Format(layout)}
}

// periodLabel is used in log lines only.
func periodLabel(r entities.PeriodRange) string {
	return r.Token + "(" + strconv.Itoa(r.Days()) + "d)"
}
