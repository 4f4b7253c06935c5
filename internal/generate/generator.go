// Package generate produces the fixed, reproducible test-case set shared
// by every benchmark scenario.
package generate

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/errsig/errbench/internal/models"
)

// validTimestamps parse cleanly under the pipeline's canonical layout.
var validTimestamps = []string{
	"2024-01-15 10:30:45",
	"2023-12-31 23:59:59",
	"2024-06-15 14:22:33",
	"2024-03-10 08:15:00",
	"2024-09-20 17:45:12",
	"2024-11-05 12:00:00",
	"2024-02-29 09:30:15", // leap day
	"2024-07-04 16:20:55",
	"2024-05-01 11:11:11",
	"2024-08-18 19:45:30",
}

// invalidTimestamps are malformed in exactly the way the format stage
// rejects. Every entry survives the earlier normalization and extraction
// stages untouched, so shallow and deep pipelines fail at the same point.
var invalidTimestamps = []string{
	"2024/01/15 10:30:45", // wrong separator
	"15-01-2024 10:30:45", // wrong field order
	"2024-13-01 10:30:45", // month 13
	"2024-01-32 10:30:45", // day 32
	"2024-01-15 25:30:45", // hour 25
	"2024-01-15 10:70:45", // minute 70
	"2024-01-15 10:30:70", // second 70
	"2024-02-30 10:30:45", // no such date
	"2024-1-5 10:30:45",   // single-digit month and day
	"24-01-15 10:30:45",   // two-digit year
	"2024-01-15",          // missing time
	"10:30:45",            // missing date
	"not-a-datetime",
}

// Generate builds n test cases of which round(n*failureRatio) carry a
// timestamp that fails format validation; the rest pass the full
// pipeline. The seed fixes both the corpus picks and the final shuffle,
// so identical parameters always yield an identical set.
func Generate(n int, failureRatio float64, seed int64) (models.TestCaseSet, error) {
	if n <= 0 {
		return nil, models.Configf("case count must be positive, got %d", n)
	}
	if failureRatio < 0 || failureRatio > 1 {
		return nil, models.Configf("failure ratio must be in [0, 1], got %g", failureRatio)
	}

	failures := int(math.Round(float64(n) * failureRatio))
	rng := rand.New(rand.NewSource(seed))

	cases := make(models.TestCaseSet, 0, n)
	for i := 0; i < n; i++ {
		expectSuccess := i >= failures
		ts := invalidTimestamps[rng.Intn(len(invalidTimestamps))]
		if expectSuccess {
			ts = validTimestamps[rng.Intn(len(validTimestamps))]
		}
		cases = append(cases, models.TestCase{
			ID:            i,
			RawMessage:    decorate(rng, fmt.Sprintf("user_%d | %s | message content %d", i, ts, i)),
			ExpectSuccess: expectSuccess,
		})
	}

	// Interleave passing and failing cases deterministically.
	rng.Shuffle(len(cases), func(i, j int) {
		cases[i], cases[j] = cases[j], cases[i]
	})

	return cases, nil
}

// decorate adds whitespace and quoting noise that the parse stages must
// normalize away. The noise never touches the timestamp field itself.
func decorate(rng *rand.Rand, msg string) string {
	switch rng.Intn(4) {
	case 1:
		return "  " + msg + " "
	case 2:
		return "\t" + msg + "\t"
	case 3:
		return `"` + msg + `"`
	default:
		return msg
	}
}
