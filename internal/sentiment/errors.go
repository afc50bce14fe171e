package sentiment

import "github.com/friendsofgo/errors"

var (
	// ErrNoData marks an empty session report range. It is a sentinel, not
	// a failure: callers render it as an explicit "No data" result.
	ErrNoData = errors.New("no data for range")
	// ErrInvalidVote rejects calibration votes outside happy/sad/neutral.
	ErrInvalidVote = errors.New("invalid calibration vote")
)
