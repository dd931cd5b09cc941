package trivia

import (
	"strconv"
)

// ParseNumber converts raw user input into a trivia number. Only base-10,
// non-negative integers are accepted. It runs before the repository is
// invoked, so invalid input never reaches the network or the cache.
func ParseNumber(raw string) (int64, error) {
	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || number < 0 {
		return 0, Failure{Kind: InvalidInputFailure}
	}
	return number, nil
}
