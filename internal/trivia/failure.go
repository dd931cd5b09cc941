package trivia

import "errors"

// FailureKind classifies every fault the repository and input parsing can
// surface to callers.
type FailureKind int

const (
	// FailureUnknown indicates an error that did not come from this package.
	FailureUnknown FailureKind = iota
	// ServerFailure means the network was reachable but the remote fetch failed.
	ServerFailure
	// CacheFailure means the device was offline and no usable record was cached.
	CacheFailure
	// InvalidInputFailure means the raw input did not parse into a trivia number.
	InvalidInputFailure
)

func (k FailureKind) String() string {
	switch k {
	case ServerFailure:
		return "server failure"
	case CacheFailure:
		return "cache failure"
	case InvalidInputFailure:
		return "invalid input failure"
	default:
		return "unknown failure"
	}
}

// Failure is the only error type that escapes the repository, the use cases
// and ParseNumber. It carries a kind and nothing else; underlying transport
// and storage errors are logged at the boundary, never propagated. Two
// failures are equal when their kinds are equal, so
// errors.Is(err, trivia.Failure{Kind: trivia.ServerFailure}) works directly.
type Failure struct {
	Kind FailureKind
}

func (f Failure) Error() string {
	return f.Kind.String()
}

// KindOf extracts the FailureKind from an error, or FailureUnknown if the
// error is not a Failure.
func KindOf(err error) FailureKind {
	var f Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return FailureUnknown
}
