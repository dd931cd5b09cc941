package trivia

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/trivia/mock_trivia.go -package=mock_trivia

// ConnectivityProbe reports current network reachability. It is queried fresh
// on every repository call and must resolve rather than fail: an
// implementation that cannot complete its check reports false.
type ConnectivityProbe interface {
	IsConnected(ctx context.Context) bool
}

// RemoteDataSource fetches trivia over the network. Any fault, regardless of
// cause, is returned as an error for the repository to classify. Retry
// policy, if any, belongs to the implementation, not to callers.
type RemoteDataSource interface {
	FetchByNumber(ctx context.Context, number int64) (TriviaRecord, error)
	FetchRandom(ctx context.Context) (TriviaRecord, error)
}

// CacheStore holds the single most recently fetched record. Concrete-number
// and random results share the one slot; Save overwrites whatever was there.
type CacheStore interface {
	// Last returns the cached record. It fails when nothing has ever been
	// cached or the stored payload is corrupt.
	Last(ctx context.Context) (TriviaRecord, error)
	Save(ctx context.Context, record TriviaRecord) error
}
