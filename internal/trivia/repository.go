package trivia

import (
	"context"
	"log/slog"
)

//go:generate mockgen -source=repository.go -destination=../mocks/trivia/mock_repository.go -package=mock_trivia

// Repository defines the trivia read operations exposed to use cases.
type Repository interface {
	GetByNumber(ctx context.Context, number int64) (TriviaRecord, error)
	GetRandom(ctx context.Context) (TriviaRecord, error)
}

// TriviaRepository arbitrates between the remote source and the local cache.
// The policy is a strict two-branch decision made once per call: online means
// remote fetch (with a cache write on success), offline means cache read.
// The branches never cascade, so a ServerFailure always means the network was
// up and the fetch failed, and a CacheFailure always means the device was
// offline with nothing usable cached.
type TriviaRepository struct {
	probe  ConnectivityProbe
	remote RemoteDataSource
	cache  CacheStore
}

var _ Repository = (*TriviaRepository)(nil)

// NewTriviaRepository creates a new TriviaRepository.
func NewTriviaRepository(probe ConnectivityProbe, remote RemoteDataSource, cache CacheStore) *TriviaRepository {
	return &TriviaRepository{
		probe:  probe,
		remote: remote,
		cache:  cache,
	}
}

// GetByNumber returns trivia for a specific number.
func (r *TriviaRepository) GetByNumber(ctx context.Context, number int64) (TriviaRecord, error) {
	return r.get(ctx, func(ctx context.Context) (TriviaRecord, error) {
		return r.remote.FetchByNumber(ctx, number)
	})
}

// GetRandom returns trivia for a random number.
func (r *TriviaRepository) GetRandom(ctx context.Context) (TriviaRecord, error) {
	return r.get(ctx, r.remote.FetchRandom)
}

func (r *TriviaRepository) get(ctx context.Context, fetch func(ctx context.Context) (TriviaRecord, error)) (TriviaRecord, error) {
	if !r.probe.IsConnected(ctx) {
		record, err := r.cache.Last(ctx)
		if err != nil {
			slog.Default().Debug("no cached trivia available while offline", "error", err)
			return TriviaRecord{}, Failure{Kind: CacheFailure}
		}
		return record, nil
	}

	record, err := fetch(ctx)
	if err != nil {
		slog.Default().Debug("remote trivia fetch failed", "error", err)
		return TriviaRecord{}, Failure{Kind: ServerFailure}
	}

	// The write is awaited so no work dangles past the call, but its failure
	// does not change the call's result.
	if err := r.cache.Save(ctx, record); err != nil {
		slog.Default().Warn("failed to cache fetched trivia", "number", record.Number, "error", err)
	}
	return record, nil
}
