package trivia

import (
	"context"
)

// GetConcreteNumberTrivia validates raw input and delegates to the
// repository. It holds no state beyond the repository reference.
type GetConcreteNumberTrivia struct {
	repository Repository
}

// NewGetConcreteNumberTrivia creates a new GetConcreteNumberTrivia use case.
func NewGetConcreteNumberTrivia(repository Repository) *GetConcreteNumberTrivia {
	return &GetConcreteNumberTrivia{repository: repository}
}

// Execute parses raw into a number and fetches its trivia. The repository's
// result is propagated unchanged.
func (uc *GetConcreteNumberTrivia) Execute(ctx context.Context, raw string) (TriviaRecord, error) {
	number, err := ParseNumber(raw)
	if err != nil {
		return TriviaRecord{}, err
	}
	return uc.repository.GetByNumber(ctx, number)
}

// GetRandomNumberTrivia fetches trivia for a random number. It takes no input
// and performs no validation.
type GetRandomNumberTrivia struct {
	repository Repository
}

// NewGetRandomNumberTrivia creates a new GetRandomNumberTrivia use case.
func NewGetRandomNumberTrivia(repository Repository) *GetRandomNumberTrivia {
	return &GetRandomNumberTrivia{repository: repository}
}

// Execute fetches random trivia, propagating the repository's result unchanged.
func (uc *GetRandomNumberTrivia) Execute(ctx context.Context) (TriviaRecord, error) {
	return uc.repository.GetRandom(ctx)
}
