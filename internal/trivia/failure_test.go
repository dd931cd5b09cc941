package trivia

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Equality(t *testing.T) {
	assert.ErrorIs(t, Failure{Kind: ServerFailure}, Failure{Kind: ServerFailure})
	assert.NotErrorIs(t, Failure{Kind: ServerFailure}, Failure{Kind: CacheFailure})

	// Kind equality survives wrapping.
	wrapped := fmt.Errorf("lookup > %w", Failure{Kind: CacheFailure})
	assert.ErrorIs(t, wrapped, Failure{Kind: CacheFailure})
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "server failure",
			err:  Failure{Kind: ServerFailure},
			want: ServerFailure,
		},
		{
			name: "wrapped cache failure",
			err:  fmt.Errorf("wrapped: %w", Failure{Kind: CacheFailure}),
			want: CacheFailure,
		},
		{
			name: "foreign error",
			err:  errors.New("boom"),
			want: FailureUnknown,
		},
		{
			name: "nil error",
			err:  nil,
			want: FailureUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "server failure", ServerFailure.String())
	assert.Equal(t, "cache failure", CacheFailure.String())
	assert.Equal(t, "invalid input failure", InvalidInputFailure.String())
	assert.Equal(t, "unknown failure", FailureUnknown.String())
}
