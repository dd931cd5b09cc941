package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ddanielcruz/numbertrivia/internal/trivia"
)

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <number>",
		Short: "Show trivia about a specific number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), func(ctx context.Context, repository trivia.Repository) (trivia.TriviaRecord, error) {
				return trivia.NewGetConcreteNumberTrivia(repository).Execute(ctx, args[0])
			})
		},
	}
}

func newRandomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show trivia about a random number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), func(ctx context.Context, repository trivia.Repository) (trivia.TriviaRecord, error) {
				return trivia.NewGetRandomNumberTrivia(repository).Execute(ctx)
			})
		},
	}
}

func runLookup(ctx context.Context, lookup func(ctx context.Context, repository trivia.Repository) (trivia.TriviaRecord, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig > %w", err)
	}

	repository, closer, err := newRepository(cfg)
	if err != nil {
		return fmt.Errorf("newRepository > %w", err)
	}
	defer func() {
		_ = closer()
	}()

	record, err := lookup(ctx, repository)
	if err != nil {
		color.Red("%s", failureMessage(err))
		return err
	}
	color.Green("%s", record.Text)
	return nil
}

func failureMessage(err error) string {
	switch trivia.KindOf(err) {
	case trivia.InvalidInputFailure:
		return "Invalid Input - The number must be a positive integer or zero."
	case trivia.ServerFailure:
		return "Server Failure"
	case trivia.CacheFailure:
		return "Cache Failure"
	default:
		return "Unexpected Error"
	}
}
