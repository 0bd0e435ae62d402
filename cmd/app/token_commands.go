package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/authtokens/cmd/app/commands"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
)

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Value:   "text",
	Usage:   "Output format: 'text' or 'json'",
}

// tokenAction runs fn with a token use case built from the environment.
func tokenAction(
	fn func(ctx context.Context, cmd *cli.Command, uc usecase.TokenUseCase, logger *slog.Logger) error,
) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return commands.WithTokenUseCase(func(uc usecase.TokenUseCase, logger *slog.Logger) error {
			return fn(ctx, cmd, uc, logger)
		})
	}
}

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-token",
			Usage: "Issue a new usage-limited token bound to a parameter",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "parameter",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Value the token is bound to (e.g., a user id or email)",
				},
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Usage:   "Token type label (e.g., PASSWORD_RESET)",
				},
				&cli.IntFlag{
					Name:  "validity-seconds",
					Usage: "Lifetime in seconds (defaults to TOKEN_DEFAULT_VALIDITY_MINUTES)",
				},
				&cli.IntFlag{
					Name:    "usage-limit",
					Aliases: []string{"l"},
					Usage:   "Number of successful validations allowed (defaults to TOKEN_DEFAULT_USAGE_LIMIT)",
				},
				&cli.BoolFlag{
					Name:  "unlimited",
					Usage: "Allow any number of validations until expiry",
				},
				&cli.StringFlag{
					Name:  "hashing-mode",
					Usage: "How the token is stored: 'NONE' or 'SHA256' (defaults to TOKEN_HASHING_ENABLED)",
				},
				&cli.StringFlag{
					Name:    "metadata",
					Aliases: []string{"m"},
					Usage:   "Opaque metadata stored with the token",
				},
				formatFlag,
			},
			Action: tokenAction(
				func(ctx context.Context, cmd *cli.Command, uc usecase.TokenUseCase, logger *slog.Logger) error {
					opts := commands.GenerateTokenOptions{
						Parameter:       cmd.String("parameter"),
						TokenType:       cmd.String("type"),
						ValiditySeconds: int(cmd.Int("validity-seconds")),
						UsageLimit:      int(cmd.Int("usage-limit")),
						Unlimited:       cmd.Bool("unlimited"),
						HashingMode:     cmd.String("hashing-mode"),
						Metadata:        cmd.String("metadata"),
					}
					return commands.RunGenerateToken(ctx, uc, logger, os.Stdout, opts, cmd.String("format"))
				},
			),
		},
		{
			Name:  "validate-token",
			Usage: "Consume one use of a token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "parameter",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Value the token must be bound to",
				},
				&cli.StringFlag{
					Name:     "token",
					Required: true,
					Usage:    "Raw token value",
				},
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Usage:   "Required token type (omit to accept any)",
				},
				formatFlag,
			},
			Action: tokenAction(
				func(ctx context.Context, cmd *cli.Command, uc usecase.TokenUseCase, logger *slog.Logger) error {
					return commands.RunValidateToken(
						ctx, uc, logger, os.Stdout,
						cmd.String("parameter"), cmd.String("token"), cmd.String("type"), cmd.String("format"),
					)
				},
			),
		},
		{
			Name:  "invalidate-token",
			Usage: "Retire a token before it expires",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Required: true,
					Usage:    "Raw token value",
				},
				formatFlag,
			},
			Action: tokenAction(
				func(ctx context.Context, cmd *cli.Command, uc usecase.TokenUseCase, logger *slog.Logger) error {
					return commands.RunInvalidateToken(
						ctx, uc, logger, os.Stdout, cmd.String("token"), cmd.String("format"),
					)
				},
			),
		},
		{
			Name:  "clean-expired-tokens",
			Usage: "Delete every token whose expiry time has passed",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"n"},
					Usage:   "Show how many tokens would be deleted without deleting",
				},
				formatFlag,
			},
			Action: tokenAction(
				func(ctx context.Context, cmd *cli.Command, uc usecase.TokenUseCase, logger *slog.Logger) error {
					return commands.RunCleanExpiredTokens(
						ctx, uc, logger, os.Stdout, cmd.Bool("dry-run"), cmd.String("format"),
					)
				},
			),
		},
		{
			Name:  "show-policy",
			Usage: "Print the token policy resolved from the environment",
			Flags: []cli.Flag{formatFlag},
			Action: tokenAction(
				func(_ context.Context, cmd *cli.Command, uc usecase.TokenUseCase, _ *slog.Logger) error {
					return commands.RunShowPolicy(uc, os.Stdout, cmd.String("format"))
				},
			),
		},
	}
}
