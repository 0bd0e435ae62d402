package commands

import (
	"fmt"
	"io"

	"github.com/allisson/authtokens/internal/authtoken/http/dto"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
)

// RunShowPolicy prints the token policy resolved from the environment.
func RunShowPolicy(tokenUseCase usecase.TokenUseCase, writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	policy := dto.MapPolicyToResponse(tokenUseCase.Policy())
	if format == "json" {
		return writeJSON(writer, policy)
	}

	_, _ = fmt.Fprintf(writer, "Default validity:      %ds\n", policy.DefaultValiditySeconds)
	_, _ = fmt.Fprintf(writer, "Default usage limit:   %d\n", policy.DefaultUsageLimit)
	_, _ = fmt.Fprintf(writer, "Token length:          %d bytes\n", policy.TokenLength)
	_, _ = fmt.Fprintf(writer, "Default hashing mode:  %s\n", policy.DefaultHashingMode)
	_, _ = fmt.Fprintf(writer, "Cleanup enabled:       %t\n", policy.CleanupEnabled)
	_, _ = fmt.Fprintf(writer, "Cleanup interval:      %ds\n", policy.CleanupIntervalSeconds)
	_, _ = fmt.Fprintf(writer, "Allow multiple active: %t\n", policy.AllowMultipleActive)
	return nil
}
