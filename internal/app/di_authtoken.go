package app

import (
	"fmt"

	authtokenHTTP "github.com/allisson/authtokens/internal/authtoken/http"
	"github.com/allisson/authtokens/internal/authtoken/repository"
	"github.com/allisson/authtokens/internal/authtoken/service"
	"github.com/allisson/authtokens/internal/authtoken/usecase"
	"github.com/allisson/authtokens/internal/database"
)

type tokenPrimitives struct {
	generator service.TokenGenerator
	digest    service.Digest
}

// TokenRepository returns the token store selected by DB_DRIVER.
func (c *Container) TokenRepository() (usecase.TokenRepository, error) {
	return lazy(c, &c.tokenRepositoryInit, "tokenRepository", &c.tokenRepository, c.initTokenRepository)
}

// TokenPrimitives returns the entropy source and digest after checking that both work.
// A failed check wraps domain.ErrConfigurationFatal.
func (c *Container) TokenPrimitives() (service.TokenGenerator, service.Digest, error) {
	primitives, err := lazy(c, &c.tokenPrimitivesInit, "tokenPrimitives", &c.tokenPrimitives, c.initTokenPrimitives)
	if err != nil {
		return nil, nil, err
	}
	return primitives.generator, primitives.digest, nil
}

// TokenUseCase returns the lifecycle engine, decorated with metrics when enabled.
func (c *Container) TokenUseCase() (usecase.TokenUseCase, error) {
	return lazy(c, &c.tokenUseCaseInit, "tokenUseCase", &c.tokenUseCase, c.initTokenUseCase)
}

// TokenHandler returns the HTTP handler for the token routes.
func (c *Container) TokenHandler() (*authtokenHTTP.TokenHandler, error) {
	return lazy(c, &c.tokenHandlerInit, "tokenHandler", &c.tokenHandler, c.initTokenHandler)
}

// CleanupWorker returns the background worker that deletes expired tokens.
func (c *Container) CleanupWorker() (*usecase.CleanupWorker, error) {
	return lazy(c, &c.cleanupWorkerInit, "cleanupWorker", &c.cleanupWorker, c.initCleanupWorker)
}

func (c *Container) initTokenRepository() (usecase.TokenRepository, error) {
	if c.config.DBDriver == database.DriverMemory {
		c.Logger().Warn("using in-memory token store; tokens are lost on restart")
		return repository.NewMemoryTokenRepository(), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for token repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return repository.NewPostgreSQLTokenRepository(db), nil
	case database.DriverMySQL:
		return repository.NewMySQLTokenRepository(db), nil
	case database.DriverSQLite:
		return repository.NewSQLiteTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initTokenPrimitives() (tokenPrimitives, error) {
	generator := service.NewHexTokenGenerator()
	digest := service.NewSHA256Digest()

	if err := service.CheckPrimitives(generator, digest); err != nil {
		return tokenPrimitives{}, err
	}
	return tokenPrimitives{generator: generator, digest: digest}, nil
}

func (c *Container) initTokenUseCase() (usecase.TokenUseCase, error) {
	tokenRepository, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for token use case: %w", err)
	}

	generator, digest, err := c.TokenPrimitives()
	if err != nil {
		return nil, fmt.Errorf("failed to get token primitives for token use case: %w", err)
	}

	var opts []usecase.Option
	if c.config.DBDriver != database.DriverMemory {
		txManager, err := c.TxManager()
		if err != nil {
			return nil, fmt.Errorf("failed to get tx manager for token use case: %w", err)
		}
		opts = append(opts, usecase.WithTxManager(txManager))
	}

	baseUseCase, err := usecase.NewTokenUseCase(
		tokenRepository,
		generator,
		digest,
		c.config.TokenPolicy(),
		c.Logger(),
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token use case: %w", err)
	}

	if !c.config.MetricsEnabled {
		return baseUseCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
	}
	return usecase.NewTokenUseCaseWithMetrics(baseUseCase, businessMetrics), nil
}

func (c *Container) initTokenHandler() (*authtokenHTTP.TokenHandler, error) {
	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}
	return authtokenHTTP.NewTokenHandler(tokenUseCase, c.Logger()), nil
}

func (c *Container) initCleanupWorker() (*usecase.CleanupWorker, error) {
	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for cleanup worker: %w", err)
	}
	return usecase.NewCleanupWorker(tokenUseCase, c.config.TokenCleanupInterval, c.Logger()), nil
}
