package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// ConfigPathEnv names the optional YAML config file read by every command.
const ConfigPathEnv = "CONFIG_PATH"

// setupLogger initializes the process logger from the configured settings.
func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads defaults, the optional file named by ConfigPathEnv and the environment.
func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(os.Getenv(ConfigPathEnv))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newSymmetricService(defaults *config.CryptoDefaults, log logger.Logger) (cryptoalg.SymmetricService, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}
	return app.NewSymmetricService(aesProcessor, defaults, log)
}

func newAsymmetricService(defaults *config.CryptoDefaults, log logger.Logger) (cryptoalg.AsymmetricService, error) {
	keyCodec, err := cryptography.NewRSAKeyCodec(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA key codec: %w", err)
	}
	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	return app.NewAsymmetricService(keyCodec, rsaProcessor, defaults, log)
}

// resultData returns the payload of a successful result or its error.
func resultData(op string, result cryptoalg.Result) ([]byte, error) {
	if !result.Success {
		return nil, fmt.Errorf("%s: %s", op, result.Error)
	}
	return result.Data, nil
}
