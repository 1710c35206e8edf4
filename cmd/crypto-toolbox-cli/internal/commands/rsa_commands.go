package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	asymmetricService cryptoalg.AsymmetricService
	defaults          *config.CryptoDefaults
	logger            logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and an asymmetric service.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	defaults := &cfg.Crypto

	asymmetricService, err := newAsymmetricService(defaults, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create asymmetric service: %w", err)
	}

	return &RSACommandHandler{
		asymmetricService: asymmetricService,
		defaults:          defaults,
		logger:            loggerInstance,
	}, nil
}

// GenerateRSAKeysCmd generates an RSA key pair and persists both keys in a selected directory
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("invalid format flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	if keyDir == "" {
		keyDir = commandHandler.defaults.KeyOutputPath
	}

	pair := commandHandler.asymmetricService.GenerateKeyPair(keySize, format)
	publicKey, err := resultData("generate RSA public key", pair.PublicKey)
	if err != nil {
		return err
	}
	privateKey, err := resultData("generate RSA private key", pair.PrivateKey)
	if err != nil {
		return err
	}

	uniqueID := uuid.New()

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID))
	if err := os.WriteFile(privateKeyFilePath, privateKey, 0600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}
	commandHandler.logger.Info("Private key saved to ", privateKeyFilePath)

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID))
	if err := os.WriteFile(publicKeyFilePath, publicKey, 0600); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}
	commandHandler.logger.Info("Public key saved to ", publicKeyFilePath)
	return nil
}

// EncryptRSACmd encrypts a file with an RSA public key and writes base64 ciphertext
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.run(cmd, "public-key", "encrypt RSA", commandHandler.asymmetricService.Encrypt)
}

// DecryptRSACmd decrypts a file of base64 ciphertext with an RSA private key
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.run(cmd, "private-key", "decrypt RSA", commandHandler.asymmetricService.Decrypt)
}

func (commandHandler *RSACommandHandler) run(cmd *cobra.Command, keyFlag, op string, fn func(cryptoalg.AsymmetricRequest) cryptoalg.Result) error {
	flags := cmd.Flags()

	inputFilePath, err := flags.GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := flags.GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	keyFilePath, err := flags.GetString(keyFlag)
	if err != nil {
		return fmt.Errorf("invalid %s flag: %w", keyFlag, err)
	}
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("invalid format flag: %w", err)
	}
	padding, err := flags.GetString("padding")
	if err != nil {
		return fmt.Errorf("invalid padding flag: %w", err)
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	key, err := os.ReadFile(filepath.Clean(keyFilePath))
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}

	out, err := resultData(op, fn(cryptoalg.AsymmetricRequest{
		Data:    string(data),
		Key:     string(key),
		Format:  format,
		Padding: padding,
	}))
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFilePath, out, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	commandHandler.logger.Info("Output saved to ", outputFilePath)
	return nil
}

func addRSAOptionFlags(cmd *cobra.Command, keyFlag, keyUsage string) {
	cmd.Flags().StringP("input-file", "", "", "Path to the input file")
	cmd.Flags().StringP("output-file", "", "", "Path to the output file")
	cmd.Flags().StringP(keyFlag, "", "", keyUsage)
	cmd.Flags().StringP("format", "", "", "PEM header convention (PKCS, RSA)")
	cmd.Flags().StringP("padding", "", "", "RSA padding (PKCS1v15, OAEP_SHA1, OAEP_SHA256, OAEP_SHA512, NO_PADDING)")
	_ = cmd.MarkFlagRequired("input-file")
	_ = cmd.MarkFlagRequired("output-file")
	_ = cmd.MarkFlagRequired(keyFlag)
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate RSA keys",
		RunE:  handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().IntP("key-size", "", 0, "RSA modulus size in bits (512, 1024, 2048, 3072, 4096)")
	generateRSAKeysCmd.Flags().StringP("format", "", "", "PEM header convention (PKCS, RSA)")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSAFileCmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a file using RSA",
		RunE:  handler.EncryptRSACmd,
	}
	addRSAOptionFlags(encryptRSAFileCmd, "public-key", "Path to the PEM encoded public key")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt a file using RSA",
		RunE:  handler.DecryptRSACmd,
	}
	addRSAOptionFlags(decryptRSAFileCmd, "private-key", "Path to the PEM encoded private key")
	rootCmd.AddCommand(decryptRSAFileCmd)

	return nil
}
