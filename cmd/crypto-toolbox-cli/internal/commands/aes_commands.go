package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ivFileSuffix is appended to a ciphertext path to store the hex IV next to it.
const ivFileSuffix = ".iv"

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	symmetricService cryptoalg.SymmetricService
	defaults         *config.CryptoDefaults
	logger           logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger and symmetric service.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	defaults := &cfg.Crypto

	symmetricService, err := newSymmetricService(defaults, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric service: %w", err)
	}

	return &AESCommandHandler{
		symmetricService: symmetricService,
		defaults:         defaults,
		logger:           loggerInstance,
	}, nil
}

// GenerateAESKeyCmd generates a hex encoded AES key and persists it in a selected directory
func (commandHandler *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) error {
	keyBits, err := cmd.Flags().GetInt("key-bits")
	if err != nil {
		return fmt.Errorf("invalid key-bits flag: %w", err)
	}
	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		return fmt.Errorf("invalid mode flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	if keyDir == "" {
		keyDir = commandHandler.defaults.KeyOutputPath
	}

	key, err := resultData("generate AES key", commandHandler.symmetricService.GenerateKey(keyBits, mode))
	if err != nil {
		return err
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.hex", uuid.New()))
	if err := os.WriteFile(keyFilePath, key, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	commandHandler.logger.Info("AES key saved to ", keyFilePath)
	return nil
}

// EncryptAESCmd encrypts a file using AES and stores the hex IV next to the ciphertext
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	request, inputFilePath, outputFilePath, err := commandHandler.readRequest(cmd)
	if err != nil {
		return err
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	request.Data = string(plainText)

	result := commandHandler.symmetricService.Encrypt(request)
	cipherText, err := resultData("encrypt AES", result.Result)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFilePath, cipherText, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if result.IV != "" {
		if err := os.WriteFile(outputFilePath+ivFileSuffix, []byte(result.IV), 0600); err != nil {
			return fmt.Errorf("failed to write IV file: %w", err)
		}
	}

	commandHandler.logger.Info("Encrypted data saved to ", outputFilePath)
	return nil
}

// DecryptAESCmd decrypts a file using AES. Without an --iv flag the IV stored next to the input is used.
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	request, inputFilePath, outputFilePath, err := commandHandler.readRequest(cmd)
	if err != nil {
		return err
	}

	cipherText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	request.Data = string(cipherText)

	if request.IV == "" {
		iv, err := os.ReadFile(filepath.Clean(inputFilePath + ivFileSuffix))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read IV file: %w", err)
		}
		request.IV = strings.TrimSpace(string(iv))
	}

	plainText, err := resultData("decrypt AES", commandHandler.symmetricService.Decrypt(request))
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFilePath, plainText, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
	return nil
}

func (commandHandler *AESCommandHandler) readRequest(cmd *cobra.Command) (cryptoalg.SymmetricRequest, string, string, error) {
	var request cryptoalg.SymmetricRequest
	flags := cmd.Flags()

	inputFilePath, err := flags.GetString("input-file")
	if err != nil {
		return request, "", "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := flags.GetString("output-file")
	if err != nil {
		return request, "", "", fmt.Errorf("invalid output-file flag: %w", err)
	}
	keyFilePath, err := flags.GetString("symmetric-key")
	if err != nil {
		return request, "", "", fmt.Errorf("invalid symmetric-key flag: %w", err)
	}

	key, err := os.ReadFile(filepath.Clean(keyFilePath))
	if err != nil {
		return request, "", "", fmt.Errorf("failed to read key file: %w", err)
	}

	request.Key = strings.TrimSpace(string(key))
	request.KeyEncoding = cryptoalg.ValueEncodingHex
	request.IVEncoding = cryptoalg.ValueEncodingHex
	if request.Mode, err = flags.GetString("mode"); err != nil {
		return request, "", "", fmt.Errorf("invalid mode flag: %w", err)
	}
	if request.Padding, err = flags.GetString("padding"); err != nil {
		return request, "", "", fmt.Errorf("invalid padding flag: %w", err)
	}
	if request.KeyBits, err = flags.GetInt("key-bits"); err != nil {
		return request, "", "", fmt.Errorf("invalid key-bits flag: %w", err)
	}
	if request.Encoding, err = flags.GetString("encoding"); err != nil {
		return request, "", "", fmt.Errorf("invalid encoding flag: %w", err)
	}
	if request.IV, err = flags.GetString("iv"); err != nil {
		return request, "", "", fmt.Errorf("invalid iv flag: %w", err)
	}

	return request, inputFilePath, outputFilePath, nil
}

func addAESOptionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input-file", "", "", "Path to the input file")
	cmd.Flags().StringP("output-file", "", "", "Path to the output file")
	cmd.Flags().StringP("symmetric-key", "", "", "Path to the hex encoded symmetric key")
	cmd.Flags().StringP("mode", "", "", "Cipher mode (ECB, CBC, OFB, CFB, XTS, CCM, EAX, GCM)")
	cmd.Flags().StringP("padding", "", "", "Padding scheme (NONE, ZEROS, PKCS7, ONE_AND_ZEROS, W3C, DEFAULT)")
	cmd.Flags().IntP("key-bits", "", 0, "AES key strength in bits (128, 192, 256)")
	cmd.Flags().StringP("encoding", "", "", "Ciphertext encoding (NONE, BASE64, HEX)")
	cmd.Flags().StringP("iv", "", "", "Hex encoded IV or nonce")
	_ = cmd.MarkFlagRequired("input-file")
	_ = cmd.MarkFlagRequired("output-file")
	_ = cmd.MarkFlagRequired("symmetric-key")
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate a hex encoded AES key",
		RunE:  handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().IntP("key-bits", "", 0, "AES key strength in bits (128, 192, 256)")
	generateAESKeyCmd.Flags().StringP("mode", "", "", "Cipher mode the key is meant for; XTS doubles the key length")
	generateAESKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the key")
	rootCmd.AddCommand(generateAESKeyCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES",
		RunE:  handler.EncryptAESCmd,
	}
	addAESOptionFlags(encryptAESFileCmd)
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file using AES",
		RunE:  handler.DecryptAESCmd,
	}
	addAESOptionFlags(decryptAESFileCmd)
	rootCmd.AddCommand(decryptAESFileCmd)

	return nil
}
