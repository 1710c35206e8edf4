// Package main is the entry point for the crypto-toolbox-cli application.
// It registers the AES and RSA sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/crypto-toolbox/cmd/crypto-toolbox-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-toolbox-cli",
		Short: "Symmetric and asymmetric encryption CLI tool",
		Long: `crypto-toolbox-cli encrypts and decrypts files with AES (ECB, CBC, OFB, CFB, XTS, CCM, EAX, GCM)
and RSA (PKCS1v15, OAEP, raw), and generates AES keys and PEM encoded RSA key pairs.

Defaults for omitted options are read from the YAML file named by CONFIG_PATH
and from CRYPTO_TOOLBOX_CRYPTO_* environment variables.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
