package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the wallet password (file mode only) is prompted at runtime and kept in memory - use GetSolanaPasswordBytes()
type Config struct {
	Port                string        `envconfig:"PORT" default:"8080"`
	SolanaRPCURL        string        `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	SolanaSecretKey     string        `envconfig:"SOLANA_WALLET_SECRET_KEY"`
	SolanaFilePath      string        `envconfig:"SOLANA_FILE_PATH"`
	ExplorerCluster     string        `envconfig:"EXPLORER_CLUSTER" default:"devnet"`
	ConfirmTimeout      time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"60s"`
	ConfirmPollInterval time.Duration `envconfig:"CONFIRM_POLL_INTERVAL" default:"1s"`
	SendCooldown        time.Duration `envconfig:"SEND_COOLDOWN" default:"0s"`
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads and validates configuration without touching the global instance
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that exactly one sender credential source is configured
func (c *Config) Validate() error {
	if c.SolanaSecretKey == "" && c.SolanaFilePath == "" {
		return errors.New("either SOLANA_WALLET_SECRET_KEY or SOLANA_FILE_PATH must be set")
	}
	if c.SolanaSecretKey != "" && c.SolanaFilePath != "" {
		return errors.New("SOLANA_WALLET_SECRET_KEY and SOLANA_FILE_PATH are mutually exclusive")
	}
	if c.ConfirmTimeout <= 0 {
		return errors.New("CONFIRM_TIMEOUT must be positive")
	}
	if c.ConfirmPollInterval <= 0 {
		return errors.New("CONFIRM_POLL_INTERVAL must be positive")
	}
	if c.SendCooldown < 0 {
		return errors.New("SEND_COOLDOWN must not be negative")
	}
	return nil
}

// UsesWalletFile reports whether the sender key comes from an encrypted .cwt file
func (c *Config) UsesWalletFile() bool {
	return c.SolanaFilePath != ""
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetSolanaSecretKey returns the JSON-encoded sender key from configuration
func GetSolanaSecretKey() string {
	return Get().SolanaSecretKey
}

// GetSolanaFilePath returns path to .cwt file from configuration
func GetSolanaFilePath() string {
	return Get().SolanaFilePath
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	raw, err := ReadPassword("Enter wallet password: ")
	if err != nil {
		return err
	}

	passwordBytes = raw
	return nil
}

// ReadPassword reads a non-empty password from the terminal without echo
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}

// GetSolanaPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetSolanaPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
