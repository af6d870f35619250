// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-attest.
//
// go-attest is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-attest/internal/config"
	"github.com/jeremyhahn/go-attest/pkg/logging"
)

var (
	configFile string
	debug      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "attest",
	Short: "go-attest CLI - remote attestation trust-layer tooling",
	Long: `go-attest CLI manages the cryptographic trust layer of the
remote-attestation agent: identity key material, identity and trust-anchor
certificates, device-identity template classification, and the legacy key
derivation shared with the verifier.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "/etc/attest/config.yaml",
		"config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(kdfCmd)
	rootCmd.AddCommand(mtlsCheckCmd)
}

// getLogger returns a logger honoring the --debug flag
func getLogger() *logging.Logger {
	return logging.NewLogger(debug)
}

// getConfig loads the configured file, falling back to defaults when it
// does not exist so first-run keygen works without one.
func getConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Defaults(), nil
		}
		return nil, err
	}
	return cfg, nil
}
