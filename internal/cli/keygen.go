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
	"crypto/rsa"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-attest/pkg/certstore"
	"github.com/jeremyhahn/go-attest/pkg/keystore"
)

var keygenBits int

// keygenCmd generates the agent identity: an RSA key pair persisted as
// PKCS#8 PEM (passphrase-protected when configured) and a self-signed
// identity certificate with the agent UUID as its common name.
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate the agent identity key pair and certificate",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := getLogger()
		cfg, err := getConfig()
		if err != nil {
			return err
		}

		agentID := uuid.New()
		if cfg.Agent.UUID != "" {
			agentID, err = uuid.Parse(cfg.Agent.UUID)
			if err != nil {
				return fmt.Errorf("invalid agent uuid %q: %w", cfg.Agent.UUID, err)
			}
		}

		logger.Debugf("agent uuid %s", agentID)
		logger.Infof("generating RSA-%d identity key", keygenBits)
		pair, err := keystore.Generate(keygenBits)
		if err != nil {
			return err
		}
		if err := keystore.Save(pair.Private, cfg.Agent.KeyFile, cfg.Agent.Passphrase()); err != nil {
			return err
		}
		logger.Infof("private key written to %s", cfg.Agent.KeyFile)

		cert, err := certstore.GenerateSelfSigned(pair.Private.(*rsa.PrivateKey), agentID)
		if err != nil {
			return err
		}
		if err := certstore.WritePEM(cert, cfg.Agent.CertFile); err != nil {
			return err
		}
		logger.Infof("identity certificate for %s written to %s", agentID, cfg.Agent.CertFile)

		publicPEM, err := keystore.EncodePublicPEM(pair.Public)
		if err != nil {
			return err
		}
		fmt.Print(publicPEM)
		return nil
	},
}

func init() {
	keygenCmd.Flags().IntVar(&keygenBits, "bits", 2048, "RSA modulus size in bits")
}
