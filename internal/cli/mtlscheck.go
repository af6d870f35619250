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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-attest/pkg/certstore"
	"github.com/jeremyhahn/go-attest/pkg/keystore"
	"github.com/jeremyhahn/go-attest/pkg/mtls"
)

// mtlsCheckCmd assembles the mTLS server configuration from the configured
// identity and trust-anchor paths, so operators can validate a deployment
// without starting the agent.
var mtlsCheckCmd = &cobra.Command{
	Use:   "mtls-check",
	Short: "Validate the configured mTLS identity and trust anchors",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := getLogger()
		cfg, err := getConfig()
		if err != nil {
			return err
		}

		cert, err := certstore.LoadPEM(cfg.Agent.CertFile)
		if err != nil {
			return err
		}
		pair, err := keystore.Load(cfg.Agent.KeyFile, cfg.Agent.Passphrase())
		if err != nil {
			return err
		}
		logger.Debugf("loaded identity %s from %s", cert.Subject.CommonName, cfg.Agent.CertFile)
		anchors := certstore.LoadList(logger, cfg.TLS.TrustedCACerts)

		if _, err := mtls.NewServerConfig(cert, pair.Private, anchors); err != nil {
			return err
		}
		fmt.Printf("ok: identity %s, %d trust anchor(s)\n", cert.Subject.CommonName, len(anchors))
		return nil
	},
}
