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
	"crypto/x509"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-attest/pkg/certstore"
	"github.com/jeremyhahn/go-attest/pkg/devid"
)

var classifyDER bool

// classifyCmd prints the device-identity template label for a certificate.
var classifyCmd = &cobra.Command{
	Use:   "classify <cert-file>",
	Short: "Classify a certificate against the device-identity key templates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cert *x509.Certificate
		var err error
		if classifyDER {
			cert, err = certstore.LoadDER(args[0])
		} else {
			cert, err = certstore.LoadPEM(args[0])
		}
		if err != nil {
			return err
		}

		template, err := devid.Classify(cert)
		if err != nil {
			return err
		}
		if template == devid.TemplateUnknown {
			fmt.Printf("%s: no matching template\n", cert.Subject.CommonName)
			return nil
		}
		fmt.Printf("%s: %s\n", cert.Subject.CommonName, template)
		return nil
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyDER, "der", false, "certificate file is DER encoded")
}
