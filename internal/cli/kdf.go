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

	"github.com/jeremyhahn/go-attest/pkg/crypto/kdf"
)

// kdfCmd derives the legacy shared key from a password and salt, for
// debugging interoperability with the verifier's derivation.
var kdfCmd = &cobra.Command{
	Use:   "kdf <password> <salt>",
	Short: "Derive the legacy PBKDF2 key for a password and salt",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(kdf.DeriveKey(args[0], args[1]))
		return nil
	},
}
