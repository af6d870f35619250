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

// Package config holds the agent trust-layer configuration: where identity
// key material lives on disk and which trust anchors the mTLS listener
// verifies peers against.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jeremyhahn/go-attest/pkg/keystore"
)

// Config represents the complete trust-layer configuration
type Config struct {
	Agent   AgentConfig   `yaml:"agent"`
	TLS     TLSConfig     `yaml:"tls"`
	Logging LoggingConfig `yaml:"logging"`
}

// AgentConfig locates the agent identity material
type AgentConfig struct {
	// UUID is the agent identity; generated on first keygen when empty.
	UUID string `yaml:"uuid"`

	// KeyFile is the PKCS#8 PEM private key path.
	KeyFile string `yaml:"key_file"`

	// KeyPassphrase encrypts the private key at rest. Absent means
	// cleartext; a set but empty value also means cleartext per the legacy
	// convention, and the distinction is preserved so operators can audit
	// which was intended.
	KeyPassphrase *string `yaml:"key_passphrase"`

	// CertFile is the identity certificate path.
	CertFile string `yaml:"cert_file"`
}

// TLSConfig lists trust anchors for peer verification
type TLSConfig struct {
	// TrustedCACerts are PEM files of verification anchors. Missing files
	// are tolerated at load time.
	TrustedCACerts []string `yaml:"trusted_ca_certs"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Defaults returns the configuration used when no config file is present
func Defaults() *Config {
	return &Config{
		Agent: AgentConfig{
			KeyFile:  "/var/lib/attest/secure/private.pem",
			CertFile: "/var/lib/attest/secure/identity.pem",
		},
	}
}

// Load reads a YAML configuration file, applying defaults for anything the
// file leaves unset
func Load(path string) (*Config, error) {
	cfg := Defaults()
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Passphrase maps the configured passphrase to the keystore's tri-state
// form.
func (c *AgentConfig) Passphrase() keystore.Passphrase {
	if c.KeyPassphrase == nil {
		return keystore.NoPassphrase()
	}
	return keystore.WithPassphrase(*c.KeyPassphrase)
}
