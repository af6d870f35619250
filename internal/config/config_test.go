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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
agent:
  uuid: 2fdd67ad-6a9c-4b52-86a1-fca04db4a6e8
  key_file: /tmp/keys/private.pem
  key_passphrase: "hunter2"
  cert_file: /tmp/keys/identity.pem
tls:
  trusted_ca_certs:
    - /etc/attest/cacert.pem
    - /etc/attest/extra-ca.pem
logging:
  debug: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2fdd67ad-6a9c-4b52-86a1-fca04db4a6e8", cfg.Agent.UUID)
	assert.Equal(t, "/tmp/keys/private.pem", cfg.Agent.KeyFile)
	assert.Len(t, cfg.TLS.TrustedCACerts, 2)
	assert.True(t, cfg.Logging.Debug)
	assert.True(t, cfg.Agent.Passphrase().Encrypts())
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  debug: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults().Agent.KeyFile, cfg.Agent.KeyFile)
	assert.Equal(t, Defaults().Agent.CertFile, cfg.Agent.CertFile)
}

func TestPassphraseStates(t *testing.T) {
	absent := AgentConfig{}
	assert.False(t, absent.Passphrase().Encrypts())

	empty := ""
	suppliedEmpty := AgentConfig{KeyPassphrase: &empty}
	assert.False(t, suppliedEmpty.Passphrase().Encrypts())

	secret := "hunter2"
	supplied := AgentConfig{KeyPassphrase: &secret}
	assert.True(t, supplied.Passphrase().Encrypts())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
