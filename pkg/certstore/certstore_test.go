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

package certstore

import (
	"crypto/rsa"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-attest/pkg/keystore"
	"github.com/jeremyhahn/go-attest/pkg/logging"
)

func generateTestCert(t *testing.T, commonName string) (*rsa.PrivateKey, string) {
	t.Helper()
	pair, err := keystore.Generate(2048)
	require.NoError(t, err)
	key := pair.Private.(*rsa.PrivateKey)

	cert, err := GenerateSelfSigned(key, uuid.New())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), commonName+".pem")
	require.NoError(t, WritePEM(cert, path))
	return key, path
}

func TestLoadPEMRoundTrip(t *testing.T) {
	pair, err := keystore.Generate(2048)
	require.NoError(t, err)
	agentID := uuid.New()

	cert, err := GenerateSelfSigned(pair.Private.(*rsa.PrivateKey), agentID)
	require.NoError(t, err)
	assert.Equal(t, agentID.String(), cert.Subject.CommonName)
	assert.Equal(t, agentID.String(), cert.Issuer.CommonName)

	path := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, WritePEM(cert, path))

	loaded, err := LoadPEM(path)
	require.NoError(t, err)
	assert.Equal(t, cert.Raw, loaded.Raw)

	single, err := LoadSingle(path)
	require.NoError(t, err)
	assert.Equal(t, cert.Raw, single.Raw)
}

func TestLoadDER(t *testing.T) {
	pair, err := keystore.Generate(2048)
	require.NoError(t, err)

	cert, err := GenerateSelfSigned(pair.Private.(*rsa.PrivateKey), uuid.New())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cert.der")
	require.NoError(t, os.WriteFile(path, cert.Raw, 0o644))

	loaded, err := LoadDER(path)
	require.NoError(t, err)
	assert.Equal(t, cert.Raw, loaded.Raw)

	_, err = LoadDER(filepath.Join(t.TempDir(), "missing.der"))
	assert.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.der")
	require.NoError(t, os.WriteFile(garbage, []byte("not a certificate"), 0o644))
	_, err = LoadDER(garbage)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLoadSingleRejectsChains(t *testing.T) {
	_, pathA := generateTestCert(t, "a")
	_, pathB := generateTestCert(t, "b")

	a, err := os.ReadFile(pathA)
	require.NoError(t, err)
	b, err := os.ReadFile(pathB)
	require.NoError(t, err)

	concatPath := filepath.Join(t.TempDir(), "concat.pem")
	require.NoError(t, os.WriteFile(concatPath, append(a, b...), 0o644))

	_, err = LoadSingle(concatPath)
	assert.ErrorIs(t, err, ErrMultipleCertificates)

	// The same file is a valid two-certificate chain.
	chain, err := LoadChain(concatPath)
	require.NoError(t, err)
	assert.Len(t, chain, 2)
}

func TestLoadChainEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pem")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	chain, err := LoadChain(path)
	require.NoError(t, err)
	assert.Empty(t, chain)

	_, err = LoadPEM(path)
	assert.ErrorIs(t, err, ErrNoCertificate)

	_, err = LoadSingle(path)
	assert.ErrorIs(t, err, ErrNoCertificate)
}

func TestLoadListSkipsMissingPaths(t *testing.T) {
	_, pathA := generateTestCert(t, "a")
	_, pathB := generateTestCert(t, "b")
	missing := "/non_existing_path/non_existing_cert.pem"

	loaded := LoadList(logging.DefaultLogger(), []string{pathA, missing, pathB})
	assert.Len(t, loaded, 2)
}
