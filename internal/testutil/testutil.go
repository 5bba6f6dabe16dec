// Package testutil provides shared test helpers for config files and fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/datagotchi/datagotchi/internal/pet"
	"github.com/datagotchi/datagotchi/internal/profile"
)

// SetupTestConfig writes a config file whose state directory lives under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return SetupTestConfigWithAPI(t, tmpDir, "http://localhost:8000")
}

// SetupTestConfigWithAPI is SetupTestConfig pointing the backend at baseURL,
// usually an httptest server.
func SetupTestConfigWithAPI(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()

	stateDir := filepath.Join(tmpDir, "state")
	require.NoError(t, os.MkdirAll(stateDir, 0755))

	configContent := fmt.Sprintf(`database:
  host: 127.0.0.1
  port: 3306
  database: datagotchi_test
  username: test
api:
  base_url: %s
  timeout_seconds: 5
storage:
  state_directory: %s
ingestion:
  max_file_size_bytes: 1024
`, baseURL, stateDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// User returns a profile fixture for wallet.
func User(wallet string) profile.User {
	return profile.User{
		WalletAddress: wallet,
		Username:      "tester",
		Points:        100,
		CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Pet returns a pet fixture owned by wallet. Later ages make newer pets.
func Pet(id, wallet string, age time.Duration) pet.Pet {
	return pet.Pet{
		ID:          id,
		OwnerWallet: wallet,
		Name:        "Pet " + id,
		Rarity:      pet.RarityCommon,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(age),
	}
}
