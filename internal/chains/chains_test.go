package chains_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/chains"
)

func TestDefaultPresets(t *testing.T) {
	reg, err := chains.Default()
	require.NoError(t, err)

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(42161), all[0].ID)
	assert.Equal(t, int64(421614), all[1].ID)
	assert.Equal(t, int64(11155111), all[2].ID)

	arbSepolia, err := reg.ByID(421614)
	require.NoError(t, err)
	assert.Equal(t, "arbitrumSepolia", arbSepolia.Key)
	assert.True(t, arbSepolia.Testnet)
	assert.NotEmpty(t, arbSepolia.RPCURLs)
}

func TestByIDUnknown(t *testing.T) {
	reg, err := chains.Default()
	require.NoError(t, err)

	_, err = reg.ByID(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chains.ErrUnknownChain))
}

func TestExplorerURLs(t *testing.T) {
	c := chains.Chain{ExplorerURL: "https://sepolia.etherscan.io/"}
	assert.Equal(t, "https://sepolia.etherscan.io/tx/0xabc", c.TxURL("0xabc"))
	assert.Equal(t, "https://sepolia.etherscan.io/address/0xdef", c.AddressURL("0xdef"))

	assert.Empty(t, chains.Chain{}.TxURL("0xabc"))
}

func TestLoadRejectsDuplicates(t *testing.T) {
	_, err := chains.Load(strings.NewReader(`
[[chain]]
id = 1
name = "a"

[[chain]]
id = 1
name = "b"
`))
	require.Error(t, err)
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chains.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[chain]]
id = 31337
key = "anvil"
name = "Anvil"
rpc_urls = ["http://127.0.0.1:8545"]

[[chain]]
id = 11155111
key = "sepolia"
name = "Sepolia (private RPC)"
rpc_urls = ["http://sepolia.internal:8545"]
`), 0o600))

	reg, err := chains.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, reg.All(), 4)

	anvil, err := reg.ByID(31337)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://127.0.0.1:8545"}, anvil.RPCURLs)

	sepolia, err := reg.ByID(11155111)
	require.NoError(t, err)
	assert.Equal(t, "Sepolia (private RPC)", sepolia.Name)
}
