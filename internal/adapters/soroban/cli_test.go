package soroban

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hereditas-labs/herd-cli/internal/domain"
)

var testnetRequest = domain.DeploymentRequest{
	Network: domain.NetworkProfile{
		Name:       domain.Testnet,
		RPCURL:     "https://soroban-testnet.stellar.org",
		Passphrase: "Test SDF Network ; September 2015",
	},
	AdminIdentity: "alice",
}

func TestDeployArgs(t *testing.T) {
	args := deployArgs("target/wasm32-unknown-unknown/release/hello_world.optimized.wasm", testnetRequest)

	assert.Equal(t, []string{
		"contract", "deploy",
		"--wasm", "target/wasm32-unknown-unknown/release/hello_world.optimized.wasm",
		"--source-account", "alice",
		"--rpc-url", "https://soroban-testnet.stellar.org",
		"--network-passphrase", "Test SDF Network ; September 2015",
	}, args)
}

func TestInvokeArgs(t *testing.T) {
	t.Run("function and named argument after separator", func(t *testing.T) {
		args := invokeArgs("CAINHERIT1", "initialize_admin", map[string]string{"admin": "GADMIN123"}, testnetRequest)

		assert.Equal(t, []string{
			"contract", "invoke",
			"--id", "CAINHERIT1",
			"--source-account", "alice",
			"--rpc-url", "https://soroban-testnet.stellar.org",
			"--network-passphrase", "Test SDF Network ; September 2015",
			"--", "initialize_admin",
			"--admin", "GADMIN123",
		}, args)
	})

	t.Run("arguments are sorted for determinism", func(t *testing.T) {
		args := invokeArgs("CAID", "fn", map[string]string{"b": "2", "a": "1", "c": "3"}, testnetRequest)

		assert.Equal(t, []string{"--a", "1", "--b", "2", "--c", "3"}, args[len(args)-6:])
	})
}
