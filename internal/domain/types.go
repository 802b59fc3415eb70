package domain

import "strings"

// NetworkName identifies a target Stellar network.
type NetworkName string

const (
	Testnet NetworkName = "testnet"
	Mainnet NetworkName = "mainnet"

	// Futurenet is not selectable as a deployment target, but accounts on it
	// are friendbot-fundable, so the funding check keeps a slot for it.
	Futurenet NetworkName = "futurenet"
)

// FundingEligible reports whether accounts on this network may be funded via
// friendbot. Funding real accounts on mainnet is never automated.
func (n NetworkName) FundingEligible() bool {
	return n == Testnet || n == Futurenet
}

// NetworkProfile holds the endpoint parameters identifying a deployment
// network. Profiles are static configuration, constructed once from the fixed
// table in the network resolver and never mutated.
type NetworkProfile struct {
	Name       NetworkName
	RPCURL     string
	Passphrase string
}

// DeploymentRequest is the immutable input to a deployment run, built once
// from command flags and passed explicitly to every stage.
type DeploymentRequest struct {
	Network       NetworkProfile
	AdminIdentity string
}

// ResolvedIdentity pairs a named signing identity with its derived public
// address. The address comes from the external toolchain, never from user
// input.
type ResolvedIdentity struct {
	Identity string
	Address  string
}

// ContractArtifact describes one contract package this pipeline builds and
// deploys.
type ContractArtifact struct {
	// Name is the logical name used in progress output.
	Name string
	// Package is the cargo package name inside the contracts workspace.
	Package string
	// StateKey is the key the deployed contract ID is persisted under.
	StateKey string
	// WasmPath is the build output, relative to the contracts workspace.
	WasmPath string
}

// OptimizedWasmPath returns the path the optimize pass writes its output to.
func (a ContractArtifact) OptimizedWasmPath() string {
	return strings.TrimSuffix(a.WasmPath, ".wasm") + ".optimized.wasm"
}

// Artifacts returns the contract packages to deploy, in deployment order.
// The example contract goes first; the inheritance contract carries the admin
// state that later stages depend on.
func Artifacts() []ContractArtifact {
	return []ContractArtifact{
		{
			Name:     "example",
			Package:  "hello-world",
			StateKey: "EXAMPLE_CONTRACT_ID",
			WasmPath: "target/wasm32-unknown-unknown/release/hello_world.wasm",
		},
		{
			Name:     "inheritance",
			Package:  "inheritance-contract",
			StateKey: "INHERITANCE_CONTRACT_ID",
			WasmPath: "target/wasm32-unknown-unknown/release/inheritance_contract.wasm",
		},
	}
}

// DeployedContract records the network-assigned identifier for one artifact.
// The ID is opaque and captured verbatim from the toolchain.
type DeployedContract struct {
	Artifact   ContractArtifact
	ContractID string
}

// StateEntry is one KEY=VALUE pair of the persisted deployment state.
type StateEntry struct {
	Key   string
	Value string
}
