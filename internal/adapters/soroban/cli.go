package soroban

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/creack/pty"

	"github.com/hereditas-labs/herd-cli/internal/config"
	"github.com/hereditas-labs/herd-cli/internal/domain"
	"github.com/hereditas-labs/herd-cli/internal/usecase"
)

// CLIAdapter drives the external `stellar` CLI, one method per operation.
// Every call blocks until the tool completes; there is no retry layer.
type CLIAdapter struct {
	log   *slog.Logger
	bin   string
	debug bool
}

// NewCLIAdapter creates a new stellar CLI adapter
func NewCLIAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *CLIAdapter {
	return &CLIAdapter{
		log:   log.With("component", "StellarCLI"),
		bin:   cfg.StellarBin,
		debug: cfg.Debug,
	}
}

// ResolveAddress derives the public address for a named identity.
func (c *CLIAdapter) ResolveAddress(ctx context.Context, identity string) (string, error) {
	return c.capture(ctx, "keys", "address", identity)
}

// FundAccount requests friendbot funding for the identity's account.
func (c *CLIAdapter) FundAccount(ctx context.Context, identity string, network domain.NetworkName) error {
	_, err := c.capture(ctx, "keys", "fund", identity, "--network", string(network))
	return err
}

// Build compiles every contract package in the current directory. In debug
// mode the cargo output streams to the terminal through a pty so colors and
// progress bars survive.
func (c *CLIAdapter) Build(ctx context.Context) error {
	start := time.Now()
	cmd := exec.CommandContext(ctx, c.bin, "contract", "build")

	if c.debug {
		ptyFile, err := pty.Start(cmd)
		if err != nil {
			return fmt.Errorf("failed to start pty: %w", err)
		}
		defer func() { _ = ptyFile.Close() }()
		_, _ = io.Copy(os.Stdout, ptyFile)
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("contract build failed: %w", err)
		}
	} else {
		output, err := cmd.CombinedOutput()
		if err != nil {
			c.log.Error("contract build failed", "error", err, "output", string(output))
			return fmt.Errorf("contract build failed: %w\nOutput: %s", err, string(output))
		}
	}

	c.log.Debug("contract build completed", "duration", time.Since(start))
	return nil
}

// Optimize size-optimizes one compiled artifact.
func (c *CLIAdapter) Optimize(ctx context.Context, wasmPath string) error {
	_, err := c.capture(ctx, "contract", "optimize", "--wasm", wasmPath)
	return err
}

// Deploy submits an artifact and returns the contract ID the network
// assigned, verbatim apart from trailing whitespace.
func (c *CLIAdapter) Deploy(ctx context.Context, wasmPath string, req domain.DeploymentRequest) (string, error) {
	return c.capture(ctx, deployArgs(wasmPath, req)...)
}

// Invoke calls a named function on a deployed contract with named arguments.
func (c *CLIAdapter) Invoke(ctx context.Context, contractID, function string, args map[string]string, req domain.DeploymentRequest) (string, error) {
	return c.capture(ctx, invokeArgs(contractID, function, args, req)...)
}

// capture runs one CLI invocation and returns its trimmed stdout. Stderr
// rides along in the error so operators see the toolchain's own message.
func (c *CLIAdapter) capture(ctx context.Context, args ...string) (string, error) {
	start := time.Now()
	c.log.Debug("running stellar command", "args", args)

	cmd := exec.CommandContext(ctx, c.bin, args...)
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		c.log.Error("stellar command failed", "args", args, "error", err, "stderr", stderr)
		if stderr != "" {
			return "", fmt.Errorf("%s %s: %w: %s", c.bin, strings.Join(args, " "), err, stderr)
		}
		return "", fmt.Errorf("%s %s: %w", c.bin, strings.Join(args, " "), err)
	}

	c.log.Debug("stellar command completed", "args", args, "duration", time.Since(start))
	return strings.TrimSpace(string(output)), nil
}

// deployArgs builds the argument list for a contract deploy.
func deployArgs(wasmPath string, req domain.DeploymentRequest) []string {
	return []string{
		"contract", "deploy",
		"--wasm", wasmPath,
		"--source-account", req.AdminIdentity,
		"--rpc-url", req.Network.RPCURL,
		"--network-passphrase", req.Network.Passphrase,
	}
}

// invokeArgs builds the argument list for a contract invocation. Named
// arguments follow the `--` separator in sorted key order so invocations are
// deterministic.
func invokeArgs(contractID, function string, args map[string]string, req domain.DeploymentRequest) []string {
	cli := []string{
		"contract", "invoke",
		"--id", contractID,
		"--source-account", req.AdminIdentity,
		"--rpc-url", req.Network.RPCURL,
		"--network-passphrase", req.Network.Passphrase,
		"--", function,
	}

	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		cli = append(cli, "--"+key, args[key])
	}

	return cli
}

var _ usecase.SorobanClient = (*CLIAdapter)(nil)
