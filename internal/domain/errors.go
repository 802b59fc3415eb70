package domain

import "fmt"

// ConfigurationError covers everything wrong before the pipeline touches the
// network: unknown network names, missing identities, missing contracts
// directory.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// IdentityResolutionError means the external toolchain could not derive an
// address for the named identity.
type IdentityResolutionError struct {
	Identity string
	Err      error
}

func (e *IdentityResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve address for identity %q (create it first with `stellar keys generate %s`): %v",
		e.Identity, e.Identity, e.Err)
}

func (e *IdentityResolutionError) Unwrap() error { return e.Err }

// BuildError is a fatal failure of the build or optimize pass.
type BuildError struct {
	Package string
	Err     error
}

func (e *BuildError) Error() string {
	if e.Package == "" {
		return fmt.Sprintf("contract build failed: %v", e.Err)
	}
	return fmt.Sprintf("optimize failed for package %s: %v", e.Package, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// DeploymentError is a fatal failure submitting an artifact to the network.
// Artifacts deployed earlier in the same run stay live; there is no rollback.
type DeploymentError struct {
	Artifact string
	Err      error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("deployment of %s contract failed: %v", e.Artifact, e.Err)
}

func (e *DeploymentError) Unwrap() error { return e.Err }

// InitializationError is a fatal failure of the privileged initialize call.
// The run aborts before persistence so local state never claims an
// initialization that did not happen.
type InitializationError struct {
	ContractID string
	Err        error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize_admin on contract %s failed (already initialized?): %v", e.ContractID, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }
