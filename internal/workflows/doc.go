// Package workflows provides high-level orchestration for gsw commands.
//
// Workflows coordinate the profile store, the resolution engine, the identity
// applier and the history log to implement complete user-facing features.
// Each workflow handles a single command's business logic, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Builds an Env from settings and the working directory
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading and saving the profile store
//   - Validating profiles and preconditions
//   - Resolving markers and applying identities
//   - Recording history entries
//
// # Environment
//
// Workflows never read process state. The working directory, filesystem and
// git configuration store arrive through Env, so every workflow runs against
// afero.NewMemMapFs and gitcfg.NewMemory in tests.
//
// # Available Workflows
//
//   - Add, Import, List, Remove: manage stored profiles
//   - Switch: apply a profile globally
//   - Local: apply a profile to the current repository
//   - Init: write a .gswitch marker
//   - Auto: resolve the marker for the working directory and apply it locally
//   - Prompt: resolve quietly for shell prompts
//   - Current: report the identity git uses here
//   - Log: read the identity change history
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Switch(ctx, env, opts)
//	if errors.Is(err, gerrors.ErrProfileNotFound) {
//	    // Suggest "gsw list"
//	}
//
// Resolution outcomes that are not failures (no repository, no marker) come
// back in the result, not as errors.
package workflows
