package install

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
	goversion "github.com/hashicorp/go-version"

	"github.com/brewblox/brewblox-ctl/internal/envfile"
	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
)

// DirConflictError reports a target path that exists, is non-empty, and is
// not a recognized Brewblox directory. Unknown data is never destroyed.
type DirConflictError struct {
	Path string
}

func (e *DirConflictError) Error() string {
	return fmt.Sprintf(messages.DirNotManagedFmt, e.Path)
}

// InitOptions are the directory initializer inputs.
type InitOptions struct {
	Dir         string
	Release     string
	Force       bool
	SkipConfirm bool
}

// Initializer creates or recreates a Brewblox directory and writes its
// persisted configuration.
type Initializer struct {
	System System
	UI     prompt.UI
	Out    io.Writer
}

// Run initializes the directory. An existing non-empty directory must be a
// managed one; wiping it requires force or an interactive confirmation.
// Initialization is idempotent on an empty or absent path.
func (ini *Initializer) Run(opts InitOptions) error {
	if err := ini.clearExisting(opts); err != nil {
		return err
	}

	info(ini.Out, messages.InfoCreatingDirFmt, opts.Dir)
	if err := ini.System.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", opts.Dir, err)
	}

	info(ini.Out, messages.InfoWritingEnv)
	return envfile.PatchFile(filepath.Join(opts.Dir, envfile.FileName), map[string]string{
		envfile.ReleaseKey:     opts.Release,
		envfile.CfgVersionKey:  envfile.CurrentCfgVersion,
		envfile.SkipConfirmKey: pyBool(opts.SkipConfirm),
	})
}

// clearExisting enforces the managed-directory guard and wipes an existing
// managed directory once authorized.
func (ini *Initializer) clearExisting(opts InitOptions) error {
	if _, err := ini.System.Stat(opts.Dir); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", opts.Dir, err)
	}

	entries, err := ini.System.ReadDir(opts.Dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.Dir, err)
	}
	if len(entries) == 0 {
		return nil
	}

	if !ini.managedDir(opts.Dir) {
		return &DirConflictError{Path: opts.Dir}
	}

	ini.previewEnvChanges(opts)

	if !opts.Force {
		ok, err := ini.UI.Confirm(fmt.Sprintf(messages.PromptEraseDirFmt, opts.Dir), true)
		if err != nil {
			return err
		}
		if !ok {
			return prompt.ErrAborted
		}
	}

	for _, entry := range entries {
		target := filepath.Join(opts.Dir, entry.Name())
		if err := ini.System.RemoveAll(target); err != nil {
			return fmt.Errorf("remove %s: %w", target, err)
		}
	}
	return nil
}

// managedDir reports whether dir holds a .env whose schema version parses.
func (ini *Initializer) managedDir(dir string) bool {
	data, err := ini.System.ReadFile(filepath.Join(dir, envfile.FileName))
	if err != nil {
		return false
	}
	env, err := envfile.Parse(string(data))
	if err != nil {
		return false
	}
	raw, ok := env[envfile.CfgVersionKey]
	if !ok {
		return false
	}
	_, err = goversion.NewVersion(raw)
	return err == nil
}

// previewEnvChanges shows what re-initialization would do to the existing
// .env, so the operator confirms with full information.
func (ini *Initializer) previewEnvChanges(opts InitOptions) {
	path := filepath.Join(opts.Dir, envfile.FileName)
	data, err := ini.System.ReadFile(path)
	if err != nil {
		return
	}
	old := string(data)
	updated := envfile.Patch("", map[string]string{
		envfile.ReleaseKey:     opts.Release,
		envfile.CfgVersionKey:  envfile.CurrentCfgVersion,
		envfile.SkipConfirmKey: pyBool(opts.SkipConfirm),
	})
	if old == updated {
		return
	}
	info(ini.Out, messages.InfoEnvChanges)
	fmt.Fprint(ini.Out, udiff.Unified(envfile.FileName, envfile.FileName, old, updated))
}

// pyBool formats a bool the way the .env schema stores it.
// The True/False capitalization is load-bearing: existing Brewblox
// directories were written this way and later tooling parses it.
func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
