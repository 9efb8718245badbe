package workflows

import (
	"github.com/spf13/afero"

	"github.com/PolarWolf314/gswitch/internal/audit"
	"github.com/PolarWolf314/gswitch/internal/gitcfg"
	"github.com/PolarWolf314/gswitch/internal/identity"
	logger "github.com/PolarWolf314/gswitch/internal/logging"
	"github.com/PolarWolf314/gswitch/internal/profiles"
)

// Env carries the collaborators every workflow needs.
type Env struct {
	FS        afero.Fs
	StorePath string

	// HistoryPath is the history log. Empty disables history.
	HistoryPath string

	Git gitcfg.Store
	Cwd string
	Log logger.Logger
}

func (e Env) loadStore() (*profiles.Store, error) {
	store, err := profiles.Load(e.FS, e.StorePath)
	if err != nil {
		return nil, err
	}
	e.Log.Debugf("Loaded %d profiles from %s", store.Len(), e.StorePath)
	return store, nil
}

func (e Env) saveStore(store *profiles.Store) error {
	if err := profiles.Save(e.FS, e.StorePath, store); err != nil {
		return err
	}
	e.Log.Debugf("Saved %d profiles to %s", store.Len(), e.StorePath)
	return nil
}

func (e Env) applier() identity.Applier {
	return identity.Applier{Git: e.Git}
}

// record appends a history entry. Failures are logged, never returned.
func (e Env) record(entry audit.Entry) {
	if e.HistoryPath == "" {
		return
	}
	if err := audit.Log(e.FS, e.HistoryPath, entry); err != nil {
		e.Log.Debugf("Could not record %s in history: %v", entry.Operation, err)
	}
}
