// Package config loads and persists context-window settings.
//
// The budgeting engine itself takes an immutable window.Settings value;
// this package is the edge that produces one from a settings file, the
// environment, or both:
//
//	cfg, err := config.Load("contextkit.yaml")
//	if err != nil {
//	    return err
//	}
//	cfg.LoadFromEnv() // CONTEXTKIT_* variables win over the file
//	mgr := window.NewManager(nil, cfg.Settings())
//
// YAML, TOML, and JSON files are supported, selected by extension.
//
// # Live Reload
//
// Watch re-reads the file on change and delivers each valid Config:
//
//	updates, err := config.Watch(ctx, "contextkit.yaml")
//	for cfg := range updates {
//	    mgr = window.NewManager(nil, cfg.Settings())
//	}
//
// Managers are cheap to construct, so a reload simply builds a new one;
// in-flight budgeting passes are unaffected.
//
// # Schema
//
// Schema exposes a JSON schema for the settings file, for editor
// completion and CI validation of checked-in settings.
package config
