package config

import "path/filepath"

// Runtime is the read-only context threaded through the render loop:
// everything validated and resolved at startup, nothing mutable.
type Runtime struct {
	RepoPath  string
	RepoName  string
	AssetsDir string
	BarWidth  int
}

// NewRuntime builds the runtime context for a validated repository path.
func NewRuntime(cfg *Config, repoPath string) Runtime {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		abs = repoPath
	}
	return Runtime{
		RepoPath:  abs,
		RepoName:  filepath.Base(abs),
		AssetsDir: cfg.AssetsDir,
		BarWidth:  cfg.BarWidth,
	}
}
