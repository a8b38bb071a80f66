package config

import (
	"os"
)

const (
	// EnvScenePath is the environment variable for an explicit scene file
	EnvScenePath = "VI_CHAIN_SCENE"
	// SceneFileName is looked up in the working directory
	SceneFileName = "vi-chain.yaml"
)

// FindPath returns the scene file to load, or "" for the default scene
// An explicit flag or environment path is returned even if missing so the read error surfaces
func FindPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if path := os.Getenv(EnvScenePath); path != "" {
		return path
	}
	if fileExists(SceneFileName) {
		return SceneFileName
	}
	return ""
}

// fileExists checks if a regular file exists
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
