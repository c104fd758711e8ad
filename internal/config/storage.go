package config

import "path/filepath"

// StorageConfig locates the JSON documents and the front-end bundle on disk.
type StorageConfig struct {
	DataDir   string
	StaticDir string
}

// DataPath is the profile document path.
func (s StorageConfig) DataPath() string {
	return filepath.Join(s.DataDir, DataFileName)
}

// AuthPath is the auth document path.
func (s StorageConfig) AuthPath() string {
	return filepath.Join(s.DataDir, AuthFileName)
}

// LockPath is the PID lock guarding DataDir against a second server process.
func (s StorageConfig) LockPath() string {
	return filepath.Join(s.DataDir, LockFileName)
}

func loadStorage() StorageConfig {
	return StorageConfig{
		DataDir:   envOrDefault(envDataDir, defaultDataDir),
		StaticDir: envOrDefault(envStaticDir, defaultStaticDir),
	}
}
