package lastfm

import (
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnvNames are the environment variables APIKeyFromEnv probes, in
// order of preference.
var APIKeyEnvNames = []string{
	"LASTFM_API_KEY",
	"VITE_LASTFM_API_KEY",
	"REACT_APP_LASTFM_API_KEY",
	"NEXT_PUBLIC_LASTFM_API_KEY",
}

// EnvSource looks up a variable by name.
type EnvSource func(name string) (string, bool)

// OSEnv reads the process environment.
func OSEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// DotEnv returns an EnvSource backed by the variables of a .env file.
// The process environment is not modified.
func DotEnv(path string) (EnvSource, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}, nil
}

// APIKeyFromEnv returns the first non-empty API key found. Each name in
// APIKeyEnvNames is tried against every source before moving on to the
// next name. It also returns the variable name the key came from.
//
// Example:
//
//	key, _, _ := lastfm.APIKeyFromEnv(lastfm.OSEnv)
//	client, err := lastfm.NewClient(lastfm.Config{APIKey: key})
func APIKeyFromEnv(sources ...EnvSource) (key, name string, ok bool) {
	for _, n := range APIKeyEnvNames {
		for _, src := range sources {
			if src == nil {
				continue
			}
			if v, found := src(n); found && v != "" {
				return v, n, true
			}
		}
	}
	return "", "", false
}
