package config

// AuthConfig controls admin registration.
type AuthConfig struct {
	RegistrationCode string
	AllowReregister  bool
}

func loadAuth() AuthConfig {
	return AuthConfig{
		RegistrationCode: envOrDefault(envRegistrationKey, defaultRegistrationCode),
		AllowReregister:  boolEnvOrDefault(envAllowReregister, defaultAllowReregister),
	}
}
