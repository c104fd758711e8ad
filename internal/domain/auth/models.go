package auth

// Default identity written on first start. Its password is stored hashed like any other.
const (
	DefaultEmail    = "admin@baseball.com"
	DefaultPassword = "admin123"
)

// Document is the single admin identity.
//
// LegacyPassword is the plaintext field older deployments wrote; it is read so
// those files keep working and dropped on the next successful login or registration.
type Document struct {
	AdminExists       bool   `json:"adminExists"`
	AdminEmail        string `json:"adminEmail"`
	AdminPasswordHash string `json:"adminPasswordHash,omitempty"`
	LegacyPassword    string `json:"adminPassword,omitempty"`
}

// Default returns the placeholder identity with the given hash of DefaultPassword.
func Default(passwordHash string) Document {
	return Document{
		AdminExists:       false,
		AdminEmail:        DefaultEmail,
		AdminPasswordHash: passwordHash,
	}
}

// Status is the public view of the auth document.
type Status struct {
	AdminExists bool `json:"adminExists"`
}

func (d Document) Status() Status {
	return Status{AdminExists: d.AdminExists}
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	RegistrationCode string `json:"registrationCode"`
}
