package ai

import (
	"log/slog"
	"strconv"
	"strings"
)

// Credential is an API credential as handed to an adapter by the host's
// configuration layer. It is either a resolved literal value or an
// unresolved sentinel, used when external resolution (environment variable,
// credential command) is still pending or has failed.
type Credential struct {
	value    string
	resolved bool
}

// CredentialValue builds a resolved credential from a literal value. The
// value may still be blank; blank credentials never verify.
func CredentialValue(value string) Credential {
	return Credential{value: value, resolved: true}
}

// UnresolvedCredential returns the sentinel for a credential whose
// resolution is pending or failed. It never verifies.
func UnresolvedCredential() Credential {
	return Credential{}
}

// Value returns the literal credential value, or "" for the unresolved
// sentinel.
func (c Credential) Value() string {
	return c.value
}

// VerifyCredential implements the shared credential policy: an unresolved
// credential fails, and a resolved credential fails unless it contains at
// least one non-whitespace character. Failures are reported to logger with
// the provider name and the offending value; the caller must not dispatch
// the request.
func VerifyCredential(providerName string, credential Credential, logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.Default()
	}
	if !credential.resolved {
		logger.Error(providerName + " api key is not resolved yet")
		return false
	}
	if strings.TrimSpace(credential.value) == "" {
		logger.Error(providerName + " api key is empty or blank: " + strconv.Quote(credential.value))
		return false
	}
	return true
}
