package token

// Scope is a named capability a token can carry. The set is closed.
type Scope string

const (
	ScopeUser     Scope = "user"
	ScopeUserInfo Scope = "user_info"
)

// LoginScopes is the scope set granted on a successful password login.
var LoginScopes = []Scope{ScopeUser, ScopeUserInfo}

// HasAll reports whether granted covers every scope in required. Scope sets
// are order-irrelevant; duplicates carry no meaning.
func HasAll(granted []Scope, required []Scope) bool {
	for _, want := range required {
		found := false
		for _, have := range granted {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Strings converts a scope set for logging and wire responses.
func Strings(scopes []Scope) []string {
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, string(s))
	}
	return out
}
