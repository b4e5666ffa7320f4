package session

import "strings"

// LogoutPolicy controls what logging out does to the user's task list.
type LogoutPolicy string

const (
	// LogoutPreserve keeps the task list so the next login resumes it.
	LogoutPreserve LogoutPolicy = "preserve"
	// LogoutWipe removes the task list from the store on logout.
	LogoutWipe LogoutPolicy = "wipe"
)

// ValidLogoutPolicies returns all valid logout policies.
func ValidLogoutPolicies() []LogoutPolicy {
	return []LogoutPolicy{LogoutPreserve, LogoutWipe}
}

// IsValid returns true if the policy is a known value.
func (p LogoutPolicy) IsValid() bool {
	for _, valid := range ValidLogoutPolicies() {
		if p == valid {
			return true
		}
	}
	return false
}

// ParseLogoutPolicy parses a policy name. An empty name means LogoutPreserve.
func ParseLogoutPolicy(name string) (LogoutPolicy, error) {
	policy := LogoutPolicy(strings.ToLower(strings.TrimSpace(name)))
	if policy == "" {
		return LogoutPreserve, nil
	}
	if !policy.IsValid() {
		return "", formatInvalidLogoutPolicyError(name)
	}
	return policy, nil
}
