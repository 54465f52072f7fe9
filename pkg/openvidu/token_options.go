package openvidu

// TokenOptions shapes a token request: free-form server data attached to the
// participant plus the role the token grants.
type TokenOptions struct {
	Data string
	Role Role
}

// BuildTokenOptions fills a TokenOptions from a decoded JSON map.
// Non-map input yields nil; absent keys default to no data and PUBLISHER.
func BuildTokenOptions(v any) *TokenOptions {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return &TokenOptions{
		Data: stringAt(m, "data", ""),
		Role: Role(stringAt(m, "role", string(RolePublisher))),
	}
}
