package domain

import "slices"

// Identity is the resolved caller of a request.
type Identity struct {
	Sub      string   `json:"sub"`
	SubIss   string   `json:"-"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
}

// InGroup reports whether the caller belongs to group.
func (i Identity) InGroup(group string) bool {
	return slices.Contains(i.Groups, group)
}
