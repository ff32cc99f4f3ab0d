package models

import "strings"

const (
	RoleBarber   = "barber"
	RoleCustomer = "customer"
)

// RolesKind discriminates the shapes the roles field takes in user
// documents: an ordered list of role names, or a name-to-enabled map.
type RolesKind int

const (
	RolesUnknown RolesKind = iota
	RolesList
	RolesFlags
)

// Roles is the decoded roles field of a user document.
type Roles struct {
	Kind  RolesKind
	List  []string
	Flags map[string]bool
}

// ParseRoles decodes the raw roles value of a schemaless user document.
// Anything that is not a list or a map decodes as RolesUnknown so callers
// can fall back to a safe default.
func ParseRoles(raw any) Roles {
	switch v := raw.(type) {
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return Roles{Kind: RolesList, List: list}
	case []string:
		return Roles{Kind: RolesList, List: append([]string(nil), v...)}
	case map[string]any:
		flags := make(map[string]bool, len(v))
		for name, val := range v {
			enabled, _ := val.(bool)
			flags[name] = enabled
		}
		return Roles{Kind: RolesFlags, Flags: flags}
	case map[string]bool:
		flags := make(map[string]bool, len(v))
		for name, enabled := range v {
			flags[name] = enabled
		}
		return Roles{Kind: RolesFlags, Flags: flags}
	default:
		return Roles{Kind: RolesUnknown}
	}
}

// User is the slice of a user profile document the cleanup worker reads.
// A missing profile decodes as the zero value with Exists false.
type User struct {
	ID         string
	Exists     bool
	BranchID   string
	ShopID     string
	ActiveRole string
	Roles      Roles
}

func UserFromDoc(id string, exists bool, data map[string]any) User {
	u := User{ID: id, Exists: exists}
	if data == nil {
		return u
	}
	u.BranchID = trimmedString(data["branchId"])
	u.ShopID = trimmedString(data["shopId"])
	u.ActiveRole = trimmedString(data["activeRole"])
	u.Roles = ParseRoles(data["roles"])
	return u
}

// MembershipShopID returns the shop the user is linked to as staff,
// preferring branchId over shopId. Empty when the user has no link.
func (u User) MembershipShopID() string {
	if u.BranchID != "" {
		return u.BranchID
	}
	return u.ShopID
}

func trimmedString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
