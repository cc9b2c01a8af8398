package rbac

import (
	"fmt"

	"go-ngo/internal/common/apperr"
)

// RoleAdmin short-circuits every check in this package.
const RoleAdmin = "admin"

// roleOrder is the fixed total order over role tags, most privileged
// first. A smaller index means more authority.
var roleOrder = []string{
	"admin",
	"country-admin",
	"state-admin",
	"regional-admin",
	"district-admin",
	"block-admin",
	"area-admin",
	"user",
}

// assignableRoles is the strict variant used for supervisory checks on
// role assignment; "user" is deliberately absent, so only admin can hand
// out the plain user role.
var assignableRoles = roleOrder[:len(roleOrder)-1]

// RoleIndex returns the position of role in the hierarchy, or -1 when the
// tag is unknown.
func RoleIndex(role string) int {
	return indexOf(roleOrder, role)
}

// Roles returns the full role hierarchy, most privileged first.
func Roles() []string {
	out := make([]string, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// IsRole reports whether the tag is a known role.
func IsRole(role string) bool {
	return RoleIndex(role) >= 0
}

// CheckRoleInSet implements the RequireRole semantics: allowed when the
// principal's role is literally in the set, or when its hierarchy index
// is at most the most permissive index among the allowed roles. Admin
// always passes.
func CheckRoleInSet(role string, allowed []string) *apperr.Error {
	if role == RoleAdmin {
		return nil
	}
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}

	roleIdx := RoleIndex(role)
	if roleIdx >= 0 {
		for _, a := range allowed {
			if allowedIdx := RoleIndex(a); allowedIdx >= 0 && roleIdx <= allowedIdx {
				return nil
			}
		}
	}

	return apperr.Forbidden("Insufficient privileges").WithDetails(map[string]interface{}{
		"requiredRoles": allowed,
		"yourRole":      role,
	})
}

// CheckRoleAssignment decides whether a principal may act on (assign,
// modify) a target role. Strictly-higher position is required; equal or
// lower is denied. Admin bypasses the comparison.
func CheckRoleAssignment(actorRole, targetRole string) *apperr.Error {
	if actorRole == RoleAdmin {
		return nil
	}

	actorIdx := indexOf(assignableRoles, actorRole)
	targetIdx := indexOf(assignableRoles, targetRole)

	if actorIdx < 0 || actorIdx >= targetIdx {
		return apperr.Forbidden("Cannot modify users with equal or higher role").WithDetails(map[string]interface{}{
			"yourRole":   actorRole,
			"targetRole": targetRole,
		})
	}
	return nil
}

// geoOrder is the scope ladder, broadest first.
var geoOrder = []string{"country", "state", "region", "district", "block", "area"}

// GeoLevels returns the scope ladder, broadest first.
func GeoLevels() []string {
	out := make([]string, len(geoOrder))
	copy(out, geoOrder)
	return out
}

// GeoLevelIndex returns the ladder position of a scope kind, or -1.
func GeoLevelIndex(level string) int {
	return indexOf(geoOrder, level)
}

// GeoLevel returns the index of the broadest scope the assignment holds,
// i.e. the first non-empty field, or -1 when nothing is set.
func GeoLevel(g Geo) int {
	for i, v := range []string{g.Country, g.State, g.Region, g.District, g.Block, g.Area} {
		if v != "" {
			return i
		}
	}
	return -1
}

// CheckGeoAccess grants access when the principal holds a scope at least
// as broad as the required level. A principal with no geo assignment is
// narrower than every scope and is denied. Admin bypasses.
func CheckGeoAccess(role string, g Geo, requiredLevel string) *apperr.Error {
	if role == RoleAdmin {
		return nil
	}

	requiredIdx := GeoLevelIndex(requiredLevel)
	if requiredIdx < 0 {
		return apperr.Internal(fmt.Sprintf("unknown geo level: %s", requiredLevel))
	}

	held := GeoLevel(g)
	if held < 0 || held > requiredIdx {
		yourAccess := "none"
		if held >= 0 {
			yourAccess = geoOrder[held]
		}
		return apperr.Forbidden("Insufficient geographic access").WithDetails(map[string]interface{}{
			"requiredAccess": requiredLevel,
			"yourAccess":     yourAccess,
		})
	}
	return nil
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
