package rbac

import (
	"fmt"

	"go-ngo/internal/common/apperr"
)

// methodActions is the fixed mapping from HTTP methods to logical
// actions. Methods outside this table are rejected before any module
// lookup happens.
var methodActions = map[string]Action{
	"GET":     ActionRead,
	"HEAD":    ActionRead,
	"OPTIONS": ActionRead,
	"POST":    ActionCreate,
	"PUT":     ActionUpdate,
	"PATCH":   ActionUpdate,
	"DELETE":  ActionDelete,
}

// ActionForMethod resolves an HTTP method to its logical action.
func ActionForMethod(method string) (Action, bool) {
	a, ok := methodActions[method]
	return a, ok
}

// Evaluate decides whether the principal may perform action on module.
// A nil return means allow. The decision is stateless and uses only the
// principal's current permission snapshot.
func Evaluate(p *Principal, module string, action Action) *apperr.Error {
	if p.Role == RoleAdmin {
		return nil
	}

	perms, ok := p.Permissions[module]
	if !ok {
		return apperr.Forbidden(fmt.Sprintf("No permissions found for module: %s", module))
	}

	if !perms.Allows(action) {
		return apperr.Forbidden(fmt.Sprintf("Permission denied: %s access required for %s module", action, module)).
			WithDetails(map[string]interface{}{
				"requiredPermission": string(action),
				"module":             module,
			})
	}
	return nil
}

// EvaluateMethod maps the HTTP method to an action and evaluates it.
// Unmapped methods fail with MethodNotAllowed before the module lookup.
func EvaluateMethod(p *Principal, module string, method string) *apperr.Error {
	if p.Role == RoleAdmin {
		return nil
	}

	action, ok := ActionForMethod(method)
	if !ok {
		return apperr.MethodNotAllowed(fmt.Sprintf("Method %s not allowed", method))
	}
	return Evaluate(p, module, action)
}
