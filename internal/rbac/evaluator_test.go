package rbac

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAdminBypass(t *testing.T) {
	p := &Principal{Role: RoleAdmin}

	for _, module := range Modules {
		for _, action := range []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
			assert.Nil(t, Evaluate(p, module, action), "admin must pass %s on %s", action, module)
		}
	}
}

func TestEvaluateAbsentModuleDenies(t *testing.T) {
	p := &Principal{
		Role:        "user",
		Permissions: Matrix{"blogs": {Read: true}},
	}

	err := Evaluate(p, "donations", ActionRead)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
	assert.Contains(t, err.Message, "donations")
}

func TestEvaluateActionFlag(t *testing.T) {
	p := &Principal{
		Role:        "state-admin",
		Permissions: Matrix{"events": {Read: true, Create: true}},
	}

	assert.Nil(t, Evaluate(p, "events", ActionRead))
	assert.Nil(t, Evaluate(p, "events", ActionCreate))

	err := Evaluate(p, "events", ActionDelete)
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
	assert.Equal(t, "delete", err.Details["requiredPermission"])
	assert.Equal(t, "events", err.Details["module"])
}

func TestActionForMethod(t *testing.T) {
	cases := map[string]Action{
		"GET":     ActionRead,
		"HEAD":    ActionRead,
		"OPTIONS": ActionRead,
		"POST":    ActionCreate,
		"PUT":     ActionUpdate,
		"PATCH":   ActionUpdate,
		"DELETE":  ActionDelete,
	}
	for method, want := range cases {
		got, ok := ActionForMethod(method)
		require.True(t, ok, method)
		assert.Equal(t, want, got, method)
	}

	_, ok := ActionForMethod("TRACE")
	assert.False(t, ok)
}

func TestEvaluateMethodUnmapped(t *testing.T) {
	p := &Principal{Role: "user", Permissions: Matrix{}}

	err := EvaluateMethod(p, "blogs", "TRACE")
	require.NotNil(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, err.Code)

	// Admin bypass wins even over the method table.
	assert.Nil(t, EvaluateMethod(&Principal{Role: RoleAdmin}, "blogs", "TRACE"))
}

func TestEvaluateMethodInfersAction(t *testing.T) {
	p := &Principal{
		Role:        "user",
		Permissions: Matrix{"forum": {Read: true, Create: true}},
	}

	assert.Nil(t, EvaluateMethod(p, "forum", "GET"))
	assert.Nil(t, EvaluateMethod(p, "forum", "POST"))
	require.NotNil(t, EvaluateMethod(p, "forum", "DELETE"))
}
