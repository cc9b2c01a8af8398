package rbac

// contentModules are the modules admins below the super-admin may create
// and update but not delete.
var contentModules = map[string]bool{
	"certificates":  true,
	"reports":       true,
	"events":        true,
	"jobs":          true,
	"blogs":         true,
	"causes":        true,
	"donations":     true,
	"contacts":      true,
	"crowd-funding": true,
	"forum":         true,
}

// DefaultMatrix builds the permission snapshot a principal receives when
// created with, or reassigned to, the given role. Unknown roles fall back
// to the read-only user matrix. Snapshots are copies; editing a Role in
// the registry later does not rewrite matrices handed out earlier.
func DefaultMatrix(role string) Matrix {
	m := make(Matrix, len(Modules))
	switch role {
	case RoleAdmin:
		for _, mod := range Modules {
			m[mod] = ActionSet{Read: true, Create: true, Update: true, Delete: true}
		}
	case "country-admin", "state-admin", "regional-admin", "district-admin", "block-admin", "area-admin":
		for _, mod := range Modules {
			if contentModules[mod] {
				m[mod] = ActionSet{Read: true, Create: true, Update: true}
			} else {
				m[mod] = ActionSet{Read: true}
			}
		}
	default:
		for _, mod := range Modules {
			if mod == "forum" {
				m[mod] = ActionSet{Read: true, Create: true, Update: true}
			} else {
				m[mod] = ActionSet{Read: true}
			}
		}
	}
	return m
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
