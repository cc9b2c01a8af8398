package rbac

import "go.mongodb.org/mongo-driver/bson/primitive"

// Action is one of the four CRUD verbs permissions are granted on.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ActionSet holds the CRUD flags for a single module.
type ActionSet struct {
	Read   bool `json:"read" bson:"read"`
	Create bool `json:"create" bson:"create"`
	Update bool `json:"update" bson:"update"`
	Delete bool `json:"delete" bson:"delete"`
}

// Allows reports whether the set grants the given action.
func (s ActionSet) Allows(action Action) bool {
	switch action {
	case ActionRead:
		return s.Read
	case ActionCreate:
		return s.Create
	case ActionUpdate:
		return s.Update
	case ActionDelete:
		return s.Delete
	}
	return false
}

// Matrix maps module names to their CRUD flags. Absent modules deny
// everything.
type Matrix map[string]ActionSet

// Modules is the closed set of permission-bearing resource categories.
var Modules = []string{
	"dashboard",
	"users",
	"volunteers",
	"certificates",
	"reports",
	"formats",
	"events",
	"jobs",
	"blogs",
	"causes",
	"donations",
	"contacts",
	"crowd-funding",
	"forum",
	"shop",
}

// IsModule reports whether name belongs to the closed module set.
func IsModule(name string) bool {
	for _, m := range Modules {
		if m == name {
			return true
		}
	}
	return false
}

// Geo is a strictly nested geographic assignment, broadest first. Empty
// fields mean the scope is not held.
type Geo struct {
	Country  string `json:"country,omitempty" bson:"country,omitempty"`
	State    string `json:"state,omitempty" bson:"state,omitempty"`
	Region   string `json:"region,omitempty" bson:"region,omitempty"`
	District string `json:"district,omitempty" bson:"district,omitempty"`
	Block    string `json:"block,omitempty" bson:"block,omitempty"`
	Area     string `json:"area,omitempty" bson:"area,omitempty"`
}

// Principal is the resolved authenticated actor guards and the evaluator
// operate on. It is always built from the current user record, never from
// token claims alone.
type Principal struct {
	ID          primitive.ObjectID
	Role        string
	Status      string
	Permissions Matrix
	Geo         Geo
}
