package rbac

const (
	RoleLearner = "learner"
	RoleAdmin   = "admin"
)

// RolePermissions is the default policy.
var RolePermissions = map[string][]string{
	RoleLearner: {
		"quiz:play",
		"results:view-own",
	},
	RoleAdmin: {
		"*", // everything
	},
}
