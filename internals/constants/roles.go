package constants

const (
	RoleAdmin       = "admin"
	RoleInvigilator = "invigilator"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleInvigilator,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	InvigilatorOnly = []string{
		RoleInvigilator,
	}
)
