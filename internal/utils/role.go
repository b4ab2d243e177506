package utils

const (
	RoleManager     = "Manager"
	RoleParticipant = "Participant"
)

// ProjectRole labels the caller's relationship to a project.
func ProjectRole(userID, managerID uint) string {
	if userID == managerID {
		return RoleManager
	}

	return RoleParticipant
}
