package model

// Role is the pipeline role of a freelancer. Each role owns exactly one stage.
type Role string

const (
	RoleScriptWriter Role = "SCRIPT_WRITER"
	RoleNarrator     Role = "NARRATOR"
	RoleEditor       Role = "EDITOR"
	RoleThumbMaker   Role = "THUMB_MAKER"

	// RoleUnknown is the fail-closed resolution for absent or unrecognized
	// role labels: it grants no visibility and no transitions.
	RoleUnknown Role = ""
)

// IsValid checks if the role is one of the four pipeline roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleScriptWriter, RoleNarrator, RoleEditor, RoleThumbMaker:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole maps a role label to a Role. Unrecognized labels resolve to
// RoleUnknown rather than an error so callers fail closed, not open.
func ParseRole(label string) Role {
	switch Role(label) {
	case RoleScriptWriter:
		return RoleScriptWriter
	case RoleNarrator:
		return RoleNarrator
	case RoleEditor:
		return RoleEditor
	case RoleThumbMaker:
		return RoleThumbMaker
	default:
		return RoleUnknown
	}
}

// Stage returns the stage owned by this role, or StageNone for RoleUnknown.
func (r Role) Stage() Stage {
	switch r {
	case RoleScriptWriter:
		return StageScript
	case RoleNarrator:
		return StageNarration
	case RoleEditor:
		return StageEditing
	case RoleThumbMaker:
		return StageThumbnail
	default:
		return StageNone
	}
}
