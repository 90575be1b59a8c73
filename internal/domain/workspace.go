package domain

// ConfigFileName marks a workspace root.
const ConfigFileName = "innkeep.yaml"

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
