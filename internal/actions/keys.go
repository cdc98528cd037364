package actions

// Result keys shared by the command schema and the actions.
const (
	KeyManifest    = "manifest"
	KeyFormat      = "format"
	KeyRun         = "run"
	KeyArgs        = "args"
	KeyPath        = "path"
	KeyInteractive = "interactive"
	KeyDump        = "dump"
	KeyShell       = "shell"
	KeyName        = "name"
)
