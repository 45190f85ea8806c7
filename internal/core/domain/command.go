package domain

// Command is an external process invocation.
type Command struct {
	// Label names the command in logs and errors.
	Label       string
	Args        []string
	Environment map[string]string
	WorkingDir  string
}
