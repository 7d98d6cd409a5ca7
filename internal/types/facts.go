package types

// EnvironmentFacts captures everything the provisioner learns about the
// host before it mutates anything. Resolved once at startup and read-only
// afterwards.
type EnvironmentFacts struct {
	Privileged   bool
	InvokingUser string
	HomeDir      string
	OSVersion    string
	OSCodename   string
}

// TargetUser returns the account name provisioning actions should run as:
// the user that invoked the privilege elevation when known, root otherwise.
func (f EnvironmentFacts) TargetUser() string {
	if f.InvokingUser != "" {
		return f.InvokingUser
	}
	return "root"
}
