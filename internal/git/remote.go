package git

// GetRemote returns the default remote name (usually "origin")
func GetRemote() string {
	remotes, err := RunGitCommandLines("remote")
	if err != nil || len(remotes) == 0 {
		// A repo without remotes still gets a usable push instruction
		return "origin"
	}
	for _, remote := range remotes {
		if remote == "origin" {
			return remote
		}
	}
	return remotes[0]
}
