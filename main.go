package main

import "paletteai/cmd"

// version and repository are set at build time via
// -ldflags "-X main.version=... -X main.repository=owner/name".
// repository names the GitHub project self-update pulls releases from.
var (
	version    = "dev"
	repository = ""
)

func main() {
	cmd.SetVersion(version)
	cmd.SetRepository(repository)
	cmd.Execute()
}
