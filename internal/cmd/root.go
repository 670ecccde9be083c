package cmd

import "github.com/alecthomas/kong"

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version   VersionCmd   `cmd:"" help:"Print version."`
	Config    ConfigCmd    `cmd:"" help:"Manage configuration."`
	Serve     ServeCmd     `cmd:"" help:"Run the job portal HTTP API."`
	Search    SearchCmd    `cmd:"" help:"Search, rank and page job listings."`
	Skills    SkillsCmd    `cmd:"" help:"Show a user's skill gap by category."`
	Recommend RecommendCmd `cmd:"" help:"List jobs recommended for a user."`
	Proxies   ProxiesCmd   `cmd:"" help:"Proxy utilities."`
}

func NewCLI() *CLI {
	return &CLI{}
}
