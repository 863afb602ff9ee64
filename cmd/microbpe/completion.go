package main

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `Generate shell completion script for microbpe.

To load completions:

Bash:
  $ source <(microbpe completion bash)
  # To load completions for each session, execute once:
  $ microbpe completion bash > /etc/bash_completion.d/microbpe

Zsh:
  $ source <(microbpe completion zsh)
  # To load completions for each session, execute once:
  $ microbpe completion zsh > "${fpath[1]}/_microbpe"

Fish:
  $ microbpe completion fish | source
  # To load completions for each session, execute once:
  $ microbpe completion fish > ~/.config/fish/completions/microbpe.fish

PowerShell:
  PS> microbpe completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
