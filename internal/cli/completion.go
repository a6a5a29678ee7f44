package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for graphio.

To load completions:

Bash:
  $ source <(graphio completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ graphio completion bash > /etc/bash_completion.d/graphio
  # macOS:
  $ graphio completion bash > $(brew --prefix)/etc/bash_completion.d/graphio

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ graphio completion zsh > "${fpath[1]}/_graphio"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ graphio completion fish | source

  # To load completions for each session, execute once:
  $ graphio completion fish > ~/.config/fish/completions/graphio.fish

PowerShell:
  PS> graphio completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> graphio completion powershell > graphio.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
