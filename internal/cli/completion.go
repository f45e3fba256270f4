package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tetrado.

To load completions:

Bash:
  $ source <(tetrado completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ tetrado completion bash > /etc/bash_completion.d/tetrado
  # macOS:
  $ tetrado completion bash > $(brew --prefix)/etc/bash_completion.d/tetrado

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ tetrado completion zsh > "${fpath[1]}/_tetrado"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ tetrado completion fish | source

  # To load completions for each session, execute once:
  $ tetrado completion fish > ~/.config/fish/completions/tetrado.fish

PowerShell:
  PS> tetrado completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> tetrado completion powershell > tetrado.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.Out)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.Out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.Out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.Out)
			}
			return nil
		},
	}

	return cmd
}
