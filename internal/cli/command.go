package cli

import "github.com/spf13/cobra"

// BoolFlag declares a boolean flag on a command.
type BoolFlag struct {
	Name    string
	Usage   string
	Default bool
}

// StringFlag declares a string-valued flag on a command.
type StringFlag struct {
	Name    string
	Usage   string
	Default string
}

// LeafCommand describes a command that does work. Each command file declares
// one as a package var and calls Build once.
type LeafCommand struct {
	Use       string
	Short     string
	Args      cobra.PositionalArgs
	BoolFlags []BoolFlag
	StrFlags  []StringFlag
	RunE      func(cmd *cobra.Command, args []string) error
}

// Build assembles the cobra command and registers its flags.
func (lc LeafCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   lc.Use,
		Short: lc.Short,
		Args:  lc.Args,
		RunE:  lc.RunE,
	}
	for _, f := range lc.BoolFlags {
		cmd.Flags().Bool(f.Name, f.Default, f.Usage)
	}
	for _, f := range lc.StrFlags {
		cmd.Flags().String(f.Name, f.Default, f.Usage)
	}
	return cmd
}

// GroupCommand describes a command that exists only to namespace its
// subcommands, like "calendar".
type GroupCommand struct {
	Use         string
	Short       string
	Subcommands []*cobra.Command
}

// Build assembles the group and attaches its subcommands.
func (gc GroupCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   gc.Use,
		Short: gc.Short,
	}
	for _, sub := range gc.Subcommands {
		cmd.AddCommand(sub)
	}
	return cmd
}
