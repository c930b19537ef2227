package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mixmem/internal/prompt"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database",
	Long:  `Drop the existing database tables and recreate them empty.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "recreate without asking for confirmation")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce && prompt.IsTerminal() {
		ok, err := prompt.Confirm(fmt.Sprintf("Reset the database %s? All saved tracks and connections will be lost.", cfg.Database.Path))
		if err != nil {
			return err
		}
		if !ok {
			NormalF("Aborted.")
			return nil
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Init(); err != nil {
		return err
	}

	Success("Database %s has been recreated.", cfg.Database.Path)
	return nil
}
