package app

import (
	"github.com/spf13/cobra"

	"github.com/optionpanel/optionpanel/internal/auth"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(hashCmd)
}

var hashCmd = &cobra.Command{
	Use:   "hash <password>",
	Short: "Generate an Argon2id hash for the auth.passwordHash setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}

		cmd.Println(hash)

		return nil
	},
}
