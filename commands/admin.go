package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"AltarCheckinBackend/database"
	"AltarCheckinBackend/export"
	"AltarCheckinBackend/models"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
		return nil
	},
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role [user-id] [server|moderator]",
	Short: "Change a user's role",
	Long: `Change a user's role. Use this to appoint the first moderator, who can
then manage roles from the web client.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := models.ParseRole(args[1])
		if err != nil {
			return err
		}

		_, db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		user, err := database.NewStore(db).UpdateUserRole(cmd.Context(), &database.UpdateUserRoleInput{
			UserID: args[0],
			Role:   role,
		})
		if err != nil {
			return fmt.Errorf("set role for %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now a %s\n", user.DisplayName(), user.ID, user.Role)
		return nil
	},
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every service session as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := database.NewStore(db).ListSessionsForExport(cmd.Context())
		if err != nil {
			return err
		}

		if exportOut == "" || exportOut == "-" {
			return export.WriteSessionsCSV(cmd.OutOrStdout(), rows)
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		if err := export.WriteSessionsCSV(f, rows); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d sessions to %s\n", len(rows), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}
