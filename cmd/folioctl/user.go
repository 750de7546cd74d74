package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/folioboard/folioboard/pkg/db"
	"github.com/folioboard/folioboard/pkg/model"
	gormstore "github.com/folioboard/folioboard/pkg/server/store/gorm"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  `Manage user accounts and roles.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'user' requires a subcommand (promote, demote, list-admins)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var userPromoteCmd = &cobra.Command{
	Use:   "promote <email>",
	Short: "Grant a user the admin role",
	Long: `Grant a user the admin role.

Admins can verify companies, author blog posts and moderate comments. The
change takes effect on the user's next login, when the role is resolved
into a fresh session token.

Example:
  folioctl user promote alice@example.com`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := setRole(args[0], model.RoleAdmin); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to promote %s: %v\n", args[0], err)
			os.Exit(1)
		}
		fmt.Printf("%s is now an admin\n", args[0])
	},
}

var userDemoteCmd = &cobra.Command{
	Use:   "demote <email>",
	Short: "Remove a user's admin role",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := setRole(args[0], model.RoleUser); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to demote %s: %v\n", args[0], err)
			os.Exit(1)
		}
		fmt.Printf("%s is no longer an admin\n", args[0])
	},
}

var userListAdminsCmd = &cobra.Command{
	Use:   "list-admins",
	Short: "List all users with the admin role",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open database: %v\n", err)
			os.Exit(1)
		}

		admins, err := gormstore.NewUsersStore(database).ListAdmins()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list admins: %v\n", err)
			os.Exit(1)
		}

		if len(admins) == 0 {
			fmt.Println("No admins")
			return
		}
		for _, admin := range admins {
			fmt.Printf("%s\t%s\n", admin.Email, admin.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userPromoteCmd)
	userCmd.AddCommand(userDemoteCmd)
	userCmd.AddCommand(userListAdminsCmd)
}

func setRole(email, role string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	_, err = gormstore.NewUsersStore(database).SetRole(email, role)
	return err
}
