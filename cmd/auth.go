package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/mailsift/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Gmail access for an account",
		Long: `Walk through the OAuth consent flow for a Google account. Prints the
authorization URL, waits for the code on stdin, and stores the resulting
token in the user cache directory.

Tokens are stored per account, so multiple mailboxes can be authorized
side by side.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if google.HasTokenForAccount(account) {
				fmt.Printf("Account '%s' is already authorized. Re-authorizing replaces the stored token.\n\n", account)
			}

			fmt.Printf("Visit this URL in your browser to authorize Gmail access:\n\n  %s\n\n", google.GetAuthURLForAccount(account))
			fmt.Print("Enter the authorization code: ")

			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("authorization code is empty")
			}

			if err := google.SaveTokenForAccount(cmd.Context(), account, code); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}

			fmt.Printf("Authorization successful. Token saved for account '%s'.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to authorize (default: 'default')")
	return cmd
}
