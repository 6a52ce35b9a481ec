package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store Trello API credentials",
		Long:  "Verify an API key and token against the Trello API and save them to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := viper.GetString("key")
			if key == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API key: ")
				key, _ = reader.ReadString('\n')
				key = strings.TrimSpace(key)
			}

			if key == "" {
				return ErrKeyRequired
			}

			token := viper.GetString("token")
			if token == "" {
				fmt.Print("Token: ")
				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}
				token = strings.TrimSpace(string(byteToken))
				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			viper.Set("key", key)
			viper.Set("token", token)

			// Verify the pair before persisting it
			client, err := createClient()
			if err != nil {
				return err
			}

			member, err := client.Members().Get(context.Background(), "me", nil)
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			config := CLIConfig{
				Key:     key,
				Token:   token,
				BaseURL: viper.GetString("base-url"),
			}
			if err := saveCLIConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Logged in as %s (%s)\n", member.Username, member.FullName)

			return nil
		},
	}
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored Trello API credentials",
		Long:  "Clear the API key and token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := saveCLIConfig(CLIConfig{}); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
