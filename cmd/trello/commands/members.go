package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pluralsight/trello-helper/pkg/trello"
)

// NewMembersCommand creates the members command group.
func NewMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"member"},
		Short:   "Inspect members",
		Long:    "Look up members, their boards, cards, and notifications. Use 'me' for the authenticated member.",
	}

	cmd.AddCommand(newMembersGetCommand())
	cmd.AddCommand(newMembersBoardsCommand())
	cmd.AddCommand(newMembersCardsCommand())
	cmd.AddCommand(newMembersNotificationsCommand())

	return cmd
}

// memberIDFromArgs defaults to the authenticated member when no ID is
// given.
func memberIDFromArgs(args []string) string {
	if len(args) == 0 {
		return "me"
	}

	return args[0]
}

func newMembersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [MEMBER_ID]",
		Short: "Get member details",
		Long:  "Display information about a member, defaulting to the authenticated member",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			member, err := client.Members().Get(context.Background(), memberIDFromArgs(args), nil)
			if err != nil {
				return fmt.Errorf("failed to get member: %w", err)
			}

			return outputMember(member)
		},
	}
}

func outputMember(member *trello.Member) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(member)
	case OutputFormatYAML:
		return StandardYAMLRenderer(member)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", member.ID)
		_ = table.Append("Username", member.Username)
		_ = table.Append("Full Name", member.FullName)
		_ = table.Append("Initials", member.Initials)
		_ = table.Append("URL", member.URL)
		_ = table.Render()

		return nil
	}
}

func outputMembers(members []trello.Member) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(members)
	case OutputFormatYAML:
		return StandardYAMLRenderer(members)
	default:
		if len(members) == 0 {
			_, _ = os.Stdout.WriteString("No members found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Username", "Full Name", "ID")

		for _, member := range members {
			_ = table.Append(member.Username, member.FullName, member.ID)
		}

		_ = table.Render()

		return nil
	}
}

func newMembersBoardsCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "boards [MEMBER_ID]",
		Short: "List a member's boards",
		Long:  "Display the boards a member belongs to, defaulting to the authenticated member",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			trelloArgs := trello.Arguments{}
			if filter != "" {
				trelloArgs = trelloArgs.With("filter", filter)
			}

			boards, err := client.Members().Boards(context.Background(), memberIDFromArgs(args), trelloArgs)
			if err != nil {
				return fmt.Errorf("failed to list member boards: %w", err)
			}

			return outputBoards(boards)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "filter boards (all, open, closed, starred)")

	return cmd
}

func outputBoards(boards []trello.Board) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(boards)
	case OutputFormatYAML:
		return StandardYAMLRenderer(boards)
	default:
		if len(boards) == 0 {
			_, _ = os.Stdout.WriteString("No boards found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "ID", "Closed", "Starred")

		for _, board := range boards {
			_ = table.Append(board.Name, board.ID, yesNo(board.Closed), yesNo(board.Starred))
		}

		_ = table.Render()

		return nil
	}
}

func newMembersCardsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cards [MEMBER_ID]",
		Short: "List a member's cards",
		Long:  "Display the cards assigned to a member, defaulting to the authenticated member",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			cards, err := client.Members().Cards(context.Background(), memberIDFromArgs(args), nil)
			if err != nil {
				return fmt.Errorf("failed to list member cards: %w", err)
			}

			return outputCards(cards)
		},
	}
}

func newMembersNotificationsCommand() *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "notifications [MEMBER_ID]",
		Short: "List a member's notifications",
		Long:  "Display notifications for a member, defaulting to the authenticated member",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			trelloArgs := trello.Arguments{}
			if unreadOnly {
				trelloArgs = trelloArgs.With("read_filter", "unread")
			}

			notifications, err := client.Members().Notifications(context.Background(), memberIDFromArgs(args), trelloArgs)
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}

			return outputNotifications(notifications)
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "only show unread notifications")

	return cmd
}

func outputNotifications(notifications []trello.Notification) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(notifications)
	case OutputFormatYAML:
		return StandardYAMLRenderer(notifications)
	default:
		if len(notifications) == 0 {
			_, _ = os.Stdout.WriteString("No notifications found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Date", "Type", "Unread", "ID")

		for _, notification := range notifications {
			_ = table.Append(notification.Date.Format("2006-01-02 15:04"),
				notification.Type, yesNo(notification.Unread), notification.ID)
		}

		_ = table.Render()

		return nil
	}
}
