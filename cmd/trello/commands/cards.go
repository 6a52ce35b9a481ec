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

// NewCardsCommand creates the cards command group.
func NewCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"card"},
		Short:   "Manage cards",
		Long:    "Get, create, update, move, and comment on Trello cards",
	}

	cmd.AddCommand(newCardsGetCommand())
	cmd.AddCommand(newCardsCreateCommand())
	cmd.AddCommand(newCardsUpdateCommand())
	cmd.AddCommand(newCardsDeleteCommand())
	cmd.AddCommand(newCardsMoveCommand())
	cmd.AddCommand(newCardsArchiveCommand())
	cmd.AddCommand(newCardsUnarchiveCommand())
	cmd.AddCommand(newCardsCommentCommand())
	cmd.AddCommand(newCardsMembersCommand())
	cmd.AddCommand(newCardsAddMemberCommand())
	cmd.AddCommand(newCardsRemoveMemberCommand())
	cmd.AddCommand(newCardsActionsCommand())

	return cmd
}

func newCardsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CARD_ID",
		Short: "Get card details",
		Long:  "Display detailed information about a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			card, err := client.Cards().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get card: %w", err)
			}

			return outputCard(card)
		},
	}
}

func outputCard(card *trello.Card) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(card)
	case OutputFormatYAML:
		return StandardYAMLRenderer(card)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", card.ID)
		_ = table.Append("Name", card.Name)
		_ = table.Append("Description", card.Desc)
		_ = table.Append("List", card.IDList)
		_ = table.Append("Board", card.IDBoard)
		_ = table.Append("Closed", yesNo(card.Closed))
		_ = table.Append("Due", formatDate(card.Due))
		_ = table.Append("URL", card.URL)
		_ = table.Render()

		return nil
	}
}

func outputCards(cards []trello.Card) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(cards)
	case OutputFormatYAML:
		return StandardYAMLRenderer(cards)
	default:
		if len(cards) == 0 {
			_, _ = os.Stdout.WriteString("No cards found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "ID", "List", "Due", "Closed")

		for _, card := range cards {
			_ = table.Append(card.Name, card.ID, card.IDList, formatDate(card.Due), yesNo(card.Closed))
		}

		_ = table.Render()

		return nil
	}
}

func newCardsCreateCommand() *cobra.Command {
	var (
		name   string
		desc   string
		listID string
		pos    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a card",
		Long:  "Create a new card in a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrCardNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &trello.CardCreateRequest{
				Name:   name,
				Desc:   desc,
				IDList: listID,
				Pos:    pos,
			}

			card, err := client.Cards().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create card: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created card '%s' with ID %s\n", card.Name, card.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "card name (required)")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "card description")
	cmd.Flags().StringVarP(&listID, "list", "l", "", "list ID (required)")
	cmd.Flags().StringVar(&pos, "pos", "", "position (top, bottom, or a number)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("list")

	return cmd
}

func newCardsUpdateCommand() *cobra.Command {
	var (
		name string
		desc string
	)

	cmd := &cobra.Command{
		Use:   "update CARD_ID",
		Short: "Update a card",
		Long:  "Update the name or description of a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &trello.CardUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("desc") {
				request.Desc = &desc
			}

			card, err := client.Cards().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update card: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated card '%s'\n", card.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new card name")
	cmd.Flags().StringVar(&desc, "desc", "", "new card description")

	return cmd
}

func newCardsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CARD_ID",
		Short: "Delete a card",
		Long:  "Permanently delete a card. Archiving is usually the safer choice.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete card '%s'? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Cards().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete card: %w", err)
			}

			_, _ = os.Stdout.WriteString("Successfully deleted card\n")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newCardsMoveCommand() *cobra.Command {
	var listID string

	cmd := &cobra.Command{
		Use:   "move CARD_ID",
		Short: "Move a card to another list",
		Long:  "Move a card to a different list on the same board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			card, err := client.Cards().MoveToList(context.Background(), args[0], listID)
			if err != nil {
				return fmt.Errorf("failed to move card: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully moved card '%s'\n", card.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&listID, "list", "l", "", "destination list ID (required)")
	_ = cmd.MarkFlagRequired("list")

	return cmd
}

func newCardsArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive CARD_ID",
		Short: "Archive a card",
		Long:  "Close a card so it no longer appears in its list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			card, err := client.Cards().Archive(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to archive card: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully archived card '%s'\n", card.Name)

			return nil
		},
	}
}

func newCardsUnarchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive CARD_ID",
		Short: "Unarchive a card",
		Long:  "Reopen a closed card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			card, err := client.Cards().Unarchive(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to unarchive card: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully unarchived card '%s'\n", card.Name)

			return nil
		},
	}
}

func newCardsCommentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comment CARD_ID TEXT",
		Short: "Comment on a card",
		Long:  "Add a comment to a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Cards().AddComment(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add comment: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully added comment (action: %s)\n", action.ID)

			return nil
		},
	}
}

func newCardsMembersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "members CARD_ID",
		Short: "List card members",
		Long:  "Display the members assigned to a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			members, err := client.Cards().Members(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list card members: %w", err)
			}

			return outputMembers(members)
		},
	}
}

func newCardsAddMemberCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-member CARD_ID MEMBER_ID",
		Short: "Assign a member to a card",
		Long:  "Add a member to a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			members, err := client.Cards().AddMember(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add member: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully added member (card now has %d members)\n", len(members))

			return nil
		},
	}
}

func newCardsRemoveMemberCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-member CARD_ID MEMBER_ID",
		Short: "Unassign a member from a card",
		Long:  "Remove a member from a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Cards().RemoveMember(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to remove member: %w", err)
			}

			_, _ = os.Stdout.WriteString("Successfully removed member\n")

			return nil
		},
	}
}

func newCardsActionsCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "actions CARD_ID",
		Short: "Show card activity",
		Long:  "Display the activity feed of a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			trelloArgs := trello.Arguments{}
			if filter != "" {
				trelloArgs = trelloArgs.With("filter", filter)
			}

			actions, err := client.Cards().Actions(context.Background(), args[0], trelloArgs)
			if err != nil {
				return fmt.Errorf("failed to list card actions: %w", err)
			}

			return outputActions(actions)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "comma-separated action types (e.g. commentCard)")

	return cmd
}
