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

// NewListsCommand creates the lists command group.
func NewListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list"},
		Short:   "Manage lists",
		Long:    "Get, create, update, and archive Trello lists",
	}

	cmd.AddCommand(newListsGetCommand())
	cmd.AddCommand(newListsCreateCommand())
	cmd.AddCommand(newListsUpdateCommand())
	cmd.AddCommand(newListsCardsCommand())
	cmd.AddCommand(newListsArchiveCommand())
	cmd.AddCommand(newListsUnarchiveCommand())
	cmd.AddCommand(newListsArchiveAllCardsCommand())
	cmd.AddCommand(newListsMoveAllCardsCommand())

	return cmd
}

func newListsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LIST_ID",
		Short: "Get list details",
		Long:  "Display detailed information about a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			list, err := client.Lists().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get list: %w", err)
			}

			return outputList(list)
		},
	}
}

func outputList(list *trello.List) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(list)
	case OutputFormatYAML:
		return StandardYAMLRenderer(list)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", list.ID)
		_ = table.Append("Name", list.Name)
		_ = table.Append("Board", list.IDBoard)
		_ = table.Append("Closed", yesNo(list.Closed))
		_ = table.Append("Position", fmt.Sprintf("%.0f", list.Pos))
		_ = table.Render()

		return nil
	}
}

func newListsCreateCommand() *cobra.Command {
	var (
		name    string
		boardID string
		pos     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a list",
		Long:  "Create a new list on a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrListNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &trello.ListCreateRequest{
				Name:    name,
				IDBoard: boardID,
				Pos:     pos,
			}

			list, err := client.Lists().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create list: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created list '%s' with ID %s\n", list.Name, list.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "list name (required)")
	cmd.Flags().StringVarP(&boardID, "board", "b", "", "board ID (required)")
	cmd.Flags().StringVar(&pos, "pos", "", "position (top, bottom, or a number)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func newListsUpdateCommand() *cobra.Command {
	var (
		name string
		pos  string
	)

	cmd := &cobra.Command{
		Use:   "update LIST_ID",
		Short: "Update a list",
		Long:  "Update the name or position of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &trello.ListUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("pos") {
				request.Pos = &pos
			}

			list, err := client.Lists().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update list: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated list '%s'\n", list.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new list name")
	cmd.Flags().StringVar(&pos, "pos", "", "new position (top, bottom, or a number)")

	return cmd
}

func newListsCardsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cards LIST_ID",
		Short: "List the cards in a list",
		Long:  "Display all cards in a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			cards, err := client.Lists().Cards(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list cards: %w", err)
			}

			return outputCards(cards)
		},
	}
}

func newListsArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive LIST_ID",
		Short: "Archive a list",
		Long:  "Close a list so it no longer appears on the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			list, err := client.Lists().Archive(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to archive list: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully archived list '%s'\n", list.Name)

			return nil
		},
	}
}

func newListsUnarchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive LIST_ID",
		Short: "Unarchive a list",
		Long:  "Reopen a closed list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			list, err := client.Lists().Unarchive(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to unarchive list: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully unarchived list '%s'\n", list.Name)

			return nil
		},
	}
}

func newListsArchiveAllCardsCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "archive-all-cards LIST_ID",
		Short: "Archive every card in a list",
		Long:  "Archive all cards in a list in a single operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really archive all cards in list '%s'? (y/N): ", args[0])

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

			if err := client.Lists().ArchiveAllCards(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to archive all cards: %w", err)
			}

			_, _ = os.Stdout.WriteString("Successfully archived all cards\n")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newListsMoveAllCardsCommand() *cobra.Command {
	var (
		destBoardID string
		destListID  string
	)

	cmd := &cobra.Command{
		Use:   "move-all-cards LIST_ID",
		Short: "Move every card in a list",
		Long:  "Move all cards in a list to a list on another (or the same) board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Lists().MoveAllCards(context.Background(), args[0], destBoardID, destListID)
			if err != nil {
				return fmt.Errorf("failed to move all cards: %w", err)
			}

			_, _ = os.Stdout.WriteString("Successfully moved all cards\n")

			return nil
		},
	}

	cmd.Flags().StringVar(&destBoardID, "to-board", "", "destination board ID (required)")
	cmd.Flags().StringVar(&destListID, "to-list", "", "destination list ID (required)")
	_ = cmd.MarkFlagRequired("to-board")
	_ = cmd.MarkFlagRequired("to-list")

	return cmd
}
