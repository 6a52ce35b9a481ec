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

// NewBoardsCommand creates the boards command group.
func NewBoardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boards",
		Aliases: []string{"board"},
		Short:   "Manage boards",
		Long:    "Get, create, and update Trello boards and inspect their contents",
	}

	cmd.AddCommand(newBoardsGetCommand())
	cmd.AddCommand(newBoardsCreateCommand())
	cmd.AddCommand(newBoardsUpdateCommand())
	cmd.AddCommand(newBoardsListsCommand())
	cmd.AddCommand(newBoardsCardsCommand())
	cmd.AddCommand(newBoardsMembersCommand())
	cmd.AddCommand(newBoardsLabelsCommand())
	cmd.AddCommand(newBoardsActionsCommand())

	return cmd
}

func newBoardsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BOARD_ID",
		Short: "Get board details",
		Long:  "Display detailed information about a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			board, err := client.Boards().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get board: %w", err)
			}

			return outputBoard(board)
		},
	}
}

func outputBoard(board *trello.Board) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(board)
	case OutputFormatYAML:
		return StandardYAMLRenderer(board)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", board.ID)
		_ = table.Append("Name", board.Name)
		_ = table.Append("Description", board.Desc)
		_ = table.Append("Closed", yesNo(board.Closed))
		_ = table.Append("Starred", yesNo(board.Starred))
		_ = table.Append("URL", board.URL)
		_ = table.Render()

		return nil
	}
}

func newBoardsCreateCommand() *cobra.Command {
	var (
		name         string
		desc         string
		defaultLists bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a board",
		Long:  "Create a new Trello board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrBoardNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &trello.BoardCreateRequest{
				Name:         name,
				Desc:         desc,
				DefaultLists: &defaultLists,
			}

			board, err := client.Boards().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create board: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created board '%s' with ID %s\n", board.Name, board.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "board name (required)")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "board description")
	cmd.Flags().BoolVar(&defaultLists, "default-lists", false, "create the default To Do/Doing/Done lists")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBoardsUpdateCommand() *cobra.Command {
	var (
		name string
		desc string
	)

	cmd := &cobra.Command{
		Use:   "update BOARD_ID",
		Short: "Update a board",
		Long:  "Update the name or description of a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &trello.BoardUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("desc") {
				request.Desc = &desc
			}

			board, err := client.Boards().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update board: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully updated board '%s'\n", board.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new board name")
	cmd.Flags().StringVar(&desc, "desc", "", "new board description")

	return cmd
}

func newBoardsListsCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "lists BOARD_ID",
		Short: "List the lists on a board",
		Long:  "Display all lists on a board",
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

			lists, err := client.Boards().Lists(context.Background(), args[0], trelloArgs)
			if err != nil {
				return fmt.Errorf("failed to list board lists: %w", err)
			}

			return outputLists(lists)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "filter lists (all, open, closed)")

	return cmd
}

func outputLists(lists []trello.List) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(lists)
	case OutputFormatYAML:
		return StandardYAMLRenderer(lists)
	default:
		if len(lists) == 0 {
			_, _ = os.Stdout.WriteString("No lists found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "ID", "Closed", "Position")

		for _, list := range lists {
			_ = table.Append(list.Name, list.ID, yesNo(list.Closed), fmt.Sprintf("%.0f", list.Pos))
		}

		_ = table.Render()

		return nil
	}
}

func newBoardsCardsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cards BOARD_ID",
		Short: "List the cards on a board",
		Long:  "Display all cards on a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			cards, err := client.Boards().Cards(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list board cards: %w", err)
			}

			return outputCards(cards)
		},
	}
}

func newBoardsMembersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "members BOARD_ID",
		Short: "List board members",
		Long:  "Display all members of a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			members, err := client.Boards().Members(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list board members: %w", err)
			}

			return outputMembers(members)
		},
	}
}

func newBoardsLabelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "labels BOARD_ID",
		Short: "List board labels",
		Long:  "Display all labels defined on a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			labels, err := client.Boards().Labels(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list board labels: %w", err)
			}

			return outputLabels(labels)
		},
	}
}

func outputLabels(labels []trello.Label) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(labels)
	case OutputFormatYAML:
		return StandardYAMLRenderer(labels)
	default:
		if len(labels) == 0 {
			_, _ = os.Stdout.WriteString("No labels found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "ID", "Color")

		for _, label := range labels {
			_ = table.Append(label.Name, label.ID, label.Color)
		}

		_ = table.Render()

		return nil
	}
}

func newBoardsActionsCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "actions BOARD_ID",
		Short: "Show board activity",
		Long:  "Display the activity feed of a board",
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

			actions, err := client.Boards().Actions(context.Background(), args[0], trelloArgs)
			if err != nil {
				return fmt.Errorf("failed to list board actions: %w", err)
			}

			return outputActions(actions)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "comma-separated action types (e.g. commentCard,updateCard)")

	return cmd
}

func outputActions(actions []trello.Action) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(actions)
	case OutputFormatYAML:
		return StandardYAMLRenderer(actions)
	default:
		if len(actions) == 0 {
			_, _ = os.Stdout.WriteString("No actions found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Date", "Type", "Member", "ID")

		for _, action := range actions {
			member := action.IDMemberCreator
			if action.MemberCreator != nil {
				member = action.MemberCreator.Username
			}

			_ = table.Append(action.Date.Format("2006-01-02 15:04"), action.Type, member, action.ID)
		}

		_ = table.Render()

		return nil
	}
}
