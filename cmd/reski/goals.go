package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reskiapp/reski/internal/api"
	"github.com/reskiapp/reski/internal/config"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage career goals",
	Long:  `List, add, edit and delete career goals ("objetivos") on the Reski service.`,
}

var goalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List career goals",
	RunE:  runGoalsList,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a career goal",
	RunE:  runGoalsAdd,
}

var goalsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a career goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsEdit,
}

var goalsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a career goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsDelete,
}

var goalInput api.GoalInput

func init() {
	for _, cmd := range []*cobra.Command{goalsAddCmd, goalsEditCmd} {
		cmd.Flags().StringVar(&goalInput.Cargo, "cargo", "", "target position")
		cmd.Flags().StringVar(&goalInput.Area, "area", "", "field of work")
		cmd.Flags().StringVar(&goalInput.Demanda, "demanda", "", "market demand")
		cmd.Flags().StringVar(&goalInput.Descricao, "descricao", "", "description")
	}

	goalsCmd.AddCommand(goalsListCmd)
	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsEditCmd)
	goalsCmd.AddCommand(goalsDeleteCmd)
}

// newAPIClient builds the service client from the default config.
func newAPIClient() (*api.Client, error) {
	cfg, err := config.Load(defaultConfigPath())
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.API.BaseURL, cfg.API.Token), nil
}

func runGoalsList(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	page, err := client.ListGoals(context.Background(), api.PageParams{Size: 50, Sort: "id,desc"})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCARGO\tAREA\tDEMANDA\tDESCRICAO")
	for _, g := range page.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", g.ID, g.Cargo, g.Area, g.Demanda, g.Descricao)
	}
	return w.Flush()
}

func runGoalsAdd(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	goal, err := client.CreateGoal(context.Background(), goalInput)
	if err != nil {
		return err
	}
	fmt.Printf("Created goal %d\n", goal.ID)
	return nil
}

func runGoalsEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	goal, err := client.UpdateGoal(context.Background(), id, goalInput)
	if err != nil {
		return err
	}
	fmt.Printf("Updated goal %d\n", goal.ID)
	return nil
}

func runGoalsDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.DeleteGoal(context.Background(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted goal %d\n", id)
	return nil
}
