package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reskiapp/reski/internal/api"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "Manage study tracks",
	Long:  `List, add, edit and delete study tracks ("trilhas") on the Reski service.`,
}

var tracksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List study tracks",
	RunE:  runTracksList,
}

var tracksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a study track",
	RunE:  runTracksAdd,
}

var tracksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a study track",
	Args:  cobra.ExactArgs(1),
	RunE:  runTracksEdit,
}

var tracksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a study track",
	Args:  cobra.ExactArgs(1),
	RunE:  runTracksDelete,
}

var trackInput api.TrackInput

func init() {
	for _, cmd := range []*cobra.Command{tracksAddCmd, tracksEditCmd} {
		cmd.Flags().StringVar(&trackInput.Conteudo, "conteudo", "", "study content")
		cmd.Flags().StringVar(&trackInput.Status, "status", "", "progress status")
		cmd.Flags().StringVar(&trackInput.Competencia, "competencia", "", "competency the track builds")
	}

	tracksCmd.AddCommand(tracksListCmd)
	tracksCmd.AddCommand(tracksAddCmd)
	tracksCmd.AddCommand(tracksEditCmd)
	tracksCmd.AddCommand(tracksDeleteCmd)
}

func runTracksList(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	page, err := client.ListTracks(context.Background(), api.PageParams{Size: 50, Sort: "id,asc"})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCONTEUDO\tSTATUS\tCOMPETENCIA")
	for _, t := range page.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Conteudo, t.Status, t.Competencia)
	}
	return w.Flush()
}

func runTracksAdd(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	track, err := client.CreateTrack(context.Background(), trackInput)
	if err != nil {
		return err
	}
	fmt.Printf("Created track %d\n", track.ID)
	return nil
}

func runTracksEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	track, err := client.UpdateTrack(context.Background(), id, trackInput)
	if err != nil {
		return err
	}
	fmt.Printf("Updated track %d\n", track.ID)
	return nil
}

func runTracksDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.DeleteTrack(context.Background(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted track %d\n", id)
	return nil
}
