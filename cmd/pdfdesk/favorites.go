package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdesk/internal/favorites"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage the pinned-folder list",
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <folder>",
	Short: "Pin a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if info, err := os.Stat(folder); err != nil || !info.IsDir() {
			return fmt.Errorf("%s is not an existing folder", folder)
		}

		list := favorites.Load(favoritesConfig().Path, os.Stderr)
		if !list.Add(folder) {
			fmt.Printf("already pinned: %s\n", folder)
			return nil
		}
		if err := list.Save(); err != nil {
			return err
		}
		fmt.Printf("pinned: %s\n", folder)
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "rm <folder>",
	Short: "Unpin a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		list := favorites.Load(favoritesConfig().Path, os.Stderr)
		if !list.Remove(folder) {
			return fmt.Errorf("not pinned: %s", folder)
		}
		if err := list.Save(); err != nil {
			return err
		}
		fmt.Printf("unpinned: %s\n", folder)
		return nil
	},
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pinned folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		list := favorites.Load(favoritesConfig().Path, os.Stderr)
		if len(list.Folders) == 0 {
			fmt.Println("no pinned folders")
			return nil
		}
		for _, folder := range list.Folders {
			fmt.Println(folder)
		}
		return nil
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesAddCmd, favoritesRemoveCmd, favoritesListCmd)
	rootCmd.AddCommand(favoritesCmd)
}
