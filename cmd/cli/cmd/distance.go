// Package cmd - distance command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzhaolt/plane-ticket-query/core/geo"
)

// distanceCmd prints the great-circle distance between two airports
var distanceCmd = &cobra.Command{
	Use:   "distance [from] [to]",
	Short: "Show the distance between two airports",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance := geo.FlightDistance(args[0], args[1])
		if distance == 0 {
			return fmt.Errorf("one or both airports unknown: %s, %s", args[0], args[1])
		}
		fmt.Printf("%s -> %s: %.0f miles\n", args[0], args[1], distance)
		return nil
	},
}
