package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanban-ai/summarizer/internal/domain"
)

func NewIntentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intents",
		Short: "List the question intent taxonomy",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-16s %-16s %-12s %s\n", "ID", "LABEL", "STRUCTURE", "PATTERNS")
			for _, intent := range domain.DefaultIntents() {
				fmt.Printf("%-16s %-16s %-12s %d\n",
					intent.ID, intent.Label, intent.Template.StructureType, len(intent.Patterns))
			}
			return nil
		},
	}

	return cmd
}
