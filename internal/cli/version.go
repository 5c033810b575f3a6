package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version é definida no build via -ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Exibe a versão da ferramenta",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("salesanalytics", Version)
	},
}
