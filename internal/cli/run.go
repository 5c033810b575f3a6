package cli

import (
	"github.com/spf13/cobra"
)

var (
	inputPath       string
	outputDir       string
	filterRegion    string
	filterMinAmount float64
	filterMaxAmount float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa o pipeline uma única vez e gera o relatório de vendas",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, runner, err := bootstrap()
		if err != nil {
			return err
		}

		if inputPath != "" {
			cfg.Input.FilePath = inputPath
		}
		if outputDir != "" {
			cfg.Output.Dir = outputDir
		}
		if filterRegion != "" {
			cfg.Filter.Region = filterRegion
		}
		if filterMinAmount > 0 {
			cfg.Filter.MinAmount = filterMinAmount
		}
		if filterMaxAmount > 0 {
			cfg.Filter.MaxAmount = filterMaxAmount
		}

		if _, err := runner.Run(cmd.Context()); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "", "caminho do arquivo de vendas (sobrescreve INPUT_FILE_PATH)")
	runCmd.Flags().StringVar(&outputDir, "output-dir", "", "diretório de saída (sobrescreve OUTPUT_DIR)")
	runCmd.Flags().StringVar(&filterRegion, "region", "", "mantém apenas as transações da região informada (sobrescreve FILTER_REGION)")
	runCmd.Flags().Float64Var(&filterMinAmount, "min-amount", 0, "valor mínimo da transação (sobrescreve FILTER_MIN_AMOUNT)")
	runCmd.Flags().Float64Var(&filterMaxAmount, "max-amount", 0, "valor máximo da transação (sobrescreve FILTER_MAX_AMOUNT)")
}
