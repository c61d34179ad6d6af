package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/sampledata/internal/config"
	"github.com/Lumos-Labs-HQ/sampledata/internal/report"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	configErr error
	Version   = "1.2.0"
)

func showBanner(title, referenceDate string) {
	greenColor := color.New(color.FgGreen, color.Bold)

	greenColor.Println(report.Rule())
	greenColor.Println(title)
	fmt.Print("Date: ")
	color.New(color.FgYellow, color.Bold).Println(referenceDate)
	greenColor.Println(report.Rule())
}

func bannerTitle(variant config.Variant) string {
	if variant == config.Pure {
		return "Pi-Qualytics Pure Sample Data Generator"
	}
	return "Pi-Qualytics Sample Data Generator"
}

func newRootCmd(variant config.Variant) *cobra.Command {
	use := "sampledata"
	short := "Generate banking sample data with intentional data-quality issues"
	long := `
Generates customers, accounts, transactions, daily balances and FX rates as
CSV files for loading into the warehouse. A fixed share of records carries
known defects (missing ids, malformed emails and phones, invalid dates,
orphaned accounts, invalid FX rates) for the DQ rules to find.

Counts, rates and the output directory come from compiled defaults and can be
overridden through sampledata.config.json or DQGEN_* environment variables.`

	if variant == config.Pure {
		use = "puredata"
		short = "Generate clean banking sample data for model verification"
		long = `
Generates the same five CSV files as sampledata with every defect probability
set to zero. Every foreign key resolves and every value is well formed, so the
output can serve as the control dataset for the DQ rules.`
	}

	root := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", use, Version)
				return nil
			}
			return runGenerate(cmd.Context(), variant)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sampledata.config.json)")
	root.Flags().BoolP("version", "v", false, "Show CLI version")

	return root
}

// ExecuteSampleData runs the defect-injecting generator.
func ExecuteSampleData() error {
	return newRootCmd(config.Sample).Execute()
}

// ExecutePureData runs the clean generator.
func ExecutePureData() error {
	return newRootCmd(config.Pure).Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	configErr = nil

	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("sampledata.config")
	}

	viper.SetEnvPrefix("DQGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Without --config the file is optional.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			configErr = err
		}
	}
}
