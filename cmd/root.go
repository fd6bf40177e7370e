package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "moodline",
		Short:         "moodline: turn a journal entry into a supportive response",
		Long:          "moodline classifies the sentiment and emotion of short texts or voice notes, grades the risk, and answers with a supportive message and self-care resources.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAnalyzeCmd(app),
		newServeCmd(app),
		newCatalogCmd(app),
	)

	return rootCmd
}
