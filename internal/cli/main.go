package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "clipshort <input>",
		Short:        "Cut a short vertical clip with burned-in captions from a video",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("config", "", "Path to TOML config file")
	root.Flags().String("output", "", "Output file path")
	root.Flags().Int("duration", 30, "Target clip duration in seconds (15-60)")
	root.Flags().Bool("no-captions", false, "Skip caption burn-in")
	root.Flags().String("style", "clean", "Caption style: clean|neon|boxed|punchy")
	root.Flags().String("position", "bottom", "Caption position: bottom|middle")
	root.Flags().Int("offset-ms", 0, "Manual caption offset in milliseconds (-1000..1000)")
	root.Flags().Bool("auto-offset", false, "Derive caption offset from leading silence")
	root.Flags().Int("speed", 100, "Caption speed percent (80-140)")
	root.Flags().String("lang", "auto", "Speech language code or auto")
	root.Flags().String("model", "base", "Speech model tier: tiny|base|small|medium|large")
	root.Flags().Bool("accelerator", false, "Use the accelerated speech engine build")
	root.Flags().Bool("verbose", false, "Verbose diagnostics")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
