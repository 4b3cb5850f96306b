// Command simplot renders the metrics tables produced by a controller
// simulation run as comparative plots and distribution summaries.
package main

import (
	goflag "flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		klog.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "simplot",
		Short:        "Plot controller-simulation metrics tables",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	cmd.AddCommand(newRenderCmd(), newSummaryCmd(), newGenCmd())
	return cmd
}
