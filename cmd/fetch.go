package cmd

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/mrgrand/stream"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch random numbers from a stream server",
	Long: `Fetch random numbers from a running "mrgrand serve", For example:
  mrgrand fetch --url=ws://127.0.0.1:8080/stream --dist=normal -n 4 --seed-key=5 --mean=10 --stddev=2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := stream.Request{
			Dist:    fetchDist,
			SeedKey: viper.GetInt("seed-key"),
			Mean:    viper.GetFloat64("mean"),
			StdDev:  viper.GetFloat64("stddev"),
			Low:     viper.GetFloat64("low"),
			High:    viper.GetFloat64("high"),
			Count:   count,
			Batch:   fetchBatch,
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		res, err := stream.Fetch(ctx, fetchURL, req)
		if err != nil {
			return err
		}
		log.Printf("session %s seed key %d", res.Session, res.SeedKey)

		out := cmd.OutOrStdout()
		return writeValues(out, res.Values, precision, isTerminal(out))
	},
}

var (
	fetchURL     string
	fetchDist    string
	fetchBatch   int
	fetchTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	addSampleFlags(fetchCmd)
	flags := fetchCmd.Flags()
	flags.StringVarP(&fetchURL, "url", "u", "ws://127.0.0.1:8080/stream", "stream server address")
	flags.StringVarP(&fetchDist, "dist", "d", stream.Uniform, "distribution, uniform or normal")
	flags.IntVar(&fetchBatch, "batch", stream.DefaultBatch, "values per websocket frame")
	flags.DurationVar(&fetchTimeout, "timeout", 30*time.Second, "request timeout")
}
