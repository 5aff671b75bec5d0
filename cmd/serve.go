package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/tutils/mrgrand/counter"
	"github.com/tutils/mrgrand/counter/period"
	"github.com/tutils/mrgrand/stream"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stream random numbers over websocket",
	Long: `Start a websocket server streaming random numbers, For example:
  mrgrand serve --listen=ws://0.0.0.0:8080/stream
Clients choose the distribution with query parameters:
  ws://127.0.0.1:8080/stream?dist=normal&seed=5&mean=10&stddev=2&count=100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sent := period.NewPeriodCounter(time.Second)
		s := newStreamServer(sent)

		done := make(chan struct{})
		defer close(done)
		if statsInterval > 0 {
			go logStats(sent, statsInterval, done)
		}
		return s.ListenAndServe()
	},
}

var (
	listenAddress string
	maxCount      int
	statsInterval time.Duration
)

// newStreamServer builds the server from the serve flags.
func newStreamServer(sent counter.Counter) *stream.Server {
	return stream.NewServer(
		stream.WithListenAddress(listenAddress),
		stream.WithCounter(sent),
		stream.WithMaxCount(maxCount),
	)
}

func logStats(c counter.Counter, interval time.Duration, done chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := int64(-1)
	for {
		select {
		case <-ticker.C:
			if v := c.Value(); v != last {
				log.Printf("values sent: %d (%d/s)", v, c.RatePerSec())
				last = v
			}
		case <-done:
			return
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringVarP(&listenAddress, "listen", "l", stream.DefaultListenAddress, "stream server listen address")
	flags.IntVarP(&maxCount, "max-count", "m", stream.DefaultMaxCount, "largest count a client may request")
	flags.DurationVar(&statsInterval, "stats-interval", 10*time.Second, "how often to log throughput, 0 disables")
}
