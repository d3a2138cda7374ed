package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"lane-analytics-service/internal/domain"

	"github.com/spf13/cobra"
)

var errMissingDatabaseURL = errors.New("DATABASE_URL is required")

// Per-command limit flags; sharing one variable would let the last
// registered default clobber the others.
var (
	lanesLimit     int
	frictionLimit  int
	terminalsLimit int
	similarLimit   int
)

func init() {
	lanesCmd.Flags().IntVar(&lanesLimit, "limit", 20, "maximum rows to print")
	frictionCmd.Flags().IntVar(&frictionLimit, "limit", 10, "maximum zones to print")
	terminalsCmd.Flags().IntVar(&terminalsLimit, "limit", 5, "top/bottom performers to print")
	similarCmd.Flags().IntVar(&similarLimit, "limit", 10, "maximum similar lanes to print")
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printLaneRows(w *tabwriter.Writer, lanes []domain.LaneMetrics) {
	fmt.Fprintln(w, "ROUTE\tVOLUME\tDELAY\tVARIANCE\tEARLY%\tONTIME%\tLATE%\tCLUSTER")
	for _, l := range lanes {
		d := l.Display()
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.1f\t%.1f\t%.1f\t%s\n",
			d.Route, d.Volume, d.AvgDelay, d.TransitVariance,
			d.EarlyPct, d.OnTimePct, d.LatePct, d.ClusterName)
	}
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Network-wide shipment statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		stats, err := engine.NetworkStats(cmd.Context())
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintf(w, "Total shipments\t%d\n", stats.TotalShipments)
		fmt.Fprintf(w, "Total lanes\t%d\n", stats.TotalLanes)
		fmt.Fprintf(w, "Total carriers\t%d\n", stats.TotalCarriers)
		fmt.Fprintf(w, "Total locations\t%d\n", stats.TotalLocations)
		fmt.Fprintf(w, "On-time rate\t%.1f%%\n", stats.OverallOnTimeRate)
		fmt.Fprintf(w, "Late rate\t%.1f%%\n", stats.OverallLateRate)
		fmt.Fprintf(w, "Early rate\t%.1f%%\n", stats.OverallEarlyRate)
		return w.Flush()
	},
}

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Behavioral cluster summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		clusters, err := engine.Clusters(cmd.Context())
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tLANES\tVOLUME\tAVG DELAY\tAVG LATE%")
		for _, c := range clusters {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.2f\t%.1f\n",
				c.ID, c.Name, c.LaneCount, c.TotalVolume, c.AvgDelay, c.AvgLateRate)
		}
		return w.Flush()
	},
}

var lanesCmd = &cobra.Command{
	Use:   "lanes [cluster-id]",
	Short: "List lanes, optionally restricted to one cluster",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		var lanes []domain.LaneMetrics
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid cluster id %q", args[0])
			}
			lanes, err = engine.LanesInCluster(cmd.Context(), id, lanesLimit)
			if err != nil {
				return err
			}
		} else {
			lanes, err = engine.Lanes(cmd.Context(), lanesLimit)
			if err != nil {
				return err
			}
		}

		w := newTable()
		printLaneRows(w, lanes)
		return w.Flush()
	},
}

var frictionCmd = &cobra.Command{
	Use:   "friction",
	Short: "Highest-friction destination zones",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		zones, err := engine.FrictionZones(cmd.Context(), frictionLimit)
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "DEST\tLOCATION\tSCORE\tLATE%\tVARIANCE\tVOLUME\tLANES")
		for _, z := range zones {
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.2f\t%d\t%d\n",
				z.DestZip, z.Location, z.FrictionScore, z.LateRate,
				z.TransitVariance, z.Volume, z.LaneCount)
		}
		return w.Flush()
	},
}

var terminalsCmd = &cobra.Command{
	Use:   "terminals",
	Short: "Origin terminal performance scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := engine.TerminalPerformance(cmd.Context(), terminalsLimit)
		if err != nil {
			return err
		}

		fmt.Printf("Terminals: %d  Volume: %d  Avg score: %.1f\n\n",
			report.TotalTerminals, report.TotalVolume, report.AverageScore)

		w := newTable()
		fmt.Fprintln(w, "TERMINAL\tSCORE\tONTIME%\tLATE%\tEARLY%\tVOLUME\tLANES")
		for _, t := range report.TopPerformers {
			fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%d\t%d\n",
				t.Terminal, t.PerformanceScore, t.OnTimeRate, t.LateRate,
				t.EarlyRate, t.Volume, t.LaneCount)
		}
		fmt.Fprintln(w, "--- needs attention ---\t\t\t\t\t\t")
		for _, t := range report.NeedsAttention {
			fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%d\t%d\n",
				t.Terminal, t.PerformanceScore, t.OnTimeRate, t.LateRate,
				t.EarlyRate, t.Volume, t.LaneCount)
		}
		return w.Flush()
	},
}

var earlyCmd = &cobra.Command{
	Use:   "early",
	Short: "Early delivery analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		analysis, err := engine.EarlyAnalysis(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Shipments: %d  Early: %d (%.1f%%)\n\n",
			analysis.TotalShipments, analysis.EarlyShipments, analysis.EarlyRate)

		w := newTable()
		fmt.Fprintln(w, "DEST\tLOCATION\tEARLY%\tDAYS EARLY\tEARLY SHIPMENTS\tVOLUME")
		for _, d := range analysis.TopDestinations {
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%d\t%d\n",
				d.DestZip, d.Location, d.EarlyRate, d.AvgDaysEarly,
				d.EarlyShipments, d.Volume)
		}
		return w.Flush()
	},
}

var regionCmd = &cobra.Command{
	Use:   "region <zip3-or-name>",
	Short: "Regional performance rollup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		perf, err := engine.RegionalPerformance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if perf == nil {
			return fmt.Errorf("no lanes match region %q", args[0])
		}

		fmt.Printf("Region %s: %d lanes, %d shipments, late %.1f%%, early %.1f%%, delay %.2fd\n\n",
			perf.Region, perf.TotalLanes, perf.TotalVolume,
			perf.AvgLateRate, perf.AvgEarlyRate, perf.AvgDelay)

		w := newTable()
		fmt.Fprintln(w, "CLUSTER\tLANES\tVOLUME")
		for _, b := range perf.ClusterBreakdown {
			fmt.Fprintf(w, "%s\t%d\t%d\n", b.Cluster, b.LaneCount, b.Volume)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(perf.HighestFrictionLanes) > 0 {
			fmt.Println("\nProblem lanes:")
			w = newTable()
			printLaneRows(w, perf.HighestFrictionLanes)
			return w.Flush()
		}
		return nil
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <pattern>",
	Short: "Find lanes behaving like a target lane",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := engine.FindSimilarLanes(cmd.Context(), args[0], similarLimit)
		if err != nil {
			return err
		}
		if result.TargetLane == nil {
			return fmt.Errorf("no lane matches %q", args[0])
		}

		target := result.TargetLane.Display()
		fmt.Printf("Target: %s (%s, volume %d)\n\n", target.Route, target.ClusterName, target.Volume)

		w := newTable()
		printLaneRows(w, result.SimilarLanes)
		return w.Flush()
	},
}
