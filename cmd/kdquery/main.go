package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TrevorS/kdtree2d"
	"github.com/TrevorS/kdtree2d/internal/config"
)

var (
	cfgFile string
	queryX  int
	queryY  int
	exclude int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "kdquery",
		Short:        "kdquery — nearest-other-object queries over a 2D point set",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (default: configs/kdquery.yaml)")

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Find the object closest to a location",
		RunE:  runQuery,
	}
	queryCmd.Flags().IntVar(&queryX, "x", 0, "Query x coordinate")
	queryCmd.Flags().IntVar(&queryY, "y", 0, "Query y coordinate")
	queryCmd.Flags().IntVar(&exclude, "exclude", -1, "Object ID to ignore")

	allCmd := &cobra.Command{
		Use:   "nearest-all",
		Short: "Find every object's nearest other object",
		RunE:  runNearestAll,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the tree structure",
		RunE:  runDump,
	}

	rootCmd.AddCommand(queryCmd, allCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config, builds a logger from it and builds the tree.
func setup() (*config.Config, *zap.Logger, *kdtree2d.KDTree, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config load: %w", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("logger init: %w", err)
	}

	treeCfg := kdtree2d.DefaultConfig()
	treeCfg.Logger = logger
	treeCfg.Workers = cfg.Workers

	tree, err := kdtree2d.NewWithConfig(cfg.Area(), cfg.TreePoints(), treeCfg)
	if err != nil {
		logger.Sync()
		return nil, nil, nil, fmt.Errorf("build tree: %w", err)
	}
	logger.Info("Tree ready",
		zap.Int("points", tree.NumPoints()),
		zap.Int("height", tree.Height()),
	)
	return cfg, logger, tree, nil
}

func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}

func runQuery(cmd *cobra.Command, args []string) error {
	_, logger, tree, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	loc := kdtree2d.Location{X: queryX, Y: queryY}
	nb, ok := tree.Nearest(loc, exclude)
	if !ok {
		logger.Info("No neighbor found", zap.Int("x", loc.X), zap.Int("y", loc.Y), zap.Int("exclude", exclude))
		fmt.Fprintln(cmd.OutOrStdout(), "no neighbor")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %.6f\n", nb.ObjectID, nb.Distance)
	return nil
}

func runNearestAll(cmd *cobra.Command, args []string) error {
	cfg, logger, tree, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	treeCfg := kdtree2d.Config{Logger: logger, Workers: cfg.Workers}
	points, results, err := kdtree2d.NearestAll(context.Background(), tree, treeCfg)
	if err != nil {
		return fmt.Errorf("nearest-all: %w", err)
	}

	out := cmd.OutOrStdout()
	for i, p := range points {
		r := results[i]
		if !r.Found {
			fmt.Fprintf(out, "%d -\n", p.ObjectID)
			continue
		}
		fmt.Fprintf(out, "%d %d %.6f\n", p.ObjectID, r.ObjectID, r.Distance)
	}
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	_, logger, tree, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	fmt.Fprintln(cmd.OutOrStdout(), tree.String())
	return nil
}
