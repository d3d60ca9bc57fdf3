package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ljwgithub/svtags/internal/config"
	"github.com/ljwgithub/svtags/internal/diag"
	"github.com/ljwgithub/svtags/internal/discover"
	"github.com/ljwgithub/svtags/internal/emitjson"
	"github.com/ljwgithub/svtags/pkg/tag"
)

var (
	scanFormat    string
	scanSort      bool
	scanQualified bool
	scanKinds     string
	scanJobs      int
	scanCacheDir  string
	scanConfig    string
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Discover, scan, and emit tags for a source tree",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanFormat, "format", "tags", "output format: tags, json, or lines")
	scanCmd.Flags().BoolVar(&scanSort, "sort", false, "sort tags in natural order by name")
	scanCmd.Flags().BoolVar(&scanQualified, "qualified", false, "also emit fully-qualified tag names")
	scanCmd.Flags().StringVar(&scanKinds, "kinds", "", "comma-separated list of tag kinds to emit (default: all)")
	scanCmd.Flags().IntVar(&scanJobs, "jobs", 0, "worker pool size (default: GOMAXPROCS)")
	scanCmd.Flags().StringVar(&scanCacheDir, "cache-dir", "", "content-hash cache directory (disabled if empty)")
	scanCmd.Flags().StringVar(&scanConfig, "config", "svtags.yaml", "path to a svtags.yaml config file")
}

func runScan(cmd *cobra.Command, args []string) error {
	opts, err := config.Load(scanConfig)
	if err != nil {
		return err
	}
	applyScanFlags(cmd, opts)

	verbose, _ := cmd.Flags().GetBool("verbose")
	var logger diag.Logger = diag.Nop{}
	if verbose {
		logger = diag.NewVerbose(os.Stderr, nil, true)
	}

	cache, err := discover.OpenCache(opts.CacheDir)
	if err != nil {
		return err
	}

	d := discover.New(opts)
	ctx := context.Background()
	files, err := d.Discover(ctx, args)
	if err != nil {
		return err
	}

	sink := tag.NewCollector()
	scanErrs := discover.Scan(ctx, d, files, sink, nil, opts, logger, cache, opts.Jobs)
	for _, e := range scanErrs {
		fmt.Fprintf(os.Stderr, "Error: %v\n", e)
	}

	if err := cache.Save(); err != nil {
		return err
	}

	tags := sink.Tags()
	if opts.Sort {
		emitjson.SortNatural(tags)
	}

	switch opts.Format {
	case config.FormatJSON:
		return emitjson.WriteJSONLines(os.Stdout, tags)
	case config.FormatLines:
		return emitjson.WriteLines(os.Stdout, tags)
	default:
		return emitjson.WriteTags(os.Stdout, tags)
	}
}

func applyScanFlags(cmd *cobra.Command, opts *config.Options) {
	if cmd.Flags().Changed("format") {
		opts.Format = config.Format(scanFormat)
	}
	if cmd.Flags().Changed("sort") {
		opts.Sort = scanSort
	}
	if cmd.Flags().Changed("qualified") {
		opts.Qualified = scanQualified
	}
	if cmd.Flags().Changed("jobs") {
		opts.Jobs = scanJobs
	}
	if cmd.Flags().Changed("cache-dir") {
		opts.CacheDir = scanCacheDir
	}
	if scanKinds != "" {
		var kinds []tag.Kind
		for _, k := range strings.Split(scanKinds, ",") {
			k = strings.TrimSpace(k)
			if k != "" {
				kinds = append(kinds, tag.Kind(k))
			}
		}
		opts.Kinds = kinds
	}
}
