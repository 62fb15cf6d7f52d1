package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/adydas-lantern/naia-standings/internal/roster"
	"github.com/adydas-lantern/naia-standings/internal/scraper"
	"github.com/adydas-lantern/naia-standings/internal/store"
	"github.com/adydas-lantern/naia-standings/internal/urlfinder"
)

const (
	// DefaultCSV is the main results file.
	DefaultCSV = "NAIA_blank - NAIA_results.csv"

	// DefaultSortedCSV is the normalized export the read API serves from.
	DefaultSortedCSV = "NAIA_Complete_Sorted.csv"

	// DefaultLedger is the processed-URL ledger file.
	DefaultLedger = "processed_urls.json"

	// StartURLEnv names the env var (or .env entry) holding the next
	// release URL to scrape.
	StartURLEnv = "NAIA_START_URL"
)

var (
	flagCSV     string
	flagLedger  string
	flagVerbose bool

	flagURL     string
	flagYear    int
	flagForce   bool
	flagDryRun  bool
	flagFormat  string
	flagSorted  string
	flagNoSort  bool
	flagYes        bool
	flagExportOut  string
	flagMigrateOut string
	flagStart      int
	flagEnd        int
	flagExplore    string
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "naia-standings",
		Short: "Scrape NAIA wrestling conference standings into CSV",
		Long: `A CLI tool for maintaining the NAIA wrestling standings dataset.
Scrapes conference team standings from naia.org release pages, upserts them
into the results CSV, and tracks processed URLs so a release is never
ingested twice.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagCSV, "csv", DefaultCSV, "Path to the main results CSV")
	cmd.PersistentFlags().StringVar(&flagLedger, "ledger", DefaultLedger, "Path to the processed-URL ledger")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newURLsCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newFindURLsCmd())

	return cmd
}

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape a standings release page and update the results CSV",
		RunE:  runScrape,
	}

	cmd.Flags().StringVar(&flagURL, "url", "", "Release URL to scrape (default: $"+StartURLEnv+")")
	cmd.Flags().IntVar(&flagYear, "year", 0, "Season year the release covers (required)")
	cmd.Flags().BoolVar(&flagForce, "force", false, "Re-scrape even if the URL is already in the ledger")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Parse and report without writing any files")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSorted, "sorted-csv", DefaultSortedCSV, "Path to the sorted export")
	cmd.Flags().BoolVar(&flagNoSort, "no-sorted", false, "Skip writing the sorted export")
	cmd.MarkFlagRequired("year")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	// The release URL traditionally lives in .env between runs.
	url := flagURL
	if url == "" {
		godotenv.Load()
		url = os.Getenv(StartURLEnv)
	}
	if url == "" {
		return fmt.Errorf("no URL: pass --url or set %s in the environment or .env", StartURLEnv)
	}

	ledger, err := store.LoadLedger(flagLedger)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	if ledger.IsProcessed(url) && !flagForce {
		fmt.Fprintf(os.Stderr, "URL already processed: %s (use --force to re-scrape)\n", url)
		return nil
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Loading roster from %s\n", flagCSV)
	}
	r, err := store.Load(flagCSV)
	if err != nil {
		return err
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Scraping %d standings from %s\n", flagYear, url)
	}
	sections, err := scraper.New().FetchStandings(url)
	if err != nil {
		var perr *scraper.ParseError
		if errors.As(err, &perr) && flagVerbose {
			fmt.Fprintf(os.Stderr, "--- page text ---\n%s\n-----------------\n", perr.RawText)
		}
		return err
	}

	updated, report, err := roster.ApplyStandings(r, flagYear, sections)
	if err != nil {
		return err
	}

	if !flagDryRun {
		if err := store.Save(flagCSV, updated); err != nil {
			return err
		}
		if !flagNoSort {
			if err := store.WriteSorted(flagSorted, updated); err != nil {
				return err
			}
		}
		ledger.MarkProcessed(url)
		if err := ledger.Save(); err != nil {
			return err
		}
	}

	result := &ScrapeResult{
		URL:      url,
		Year:     flagYear,
		DryRun:   flagDryRun,
		Sections: sections,
		Report:   report,
	}
	return WriteScrapeResult(os.Stdout, result, format, flagVerbose)
}

func newURLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urls",
		Short: "List processed release URLs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := store.LoadLedger(flagLedger)
			if err != nil {
				return err
			}
			urls := ledger.URLs()
			if len(urls) == 0 {
				fmt.Println("No URLs have been processed yet")
				return nil
			}
			for i, url := range urls {
				fmt.Printf("%d. %s\n", i+1, url)
			}
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Clear the processed-URL ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !flagYes {
				return fmt.Errorf("clearing the ledger allows every release to be re-ingested; pass --yes to confirm")
			}
			ledger, err := store.LoadLedger(flagLedger)
			if err != nil {
				return err
			}
			n := ledger.Len()
			ledger.Clear()
			if err := ledger.Save(); err != nil {
				return err
			}
			fmt.Printf("Cleared %d processed URLs\n", n)
			return nil
		},
	}
	clear.Flags().BoolVar(&flagYes, "yes", false, "Confirm clearing the ledger")
	cmd.AddCommand(clear)

	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the sorted standings export from the results CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := store.Load(flagCSV)
			if err != nil {
				return err
			}
			if err := store.WriteSorted(flagExportOut, r); err != nil {
				return err
			}
			fmt.Printf("Wrote sorted export to %s\n", flagExportOut)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagExportOut, "out", DefaultSortedCSV, "Output path for the sorted export")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Add Sport/Division/Gender columns to a legacy CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := flagMigrateOut
			if out == "" {
				out = flagCSV + ".new"
			}
			if err := store.Migrate(flagCSV, out); err != nil {
				return err
			}
			fmt.Printf("Migrated %s -> %s\nReview the output, then replace the original.\n", flagCSV, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagMigrateOut, "out", "", "Output path (default: <csv>.new)")
	return cmd
}

func newFindURLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find-urls",
		Short: "Discover standings release URLs on naia.org",
		RunE: func(cmd *cobra.Command, args []string) error {
			finder := urlfinder.New()

			if flagExplore != "" {
				links, err := finder.Explore(flagExplore)
				if err != nil {
					return fmt.Errorf("exploring %s: %w", flagExplore, err)
				}
				if len(links) == 0 {
					fmt.Println("No standings links found")
					return nil
				}
				for _, link := range links {
					fmt.Println(link)
				}
				return nil
			}

			results := finder.ProbeRange(flagStart, flagEnd)
			if len(results) == 0 {
				fmt.Println("No standings URLs found")
				return nil
			}
			for year := flagStart; year <= flagEnd; year++ {
				urls, ok := results[year]
				if !ok {
					continue
				}
				fmt.Printf("# Year: %d\n", year)
				for _, url := range urls {
					fmt.Println(url)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flagStart, "start-year", 2020, "First season year to probe")
	cmd.Flags().IntVar(&flagEnd, "end-year", 2025, "Last season year to probe")
	cmd.Flags().StringVar(&flagExplore, "explore", "", "Explore a season landing page for standings links instead of probing")

	return cmd
}
