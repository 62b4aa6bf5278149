package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daytally-io/daytally/internal/aggregate"
	"github.com/daytally-io/daytally/internal/clock"
	"github.com/daytally-io/daytally/internal/config"
	"github.com/daytally-io/daytally/internal/ledger"
)

var (
	reportDayFlag   string
	reportMonthFlag string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print tracked time for a day or month",
	Long: `Print tracked time without entering the TUI.

With no flags, reports today. --day takes a date (2006-01-02), --month a
month (2006-01).`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDayFlag, "day", "", "report a single day (format: 2006-01-02)")
	reportCmd.Flags().StringVar(&reportMonthFlag, "month", "", "report a whole month (format: 2006-01)")
}

func newAggregator() (*aggregate.Aggregator, error) {
	ledgerDir, err := config.LedgerDir()
	if err != nil {
		return nil, err
	}
	led := ledger.NewFileLedger(ledgerDir, time.Local)
	return aggregate.New(led, time.Local), nil
}

func runReport(cmd *cobra.Command, args []string) error {
	agg, err := newAggregator()
	if err != nil {
		return err
	}

	if reportMonthFlag != "" {
		anchor, err := time.ParseInLocation("2006-01", reportMonthFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q: %w", reportMonthFlag, err)
		}
		return printMonthReport(agg, anchor)
	}

	day := clock.DayStart(time.Now(), time.Local)
	if reportDayFlag != "" {
		parsed, err := time.ParseInLocation("2006-01-02", reportDayFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid day %q: %w", reportDayFlag, err)
		}
		day = parsed
	}
	return printDayReport(agg, day)
}

func printDayReport(agg *aggregate.Aggregator, day time.Time) error {
	totals, err := agg.TotalsForDay(day)
	if err != nil {
		return err
	}

	fmt.Println(day.Format("Mon, Jan 2 2006"))
	fmt.Println(strings.Repeat("-", 40))

	if len(totals) == 0 {
		fmt.Println("No time tracked.")
		return nil
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	var total float64
	for _, name := range names {
		total += totals[name]
		fmt.Printf("%-25s | %s\n", name, aggregate.FormatTotal(totals[name]))
	}
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-25s | %s\n", "Total", aggregate.FormatTotal(total))
	return nil
}

func printMonthReport(agg *aggregate.Aggregator, anchor time.Time) error {
	totals, err := agg.TotalsForMonth(anchor)
	if err != nil {
		return err
	}

	days := make([]time.Time, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	fmt.Printf("Month %s\n", anchor.Format("2006-01"))
	fmt.Println(strings.Repeat("-", 40))

	var total float64
	for _, day := range days {
		total += totals[day]
		fmt.Printf("%-15s | %s\n", day.Format("2006-01-02"), aggregate.FormatTotal(totals[day]))
	}
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-15s | %s\n", "Total", aggregate.FormatTotal(total))
	return nil
}
