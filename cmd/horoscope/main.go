// Package main implements the horoscope CLI, which runs the generator locally
// without a server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/yanqian/daily-horoscope/internal/domain/horoscope"
	"github.com/yanqian/daily-horoscope/pkg/util"
)

var (
	// dateFlag selects the calendar day; empty means today in timezoneFlag
	dateFlag     string
	timezoneFlag string
	jsonOutput   bool
	signFlag     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "horoscope",
	Short: "Generate deterministic daily horoscopes",
	Long: `horoscope prints the daily horoscope for a sign or for all signs.
The same sign and date always produce the same text and scores.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "calendar day as YYYY-MM-DD (default today)")
	rootCmd.PersistentFlags().StringVar(&timezoneFlag, "tz", "UTC", "time zone used to resolve today")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")

	todayCmd.Flags().StringVarP(&signFlag, "sign", "s", "", "canonical sign key, e.g. koc")
	_ = todayCmd.MarkFlagRequired("sign")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(signsCmd)
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print the horoscope of one sign",
	Long: `Print the horoscope of one sign.

Examples:
  horoscope today --sign koc
  horoscope today --sign oglak --date 2024-01-01 --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		date, err := resolveDate()
		if err != nil {
			return err
		}
		rec, err := horoscope.Generate(date, strings.TrimSpace(signFlag))
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), rec)
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Print the horoscopes of every sign",
	RunE: func(cmd *cobra.Command, _ []string) error {
		date, err := resolveDate()
		if err != nil {
			return err
		}
		records, err := horoscope.GenerateAll(date)
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), records...)
	},
}

var signsCmd = &cobra.Command{
	Use:   "signs",
	Short: "List the accepted sign keys",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, key := range horoscope.Signs() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), key); err != nil {
				return err
			}
		}
		return nil
	},
}

func resolveDate() (string, error) {
	if trimmed := strings.TrimSpace(dateFlag); trimmed != "" {
		return trimmed, nil
	}
	loc, err := util.LoadLocation(timezoneFlag)
	if err != nil {
		return "", err
	}
	return horoscope.DateStamp(util.NowUTC(), loc), nil
}

func printRecords(w io.Writer, records ...horoscope.Record) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(records) == 1 {
			return enc.Encode(records[0])
		}
		return enc.Encode(records)
	}
	for i, rec := range records {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s - %s\n%s\nlove: %d%%  money: %d%%  health: %d%%\n",
			rec.Sign, rec.Date, rec.Text, rec.Love, rec.Money, rec.Health); err != nil {
			return err
		}
	}
	return nil
}
