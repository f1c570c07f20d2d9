// Package cli adds the estimate commands to the application's cobra root.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonnyallum/construct.fm-estimate-generator/config"
	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

// Register adds the rates, estimate and export commands to root.
func Register(root *cobra.Command, cat *services.Catalogue, cfg config.Config) {
	root.AddCommand(
		newRatesCmd(cat),
		newEstimateCmd(cat, cfg),
		newExportCmd(cat, cfg),
	)
}

func newRatesCmd(cat *services.Catalogue) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Print the rate card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := cat.Categories()
			if category != "" {
				categories = []string{category}
			}
			var entries []services.RateEntry
			for _, c := range categories {
				entries = append(entries, cat.Filter(c, search)...)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tKEY\tDESCRIPTION\tUNIT\tRATE")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Category, e.Key, e.Description, e.Unit, services.FormatGBP(e.Rate))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only show this category")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive description filter")
	return cmd
}

func newEstimateCmd(cat *services.Catalogue, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate FILE.yaml",
		Short: "Price an estimate file and print the totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, summary, err := loadAndPrice(args[0], cat, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DESCRIPTION\tQTY\tUNIT\tRATE\tTOTAL")
			for _, it := range summary.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", it.Description, services.FormatQty(it.Quantity), it.Unit,
					services.FormatGBP(it.Rate), services.FormatGBP(it.Total))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if in.Document.ClientName != "" {
				fmt.Fprintf(out, "\nClient: %s\n", in.Document.ClientName)
			}
			printSummary(out, summary)
			return nil
		},
	}
}

func newExportCmd(cat *services.Catalogue, cfg config.Config) *cobra.Command {
	var docType, format, outDir string

	cmd := &cobra.Command{
		Use:   "export FILE.yaml",
		Short: "Write a quotation or invoice for an estimate file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, summary, err := loadAndPrice(args[0], cat, cfg)
			if err != nil {
				return err
			}

			info := in.Document
			if docType != "" {
				t, err := services.ParseDocumentType(docType)
				if err != nil {
					return err
				}
				info.Type = t
			}
			info = info.WithDefaults(time.Now())
			data := services.BuildExportData(info, summary)

			var body []byte
			var ext string
			switch strings.ToLower(format) {
			case "xlsx", "excel":
				body, ext, err = services.GenerateEstimateExcel(cfg.TemplatesDir, data)
			case "pdf":
				body, err = services.GenerateEstimatePDF(data, cfg.Company)
				ext = ".pdf"
			default:
				return fmt.Errorf("unknown format %q, want xlsx or pdf", format)
			}
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			path := filepath.Join(outDir, services.ExportFilename(info, ext))
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			log.Printf("export: wrote %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&docType, "type", "", "quotation or invoice (default from the file)")
	cmd.Flags().StringVar(&format, "format", "xlsx", "xlsx or pdf")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}

func loadAndPrice(path string, cat *services.Catalogue, cfg config.Config) (*services.EstimateInput, services.EstimateSummary, error) {
	in, err := services.LoadEstimateInput(path)
	if err != nil {
		return nil, services.EstimateSummary{}, err
	}
	list, err := in.LineItems(cat)
	if err != nil {
		return nil, services.EstimateSummary{}, err
	}
	return in, services.CalculateEstimate(list.Items(), in.Prelims(cfg.DefaultPrelims)), nil
}

func printSummary(out io.Writer, s services.EstimateSummary) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Main contract\t%s\t\n", services.FormatGBP(s.MainContractTotal))
	fmt.Fprintf(w, "Preliminaries (%s)\t%s\t\n", services.FormatPercent(s.PrelimsPercent), services.FormatGBP(s.PrelimsValue))
	fmt.Fprintf(w, "Subtotal (ex VAT)\t%s\t\n", services.FormatGBP(s.SubtotalExVAT))
	fmt.Fprintf(w, "VAT (%s)\t%s\t\n", services.FormatPercent(services.VATRate*100), services.FormatGBP(s.VAT))
	fmt.Fprintf(w, "TOTAL (inc VAT)\t%s\t\n", services.FormatGBP(s.GrandTotal))
	w.Flush()
}
