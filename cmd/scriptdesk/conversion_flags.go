package main

import (
	"github.com/spf13/cobra"

	"scriptdesk/internal/ingest"
)

type conversionFlags struct {
	method        string
	title         string
	noSplit       bool
	noClean       bool
	separatePages bool
	fontAnalysis  bool
}

func (f *conversionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.method, "method", "m", "", "Section detection method: headings or paragraphs (default from config)")
	flags.StringVarP(&f.title, "title", "t", "", "Override the script title")
	flags.BoolVar(&f.noSplit, "no-split", false, "Keep the whole document in one section")
	flags.BoolVar(&f.noClean, "no-clean", false, "Skip whitespace cleanup of section text")
	flags.BoolVar(&f.separatePages, "separate-pages", false, "PDF only: one section per page")
	flags.BoolVar(&f.fontAnalysis, "font-analysis", false, "PDF only: treat oversized fonts as headings")
}

func (f *conversionFlags) request() ingest.Request {
	return ingest.Request{
		Title:         f.title,
		Method:        f.method,
		NoSplit:       f.noSplit,
		NoClean:       f.noClean,
		SeparatePages: f.separatePages,
		FontAnalysis:  f.fontAnalysis,
	}
}
