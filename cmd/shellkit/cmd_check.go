package main

import (
	"fmt"
	"net/http"
	"time"

	"shellkit/internal/urlcheck"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkTimeout time.Duration

// checkURLCmd checks whether a URL answers with HTTP 200
var checkURLCmd = &cobra.Command{
	Use:     "check-url <url>",
	Aliases: []string{"check_url"},
	Short:   "GET a URL and report OK 200 or FAIL",
	Long: `Issues an HTTP GET with a 10-second timeout. A 200 response
prints "OK 200" and exits 0; any other status or a transport error
prints "FAIL <status-or-error>" to standard error and exits 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckURL,
}

func init() {
	checkURLCmd.Flags().DurationVar(&checkTimeout, "timeout", 0, "Request timeout (default 10s)")
}

func runCheckURL(cmd *cobra.Command, args []string) error {
	timeout := checkTimeout
	if !cmd.Flags().Changed("timeout") {
		timeout = cfg.HTTPTimeout()
	}

	url := args[0]
	logger.Debug("Checking URL",
		zap.String("url", url),
		zap.Duration("timeout", timeout))

	client := urlcheck.NewClient(timeout)
	status, err := urlcheck.Check(cmd.Context(), client, url)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %v\n", err)
		return errReported
	}
	if status != http.StatusOK {
		fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %d\n", status)
		return errReported
	}

	fmt.Fprintln(cmd.OutOrStdout(), "OK 200")
	return nil
}
