package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// Response headers worth showing besides the body.
var reportedHeaders = []string{
	"Location",
	"iserror",
	"X-Idempotency-Replay",
	"dueDate",
	"totalInCents",
	"customer",
	"status",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	baseURL        string
	timeout        time.Duration
	idempotencyKey string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "bankslip-cli",
		Short:         "Bank slip CLI tool",
		Long:          `A command line interface for interacting with the bank slip API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "Base URL of the bank slip API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&opts.idempotencyKey, "idempotency-key", "", "Idempotency-Key sent with create, pay and cancel")

	rootCmd.AddCommand(
		createCmd(opts),
		listCmd(opts),
		getCmd(opts),
		resolveCmd(opts, "pay", "PAID"),
		resolveCmd(opts, "cancel", "CANCELED"),
	)

	return rootCmd
}

func createCmd(opts *options) *cobra.Command {
	var dueDate, total, customer, status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bank slip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"dueDate":      dueDate,
				"totalInCents": total,
				"customer":     customer,
				"status":       status,
			}
			resp, err := send(cmd.Context(), opts, http.MethodPost, "/rest/bankslips", payload)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&dueDate, "due-date", "", "Due date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&total, "total", "", "Total in cents")
	cmd.Flags().StringVar(&customer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&status, "status", "PENDING", "Initial status")

	return cmd
}

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bank slips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := send(cmd.Context(), opts, http.MethodGet, "/rest/bankslips", nil)
			if err != nil {
				return err
			}

			var slips []struct {
				ID           string          `json:"id"`
				DueDate      string          `json:"dueDate"`
				TotalInCents json.RawMessage `json:"totalInCents"`
				Customer     string          `json:"customer"`
			}
			if resp.status != http.StatusOK || json.Unmarshal(resp.body, &slips) != nil {
				return report(cmd.OutOrStdout(), resp)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDUE DATE\tTOTAL\tCUSTOMER")
			for _, s := range slips {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.DueDate, strings.Trim(string(s.TotalInCents), `"`), truncate(s.Customer, 30))
			}
			return w.Flush()
		},
	}
}

func getCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a bank slip with its fine as of today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := send(cmd.Context(), opts, http.MethodGet, "/rest/bankslips/"+args[0], nil)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), resp)
		},
	}
}

func resolveCmd(opts *options, use, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: fmt.Sprintf("Set a pending bank slip to %s", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := send(cmd.Context(), opts, http.MethodPut, "/rest/bankslips/"+args[0], map[string]string{"status": status})
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), resp)
		},
	}
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func send(ctx context.Context, opts *options, method, path string, payload any) (*response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(opts.baseURL, "/")+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		if opts.idempotencyKey != "" {
			req.Header.Set("Idempotency-Key", opts.idempotencyKey)
		}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &response{status: resp.StatusCode, header: resp.Header, body: data}, nil
}

// report prints the status line, the reported headers and the body.
// Non-2xx statuses are returned as an error after printing.
func report(w io.Writer, resp *response) error {
	fmt.Fprintf(w, "HTTP %d %s\n", resp.status, http.StatusText(resp.status))
	for _, name := range reportedHeaders {
		if v := resp.header.Get(name); v != "" {
			fmt.Fprintf(w, "%s: %s\n", name, v)
		}
	}

	if len(resp.body) > 0 {
		var data any
		if json.Unmarshal(resp.body, &data) == nil {
			printJSON(w, data)
		} else {
			fmt.Fprintln(w, string(resp.body))
		}
	}

	if resp.status < 200 || resp.status >= 300 {
		return fmt.Errorf("request failed with status %d", resp.status)
	}
	return nil
}

func printJSON(w io.Writer, data any) {
	out, _ := json.MarshalIndent(data, "", "  ")
	fmt.Fprintln(w, string(out))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
