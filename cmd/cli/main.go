package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "khata-cli",
		Short: "Khata CLI tool",
		Long:  `A command line interface for interacting with the Khata bookkeeping API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Khata API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(statementCmd(), listCmd(), healthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func statementCmd() *cobra.Command {
	var from, to string
	var start, end int

	cmd := &cobra.Command{
		Use:   "statement [customer|supplier|worker] [id]",
		Short: "Fetch a party's ledger statement",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			kind, id := args[0], args[1]
			var plural string
			switch kind {
			case "customer":
				plural = "customers"
			case "supplier":
				plural = "suppliers"
			case "worker":
				plural = "workers"
			default:
				fmt.Printf("Unknown party kind %q\n", kind)
				os.Exit(1)
			}

			q := url.Values{}
			if from != "" {
				q.Set("from", from)
			}
			if to != "" {
				q.Set("to", to)
			}
			if start > 0 {
				q.Set("start", fmt.Sprint(start))
			}
			if end > 0 {
				q.Set("end", fmt.Sprint(end))
			}

			path := fmt.Sprintf("/api/v1/%s/%s/statement", plural, url.PathEscape(id))
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			printStatement(get(path))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&start, "start", 0, "First row to show (1-based)")
	cmd.Flags().IntVar(&end, "end", 0, "Last row to show (1-based)")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list [customers|suppliers|workers|profiles|sales|purchases|expenses|inventory]",
		Short:     "List records of a collection",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"customers", "suppliers", "workers", "profiles", "sales", "purchases", "expenses", "inventory"},
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(get("/api/v1/" + args[0]))
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API readiness",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(get("/ready"))
		},
	}
}

func get(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	return body
}

func printJSON(body []byte) {
	var buf any
	if err := json.Unmarshal(body, &buf); err != nil {
		fmt.Println(string(body))
		return
	}
	out, _ := json.MarshalIndent(buf, "", "  ")
	fmt.Println(string(out))
}

type statementRow struct {
	No          string `json:"no"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Balance     string `json:"balance"`
}

type statementDoc struct {
	Party struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"party"`
	Rows           []statementRow `json:"rows"`
	ClosingBalance string         `json:"closingBalance"`
	Status         string         `json:"status"`
}

func printStatement(body []byte) {
	var doc statementDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Printf("Statement for %s (%s)\n\n", doc.Party.Name, doc.Party.Type)
	fmt.Printf("%-8s %-12s %-32s %12s %12s %14s\n", "No", "Date", "Description", "Debit", "Credit", "Balance")
	for _, row := range doc.Rows {
		fmt.Printf("%-8s %-12s %-32s %12s %12s %14s\n",
			row.No, row.Date, truncate(row.Description, 32), row.Debit, row.Credit, row.Balance)
	}
	fmt.Printf("\nClosing balance: %s (%s)\n", doc.ClosingBalance, doc.Status)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
