package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/korthochain/memkv/pkg/client"
	"github.com/spf13/cobra"
)

var (
	addr    string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "memkv-cli <command> [key] [value]",
		Short: "Send one request to a memkv server",
		Example: "  memkv-cli SET name Hong\n" +
			"  memkv-cli GET name\n" +
			"  memkv-cli DELETE name",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			reply, err := client.Do(ctx, addr, client.Command(args...))
			if err != nil {
				return err
			}
			fmt.Println(reply)
			return nil
		},
	}
	rootCmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:8888", "server address")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "request timeout")
	// keep "SET -x y" style values from being read as flags
	rootCmd.Flags().SetInterspersed(false)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
