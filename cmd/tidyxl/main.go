// Command tidyxl dumps every cell of an xlsx workbook as JSON, one
// flat record per cell.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/romainfrancois/tidyxl"
)

var (
	outputPath string
	pretty     bool
	sheets     string
	listOnly   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tidyxl [input.xlsx]",
		Short: "Extract every cell of a spreadsheet into flat, typed records",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&sheets, "sheets", "", "Comma-separated sheet names (default: all)")
	rootCmd.Flags().BoolVar(&listOnly, "list", false, "List sheet names and exit")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	wb, err := tidyxl.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}

	if listOnly {
		for _, name := range wb.SheetNames() {
			fmt.Println(name)
		}
		return nil
	}

	var names []string
	if sheets != "" {
		for _, name := range strings.Split(sheets, ",") {
			names = append(names, strings.TrimSpace(name))
		}
	}

	result, err := wb.Cells(names...)
	if err != nil {
		return err
	}
	for _, sheet := range result {
		if sheet.Err != nil {
			fmt.Fprintf(os.Stderr, "sheet %s failed: %v\n", sheet.Name, sheet.Err)
		}
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return err
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}
