package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

var formatDirs = []string{"jpg", "png", "webp"}

var rootCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the analyze endpoint",
	Long:  `Sends every image under <data>/{jpg,png,webp}/ to /analyze once per mode and prints a markdown summary.`,
	RunE:  runBench,
}

func init() {
	rootCmd.Flags().String("endpoint", "http://localhost:8000/analyze", "analyze endpoint URL")
	rootCmd.Flags().String("data", filepath.Join(".", "data"), "directory with per-format image folders")
	rootCmd.Flags().StringSlice("modes", []string{"kid", "student", "expert"}, "modes to benchmark")
	rootCmd.Flags().Duration("timeout", 2*time.Minute, "per-request timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBench(cmd *cobra.Command, _ []string) error {
	endpoint, _ := cmd.Flags().GetString("endpoint")
	dataDir, _ := cmd.Flags().GetString("data")
	modes, _ := cmd.Flags().GetStringSlice("modes")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	client := &http.Client{Timeout: timeout}
	ctx := cmd.Context()

	var results []BenchResult
	for _, dir := range formatDirs {
		files, _ := os.ReadDir(filepath.Join(dataDir, dir))
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			path := filepath.Join(dataDir, dir, f.Name())
			for _, mode := range modes {
				res := benchmarkImage(ctx, client, endpoint, path, mode)
				if res.Err != nil {
					cmd.PrintErrf("ERR %s [%s]: %v\n", res.File, mode, res.Err)
				} else {
					cmd.Printf("OK %s [%s] %v\n", res.File, mode, res.Duration.Round(time.Millisecond))
				}
				results = append(results, res)
			}
		}
	}

	if len(results) == 0 {
		return fmt.Errorf("no images found under %s", dataDir)
	}
	printMarkdown(cmd.OutOrStdout(), results)
	return nil
}

func benchmarkImage(ctx context.Context, client *http.Client, endpoint, path, mode string) BenchResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BenchResult{File: filepath.Base(path), Mode: mode, Err: err}
	}

	start := time.Now()
	resp, err := sendAnalyze(ctx, client, endpoint, AnalyzeRequest{
		Image: base64.StdEncoding.EncodeToString(raw),
		Mode:  mode,
	})

	res := BenchResult{
		File:     filepath.Base(path),
		Mode:     mode,
		Duration: time.Since(start),
		Err:      err,
		Size:     int64(len(raw)),
	}
	if resp != nil {
		res.Chars = len(resp.Explanation)
	}
	return res
}

func sendAnalyze(ctx context.Context, client *http.Client, endpoint string, req AnalyzeRequest) (*AnalyzeResponse, error) {
	body, err := sonic.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal req: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out AnalyzeResponse
	if err := sonic.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !out.Success {
		return &out, fmt.Errorf("response not successful")
	}
	return &out, nil
}

func aggregate(results []BenchResult) map[string]Agg {
	m := map[string]Agg{}
	for _, r := range results {
		a := m[r.Mode]
		if r.Err != nil {
			a.Errors++
			m[r.Mode] = a
			continue
		}
		a.Count++
		a.TotalBytes += r.Size
		a.Total += r.Duration
		a.TotalChars += r.Chars
		m[r.Mode] = a
	}
	return m
}

func printMarkdown(w io.Writer, results []BenchResult) {
	fmt.Fprintln(w, "\n## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Mode | Requests | Errors | Avg Time | Total Time | Avg Chars | Avg File Size |")
	fmt.Fprintln(w, "|------|----------|--------|----------|------------|-----------|---------------|")

	agg := aggregate(results)
	modes := make([]string, 0, len(agg))
	for mode := range agg {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	var (
		totalCount    int
		totalErrors   int
		totalDuration time.Duration
		totalBytes    int64
		totalChars    int
	)

	for _, mode := range modes {
		a := agg[mode]
		totalErrors += a.Errors
		if a.Count == 0 {
			fmt.Fprintf(w, "| %s | 0 | %d | - | - | - | - |\n", mode, a.Errors)
			continue
		}
		fmt.Fprintf(w, "| %s | %d | %d | %v | %v | %d | %s |\n",
			mode,
			a.Count,
			a.Errors,
			(a.Total / time.Duration(a.Count)).Round(time.Millisecond),
			a.Total.Round(time.Millisecond),
			a.TotalChars/a.Count,
			humanBytes(a.TotalBytes/int64(a.Count)),
		)
		totalCount += a.Count
		totalDuration += a.Total
		totalBytes += a.TotalBytes
		totalChars += a.TotalChars
	}

	if totalCount > 0 {
		fmt.Fprintf(w, "| **ALL** | %d | %d | %v | %v | %d | %s |\n",
			totalCount,
			totalErrors,
			(totalDuration / time.Duration(totalCount)).Round(time.Millisecond),
			totalDuration.Round(time.Millisecond),
			totalChars/totalCount,
			humanBytes(totalBytes/int64(totalCount)),
		)
	}
}

func humanBytes(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/GB)
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/MB)
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/KB)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
