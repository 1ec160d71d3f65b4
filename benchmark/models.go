package main

import "time"

type AnalyzeRequest struct {
	Image string `json:"image"`
	Mode  string `json:"mode"`
}

type AnalyzeResponse struct {
	Explanation string `json:"explanation"`
	Mode        string `json:"mode"`
	Timestamp   string `json:"timestamp"`
	Success     bool   `json:"success"`
}

type BenchResult struct {
	File     string
	Mode     string
	Duration time.Duration
	Chars    int
	Err      error
	Size     int64
}

type Agg struct {
	Count      int
	Errors     int
	Total      time.Duration
	TotalBytes int64
	TotalChars int
}
