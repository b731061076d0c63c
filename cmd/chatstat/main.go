// Package main contains the entrypoint for the chatstat CLI, which
// analyses an exported group chat transcript and prints the report.
package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"

	"github.com/alizand/chatstat/internal/caldate"
	"github.com/alizand/chatstat/internal/chatlog"
	"github.com/alizand/chatstat/internal/config"
	"github.com/alizand/chatstat/internal/logger"
	"github.com/alizand/chatstat/internal/report"
	"github.com/alizand/chatstat/internal/stats"
	"github.com/alizand/chatstat/internal/wordlist"
)

func main() {
	os.Exit(run())
}

// run wires configuration, logging and the analysis pipeline, and
// returns an exit code (0 for success, 1 for failure).
func run() int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	chatPath := flag.String("chat", "", "Path to the exported chat transcript (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	if *chatPath != "" {
		cfg.Chat.File = *chatPath
	}
	if cfg.Chat.File == "" {
		log.Error("No chat file given; set -chat or chat.file in config")
		return 1
	}

	lines, err := readLines(cfg.Chat.File)
	if err != nil {
		log.Error("Failed to read chat file", "path", cfg.Chat.File, "error", err)
		return 1
	}
	log.Info("Chat file loaded", "path", cfg.Chat.File, "lines", len(lines))

	stopWords, err := wordlist.Load(cfg.Words.StopFile)
	if err != nil {
		log.Error("Failed to load stop words", "path", cfg.Words.StopFile, "error", err)
		return 1
	}
	badWords, err := wordlist.Load(cfg.Words.BadFile)
	if err != nil {
		log.Error("Failed to load bad words", "path", cfg.Words.BadFile, "error", err)
		return 1
	}
	log.Debug("Word lists loaded", "stop_words", len(stopWords), "bad_words", len(badWords))

	cal, err := caldate.CalendarFromString(cfg.Analysis.Calendar)
	if err != nil {
		log.Error("Invalid calendar hint", "calendar", cfg.Analysis.Calendar, "error", err)
		return 1
	}
	conv := caldate.NewConverter(cal)

	parser := chatlog.NewParser(conv)
	messages, parseStats := parser.Parse(lines)
	logger.LogParseSummary(log, len(messages), parseStats.SkippedLines, parseStats.DroppedMessages)

	agg := stats.NewAggregator(conv, stats.Options{
		TopN:                 cfg.Analysis.TopN,
		CountMediaInActivity: cfg.Analysis.CountMediaInActivity,
		StopWords:            stopWords,
		BadWords:             badWords,
	})
	for _, msg := range messages {
		agg.Ingest(msg)
	}
	res := agg.Finalize()
	res.Parse = parseStats

	report.Render(os.Stdout, res, conv)

	log.Info("Analysis complete",
		"users", len(res.Users),
		"messages", res.TotalCounted,
		"calendar", cal.String())
	return 0
}

// readLines loads the transcript into memory. Lines can be long when a
// message carries pasted text, so the scanner buffer is widened.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
