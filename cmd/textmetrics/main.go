package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"textmetrics/internal/engine"
	"textmetrics/internal/history"
	"textmetrics/internal/ingest"
	"textmetrics/internal/workspace"
)

func main() {
	wpm := flag.Float64("wpm", 0, "reading rate in words per minute (0 = workspace setting)")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	export := flag.Bool("export", false, "also write the report to the workspace exports directory")
	noSave := flag.Bool("nosave", false, "skip recording this run in the history database")
	showHistory := flag.Int("history", 0, "list the N most recent analyses and exit")
	verbose := flag.Bool("v", false, "log analysis stages")
	flag.Parse()

	root, err := workspace.EnsureDefault()
	if err != nil {
		log.Fatalf("workspace initialization failed: %v", err)
	}
	settings, err := workspace.LoadSettings(root)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	if *showHistory > 0 {
		printHistory(workspace.HistoryDBPath(root), *showHistory)
		return
	}

	rate := settings.WordsPerMinute
	if env := strings.TrimSpace(os.Getenv("TM_WPM")); env != "" {
		if v, parseErr := strconv.ParseFloat(env, 64); parseErr == nil && v > 0 {
			rate = v
		}
	}
	if *wpm > 0 {
		rate = *wpm
	}

	doc, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "[INGEST] %s: %d bytes of text\n", doc.Name, len(doc.Text))
	}

	report, err := engine.Analyze(doc.Text, engine.Config{WordsPerMinute: rate})
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "[ENGINE] %d words, %d sentences analyzed\n", report.WordCount, report.SentenceCount)
	}

	if *asJSON {
		printJSON(report)
	} else {
		printReport(doc.Name, report)
	}

	if *export {
		path, exportErr := workspace.ExportReport(root, doc.Name, report)
		if exportErr != nil {
			fmt.Fprintf(os.Stderr, "warning: export failed: %v\n", exportErr)
		} else if *verbose {
			fmt.Fprintf(os.Stderr, "[EXPORT] %s\n", path)
		}
	}

	if settings.SaveHistory && !*noSave {
		if err := history.Record(workspace.HistoryDBPath(root), doc.Name, report); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
		}
	}
}

func readInput(path string) (*ingest.Document, error) {
	if path == "" {
		return ingest.ReadAll(os.Stdin, "stdin")
	}
	return ingest.ReadFile(path)
}

func printJSON(report engine.Report) {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	fmt.Println(string(raw))
}

func printReport(name string, r engine.Report) {
	fmt.Printf("Analysis of %s\n\n", name)
	fmt.Printf("  %-26s %d\n", "Words", r.WordCount)
	fmt.Printf("  %-26s %d\n", "Sentences", r.SentenceCount)
	fmt.Printf("  %-26s %.1f\n", "Avg sentence length", r.AvgSentenceLength)
	fmt.Printf("  %-26s %d\n", "Syllables", r.SyllableCount)
	fmt.Printf("  %-26s %.2f\n", "Flesch Reading Ease", r.FleschReadingEase)
	fmt.Printf("  %-26s %.2f\n", "Flesch-Kincaid Grade", r.FleschKincaidGrade)
	fmt.Printf("  %-26s %.2f\n", "SMOG Index", r.SMOGIndex)
	fmt.Printf("  %-26s %d (%.0f%%)\n", "Passive sentences", r.PassiveSentenceCount, r.PassiveRatio*100)
	fmt.Printf("  %-26s %.3f\n", "Sentiment polarity", r.SentimentPolarity)
	fmt.Printf("  %-26s %.3f\n", "Sentiment subjectivity", r.SentimentSubjectivity)
	fmt.Printf("  %-26s %.3f\n", "Lexical diversity (TTR)", r.LexicalDiversityTTR)
	fmt.Printf("  %-26s %.2f\n", "Reading time (min)", r.EstimatedReadingMinutes)
}

func printHistory(dbPath string, limit int) {
	entries, err := history.Recent(dbPath, limit)
	if err != nil {
		log.Fatalf("read history: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("No recorded analyses yet.")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s  %-20s  words=%-6d ease=%-7.2f grade=%-6.2f passive=%.0f%% reading=%.1fmin\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Source,
			e.Report.WordCount,
			e.Report.FleschReadingEase,
			e.Report.FleschKincaidGrade,
			e.Report.PassiveRatio*100,
			e.Report.EstimatedReadingMinutes,
		)
	}
}
