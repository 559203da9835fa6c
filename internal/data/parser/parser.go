package parser

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/worktrack/go-work-balance/internal/core/model"
	"github.com/worktrack/go-work-balance/internal/util"
)

// Parser reads work log files line by line.
type Parser struct {
	concurrency int
	mu          sync.Mutex
	cache       map[string][]model.TimeEntry
}

// ParseResult represents the result of parsing a single file.
type ParseResult struct {
	File    string
	Entries []model.TimeEntry
	Error   error
}

// NewParser creates a new Parser instance.
func NewParser(concurrency int) *Parser {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Parser{
		concurrency: concurrency,
		cache:       make(map[string][]model.TimeEntry),
	}
}

// ParseFile parses the log file at the specified path and returns its
// entries. Lines that are not valid JSON are skipped, not fatal.
func (p *Parser) ParseFile(filepath string) ([]model.TimeEntry, error) {
	p.mu.Lock()
	if cached, ok := p.cache[filepath]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Start parsing file: %s", filepath))

	file, err := os.Open(filepath)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to open file: %s - %v", filepath, err))
		return nil, err
	}
	defer file.Close()

	var entries []model.TimeEntry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var entry model.TimeEntry
		if err := sonic.Unmarshal(scanner.Bytes(), &entry); err != nil {
			util.LogDebug(fmt.Sprintf("Skip invalid JSON line %s:%d - %v", filepath, lineCount, err))
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		util.LogDebug(fmt.Sprintf("Error scanning file: %s - %v", filepath, err))
		return nil, err
	}

	p.mu.Lock()
	p.cache[filepath] = entries
	p.mu.Unlock()

	return entries, nil
}

// ParseFiles parses multiple files concurrently and returns a channel of
// ParseResult.
func (p *Parser) ParseFiles(files []string) <-chan ParseResult {
	start := time.Now()
	results := make(chan ParseResult, len(files))
	var wg sync.WaitGroup

	util.LogDebug(fmt.Sprintf("Start concurrent parsing of %d files, concurrency: %d", len(files), p.concurrency))

	semaphore := make(chan struct{}, p.concurrency)

	for _, file := range files {
		wg.Add(1)
		go func(f string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			entries, err := p.ParseFile(f)

			results <- ParseResult{
				File:    f,
				Entries: entries,
				Error:   err,
			}
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)

		totalDuration := time.Since(start)
		util.LogDebug(fmt.Sprintf("Concurrent parsing finished, total duration: %v", totalDuration))
	}()

	return results
}
