package application

import "io"

type AnalyzeCommand struct {
	Text string
}

type AnalyzeAudioCommand struct {
	Filename string
	Audio    io.Reader
}

type AnalyzeBatchCommand struct {
	Texts []string
	// Concurrency caps in-flight classifications; zero or less means unbounded.
	Concurrency int
	// Progress, when set, is called once per analyzed entry. Calls may be
	// concurrent.
	Progress func()
}
