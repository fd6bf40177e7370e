package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/moodline/internal/application"
	"github.com/bnema/moodline/internal/domain"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	file        string
	audio       string
	seed        uint64
	concurrency int
	asJSON      bool
}

type analyzeOutput struct {
	Results []application.AnalysisResult
	Summary domain.HistorySummary
}

func newAnalyzeCmd(app *app) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze journal entries and suggest a response",
		Long:  "Analyze each argument as one entry, or one entry per line of --file, or the transcript of an --audio recording.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed *uint64
			if cmd.Flags().Changed("seed") {
				seed = &opts.seed
			}
			return runAnalyze(cmd, app, args, opts, seed)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Read one entry per line from a file (- for stdin)")
	cmd.Flags().StringVar(&opts.audio, "audio", "", "Transcribe and analyze an audio recording")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible response selection")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 4, "Maximum entries classified at once")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Render JSON output")
	cmd.MarkFlagsMutuallyExclusive("file", "audio")

	return cmd
}

func runAnalyze(cmd *cobra.Command, app *app, args []string, opts analyzeOptions, seed *uint64) error {
	if opts.audio != "" && len(args) > 0 {
		return domain.NewInputValidationError("text arguments cannot be combined with --audio")
	}

	texts, err := collectTexts(cmd, args, opts.file)
	if err != nil {
		return err
	}
	if opts.audio == "" && len(texts) == 0 {
		return domain.NewInputValidationError("no text provided: pass text arguments, --file or --audio")
	}

	svc, err := app.newService(seed)
	if err != nil {
		return err
	}

	var results []application.AnalysisResult
	work := func(ctx context.Context, progress func()) error {
		if opts.audio != "" {
			result, err := analyzeAudioFile(ctx, svc, opts.audio)
			if err != nil {
				return err
			}
			progress()
			results = []application.AnalysisResult{result}
			return nil
		}

		batch, err := svc.AnalyzeBatch(ctx, application.AnalyzeBatchCommand{
			Texts:       texts,
			Concurrency: opts.concurrency,
			Progress:    progress,
		})
		if err != nil {
			return err
		}
		results = batch
		return nil
	}

	total := len(texts)
	if opts.audio != "" {
		total = 1
	}

	if opts.asJSON {
		err = work(cmd.Context(), func() {})
	} else {
		err = runAnalyzeSpinner(cmd.Context(), cmd.ErrOrStderr(), total, work)
	}
	if err != nil {
		return err
	}

	summary, err := svc.HistorySummary(cmd.Context())
	if err != nil {
		return err
	}

	return writeAnalyzeOutput(cmd, app, analyzeOutput{Results: results, Summary: summary}, opts.asJSON)
}

func analyzeAudioFile(ctx context.Context, svc *application.Service, path string) (application.AnalysisResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return application.AnalysisResult{}, domain.NewInputValidationError(fmt.Sprintf("open audio file: %v", err))
	}
	defer f.Close()

	return svc.AnalyzeAudio(ctx, application.AnalyzeAudioCommand{
		Filename: filepath.Base(path),
		Audio:    f,
	})
}

// collectTexts keeps arguments verbatim and skips blank lines from --file.
func collectTexts(cmd *cobra.Command, args []string, file string) ([]string, error) {
	texts := append([]string(nil), args...)
	if file == "" {
		return texts, nil
	}

	var r io.Reader
	if file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, domain.NewInputValidationError(fmt.Sprintf("open entries file: %v", err))
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	return texts, nil
}

func writeAnalyzeOutput(cmd *cobra.Command, app *app, out analyzeOutput, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.reportRenderer(out.Results, out.Summary)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
