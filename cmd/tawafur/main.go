// Command tawafur serves the schedule-parsing API or runs a one-shot
// parse over local documents.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/adawood/tawafur"
	"github.com/adawood/tawafur/docsource"
	"github.com/adawood/tawafur/docsource/docx"
	"github.com/adawood/tawafur/docsource/htmltable"
	"github.com/adawood/tawafur/internal/config"
	"github.com/adawood/tawafur/internal/server"
	"github.com/adawood/tawafur/schedule"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tawafur",
		Short: "Exam invigilation availability from schedule documents",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(parseCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the parsing API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel)

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info().Str("port", cfg.Port).Msg("listening")
				errCh <- srv.Start()
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-quit:
				logger.Info().Str("signal", sig.String()).Msg("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}
}

func parseCmd() *cobra.Command {
	var rosterPath, examsPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse documents once and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rosterPath == "" && examsPath == "" {
				return fmt.Errorf("at least one of --roster and --exams is required")
			}
			analyzer := tawafur.New().Workers(workers)

			out := struct {
				Doctors *schedule.Roster      `json:"doctors,omitempty"`
				Exams   []*schedule.ExamEntry `json:"exams,omitempty"`
				Matches []*schedule.ExamEntry `json:"matches,omitempty"`
			}{}

			if rosterPath != "" {
				doc, err := docx.Open(rosterPath)
				if err != nil {
					return fmt.Errorf("roster document: %w", err)
				}
				out.Doctors, err = analyzer.ParseRoster(doc)
				if err != nil {
					return err
				}
			}
			if examsPath != "" {
				src, err := openExamSource(examsPath)
				if err != nil {
					return fmt.Errorf("exam document: %w", err)
				}
				out.Exams, err = analyzer.ParseExams(src)
				if err != nil {
					return err
				}
			}
			if out.Doctors != nil && out.Exams != nil {
				out.Matches = analyzer.Match(out.Exams, out.Doctors)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&rosterPath, "roster", "", "roster document (.docx)")
	cmd.Flags().StringVar(&examsPath, "exams", "", "exam document (.docx or .html)")
	cmd.Flags().IntVar(&workers, "workers", 1, "matcher parallelism")
	return cmd
}

func openExamSource(path string) (docsource.TableSource, error) {
	switch filepath.Ext(path) {
	case ".html", ".htm":
		return htmltable.Open(path)
	default:
		return docx.Open(path)
	}
}
