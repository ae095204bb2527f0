package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cinematch/internal/api"
	"cinematch/internal/recommend"
	"cinematch/internal/suggest"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ErrBlankTitle is returned when recommend is called without a title.
var ErrBlankTitle = errors.New(recommend.MsgSelectMovie)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or yaml)", s)
	}
}

// ExecutorOptions contains options for command execution
type ExecutorOptions struct {
	Format OutputFormat
	Quiet  bool
	// Limit caps the number of suggestions printed for a title query.
	Limit int
	Out   io.Writer
}

// Executor runs the one-shot commands against the recommendation service.
type Executor struct {
	service api.Service
	options ExecutorOptions
}

// NewExecutor creates a new executor
func NewExecutor(service api.Service, options ExecutorOptions) *Executor {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	if options.Limit <= 0 {
		options.Limit = suggest.DefaultLimit
	}
	return &Executor{service: service, options: options}
}

// RecommendationResult is the machine-readable form of a recommend run.
type RecommendationResult struct {
	Title           string   `json:"title" yaml:"title"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// Recommend runs the request flow once for input and prints the outcome.
func (e *Executor) Recommend(ctx context.Context, input string) error {
	var flow recommend.Flow
	req, ok := flow.Begin(input)
	if !ok {
		return ErrBlankTitle
	}

	recs, err := e.service.Recommend(ctx, req.Title)
	flow.Complete(req.Seq, recs, err)
	if err != nil {
		return err
	}

	result := RecommendationResult{Title: req.Title, Recommendations: flow.Results()}
	if result.Recommendations == nil {
		result.Recommendations = []string{}
	}

	switch e.options.Format {
	case OutputFormatJSON:
		return e.outputJSON(result)
	case OutputFormatYAML:
		return e.outputYAML(result)
	default:
		if flow.Phase() == recommend.Failed {
			if !e.options.Quiet {
				e.printf("%s\n", text.FgYellow.Sprint(flow.Message()))
			}
			return nil
		}
		return e.recommendationTable(result)
	}
}

// Titles prints the title list, or the suggestions for query with the
// matched text emphasized.
func (e *Executor) Titles(ctx context.Context, query string) error {
	titles, err := e.service.ListTitles(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", recommend.MsgCatalogFailed, err)
	}

	if query != "" {
		return e.suggestions(titles, query)
	}

	switch e.options.Format {
	case OutputFormatJSON:
		return e.outputJSON(titles)
	case OutputFormatYAML:
		return e.outputYAML(titles)
	}
	for _, title := range titles {
		e.printf("%s\n", title)
	}
	if !e.options.Quiet {
		e.printf("\n%s %s\n", text.FgHiBlue.Sprint("Total:"), text.FgHiWhite.Sprint(len(titles)))
	}
	return nil
}

func (e *Executor) suggestions(titles []string, query string) error {
	matches := suggest.Collect(titles, query, e.options.Limit)

	switch e.options.Format {
	case OutputFormatJSON:
		return e.outputJSON(suggest.Titles(matches))
	case OutputFormatYAML:
		return e.outputYAML(suggest.Titles(matches))
	}

	if len(matches) == 0 {
		if !e.options.Quiet {
			e.printf("%s\n", text.FgYellow.Sprint("No matching titles"))
		}
		return nil
	}
	for _, m := range matches {
		var b strings.Builder
		for _, seg := range m.Segments() {
			if seg.Emphasized {
				b.WriteString(text.Colors{text.Bold, text.FgHiCyan}.Sprint(seg.Text))
				continue
			}
			b.WriteString(seg.Text)
		}
		e.printf("%s\n", b.String())
	}
	return nil
}

func (e *Executor) recommendationTable(result RecommendationResult) error {
	t := table.NewWriter()
	t.SetOutputMirror(e.options.Out)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Movies like %s", result.Title)
	t.AppendHeader(table.Row{text.FgHiCyan.Sprint("#"), text.FgHiCyan.Sprint("TITLE")})
	for i, rec := range result.Recommendations {
		t.AppendRow(table.Row{i + 1, rec})
	}
	t.Render()
	return nil
}

func (e *Executor) outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	e.printf("%s\n", data)
	return nil
}

func (e *Executor) outputYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	e.printf("%s", data)
	return nil
}

func (e *Executor) printf(format string, a ...interface{}) {
	fmt.Fprintf(e.options.Out, format, a...)
}
