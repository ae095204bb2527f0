package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"cinematch/internal/recommend"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeService struct {
	titles  []string
	recs    []string
	err     error
	calls   int
	lastArg string
}

func (f *fakeService) ListTitles(ctx context.Context) ([]string, error) {
	return f.titles, f.err
}

func (f *fakeService) Recommend(ctx context.Context, title string) ([]string, error) {
	f.calls++
	f.lastArg = title
	return f.recs, f.err
}

func newExecutor(svc *fakeService, format OutputFormat) (*Executor, *bytes.Buffer) {
	text.DisableColors()
	var out bytes.Buffer
	return NewExecutor(svc, ExecutorOptions{Format: format, Out: &out}), &out
}

func TestParseOutputFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", "yaml"} {
		_, err := ParseOutputFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseOutputFormat("xml")
	assert.Error(t, err)
}

func TestRecommend_BlankTitle(t *testing.T) {
	svc := &fakeService{}
	e, _ := newExecutor(svc, OutputFormatTable)

	err := e.Recommend(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrBlankTitle)
	assert.Equal(t, recommend.MsgSelectMovie, err.Error())
	assert.Zero(t, svc.calls)
}

func TestRecommend_Table(t *testing.T) {
	svc := &fakeService{recs: []string{"Matrix Reloaded", "Dark City"}}
	e, out := newExecutor(svc, OutputFormatTable)

	require.NoError(t, e.Recommend(context.Background(), " The Matrix "))
	assert.Equal(t, "The Matrix", svc.lastArg)
	assert.Contains(t, out.String(), "Matrix Reloaded")
	assert.Contains(t, out.String(), "Dark City")
}

func TestRecommend_JSON(t *testing.T) {
	svc := &fakeService{recs: []string{"Dark City", "Equilibrium"}}
	e, out := newExecutor(svc, OutputFormatJSON)

	require.NoError(t, e.Recommend(context.Background(), "The Matrix"))
	var got RecommendationResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, RecommendationResult{Title: "The Matrix", Recommendations: []string{"Dark City", "Equilibrium"}}, got)
}

func TestRecommend_YAMLEmpty(t *testing.T) {
	svc := &fakeService{recs: nil}
	e, out := newExecutor(svc, OutputFormatYAML)

	require.NoError(t, e.Recommend(context.Background(), "Inception"))
	var got RecommendationResult
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Inception", got.Title)
	assert.Empty(t, got.Recommendations)
}

func TestRecommend_TableEmpty(t *testing.T) {
	e, out := newExecutor(&fakeService{}, OutputFormatTable)
	require.NoError(t, e.Recommend(context.Background(), "Inception"))
	assert.Contains(t, out.String(), recommend.MsgNoRecommendations)
}

func TestRecommend_TableEmptyQuiet(t *testing.T) {
	var out bytes.Buffer
	e := NewExecutor(&fakeService{}, ExecutorOptions{Format: OutputFormatTable, Quiet: true, Out: &out})
	require.NoError(t, e.Recommend(context.Background(), "Inception"))
	assert.Empty(t, out.String())
}

func TestRecommend_ServiceError(t *testing.T) {
	e, out := newExecutor(&fakeService{err: errors.New("model unavailable")}, OutputFormatTable)
	err := e.Recommend(context.Background(), "Inception")
	assert.EqualError(t, err, "model unavailable")
	assert.Empty(t, out.String())
}

func TestTitles_All(t *testing.T) {
	e, out := newExecutor(&fakeService{titles: []string{"Inception", "Heat"}}, OutputFormatTable)
	require.NoError(t, e.Titles(context.Background(), ""))
	assert.Contains(t, out.String(), "Inception\nHeat\n")
	assert.Contains(t, out.String(), "Total: 2")
}

func TestTitles_Query(t *testing.T) {
	svc := &fakeService{titles: []string{"Inception", "The Matrix", "Matrix Reloaded"}}
	e, out := newExecutor(svc, OutputFormatJSON)
	require.NoError(t, e.Titles(context.Background(), "matrix"))

	var got []string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []string{"The Matrix", "Matrix Reloaded"}, got)
}

func TestTitles_QueryTable(t *testing.T) {
	svc := &fakeService{titles: []string{"Inception", "The Matrix"}}
	e, out := newExecutor(svc, OutputFormatTable)
	require.NoError(t, e.Titles(context.Background(), "zzz"))
	assert.Contains(t, out.String(), "No matching titles")

	out.Reset()
	require.NoError(t, e.Titles(context.Background(), "MATRIX"))
	assert.Equal(t, "The Matrix\n", out.String())
}

func TestTitles_Error(t *testing.T) {
	e, _ := newExecutor(&fakeService{err: errors.New("connection refused")}, OutputFormatTable)
	err := e.Titles(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), recommend.MsgCatalogFailed)
}
