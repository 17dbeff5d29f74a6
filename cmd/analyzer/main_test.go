package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/poker-hand-analyzer/ledger"
	"github.com/luca-patrignani/poker-hand-analyzer/report"
)

const handFile = `10D, JD, QD, KD, AD
2C,3C,4C,5C,7H
8S, 8H, 8D, 4S, 4H
6S,6H,9C,JS,QC
KH, KS, 3D, 3H, 5S
9D,10C,7S,2S,AH
`

func runAnalyzer(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeHandFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hands.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func rankingLines(t *testing.T, out string) []string {
	t.Helper()
	_, after, found := strings.Cut(out, report.RankingHeader+"\n")
	require.True(t, found, "missing ranking header in:\n%s", out)
	return strings.Split(strings.TrimSpace(after), "\n")
}

func TestRunFromFile(t *testing.T) {
	path := writeHandFile(t, handFile)

	code, out, _ := runAnalyzer(t, path)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, report.Banner+"\n"))
	assert.Contains(t, out, report.FileHeader)
	assert.Contains(t, out, "*** File: "+path)
	assert.Contains(t, out, "*** Here are the six hands...")

	assert.Equal(t, []string{
		"10D JD QD KD AD - Royal Straight Flush",
		"8S 8H 8D 4S 4H - Full House",
		"KH KS 3D 3H 5S - Two Pair",
		"6S 6H 9C JS QC - Pair",
		"9D 10C 7S 2S AH - High Card",
		"2C 3C 4C 5C 7H - High Card",
	}, rankingLines(t, out))
}

func TestRunFromFileWithFewerHands(t *testing.T) {
	path := writeHandFile(t, handFile)

	code, out, _ := runAnalyzer(t, "--hands", "2", path)
	require.Equal(t, 0, code)
	assert.Len(t, rankingLines(t, out), 2)
}

func TestRunSeededIsReproducible(t *testing.T) {
	code, first, _ := runAnalyzer(t, "--seed", "1234")
	require.Equal(t, 0, code)
	code, second, _ := runAnalyzer(t, "--seed", "1234")
	require.Equal(t, 0, code)

	assert.Equal(t, first, second)
	assert.Contains(t, first, report.RandomHeader)
	assert.Contains(t, first, "*** Here is what remains in the deck...")
	assert.Len(t, rankingLines(t, first), 6)
}

func TestRunRandom(t *testing.T) {
	code, out, _ := runAnalyzer(t, "--hands", "10")
	require.Equal(t, 0, code)
	assert.Len(t, rankingLines(t, out), 10)
}

func TestRunDuplicateCard(t *testing.T) {
	path := writeHandFile(t, "2D,3C,4C,5C,7H\n2D,KS,3S,3H,5S\n")

	code, out, _ := runAnalyzer(t, "--hands", "2", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, report.DuplicateCard)
	assert.Contains(t, out, "*** DUPLICATE: 2D ***")
	assert.NotContains(t, out, "first seen")
	assert.NotContains(t, out, report.RankingHeader)

	// The file is echoed before the diagnostic.
	echo := strings.Index(out, "2D,KS,3S,3H,5S")
	diag := strings.Index(out, report.DuplicateCard)
	require.NotEqual(t, -1, echo)
	assert.Less(t, echo, diag)
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.txt")}},
		{"invalid card", []string{"--hands", "1", writeHandFile(t, "2D,3C,4C,5C,ZZ\n")}},
		{"too few hands", []string{writeHandFile(t, "2D,3C,4C,5C,7H\n")}},
		{"invalid hands flag", []string{"--hands", "11"}},
		{"unknown flag", []string{"--wild-cards"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runAnalyzer(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.NotContains(t, out, report.RankingHeader)
		})
	}
}

func TestRunHelp(t *testing.T) {
	code, _, errOut := runAnalyzer(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "--hands")
}

func TestRunPrettyStyle(t *testing.T) {
	path := writeHandFile(t, handFile)

	code, out, _ := runAnalyzer(t, "--style", "pretty", "--describe", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Royal Straight Flush")
	assert.Contains(t, out, "Full House")
	assert.Contains(t, out, "WINNER")
}

func TestRunRecordsLedger(t *testing.T) {
	path := writeHandFile(t, handFile)
	db := filepath.Join(t.TempDir(), "runs.db")

	for range 2 {
		code, _, _ := runAnalyzer(t, "--ledger", db, path)
		require.Equal(t, 0, code)
	}
	code, _, _ := runAnalyzer(t, "--ledger", db, "--seed", "7")
	require.Equal(t, 0, code)

	ctx := context.Background()
	store, err := ledger.NewSQLiteStore(ctx, db)
	require.NoError(t, err)
	defer store.Close()
	chain, err := ledger.Open(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 4, chain.Len())

	latest, err := chain.GetLatest()
	require.NoError(t, err)
	assert.Equal(t, randomSource, latest.Run.Source)
	assert.Equal(t, int64(7), latest.Run.Seed)
	assert.Len(t, latest.Run.Ranking, 6)

	first, err := chain.GetByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, path, first.Run.Source)
	assert.Equal(t, "10D JD QD KD AD - Royal Straight Flush", first.Run.Ranking[0])
}
